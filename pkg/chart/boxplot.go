/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package chart

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/eth-easl/lbviz/pkg/common"
	"github.com/eth-easl/lbviz/pkg/metric"
)

// LoadBoxPlot draws the server_load distribution of every server with its
// mean marked by a triangle.
func LoadBoxPlot(samples []metric.ServerSamples) (*plot.Plot, error) {
	if len(samples) == 0 {
		return nil, ErrNoData
	}

	p := newPlot("Server Load Distribution Statistics", "Server ID", "Load Distribution", vg.Points(14))
	addGrid(p, true)

	names := make([]string, len(samples))
	means := make(plotter.XYs, len(samples))

	for i, s := range samples {
		box, err := plotter.NewBoxPlot(vg.Points(36), float64(i), plotter.Values(s.Values))
		if err != nil {
			return nil, err
		}
		box.FillColor = LightBlue
		p.Add(box)

		names[i] = common.ShortLabel(s.ServerID)
		means[i].X = float64(i)
		means[i].Y = stat.Mean(s.Values, nil)
	}

	meanMarkers, err := plotter.NewScatter(means)
	if err != nil {
		return nil, err
	}
	meanMarkers.Shape = draw.TriangleGlyph{}
	meanMarkers.Color = MeanGreen
	meanMarkers.Radius = vg.Points(4)
	p.Add(meanMarkers)
	p.Legend.Add("mean", meanMarkers)
	p.Legend.Top = true

	p.NominalX(names...)
	return p, nil
}
