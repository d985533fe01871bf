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
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/eth-easl/lbviz/pkg/common"
	"github.com/eth-easl/lbviz/pkg/metric"
)

func seriesXY(s metric.ServerSeries) plotter.XYs {
	pts := make(plotter.XYs, len(s.Loads))
	for i := range pts {
		pts[i].X = s.TimeSteps[i]
		pts[i].Y = s.Loads[i]
	}
	return pts
}

// LoadTimeline draws one line with point markers per server.
func LoadTimeline(series []metric.ServerSeries) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}

	p := newPlot("Server Loads Over Time - Round Robin Algorithm", "Time Step", "Server Load", vg.Points(14))
	addGrid(p, false)

	lines := make([]interface{}, 0, 2*len(series))
	for _, s := range series {
		lines = append(lines, common.ServerLabel(s.ServerID), seriesXY(s))
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, err
	}

	p.Legend.Top = true
	return p, nil
}

// timelinePanel is the compact dashboard variant: solid lines, small markers
// and short S<id> legend entries.
func timelinePanel(series []metric.ServerSeries) (*plot.Plot, error) {
	p := newPlot("Server Loads Over Time", "Time Step", "Load", vg.Points(12))
	addGrid(p, false)

	for i, s := range series {
		line, points, err := plotter.NewLinePoints(seriesXY(s))
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		points.Shape = plotutil.Shape(0)
		points.Color = plotutil.Color(i)
		points.Radius = vg.Points(1.5)

		p.Add(line, points)
		p.Legend.Add(common.ShortLabel(s.ServerID), line, points)
	}

	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(8)
	return p, nil
}
