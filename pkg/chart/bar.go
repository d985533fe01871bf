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
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/eth-easl/lbviz/pkg/metric"
)

type barOptions struct {
	title, xLabel, yLabel string
	titleSize             vg.Length
	color                 color.Color
	valueLabels           bool
}

func barPlot(values metric.ServerValues, opt barOptions) (*plot.Plot, error) {
	if values.Len() == 0 {
		return nil, ErrNoData
	}

	p := newPlot(opt.title, opt.xLabel, opt.yLabel, opt.titleSize)
	addGrid(p, true)

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, err
	}
	bars.Color = opt.color
	bars.LineStyle.Color = color.Black
	bars.LineStyle.Width = vg.Points(0.8)
	p.Add(bars)

	if opt.valueLabels {
		xys := make(plotter.XYs, values.Len())
		texts := make([]string, values.Len())
		for i, v := range values.Values {
			xys[i].X = float64(i)
			xys[i].Y = v
			texts[i] = fmt.Sprintf("%d", int(v))
		}

		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
		if err != nil {
			return nil, err
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].XAlign = draw.XCenter
			labels.TextStyle[i].Font = boldFont(vg.Points(10))
		}
		labels.Offset = vg.Point{Y: vg.Points(2)}
		p.Add(labels)
	}

	p.NominalX(values.ServerIDs...)
	p.Y.Min = 0
	p.Y.Max *= 1.1

	return p, nil
}

// RequestDistribution is a bar chart of handled requests per server with the
// count written above each bar.
func RequestDistribution(counts metric.ServerValues) (*plot.Plot, error) {
	return barPlot(counts, barOptions{
		title:       "Round Robin: Request Distribution Across Servers",
		xLabel:      "Server ID",
		yLabel:      "Number of Requests",
		titleSize:   vg.Points(14),
		color:       SteelBlue,
		valueLabels: true,
	})
}
