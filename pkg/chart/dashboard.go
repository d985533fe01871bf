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
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/eth-easl/lbviz/pkg/metric"
)

const dashboardTitle = "Round Robin Load Balancer - Performance Dashboard"

var dashboardTitleHeight = vg.Points(40)

type DashboardFigure struct {
	Title  string
	Panels [][]*plot.Plot
}

func (f *DashboardFigure) Draw(c draw.Canvas) {
	title := centeredText(vg.Points(16))
	c.FillText(title, vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: c.Max.Y - vg.Points(8)}, f.Title)

	tiles := draw.Tiles{
		Rows:      len(f.Panels),
		Cols:      len(f.Panels[0]),
		PadTop:    dashboardTitleHeight,
		PadBottom: vg.Points(10),
		PadLeft:   vg.Points(10),
		PadRight:  vg.Points(10),
		PadX:      vg.Points(30),
		PadY:      vg.Points(30),
	}

	canvases := plot.Align(f.Panels, tiles, c)
	for i := range f.Panels {
		for j, p := range f.Panels[i] {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}
}

// Dashboard arranges request distribution, average load, load timeline and
// load variability in a 2x2 grid.
func Dashboard(counts, means metric.ServerValues, series []metric.ServerSeries, stddevs metric.ServerValues) (*DashboardFigure, error) {
	if counts.Len() == 0 || len(series) == 0 {
		return nil, ErrNoData
	}

	requests, err := barPlot(counts, barOptions{
		title: "Request Distribution", xLabel: "Server ID", yLabel: "Number of Requests",
		titleSize: vg.Points(12), color: SteelBlue,
	})
	if err != nil {
		return nil, err
	}

	averages, err := barPlot(means, barOptions{
		title: "Average Load per Server", xLabel: "Server ID", yLabel: "Average Load",
		titleSize: vg.Points(12), color: Coral,
	})
	if err != nil {
		return nil, err
	}

	timeline, err := timelinePanel(series)
	if err != nil {
		return nil, err
	}

	variability, err := barPlot(stddevs, barOptions{
		title: "Load Variability per Server", xLabel: "Server ID", yLabel: "Load Std Dev",
		titleSize: vg.Points(12), color: MediumSeaGreen,
	})
	if err != nil {
		return nil, err
	}

	return &DashboardFigure{
		Title: dashboardTitle,
		Panels: [][]*plot.Plot{
			{requests, averages},
			{timeline, variability},
		},
	}, nil
}
