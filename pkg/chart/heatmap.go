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

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/eth-easl/lbviz/pkg/metric"
)

const heatmapPalette = "YlOrRd"

var legendWidth = vg.Points(70)

// heatGrid exposes a load grid as plotter.GridXYZ: columns are time steps and
// rows are servers in natural order.
type heatGrid struct {
	*metric.Grid
}

func (g heatGrid) Dims() (int, int) {
	return len(g.TimeSteps), len(g.ServerIDs)
}

func (g heatGrid) Z(c, r int) float64 {
	return g.Loads[r][c]
}

func (g heatGrid) X(c int) float64 {
	return g.TimeSteps[c]
}

func (g heatGrid) Y(r int) float64 {
	return float64(r)
}

type HeatmapFigure struct {
	Plot   *plot.Plot
	Legend plot.Legend
}

// Draw puts the heatmap on the left and the colour legend in a strip on the
// right.
func (f *HeatmapFigure) Draw(c draw.Canvas) {
	f.Plot.Draw(draw.Crop(c, 0, -legendWidth, 0, 0))
	f.Legend.Draw(draw.Crop(c, c.Max.X-c.Min.X-legendWidth, 0, 0, 0))
}

// LoadHeatmap renders server load per time step with a sequential palette.
func LoadHeatmap(grid *metric.Grid) (*HeatmapFigure, error) {
	if grid == nil || grid.Empty() {
		return nil, ErrNoData
	}

	pal, err := brewer.GetPalette(brewer.TypeSequential, heatmapPalette, 9)
	if err != nil {
		return nil, err
	}

	p := newPlot("Server Load Heatmap - Round Robin Distribution", "Time Step", "Server ID", vg.Points(14))

	h := plotter.NewHeatMap(heatGrid{grid}, pal)
	h.Min, h.Max = grid.Range()
	if h.Max <= h.Min {
		// a uniform grid still needs a non-empty colour range
		h.Max = h.Min + 1
	}
	p.Add(h)
	p.NominalY(grid.ServerIDs...)

	legend := plot.NewLegend()
	legend.Top = true
	thumbs := plotter.PaletteThumbnailers(pal)
	for i := len(thumbs) - 1; i >= 0; i-- {
		label := ""
		switch i {
		case len(thumbs) - 1:
			label = fmt.Sprintf("%.4g", h.Max)
		case 0:
			label = fmt.Sprintf("%.4g", h.Min)
		}
		legend.Add(label, thumbs[i])
	}

	return &HeatmapFigure{Plot: p, Legend: legend}, nil
}
