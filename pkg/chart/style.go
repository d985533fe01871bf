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
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/eth-easl/lbviz/pkg/common"
)

var ErrNoData = errors.New("no data to plot")

var (
	SteelBlue      = color.NRGBA{R: 70, G: 130, B: 180, A: 179}
	Coral          = color.NRGBA{R: 255, G: 127, B: 80, A: 179}
	MediumSeaGreen = color.NRGBA{R: 60, G: 179, B: 113, A: 179}
	LightBlue      = color.NRGBA{R: 173, G: 216, B: 230, A: 179}
	MeanGreen      = color.RGBA{G: 128, A: 255}
	GridGray       = color.Gray{Y: 200}
)

// Figure is anything that can draw itself on a canvas: a plain *plot.Plot,
// a heatmap with its side legend, or the dashboard grid.
type Figure interface {
	Draw(c draw.Canvas)
}

func boldFont(size vg.Length) font.Font {
	f := font.From(plot.DefaultFont, size)
	f.Weight = xfont.WeightBold
	return f
}

// newPlot creates a plot with bold title and axis labels.
func newPlot(title, xLabel, yLabel string, titleSize vg.Length) *plot.Plot {
	p := plot.New()

	p.Title.Text = title
	p.Title.TextStyle.Font = boldFont(titleSize)
	p.X.Label.Text = xLabel
	p.X.Label.TextStyle.Font = boldFont(vg.Points(12))
	p.Y.Label.Text = yLabel
	p.Y.Label.TextStyle.Font = boldFont(vg.Points(12))

	return p
}

// addGrid draws light grid lines; horizontalOnly leaves out the vertical ones.
func addGrid(p *plot.Plot, horizontalOnly bool) {
	g := plotter.NewGrid()
	g.Horizontal.Color = GridGray
	g.Vertical.Color = GridGray
	if horizontalOnly {
		g.Vertical.Color = nil
	}
	p.Add(g)
}

// Size returns the canvas size of a chart kind, scaled by scale.
func Size(kind common.ChartKind, scale float64) (vg.Length, vg.Length) {
	var w, h float64
	switch kind {
	case common.TimelineChart:
		w, h = 12, 6
	case common.HeatmapChart:
		w, h = 14, 6
	case common.DashboardChart:
		w, h = 16, 12
	default:
		w, h = 10, 6
	}
	return vg.Length(w*scale) * vg.Inch, vg.Length(h*scale) * vg.Inch
}

// FilePath is where a chart kind is written inside dir.
func FilePath(dir string, kind common.ChartKind, format string) string {
	return filepath.Join(dir, kind.FileName()+"."+strings.ToLower(format))
}

// Save draws the figure on a canvas of the given size and writes it to path.
// The format comes from the file extension.
func Save(fig Figure, width, height vg.Length, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return fmt.Errorf("creating %s canvas: %w", format, err)
	}
	fig.Draw(draw.New(c))

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func centeredText(size vg.Length) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    boldFont(size),
		Handler: plot.DefaultTextHandler,
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
	}
}
