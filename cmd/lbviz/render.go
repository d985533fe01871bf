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

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/eth-easl/lbviz/pkg/common"
	"github.com/eth-easl/lbviz/pkg/driver"
)

type renderOptions struct {
	outputDir  string
	format     string
	charts     string
	scale      float64
	marker     string
	summaryCSV string
	manifest   string
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render the configured charts into the output directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	flags := renderCmd.Flags()
	flags.StringVarP(&renderOpts.outputDir, "output-dir", "o", "", "Directory for the rendered figures")
	flags.StringVarP(&renderOpts.format, "format", "f", "", "Output format - choose from [png, svg, pdf, jpg, tif, eps]")
	flags.StringVarP(&renderOpts.charts, "charts", "c", "", "Comma separated charts: distribution, timeline, heatmap, boxplot, dashboard or all")
	flags.Float64Var(&renderOpts.scale, "scale", 0, "Multiplier applied to every figure size")
	flags.StringVar(&renderOpts.marker, "marker", "", "Line prefix separating metrics from the load history")
	flags.StringVar(&renderOpts.summaryCSV, "summary-csv", "", "Also write per-server statistics to this CSV file")
	flags.StringVar(&renderOpts.manifest, "manifest", "", "Also write a JSON manifest of the rendered files")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(args)
	if err != nil {
		return err
	}

	if renderOpts.outputDir != "" {
		cfg.OutputDir = renderOpts.outputDir
	}
	if renderOpts.format != "" {
		cfg.Format = strings.ToLower(renderOpts.format)
	}
	if renderOpts.charts != "" {
		kinds, err := common.ParseChartKinds(renderOpts.charts)
		if err != nil {
			return err
		}
		cfg.Charts = cfg.Charts[:0]
		for _, k := range kinds {
			cfg.Charts = append(cfg.Charts, string(k))
		}
	}
	if renderOpts.scale != 0 {
		cfg.SizeScale = renderOpts.scale
	}
	if renderOpts.marker != "" {
		cfg.HistoryMarker = renderOpts.marker
	}
	if renderOpts.summaryCSV != "" {
		cfg.SummaryPath = renderOpts.summaryCSV
	}
	if renderOpts.manifest != "" {
		cfg.ManifestPath = renderOpts.manifest
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if _, err := driver.NewDriver(&cfg).RunRender(); err != nil {
		reportParseError(cmd.OutOrStdout(), cfg, err)
		return err
	}
	return nil
}
