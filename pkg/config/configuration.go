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

package config

import (
	"strings"

	"github.com/eth-easl/lbviz/pkg/common"
)

type VisualizerConfiguration struct {
	InputPath     string `json:"InputPath" yaml:"InputPath"`
	OutputDir     string `json:"OutputDir" yaml:"OutputDir"`
	Format        string `json:"Format" yaml:"Format"`
	HistoryMarker string `json:"HistoryMarker" yaml:"HistoryMarker"`

	Charts    []string `json:"Charts" yaml:"Charts"`
	SizeScale float64  `json:"SizeScale" yaml:"SizeScale"`

	PreviewLines int    `json:"PreviewLines" yaml:"PreviewLines"`
	SummaryPath  string `json:"SummaryPath" yaml:"SummaryPath"`
	ManifestPath string `json:"ManifestPath" yaml:"ManifestPath"`
}

func DefaultConfiguration() VisualizerConfiguration {
	charts := make([]string, 0, len(common.AllCharts))
	for _, k := range common.AllCharts {
		charts = append(charts, string(k))
	}

	return VisualizerConfiguration{
		InputPath:     common.DefaultInputPath,
		OutputDir:     common.DefaultOutputDir,
		Format:        common.DefaultFormat,
		HistoryMarker: common.HistoryMarker,
		Charts:        charts,
		SizeScale:     1,
		PreviewLines:  common.DefaultPreviewLines,
	}
}

// ChartKinds returns the configured charts in rendering order. "all" selects
// every chart, as on the command line.
func (c *VisualizerConfiguration) ChartKinds() []common.ChartKind {
	kinds, err := common.ParseChartKinds(strings.Join(c.Charts, ","))
	if err != nil {
		return nil
	}
	return common.OrderChartKinds(kinds)
}

func (c *VisualizerConfiguration) Validate() error {
	if err := common.CheckFormat(c.Format); err != nil {
		return err
	}
	if err := common.CheckSizeScale(c.SizeScale); err != nil {
		return err
	}
	if _, err := common.ParseChartKinds(strings.Join(c.Charts, ",")); err != nil {
		return err
	}
	return nil
}
