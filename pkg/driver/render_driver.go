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

package driver

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/eth-easl/lbviz/pkg/chart"
	"github.com/eth-easl/lbviz/pkg/common"
	"github.com/eth-easl/lbviz/pkg/config"
	"github.com/eth-easl/lbviz/pkg/metric"
	"github.com/eth-easl/lbviz/pkg/trace"
)

type Driver struct {
	Configuration *config.VisualizerConfiguration
}

func NewDriver(cfg *config.VisualizerConfiguration) *Driver {
	return &Driver{Configuration: cfg}
}

func (d *Driver) LoadExport() (*trace.Export, error) {
	export, err := trace.Load(d.Configuration.InputPath, d.Configuration.HistoryMarker)
	if err != nil {
		return nil, err
	}

	log.Infof("Loaded %d request metrics", len(export.Metrics))
	log.Infof("Loaded %d load history records", len(export.History))

	return export, nil
}

// missingSection names the table a chart needs but the export lacks.
func missingSection(kind common.ChartKind, export *trace.Export) string {
	if kind.NeedsMetrics() && !export.HasMetrics() {
		return "metrics"
	}
	if kind.NeedsHistory() && !export.HasHistory() {
		return "history"
	}
	return ""
}

func buildFigure(kind common.ChartKind, export *trace.Export) (chart.Figure, error) {
	switch kind {
	case common.DistributionChart:
		return chart.RequestDistribution(metric.RequestCounts(export.Metrics))
	case common.TimelineChart:
		return chart.LoadTimeline(metric.LoadSeries(export.History))
	case common.HeatmapChart:
		return chart.LoadHeatmap(metric.LoadGrid(export.History))
	case common.BoxPlotChart:
		return chart.LoadBoxPlot(metric.LoadSamples(export.Metrics))
	case common.DashboardChart:
		return chart.Dashboard(
			metric.RequestCounts(export.Metrics),
			metric.MeanLoad(export.Metrics),
			metric.LoadSeries(export.History),
			metric.LoadStdDev(export.Metrics),
		)
	default:
		return nil, fmt.Errorf("unknown chart %q", kind)
	}
}

// RunRender loads the export and writes every configured chart, then the
// optional summary CSV and manifest.
func (d *Driver) RunRender() (*metric.Manifest, error) {
	cfg := d.Configuration
	kinds := cfg.ChartKinds()
	total := len(kinds) + 1

	log.Infof("[1/%d] Loading data from %s...", total, cfg.InputPath)
	export, err := d.LoadExport()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.OutputDir); errors.Is(err, os.ErrNotExist) {
		log.Info("Creating the output directory")
		if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
			return nil, err
		}
	}

	manifest := metric.NewManifest(cfg.InputPath, export.Layout.String())
	manifest.Metrics = len(export.Metrics)
	manifest.History = len(export.History)

	for i, kind := range kinds {
		log.Infof("[%d/%d] Creating %s...", i+2, total, strings.ToLower(kind.Title()))

		if section := missingSection(kind, export); section != "" {
			log.Warnf("Skipping %s: %s has no %s records", kind, cfg.InputPath, section)
			manifest.Skip(string(kind))
			continue
		}

		fig, err := buildFigure(kind, export)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", kind, err)
		}

		path := chart.FilePath(cfg.OutputDir, kind, cfg.Format)
		width, height := chart.Size(kind, cfg.SizeScale)
		if err := chart.Save(fig, width, height, path); err != nil {
			return nil, fmt.Errorf("saving %s: %w", kind, err)
		}

		log.Infof("✓ %s Created (%s)", kind.Title(), path)
		manifest.AddChart(string(kind), path)
	}

	if cfg.SummaryPath != "" {
		if export.HasMetrics() {
			if err := metric.WriteSummaryCSV(cfg.SummaryPath, metric.Summarize(export.Metrics).Servers); err != nil {
				return nil, err
			}
			manifest.SummaryPath = cfg.SummaryPath
			log.Infof("Per-server statistics written to %s", cfg.SummaryPath)
		} else {
			log.Warnf("Skipping summary CSV: %s has no metrics records", cfg.InputPath)
		}
	}

	if cfg.ManifestPath != "" {
		if err := metric.WriteManifest(cfg.ManifestPath, manifest); err != nil {
			return nil, err
		}
		log.Debugf("Manifest %s written to %s", manifest.RunID, cfg.ManifestPath)
	}

	log.Infof("All visualizations generated successfully! %d written, %d skipped",
		len(manifest.Charts), len(manifest.Skipped))
	return manifest, nil
}
