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

package common

// HistoryMarker is the sentinel line the simulator writes between the
// per-request metrics and the per-timestep load history.
const HistoryMarker = "# Server Load History"

const (
	DefaultInputPath    = "load_balancer_data.csv"
	DefaultOutputDir    = "figs"
	DefaultPreviewLines = 10

	// MaxSizeScale caps the figure size multiplier; a 16x12in dashboard at
	// this scale is already 160x120in.
	MaxSizeScale = 10.0
)

// Metrics table columns.
const (
	ColumnRequestID  = "request_id"
	ColumnServerID   = "server_id"
	ColumnServerLoad = "server_load"
	ColumnTimestamp  = "timestamp"
)

// History table columns.
const (
	ColumnTimeStep = "time_step"
	ColumnLoad     = "load"

	// ColumnWideTime is the first header cell of the wide load-over-time layout.
	ColumnWideTime = "time"
)

var (
	RequiredMetricsColumns = []string{ColumnServerID, ColumnServerLoad}
	RequiredHistoryColumns = []string{ColumnTimeStep, ColumnServerID, ColumnLoad}
)

type ChartKind string

const (
	DistributionChart ChartKind = "distribution"
	TimelineChart     ChartKind = "timeline"
	HeatmapChart      ChartKind = "heatmap"
	BoxPlotChart      ChartKind = "boxplot"
	DashboardChart    ChartKind = "dashboard"
)

// AllCharts lists every chart in rendering order.
var AllCharts = []ChartKind{
	DistributionChart,
	TimelineChart,
	HeatmapChart,
	BoxPlotChart,
	DashboardChart,
}

// NeedsMetrics reports whether the chart is derived from the metrics table.
func (k ChartKind) NeedsMetrics() bool {
	return k == DistributionChart || k == BoxPlotChart || k == DashboardChart
}

// NeedsHistory reports whether the chart is derived from the history table.
func (k ChartKind) NeedsHistory() bool {
	return k == TimelineChart || k == HeatmapChart || k == DashboardChart
}

// FileName is the base name (without extension) of the rendered chart.
func (k ChartKind) FileName() string {
	switch k {
	case DistributionChart:
		return "request_distribution"
	case TimelineChart:
		return "server_loads_over_time"
	case HeatmapChart:
		return "load_heatmap"
	case BoxPlotChart:
		return "load_statistics"
	case DashboardChart:
		return "summary_dashboard"
	default:
		return string(k)
	}
}

// Title is the human readable name used in progress logs.
func (k ChartKind) Title() string {
	switch k {
	case DistributionChart:
		return "Request Distribution Plot"
	case TimelineChart:
		return "Server Loads Timeline"
	case HeatmapChart:
		return "Load Heatmap"
	case BoxPlotChart:
		return "Load Statistics Plot"
	case DashboardChart:
		return "Summary Dashboard"
	default:
		return string(k)
	}
}

// Output formats understood by gonum/plot writers.
var ValidFormats = []string{"png", "svg", "pdf", "jpg", "jpeg", "tif", "tiff", "eps"}

const DefaultFormat = "png"
