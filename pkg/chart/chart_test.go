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
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth-easl/lbviz/pkg/common"
	"github.com/eth-easl/lbviz/pkg/metric"
)

func testMetrics() []common.MetricRecord {
	var records []common.MetricRecord
	for i := 0; i < 20; i++ {
		records = append(records, common.MetricRecord{
			RequestID:  strconv.Itoa(i),
			ServerID:   []string{"0", "1", "2", "3"}[i%4],
			ServerLoad: float64(5 + (i*7)%23),
		})
	}
	return records
}

func testHistory() []common.HistoryRecord {
	var records []common.HistoryRecord
	for s, id := range []string{"0", "1", "2"} {
		for ts := 0; ts < 6; ts++ {
			if s == 2 && ts == 5 {
				continue
			}
			records = append(records, common.HistoryRecord{
				TimeStep: float64(ts),
				ServerID: id,
				Load:     float64((s+1)*ts%11) + 1,
			})
		}
	}
	return records
}

func requireFile(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestRenderAllCharts(t *testing.T) {
	dir := t.TempDir()
	metrics := testMetrics()
	history := testHistory()

	distribution, err := RequestDistribution(metric.RequestCounts(metrics))
	require.NoError(t, err)

	timeline, err := LoadTimeline(metric.LoadSeries(history))
	require.NoError(t, err)

	heatmap, err := LoadHeatmap(metric.LoadGrid(history))
	require.NoError(t, err)

	boxplot, err := LoadBoxPlot(metric.LoadSamples(metrics))
	require.NoError(t, err)

	dashboard, err := Dashboard(metric.RequestCounts(metrics), metric.MeanLoad(metrics),
		metric.LoadSeries(history), metric.LoadStdDev(metrics))
	require.NoError(t, err)

	figures := map[common.ChartKind]Figure{
		common.DistributionChart: distribution,
		common.TimelineChart:     timeline,
		common.HeatmapChart:      heatmap,
		common.BoxPlotChart:      boxplot,
		common.DashboardChart:    dashboard,
	}

	for _, format := range []string{"png", "svg"} {
		for kind, fig := range figures {
			path := FilePath(dir, kind, format)
			w, h := Size(kind, 0.5)
			require.NoError(t, Save(fig, w, h, path), "saving %s as %s", kind, format)
			requireFile(t, path)
		}
	}
}

func TestUniformHeatmap(t *testing.T) {
	history := []common.HistoryRecord{
		{TimeStep: 0, ServerID: "S1", Load: 3},
		{TimeStep: 1, ServerID: "S1", Load: 3},
	}

	heatmap, err := LoadHeatmap(metric.LoadGrid(history))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "uniform.png")
	require.NoError(t, Save(heatmap, 400, 200, path))
	requireFile(t, path)
}

func TestEmptyInput(t *testing.T) {
	_, err := RequestDistribution(metric.ServerValues{})
	require.ErrorIs(t, err, ErrNoData)

	_, err = LoadTimeline(nil)
	require.ErrorIs(t, err, ErrNoData)

	_, err = LoadHeatmap(metric.LoadGrid(nil))
	require.ErrorIs(t, err, ErrNoData)

	_, err = LoadBoxPlot(nil)
	require.ErrorIs(t, err, ErrNoData)

	_, err = Dashboard(metric.ServerValues{}, metric.ServerValues{}, nil, metric.ServerValues{})
	require.ErrorIs(t, err, ErrNoData)
}

func TestSizeAndPath(t *testing.T) {
	w, h := Size(common.DashboardChart, 1)
	require.Equal(t, 16.0, float64(w/72))
	require.Equal(t, 12.0, float64(h/72))

	w, _ = Size(common.HeatmapChart, 0.5)
	require.Equal(t, 7.0, float64(w/72))

	require.Equal(t, filepath.Join("figs", "load_heatmap.svg"), FilePath("figs", common.HeatmapChart, "SVG"))
}

func TestSaveUnknownFormat(t *testing.T) {
	p, err := RequestDistribution(metric.RequestCounts(testMetrics()))
	require.NoError(t, err)

	require.Error(t, Save(p, 200, 200, filepath.Join(t.TempDir(), "chart.gif")))
}
