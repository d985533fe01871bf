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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/eth-easl/lbviz/pkg/chart"
	"github.com/eth-easl/lbviz/pkg/common"
	"github.com/eth-easl/lbviz/pkg/config"
	"github.com/eth-easl/lbviz/pkg/trace"
)

func testConfiguration(t *testing.T, input string) *config.VisualizerConfiguration {
	cfg := config.DefaultConfiguration()
	cfg.InputPath = input
	cfg.OutputDir = filepath.Join(t.TempDir(), "figs")
	cfg.SizeScale = 0.5
	return &cfg
}

func TestRunRender(t *testing.T) {
	log.SetLevel(log.DebugLevel)

	cfg := testConfiguration(t, "test_data/load_balancer_data.csv")
	cfg.SummaryPath = filepath.Join(cfg.OutputDir, "summary.csv")
	cfg.ManifestPath = filepath.Join(cfg.OutputDir, "manifest.json")

	manifest, err := NewDriver(cfg).RunRender()
	require.NoError(t, err)

	require.Len(t, manifest.Charts, len(common.AllCharts))
	require.Empty(t, manifest.Skipped)
	require.Equal(t, 7, manifest.Metrics)
	require.Equal(t, 8, manifest.History)

	for _, kind := range common.AllCharts {
		info, err := os.Stat(chart.FilePath(cfg.OutputDir, kind, "png"))
		require.NoError(t, err, "missing %s", kind)
		require.Greater(t, info.Size(), int64(0))
	}

	_, err = os.Stat(cfg.SummaryPath)
	require.NoError(t, err)
	_, err = os.Stat(cfg.ManifestPath)
	require.NoError(t, err)
}

func TestRunRenderSelectedCharts(t *testing.T) {
	cfg := testConfiguration(t, "test_data/load_balancer_data.csv")
	cfg.Format = "svg"
	cfg.Charts = []string{"heatmap", "distribution"}

	manifest, err := NewDriver(cfg).RunRender()
	require.NoError(t, err)

	require.Len(t, manifest.Charts, 2)
	require.Equal(t, "distribution", manifest.Charts[0].Kind)
	require.True(t, strings.HasSuffix(manifest.Charts[1].Path, "load_heatmap.svg"))
}

func TestRunRenderWideLayout(t *testing.T) {
	cfg := testConfiguration(t, "test_data/server_load_over_time.csv")

	manifest, err := NewDriver(cfg).RunRender()
	require.NoError(t, err)

	require.Equal(t, "wide", manifest.Layout)
	require.Equal(t, []string{"distribution", "boxplot", "dashboard"}, manifest.Skipped)
	require.Len(t, manifest.Charts, 2)
}

func TestRunRenderMissingFile(t *testing.T) {
	cfg := testConfiguration(t, "test_data/nope.csv")

	_, err := NewDriver(cfg).RunRender()
	require.ErrorIs(t, err, trace.ErrFileNotFound)
}

func TestRunSummary(t *testing.T) {
	cfg := testConfiguration(t, "test_data/load_balancer_data.csv")
	cfg.SummaryPath = filepath.Join(t.TempDir(), "summary.csv")

	var out bytes.Buffer
	require.NoError(t, NewDriver(cfg).RunSummary(&out))

	text := out.String()
	require.Contains(t, text, "=== Load Balancing Statistics ===")
	require.Contains(t, text, "Total Requests: 7")
	require.Contains(t, text, "Average Requests per Server: 2.33")
	require.Contains(t, text, "Load Distribution Variance: 0.2222")

	_, err := os.Stat(cfg.SummaryPath)
	require.NoError(t, err)
}

func TestRunSummaryWideLayout(t *testing.T) {
	cfg := testConfiguration(t, "test_data/server_load_over_time.csv")

	var out bytes.Buffer
	require.NoError(t, NewDriver(cfg).RunSummary(&out))
	require.Contains(t, out.String(), "FINAL LOAD")
	require.Contains(t, out.String(), "5.00")
}
