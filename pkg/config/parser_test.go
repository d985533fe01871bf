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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth-easl/lbviz/pkg/common"
)

func pathToCmd() string {
	wd, _ := os.Getwd()
	if strings.HasSuffix(wd, "pkg/config") {
		return "../../cmd/"
	}
	return "cmd/"
}

func TestConfigParser(t *testing.T) {
	config, err := ReadConfigurationFile(pathToCmd() + "config.json")
	require.NoError(t, err)

	if config.InputPath != "load_balancer_data.csv" ||
		config.OutputDir != "figs" ||
		config.Format != "png" ||
		config.HistoryMarker != common.HistoryMarker ||
		len(config.Charts) != 5 ||
		config.SizeScale != 1 ||
		config.PreviewLines != 10 {

		t.Error("Unexpected configuration read.")
	}
}

func TestYAMLConfigParser(t *testing.T) {
	config, err := ReadConfigurationFile(pathToCmd() + "config.yaml")
	require.NoError(t, err)

	require.Equal(t, "svg", config.Format)
	require.Equal(t, []common.ChartKind{common.DistributionChart, common.DashboardChart}, config.ChartKinds())
	require.Equal(t, 1.5, config.SizeScale)
	require.Equal(t, common.HistoryMarker, config.HistoryMarker)
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Format": "PDF"}`), 0644))

	config, err := ReadConfigurationFile(path)
	require.NoError(t, err)
	require.Equal(t, "pdf", config.Format)
	require.Equal(t, common.DefaultOutputDir, config.OutputDir)
	require.Len(t, config.ChartKinds(), len(common.AllCharts))
}

func TestInvalidConfiguration(t *testing.T) {
	dir := t.TempDir()

	badChart := filepath.Join(dir, "chart.json")
	require.NoError(t, os.WriteFile(badChart, []byte(`{"Charts": ["pie"]}`), 0644))
	_, err := ReadConfigurationFile(badChart)
	require.Error(t, err)

	badScale := filepath.Join(dir, "scale.yaml")
	require.NoError(t, os.WriteFile(badScale, []byte("SizeScale: -1\n"), 0644))
	_, err = ReadConfigurationFile(badScale)
	require.Error(t, err)

	nanScale := filepath.Join(dir, "nan.yaml")
	require.NoError(t, os.WriteFile(nanScale, []byte("SizeScale: .nan\n"), 0644))
	_, err = ReadConfigurationFile(nanScale)
	require.Error(t, err)

	_, err = ReadConfigurationFile(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigChartsAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Charts: [all]\n"), 0644))

	config, err := ReadConfigurationFile(path)
	require.NoError(t, err)
	require.Equal(t, common.AllCharts, config.ChartKinds())
}
