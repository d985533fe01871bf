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

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortServerIDs(t *testing.T) {
	ids := []string{"10", "S2", "2", "0", "S1", "1"}
	SortServerIDs(ids)

	if diff := cmp.Diff([]string{"0", "1", "2", "10", "S1", "S2"}, ids); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestShortLabel(t *testing.T) {
	assert.Equal(t, "S3", ShortLabel("3"))
	assert.Equal(t, "S1", ShortLabel("S1"))
	assert.Equal(t, "Server 4", ServerLabel("4"))
}

func TestParseChartKinds(t *testing.T) {
	kinds, err := ParseChartKinds(" heatmap, distribution,,heatmap ")
	require.NoError(t, err)
	require.Equal(t, []ChartKind{HeatmapChart, DistributionChart}, kinds)

	require.Equal(t, []ChartKind{DistributionChart, HeatmapChart}, OrderChartKinds(kinds))

	all, err := ParseChartKinds("all")
	require.NoError(t, err)
	require.Equal(t, AllCharts, all)

	all, err = ParseChartKinds("heatmap,all")
	require.NoError(t, err)
	require.Equal(t, AllCharts, all)

	_, err = ParseChartKinds("distribution,pie")
	require.Error(t, err)

	_, err = ParseChartKinds("all,pie")
	require.Error(t, err)
}

func TestValidators(t *testing.T) {
	require.NoError(t, CheckFormat("PNG"))
	require.NoError(t, CheckFormat("svg"))
	require.Error(t, CheckFormat("gif"))

	require.NoError(t, CheckSizeScale(0.5))
	require.NoError(t, CheckSizeScale(MaxSizeScale))
	require.Error(t, CheckSizeScale(0))
	require.Error(t, CheckSizeScale(-2))
	require.Error(t, CheckSizeScale(math.NaN()))
	require.Error(t, CheckSizeScale(math.Inf(1)))
	require.Error(t, CheckSizeScale(MaxSizeScale+1))

	require.NoError(t, CheckPath(""))
	require.Error(t, CheckPath("does/not/exist.csv"))
}

func TestChartKindRequirements(t *testing.T) {
	assert.True(t, DistributionChart.NeedsMetrics())
	assert.False(t, DistributionChart.NeedsHistory())
	assert.True(t, HeatmapChart.NeedsHistory())
	assert.False(t, HeatmapChart.NeedsMetrics())
	assert.True(t, DashboardChart.NeedsMetrics())
	assert.True(t, DashboardChart.NeedsHistory())
	assert.Equal(t, "load_heatmap", HeatmapChart.FileName())
}
