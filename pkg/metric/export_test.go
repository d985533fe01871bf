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

package metric

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestWriteSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "summary.csv")
	rows := Summarize(testMetrics()).Servers

	require.NoError(t, WriteSummaryCSV(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data),
		"server_id,requests,share_pct,mean_load,std_load,min_load,median_load,max_load"))

	var read []ServerSummary
	require.NoError(t, gocsv.UnmarshalBytes(data, &read))
	require.Len(t, read, 3)
	require.Equal(t, "2", read[2].ServerID)
	require.Equal(t, 2, read[2].Requests)
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")

	manifest := NewManifest("load_balancer_data.csv", "sectioned")
	manifest.AddChart("heatmap", "figs/load_heatmap.png")
	manifest.Skip("boxplot")
	require.NoError(t, WriteManifest(path, manifest))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var read Manifest
	require.NoError(t, json.Unmarshal(data, &read))

	_, err = uuid.Parse(read.RunID)
	require.NoError(t, err)
	require.Equal(t, "load_balancer_data.csv", read.Source)
	require.Equal(t, []RenderedChart{{Kind: "heatmap", Path: "figs/load_heatmap.png"}}, read.Charts)
	require.Equal(t, []string{"boxplot"}, read.Skipped)
}
