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

import "time"

// ServerValues holds one aggregate per server in natural server order. It
// satisfies plotter.Valuer so it can feed bar charts directly.
type ServerValues struct {
	ServerIDs []string
	Values    []float64
}

func (v ServerValues) Len() int {
	return len(v.Values)
}

func (v ServerValues) Value(i int) float64 {
	return v.Values[i]
}

type ServerSamples struct {
	ServerID string
	Values   []float64
}

type ServerSeries struct {
	ServerID  string
	TimeSteps []float64
	Loads     []float64
}

// Grid is the history pivoted to servers x time steps. Loads[r][c] is the load
// of ServerIDs[r] at TimeSteps[c].
type Grid struct {
	ServerIDs []string
	TimeSteps []float64
	Loads     [][]float64
}

type ServerSummary struct {
	ServerID   string  `csv:"server_id"`
	Requests   int     `csv:"requests"`
	SharePct   float64 `csv:"share_pct"`
	MeanLoad   float64 `csv:"mean_load"`
	StdDevLoad float64 `csv:"std_load"`
	MinLoad    float64 `csv:"min_load"`
	MedianLoad float64 `csv:"median_load"`
	MaxLoad    float64 `csv:"max_load"`
}

type Summary struct {
	Servers []ServerSummary

	TotalRequests int
	// AverageRequests and RequestVariance describe how evenly requests were
	// spread; the variance is the population variance of per-server counts.
	AverageRequests float64
	RequestVariance float64
}

type RenderedChart struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
}

type Manifest struct {
	RunID       string          `json:"run_id"`
	Source      string          `json:"source"`
	Layout      string          `json:"layout"`
	GeneratedAt time.Time       `json:"generated_at"`
	Metrics     int             `json:"metrics_records"`
	History     int             `json:"history_records"`
	Charts      []RenderedChart `json:"charts"`
	Skipped     []string        `json:"skipped,omitempty"`
	SummaryPath string          `json:"summary_path,omitempty"`
}
