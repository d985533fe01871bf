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
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/eth-easl/lbviz/pkg/common"
)

// groupLoads collects server_load values per server, keeping request order.
func groupLoads(metrics []common.MetricRecord) ([]string, map[string][]float64) {
	loads := make(map[string][]float64)
	var ids []string

	for _, record := range metrics {
		if _, ok := loads[record.ServerID]; !ok {
			ids = append(ids, record.ServerID)
		}
		loads[record.ServerID] = append(loads[record.ServerID], record.ServerLoad)
	}

	common.SortServerIDs(ids)
	return ids, loads
}

func perServer(metrics []common.MetricRecord, reduce func([]float64) float64) ServerValues {
	ids, loads := groupLoads(metrics)

	result := ServerValues{
		ServerIDs: ids,
		Values:    make([]float64, len(ids)),
	}
	for i, id := range ids {
		result.Values[i] = reduce(loads[id])
	}
	return result
}

func RequestCounts(metrics []common.MetricRecord) ServerValues {
	return perServer(metrics, func(x []float64) float64 {
		return float64(len(x))
	})
}

func MeanLoad(metrics []common.MetricRecord) ServerValues {
	return perServer(metrics, func(x []float64) float64 {
		return stat.Mean(x, nil)
	})
}

func LoadStdDev(metrics []common.MetricRecord) ServerValues {
	return perServer(metrics, stdDev)
}

// stdDev is the sample standard deviation; a single sample has no spread.
func stdDev(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	sd := stat.StdDev(x, nil)
	if math.IsNaN(sd) {
		return 0
	}
	return sd
}

func LoadSamples(metrics []common.MetricRecord) []ServerSamples {
	ids, loads := groupLoads(metrics)

	result := make([]ServerSamples, 0, len(ids))
	for _, id := range ids {
		result = append(result, ServerSamples{ServerID: id, Values: loads[id]})
	}
	return result
}

// LoadSeries splits the history into one time-ordered series per server.
func LoadSeries(history []common.HistoryRecord) []ServerSeries {
	byServer := make(map[string][]common.HistoryRecord)
	var ids []string

	for _, record := range history {
		if _, ok := byServer[record.ServerID]; !ok {
			ids = append(ids, record.ServerID)
		}
		byServer[record.ServerID] = append(byServer[record.ServerID], record)
	}
	common.SortServerIDs(ids)

	result := make([]ServerSeries, 0, len(ids))
	for _, id := range ids {
		records := byServer[id]
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].TimeStep < records[j].TimeStep
		})

		series := ServerSeries{
			ServerID:  id,
			TimeSteps: make([]float64, len(records)),
			Loads:     make([]float64, len(records)),
		}
		for i, r := range records {
			series.TimeSteps[i] = r.TimeStep
			series.Loads[i] = r.Load
		}
		result = append(result, series)
	}

	return result
}

// LoadGrid pivots the history into a server x time step matrix. Missing cells
// are zero and a repeated (server, time step) pair keeps its last load. Records
// with a NaN time step have no column and are left out.
func LoadGrid(history []common.HistoryRecord) *Grid {
	rowOf := make(map[string]int)
	colOf := make(map[float64]int)
	grid := &Grid{}

	for _, record := range history {
		if math.IsNaN(record.TimeStep) {
			continue
		}
		if _, ok := rowOf[record.ServerID]; !ok {
			rowOf[record.ServerID] = 0
			grid.ServerIDs = append(grid.ServerIDs, record.ServerID)
		}
		if _, ok := colOf[record.TimeStep]; !ok {
			colOf[record.TimeStep] = 0
			grid.TimeSteps = append(grid.TimeSteps, record.TimeStep)
		}
	}

	common.SortServerIDs(grid.ServerIDs)
	sort.Float64s(grid.TimeSteps)
	for r, id := range grid.ServerIDs {
		rowOf[id] = r
	}
	for c, ts := range grid.TimeSteps {
		colOf[ts] = c
	}

	grid.Loads = make([][]float64, len(grid.ServerIDs))
	for r := range grid.Loads {
		grid.Loads[r] = make([]float64, len(grid.TimeSteps))
	}
	for _, record := range history {
		if math.IsNaN(record.TimeStep) {
			continue
		}
		grid.Loads[rowOf[record.ServerID]][colOf[record.TimeStep]] = record.Load
	}

	return grid
}

func (g *Grid) Empty() bool {
	return len(g.ServerIDs) == 0 || len(g.TimeSteps) == 0
}

// Range returns the smallest and largest load in the grid.
func (g *Grid) Range() (float64, float64) {
	if g.Empty() {
		return 0, 0
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, row := range g.Loads {
		min = math.Min(min, floats.Min(row))
		max = math.Max(max, floats.Max(row))
	}
	return min, max
}

// median of sorted values; an even count averages the two middle values, as
// the boxplot does.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func Summarize(metrics []common.MetricRecord) Summary {
	ids, loads := groupLoads(metrics)

	summary := Summary{
		Servers:       make([]ServerSummary, 0, len(ids)),
		TotalRequests: len(metrics),
	}
	if len(ids) == 0 {
		return summary
	}

	counts := make([]float64, 0, len(ids))
	for _, id := range ids {
		values := loads[id]
		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)

		summary.Servers = append(summary.Servers, ServerSummary{
			ServerID:   id,
			Requests:   len(values),
			SharePct:   100 * float64(len(values)) / float64(len(metrics)),
			MeanLoad:   stat.Mean(values, nil),
			StdDevLoad: stdDev(values),
			MinLoad:    sorted[0],
			MedianLoad: median(sorted),
			MaxLoad:    sorted[len(sorted)-1],
		})
		counts = append(counts, float64(len(values)))
	}

	summary.AverageRequests = stat.Mean(counts, nil)
	summary.RequestVariance = stat.PopVariance(counts, nil)

	return summary
}
