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
	"fmt"
	"io"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"github.com/eth-easl/lbviz/pkg/metric"
	"github.com/eth-easl/lbviz/pkg/trace"
)

// finalLoads maps each server to its load at its last recorded time step.
func finalLoads(export *trace.Export) map[string]float64 {
	result := make(map[string]float64)
	for _, s := range metric.LoadSeries(export.History) {
		if n := len(s.Loads); n > 0 {
			result[s.ServerID] = s.Loads[n-1]
		}
	}
	return result
}

// RunSummary prints the load-balancing statistics of the export to out.
func (d *Driver) RunSummary(out io.Writer) error {
	export, err := d.LoadExport()
	if err != nil {
		return err
	}

	final := finalLoads(export)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(out, "=== Load Balancing Statistics ===")

	if !export.HasMetrics() {
		log.Warnf("%s has no metrics records, only final loads are available", d.Configuration.InputPath)

		fmt.Fprintln(tw, "SERVER\tFINAL LOAD")
		for _, s := range metric.LoadSeries(export.History) {
			fmt.Fprintf(tw, "%s\t%.2f\n", s.ServerID, final[s.ServerID])
		}
		return tw.Flush()
	}

	summary := metric.Summarize(export.Metrics)

	fmt.Fprintln(tw, "SERVER\tREQUESTS\tSHARE\tMEAN LOAD\tSTD LOAD\tMIN\tMEDIAN\tMAX\tFINAL LOAD")
	for _, s := range summary.Servers {
		finalLoad := "-"
		if v, ok := final[s.ServerID]; ok {
			finalLoad = fmt.Sprintf("%.2f", v)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			s.ServerID, s.Requests, s.SharePct, s.MeanLoad, s.StdDevLoad,
			s.MinLoad, s.MedianLoad, s.MaxLoad, finalLoad)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTotal Requests: %d\n", summary.TotalRequests)
	fmt.Fprintf(out, "Average Requests per Server: %.2f\n", summary.AverageRequests)
	fmt.Fprintf(out, "Load Distribution Variance: %.4f\n", summary.RequestVariance)

	if d.Configuration.SummaryPath != "" {
		return metric.WriteSummaryCSV(d.Configuration.SummaryPath, summary.Servers)
	}
	return nil
}
