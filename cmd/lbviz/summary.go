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

package main

import (
	"github.com/spf13/cobra"

	"github.com/eth-easl/lbviz/pkg/driver"
)

type summaryOptions struct {
	marker string
	csv    string
}

var summaryOpts summaryOptions

var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Print per-server load balancing statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(args)
		if err != nil {
			return err
		}
		if summaryOpts.marker != "" {
			cfg.HistoryMarker = summaryOpts.marker
		}
		if summaryOpts.csv != "" {
			cfg.SummaryPath = summaryOpts.csv
		}

		if err := driver.NewDriver(&cfg).RunSummary(cmd.OutOrStdout()); err != nil {
			reportParseError(cmd.OutOrStdout(), cfg, err)
			return err
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryOpts.marker, "marker", "", "Line prefix separating metrics from the load history")
	summaryCmd.Flags().StringVar(&summaryOpts.csv, "csv", "", "Also write the statistics to this CSV file")
}
