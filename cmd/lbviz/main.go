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
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eth-easl/lbviz/pkg/config"
	"github.com/eth-easl/lbviz/pkg/trace"
)

var (
	configPath string
	verbosity  string
)

var rootCmd = &cobra.Command{
	Use:   "lbviz",
	Short: "Render charts from a round-robin load balancer simulation export",
	Long: `lbviz reads the CSV written by the load balancer simulation: per-request
metrics, the "# Server Load History" marker line, then the per-timestep load
history. It renders request distribution, load timeline, heatmap, boxplot and a
summary dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&verbosity, "verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(summaryCmd)
}

func setupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfiguration reads --config when given and applies the positional
// input file on top of it.
func loadConfiguration(args []string) (config.VisualizerConfiguration, error) {
	cfg := config.DefaultConfiguration()
	if configPath != "" {
		var err error
		if cfg, err = config.ReadConfigurationFile(configPath); err != nil {
			return cfg, err
		}
	}

	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	return cfg, nil
}

// reportParseError shows the head of the file when it could be read but not
// split or parsed. Other failures, such as an unwritable output directory, say
// nothing about the input and get no preview.
func reportParseError(out io.Writer, cfg config.VisualizerConfiguration, err error) {
	var parseErr *trace.ParseError
	if !errors.As(err, &parseErr) {
		return
	}

	lines := trace.Preview(cfg.InputPath, cfg.PreviewLines)
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(out, "\nFirst %d lines of the file:\n", len(lines))
	for i, line := range lines {
		fmt.Fprintf(out, "  Line %d: %s\n", i, line)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
