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

package trace

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/eth-easl/lbviz/pkg/common"
)

var (
	ErrFileNotFound   = errors.New("export file not found")
	ErrMarkerNotFound = errors.New("history marker not found")
	ErrMissingColumn  = errors.New("missing required column")
	ErrEmptySection   = errors.New("section has no header")
)

type Layout int

const (
	// SectionedLayout is the metrics table followed by the marker and the history table.
	SectionedLayout Layout = iota
	// WideLayout is a history-only `time,<server>,...` table.
	WideLayout
)

func (l Layout) String() string {
	if l == WideLayout {
		return "wide"
	}
	return "sectioned"
}

type Export struct {
	Path   string
	Layout Layout

	Metrics []common.MetricRecord
	History []common.HistoryRecord
}

// ParseError is returned by Load when the file was read but could not be
// split or decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// metricRow and historyRow are the raw table rows. Pointer fields stay nil
// for empty cells so those rows can be told apart from a real zero.
type metricRow struct {
	RequestID  string   `csv:"request_id"`
	ServerID   string   `csv:"server_id"`
	ServerLoad *float64 `csv:"server_load,omitempty"`
	Timestamp  string   `csv:"timestamp"`
}

type historyRow struct {
	TimeStep *float64 `csv:"time_step,omitempty"`
	ServerID string   `csv:"server_id"`
	Load     *float64 `csv:"load,omitempty"`
}

// isNumber reports whether a decoded cell holds a usable value.
func isNumber(v *float64) bool {
	return v != nil && !math.IsNaN(*v)
}

func (e *Export) HasMetrics() bool {
	return len(e.Metrics) > 0
}

func (e *Export) HasHistory() bool {
	return len(e.History) > 0
}

// Load reads the export at path and parses both of its tables.
func Load(path string, marker string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text := string(data)
	log.Debugf("Total lines read: %d", strings.Count(text, "\n"))

	export := &Export{Path: path, Layout: SectionedLayout}

	metricsText, historyText, err := SplitSections(text, marker)
	if errors.Is(err, ErrMarkerNotFound) && isWideHeader(text) {
		log.Debugf("No history marker in %s, reading the wide load-over-time layout", path)

		export.Layout = WideLayout
		if export.History, err = ParseWideHistory(text); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		return export, nil
	} else if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if export.Metrics, err = ParseMetrics(metricsText); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if export.History, err = ParseHistory(historyText); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return export, nil
}

// SplitSections cuts the export at the first line starting with marker. The
// marker line itself belongs to neither section.
func SplitSections(data string, marker string) (string, string, error) {
	if marker == "" {
		marker = common.HistoryMarker
	}

	lines := strings.SplitAfter(data, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, marker) {
			log.Debugf("Split index found at line: %d", i)
			return strings.Join(lines[:i], ""), strings.Join(lines[i+1:], ""), nil
		}
	}

	return "", "", fmt.Errorf("%w: could not find %q", ErrMarkerNotFound, marker)
}

// ParseMetrics decodes the metrics table. Rows without a numeric server_load
// are skipped with a warning.
func ParseMetrics(text string) ([]common.MetricRecord, error) {
	if err := checkHeader(text, common.RequiredMetricsColumns); err != nil {
		return nil, fmt.Errorf("metrics table: %w", err)
	}

	var rows []metricRow
	if err := gocsv.UnmarshalString(text, &rows); err != nil {
		return nil, fmt.Errorf("parsing metrics table: %w", err)
	}

	records := make([]common.MetricRecord, 0, len(rows))
	for i, row := range rows {
		if !isNumber(row.ServerLoad) {
			log.Warnf("Skipping metrics row %d (server %s): no server_load", i+1, row.ServerID)
			continue
		}

		records = append(records, common.MetricRecord{
			RequestID:  row.RequestID,
			ServerID:   row.ServerID,
			ServerLoad: *row.ServerLoad,
			Timestamp:  row.Timestamp,
		})
	}

	return records, nil
}

// ParseHistory decodes the history table. Rows without a numeric time_step or
// load are skipped with a warning.
func ParseHistory(text string) ([]common.HistoryRecord, error) {
	if err := checkHeader(text, common.RequiredHistoryColumns); err != nil {
		return nil, fmt.Errorf("history table: %w", err)
	}

	var rows []historyRow
	if err := gocsv.UnmarshalString(text, &rows); err != nil {
		return nil, fmt.Errorf("parsing history table: %w", err)
	}

	records := make([]common.HistoryRecord, 0, len(rows))
	for i, row := range rows {
		if !isNumber(row.TimeStep) || !isNumber(row.Load) {
			log.Warnf("Skipping history row %d (server %s): missing time_step or load", i+1, row.ServerID)
			continue
		}

		records = append(records, common.HistoryRecord{
			TimeStep: *row.TimeStep,
			ServerID: row.ServerID,
			Load:     *row.Load,
		})
	}

	return records, nil
}

// Preview returns up to n leading lines of the file for error reports.
func Preview(path string, n int) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for len(lines) < n && scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}

	return lines
}

func readHeader(text string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptySection
	} else if err != nil {
		return nil, err
	}

	return header, nil
}

func checkHeader(text string, required []string) error {
	header, err := readHeader(text)
	if err != nil {
		return err
	}

	for _, column := range required {
		if !common.IsStringInList(column, header) {
			return fmt.Errorf("%w %q (header: %s)", ErrMissingColumn, column, strings.Join(header, ","))
		}
	}

	return nil
}

func isWideHeader(text string) bool {
	header, err := readHeader(text)
	return err == nil && len(header) > 1 && header[0] == common.ColumnWideTime
}
