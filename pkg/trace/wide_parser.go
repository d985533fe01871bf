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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/eth-easl/lbviz/pkg/common"
)

// ParseWideHistory converts a `time,<server>,<server>,...` table into history
// records, one per (row, server column).
func ParseWideHistory(text string) ([]common.HistoryRecord, error) {
	header, err := readHeader(text)
	if err != nil {
		return nil, fmt.Errorf("wide history table: %w", err)
	}
	if len(header) < 2 || header[0] != common.ColumnWideTime {
		return nil, fmt.Errorf("wide history table: %w %q", ErrMissingColumn, common.ColumnWideTime)
	}

	rows, err := gocsv.CSVToMaps(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parsing wide history table: %w", err)
	}

	servers := header[1:]
	records := make([]common.HistoryRecord, 0, len(rows)*len(servers))

	for i, row := range rows {
		timeStep, err := strconv.ParseFloat(strings.TrimSpace(row[common.ColumnWideTime]), 64)
		if err != nil {
			return nil, fmt.Errorf("wide history row %d: invalid time: %w", i+1, err)
		}
		if math.IsNaN(timeStep) {
			log.Warnf("Skipping wide history row %d: time is NaN", i+1)
			continue
		}

		for _, server := range servers {
			cell := strings.TrimSpace(row[server])
			if cell == "" {
				continue
			}

			load, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("wide history row %d, server %s: %w", i+1, server, err)
			}
			if math.IsNaN(load) {
				continue
			}

			records = append(records, common.HistoryRecord{
				TimeStep: timeStep,
				ServerID: server,
				Load:     load,
			})
		}
	}

	return records, nil
}
