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
	"sort"
	"strconv"
	"strings"
)

func IsStringInList(s string, list []string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

// CompareServerIDs orders numeric IDs by value and places them before
// non-numeric IDs, which are ordered lexicographically.
func CompareServerIDs(a, b string) int {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)

	switch {
	case errA == nil && errB == nil:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return strings.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func SortServerIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		return CompareServerIDs(ids[i], ids[j]) < 0
	})
}

// ServerLabel is the legend entry used by the standalone charts.
func ServerLabel(id string) string {
	return "Server " + id
}

// ShortLabel turns numeric IDs into S<id>; other IDs are already short.
func ShortLabel(id string) string {
	if _, err := strconv.ParseFloat(id, 64); err == nil {
		return "S" + id
	}
	return id
}

// ParseChartKinds splits a comma separated chart list, dropping blanks and
// duplicates while keeping the given order.
func ParseChartKinds(list string) ([]ChartKind, error) {
	var result []ChartKind
	seen := make(map[ChartKind]bool)
	all := false

	for _, part := range strings.Split(list, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if name == "all" {
			all = true
			continue
		}

		kind := ChartKind(name)
		if err := CheckChartKind(kind); err != nil {
			return nil, err
		}
		if !seen[kind] {
			seen[kind] = true
			result = append(result, kind)
		}
	}

	if all {
		return append([]ChartKind(nil), AllCharts...), nil
	}
	return result, nil
}

// OrderChartKinds returns the kinds in rendering order.
func OrderChartKinds(kinds []ChartKind) []ChartKind {
	wanted := make(map[ChartKind]bool, len(kinds))
	for _, k := range kinds {
		wanted[k] = true
	}

	var ordered []ChartKind
	for _, k := range AllCharts {
		if wanted[k] {
			ordered = append(ordered, k)
		}
	}
	return ordered
}
