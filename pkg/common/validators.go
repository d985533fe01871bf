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
	"fmt"
	"os"
	"strings"
)

func CheckPath(path string) error {
	if path == "" {
		return nil
	}
	_, err := os.Stat(path)
	return err
}

func IsValidFormat(format string) bool {
	return IsStringInList(strings.ToLower(format), ValidFormats)
}

func CheckFormat(format string) error {
	if !IsValidFormat(format) {
		return fmt.Errorf("unsupported output format %q, choose from %v", format, ValidFormats)
	}
	return nil
}

func CheckChartKind(kind ChartKind) error {
	for _, k := range AllCharts {
		if k == kind {
			return nil
		}
	}
	return fmt.Errorf("unknown chart %q, choose from %v", kind, AllCharts)
}

// CheckSizeScale accepts finite scales in (0, MaxSizeScale].
func CheckSizeScale(scale float64) error {
	if !(scale > 0) || scale > MaxSizeScale {
		return fmt.Errorf("size scale must be in (0, %g], got %g", MaxSizeScale, scale)
	}
	return nil
}
