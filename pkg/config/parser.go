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

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ReadConfigurationFile decodes a JSON or YAML configuration on top of the
// defaults, so a file only needs the fields it changes.
func ReadConfigurationFile(path string) (VisualizerConfiguration, error) {
	config := DefaultConfiguration()

	byteValue, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading configuration: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(byteValue, &config)
	default:
		err = json.Unmarshal(byteValue, &config)
	}
	if err != nil {
		return config, fmt.Errorf("parsing configuration %s: %w", path, err)
	}

	config.Format = strings.ToLower(config.Format)
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid configuration %s: %w", path, err)
	}

	log.Debugf("Loaded configuration from %s", path)
	return config, nil
}
