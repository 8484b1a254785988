/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads qrgen's optional YAML defaults file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults a flag may override. Load overlays only the
// fields the YAML file sets onto Defaults(), so the file only needs to list
// what it overrides; a field set explicitly to zero stays zero.
type Config struct {
	ECC    string `yaml:"ecc"`
	Mask   int    `yaml:"mask"`
	Out    string `yaml:"out"`
	Border int    `yaml:"border"`
}

// Defaults returns the built-in configuration applied before any YAML file
// or flag is consulted.
func Defaults() *Config {
	return &Config{
		ECC:    "medium",
		Mask:   0,
		Out:    "svg",
		Border: 4,
	}
}

// Load reads path and overlays it onto Defaults(). A missing file is not an
// error; it just leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
