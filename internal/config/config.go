// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads cpmod defaults from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds defaults for command-line flags. Flags given explicitly on
// the command line take precedence.
type Config struct {
	Verbose bool `toml:"verbose"`
	JSON    bool `toml:"json"`
	Quiet   bool `toml:"quiet"`
	DryRun  bool `toml:"dry_run"`
	NoColor bool `toml:"no_color"`
}

// Load reads the config file at path. A missing file, or an empty path,
// yields the zero Config.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}

		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &cfg, nil
}
