// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional server configuration file.
//
// Configuration comes from a single YAML file named explicitly with
// --config. There are no fallbacks and no automatic discovery, which
// keeps the effective configuration deterministic and auditable.
// Explicit command-line flags always win over file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds file-supplied defaults for the server. The zero value
// of each field means "not set"; the command line supplies the final
// defaults.
type Config struct {
	// Port is the UDP port to serve on.
	Port uint16 `yaml:"port"`

	// TimeoutSeconds is the reservation deadline window.
	TimeoutSeconds uint32 `yaml:"timeout_seconds"`

	// AdminSocket is the Unix socket path for the admin API. Empty
	// disables the admin socket.
	AdminSocket string `yaml:"admin_socket"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Load reads and validates the config file at path. Unknown keys are
// rejected: a typo should fail loudly, not silently fall back to a
// default.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty file is a valid "all defaults" config.
			return &Config{}, nil
		}
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.LogLevel != "" {
		switch cfg.LogLevel {
		case "debug", "info", "warn", "error":
		default:
			return nil, fmt.Errorf("config file %s: invalid log_level %q", path, cfg.LogLevel)
		}
	}
	return &cfg, nil
}
