// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "port: 9000\ntimeout_seconds: 60\nadmin_socket: /run/box.sock\nlog_level: debug\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{Port: 9000, TimeoutSeconds: 60, AdminSocket: "/run/box.sock", LogLevel: "debug"}
	if *cfg != want {
		t.Errorf("Load = %+v, want %+v", *cfg, want)
	}
}

func TestLoadPartial(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "port: 9000\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 9000 || cfg.TimeoutSeconds != 0 || cfg.AdminSocket != "" || cfg.LogLevel != "" {
		t.Errorf("Load = %+v, want only port set", *cfg)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("Load of empty file = %+v, want zero config", *cfg)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	if _, err := Load(writeConfig(t, "prot: 9000\n")); err == nil {
		t.Error("Load accepted a misspelled key")
	}
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Parallel()

	if _, err := Load(writeConfig(t, "log_level: verbose\n")); err == nil {
		t.Error("Load accepted an invalid log level")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	if _, err := Load(writeConfig(t, "port: [\n")); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}
