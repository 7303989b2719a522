// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/boxoffice-foundation/boxoffice/lib/config"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{
			name: "minimal",
			args: []string{"-f", "events.txt"},
			want: options{eventFile: "events.txt", port: 2022, timeout: 5, logLevel: "info"},
		},
		{
			name: "long flags",
			args: []string{"--event-file", "events.txt", "--port", "9000", "--timeout", "30"},
			want: options{eventFile: "events.txt", port: 9000, timeout: 30, logLevel: "info"},
		},
		{
			name: "short flags",
			args: []string{"-f", "events.txt", "-p", "9000", "-t", "30"},
			want: options{eventFile: "events.txt", port: 9000, timeout: 30, logLevel: "info"},
		},
		{
			name: "admin socket and log level",
			args: []string{"-f", "events.txt", "--admin-socket", "/run/box.sock", "--log-level", "debug"},
			want: options{eventFile: "events.txt", port: 2022, timeout: 5, adminSocket: "/run/box.sock", logLevel: "debug"},
		},
		{
			name: "version needs nothing else",
			args: []string{"--version"},
			want: options{port: 2022, timeout: 5, logLevel: "info", showVersion: true},
		},
		{name: "missing event file", args: nil, wantErr: true},
		{name: "unknown flag", args: []string{"-f", "e", "--bogus"}, wantErr: true},
		{name: "stray positional", args: []string{"-f", "e", "extra"}, wantErr: true},
		{name: "repeated long flag", args: []string{"--port", "1", "--port", "2", "-f", "e"}, wantErr: true},
		{name: "repeated short flag", args: []string{"-p", "1", "-p", "2", "-f", "e"}, wantErr: true},
		{name: "repeated mixed forms", args: []string{"-p", "1", "--port", "2", "-f", "e"}, wantErr: true},
		{name: "zero timeout", args: []string{"-f", "e", "-t", "0"}, wantErr: true},
		{name: "timeout past int32", args: []string{"-f", "e", "-t", "2147483648"}, wantErr: true},
		{name: "timeout at int32 limit", args: []string{"-f", "e", "-t", "2147483647"},
			want: options{eventFile: "e", port: 2022, timeout: 2147483647, logLevel: "info"}},
		{name: "port out of range", args: []string{"-f", "e", "-p", "65536"}, wantErr: true},
		{name: "invalid log level", args: []string{"-f", "e", "--log-level", "trace"}, wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseArgs(test.args)
			if test.wantErr {
				if err == nil {
					t.Fatalf("parseArgs(%v) succeeded, want error", test.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs(%v) failed: %v", test.args, err)
			}
			if got.eventFile != test.want.eventFile ||
				got.port != test.want.port ||
				got.timeout != test.want.timeout ||
				got.configPath != test.want.configPath ||
				got.adminSocket != test.want.adminSocket ||
				got.logLevel != test.want.logLevel ||
				got.showVersion != test.want.showVersion {
				t.Errorf("parseArgs(%v) = %+v, want %+v", test.args, got, test.want)
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		cfg         config.Config
		wantPort    uint16
		wantTimeout uint32
		wantSocket  string
		wantLevel   string
		wantErr     bool
	}{
		{
			name:        "config fills untouched flags",
			args:        []string{"-f", "e"},
			cfg:         config.Config{Port: 9000, TimeoutSeconds: 60, AdminSocket: "/run/box.sock", LogLevel: "warn"},
			wantPort:    9000,
			wantTimeout: 60,
			wantSocket:  "/run/box.sock",
			wantLevel:   "warn",
		},
		{
			name:        "explicit flags win",
			args:        []string{"-f", "e", "-p", "7777", "-t", "3", "--admin-socket", "/cli.sock", "--log-level", "error"},
			cfg:         config.Config{Port: 9000, TimeoutSeconds: 60, AdminSocket: "/cfg.sock", LogLevel: "warn"},
			wantPort:    7777,
			wantTimeout: 3,
			wantSocket:  "/cli.sock",
			wantLevel:   "error",
		},
		{
			name:        "zero config values leave defaults",
			args:        []string{"-f", "e"},
			cfg:         config.Config{},
			wantPort:    2022,
			wantTimeout: 5,
			wantLevel:   "info",
		},
		{
			name:    "invalid config timeout",
			args:    []string{"-f", "e"},
			cfg:     config.Config{TimeoutSeconds: 1 << 31},
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			opts, err := parseArgs(test.args)
			if err != nil {
				t.Fatalf("parseArgs failed: %v", err)
			}
			err = opts.applyConfig(&test.cfg)
			if test.wantErr {
				if err == nil {
					t.Fatal("applyConfig succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("applyConfig failed: %v", err)
			}
			if opts.port != test.wantPort {
				t.Errorf("port = %d, want %d", opts.port, test.wantPort)
			}
			if opts.timeout != test.wantTimeout {
				t.Errorf("timeout = %d, want %d", opts.timeout, test.wantTimeout)
			}
			if opts.adminSocket != test.wantSocket {
				t.Errorf("admin socket = %q, want %q", opts.adminSocket, test.wantSocket)
			}
			if opts.logLevel != test.wantLevel {
				t.Errorf("log level = %q, want %q", opts.logLevel, test.wantLevel)
			}
		})
	}
}
