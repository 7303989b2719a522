// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"

	"github.com/boxoffice-foundation/boxoffice/lib/config"
)

const (
	defaultPort    uint16 = 2022
	defaultTimeout uint32 = 5
)

// options carries the parsed command line. Flag values are resolved
// against the optional config file by applyConfig before use.
type options struct {
	eventFile   string
	port        uint16
	timeout     uint32
	configPath  string
	adminSocket string
	logLevel    string
	showVersion bool

	flagSet *pflag.FlagSet
}

// shorthands maps single-letter flags to their long names for
// repeated-flag detection.
var shorthands = map[byte]string{
	'f': "event-file",
	'p': "port",
	't': "timeout",
}

// parseArgs parses the argument vector (without the program name).
// Unknown flags, repeated flags, stray positional arguments, a
// missing -f, or an out-of-range timeout are all fatal.
func parseArgs(args []string) (*options, error) {
	if err := rejectRepeatedFlags(args); err != nil {
		return nil, err
	}

	opts := &options{}
	flagSet := pflag.NewFlagSet("boxoffice-server", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.eventFile, "event-file", "f", "", "event description file (required)")
	flagSet.Uint16VarP(&opts.port, "port", "p", defaultPort, "UDP port to serve on")
	flagSet.Uint32VarP(&opts.timeout, "timeout", "t", defaultTimeout, "reservation timeout in seconds")
	flagSet.StringVar(&opts.configPath, "config", "", "optional YAML config file")
	flagSet.StringVar(&opts.adminSocket, "admin-socket", "", "Unix socket path for the admin API")
	flagSet.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version information and exit")
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	opts.flagSet = flagSet

	if flagSet.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}
	if opts.showVersion {
		return opts, nil
	}
	if opts.eventFile == "" {
		return nil, fmt.Errorf("-f is required")
	}
	if err := validateTimeout(opts.timeout); err != nil {
		return nil, err
	}
	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", opts.logLevel)
	}
	return opts, nil
}

func validateTimeout(timeout uint32) error {
	if timeout == 0 || timeout > math.MaxInt32 {
		return fmt.Errorf("timeout must be a positive 32-bit integer, got %d", timeout)
	}
	return nil
}

// rejectRepeatedFlags refuses an argument vector that names any flag
// more than once. pflag itself is last-wins on repeats, which would
// silently discard an operator's earlier value.
func rejectRepeatedFlags(args []string) error {
	seen := make(map[string]int)
	for _, arg := range args {
		var name string
		switch {
		case strings.HasPrefix(arg, "--") && len(arg) > 2:
			name, _, _ = strings.Cut(arg[2:], "=")
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			long, ok := shorthands[arg[1]]
			if !ok {
				// Unknown shorthand; pflag reports it.
				continue
			}
			name = long
		default:
			continue
		}
		seen[name]++
		if seen[name] > 1 {
			return fmt.Errorf("flag --%s given more than once", name)
		}
	}
	return nil
}

// applyConfig fills in values from the config file for every flag the
// command line left untouched. Explicit flags always win.
func (o *options) applyConfig(cfg *config.Config) error {
	if !o.flagSet.Changed("port") && cfg.Port != 0 {
		o.port = cfg.Port
	}
	if !o.flagSet.Changed("timeout") && cfg.TimeoutSeconds != 0 {
		if err := validateTimeout(cfg.TimeoutSeconds); err != nil {
			return err
		}
		o.timeout = cfg.TimeoutSeconds
	}
	if !o.flagSet.Changed("admin-socket") && cfg.AdminSocket != "" {
		o.adminSocket = cfg.AdminSocket
	}
	if !o.flagSet.Changed("log-level") && cfg.LogLevel != "" {
		o.logLevel = cfg.LogLevel
	}
	return nil
}
