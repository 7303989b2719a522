// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/boxoffice-foundation/boxoffice/booking"
	"github.com/boxoffice-foundation/boxoffice/eventfile"
	"github.com/boxoffice-foundation/boxoffice/lib/clock"
	"github.com/boxoffice-foundation/boxoffice/lib/config"
	"github.com/boxoffice-foundation/boxoffice/lib/version"
	"github.com/boxoffice-foundation/boxoffice/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		return err
	}
	if opts.showVersion {
		fmt.Println(version.Info())
		return nil
	}

	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		if err := opts.applyConfig(cfg); err != nil {
			return err
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(opts.logLevel),
	}))
	slog.SetDefault(logger)

	seeds, digest, err := eventfile.Load(opts.eventFile)
	if err != nil {
		return err
	}
	logger.Info("event file loaded",
		"path", opts.eventFile,
		"events", len(seeds),
		"digest", digest.String())

	catalog := booking.NewCatalog(seeds)
	clk := clock.Real()
	engine := booking.NewEngine(catalog, opts.timeout, clk, logger)
	dispatcher := server.NewDispatcher(engine, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	adminDone := make(chan error, 1)
	if opts.adminSocket != "" {
		admin := server.NewAdminServer(opts.adminSocket, engine, digest, clk, logger)
		go func() {
			adminDone <- admin.Serve(ctx)
		}()
	} else {
		adminDone <- nil
	}

	err = server.ListenAndServe(ctx, opts.port, dispatcher, logger)

	if adminErr := <-adminDone; adminErr != nil && err == nil {
		err = adminErr
	}
	logger.Info("shutdown complete")
	return err
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
