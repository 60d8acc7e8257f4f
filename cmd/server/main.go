// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

// Command server runs the CreatorPulse HTTP API. It loads service and tuning
// configuration, publishes the tuning registry, and serves the scoring
// engines under a suture supervisor until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/creatorpulse/creatorpulse/internal/api"
	"github.com/creatorpulse/creatorpulse/internal/config"
	"github.com/creatorpulse/creatorpulse/internal/logging"
	"github.com/creatorpulse/creatorpulse/internal/metrics"
	"github.com/creatorpulse/creatorpulse/internal/supervisor"
	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	snap, err := tuning.Load()
	if err != nil {
		return err
	}
	if err := tuning.Store(snap); err != nil {
		return err
	}
	metrics.RecordTuningReload("success")
	logging.Info().Str("version", snap.Version).Msg("tuning tables loaded")

	if cfg.Tuning.Path != "" {
		if err := watchTuning(cfg.Tuning.Path); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := api.NewRouter(&cfg.Server)
	httpServer := supervisor.NewHTTPServer(&cfg.Server, router.Handler())

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(httpServer)

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("starting creatorpulse")

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if unstopped, reportErr := tree.UnstoppedServiceReport(); reportErr == nil && len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("services did not stop within the shutdown timeout")
	}

	logging.Info().Msg("shutdown complete")
	return nil
}

// watchTuning hot-reloads the tuning overlay. Reloads that fail validation
// keep the previous snapshot active.
func watchTuning(path string) error {
	err := tuning.Watch(path, func(snap *tuning.Snapshot, err error) {
		if err != nil {
			metrics.RecordTuningReload("failure")
			logging.Error().Err(err).Msg("tuning reload failed, keeping previous snapshot")
			return
		}
		metrics.RecordTuningReload("success")
		logging.Info().Str("version", snap.Version).Msg("tuning tables reloaded")
	})
	if err != nil {
		return err
	}
	logging.Info().Str("path", path).Msg("watching tuning overlay")
	return nil
}
