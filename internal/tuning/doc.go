// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

// Package tuning provides the read-only tuning registry: versioned tables of
// platform scale ranges, engagement benchmarks, monetization thresholds,
// decay profiles, algorithm preferences, risk thresholds and forecasting
// parameters that every engine package reads from.
//
// # Snapshot Semantics
//
// All tables live on an immutable Snapshot value. The process-global registry
// holds the active snapshot behind an atomic pointer, so a configuration
// reload swaps a fully consistent table set and readers never observe a
// partially updated registry.
//
//	snap := tuning.Active()
//	profile, err := snap.Scale(tuning.PlatformYouTube)
//
// # Key Discipline
//
// Lookups are total functions over the fixed platform and content-type key
// sets. An unknown key is a programmer error and returns ErrUnknownPlatform
// or ErrUnknownContentType rather than a guessed default, because every
// downstream formula depends on these ranges being correct for the given key.
//
// # Loading
//
// Defaults are compiled in. An optional YAML overlay (TUNING_CONFIG_PATH or
// tuning.yaml on the default search path) is layered on top via koanf, then
// the merged snapshot is validated before it is published.
package tuning
