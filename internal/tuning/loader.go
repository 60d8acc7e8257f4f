// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package tuning

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where the optional tuning overlay is searched,
// in priority order. The first existing file wins.
var DefaultConfigPaths = []string{
	"tuning.yaml",
	"tuning.yml",
	"/etc/creatorpulse/tuning.yaml",
	"/etc/creatorpulse/tuning.yml",
}

// ConfigPathEnvVar overrides the tuning overlay search path.
const ConfigPathEnvVar = "TUNING_CONFIG_PATH"

// Load builds a validated snapshot from the built-in defaults plus the
// optional YAML overlay found on the search path. The returned snapshot is
// not published; call Store to make it the active registry.
func Load() (*Snapshot, error) {
	return LoadFile(findOverlay())
}

// LoadFile builds a validated snapshot from the built-in defaults plus the
// YAML overlay at path. An empty path loads pure defaults.
func LoadFile(path string) (*Snapshot, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load default tuning tables: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load tuning overlay %s: %w", path, err)
		}
	}

	snap := &Snapshot{}
	if err := k.Unmarshal("", snap); err != nil {
		return nil, fmt.Errorf("unmarshal tuning tables: %w", err)
	}

	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Watch re-loads and re-publishes the snapshot whenever the overlay file at
// path changes. A reload that fails validation is reported through onReload
// and the previous snapshot stays active, so readers never observe a
// partially updated or invalid table set.
func Watch(path string, onReload func(*Snapshot, error)) error {
	provider := file.Provider(path)

	return provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			onReload(nil, fmt.Errorf("watch tuning overlay %s: %w", path, err))
			return
		}

		snap, err := LoadFile(path)
		if err != nil {
			onReload(nil, err)
			return
		}
		if err := Store(snap); err != nil {
			onReload(nil, err)
			return
		}
		onReload(snap, nil)
	})
}

// findOverlay locates the tuning overlay file, if any.
func findOverlay() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
