// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package api

import (
	"net/http"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

type healthResponse struct {
	Status        string `json:"status"`
	TuningVersion string `json:"tuning_version,omitempty"`
}

// handleHealthLive reports process liveness. It always succeeds; if this
// handler runs, the process is alive.
func handleHealthLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok"})
}

// handleHealthReady reports readiness along with the version of the tuning
// snapshot requests will be scored against.
func handleHealthReady(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", TuningVersion: tuning.Active().Version})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	handleHealthReady(w, r)
}
