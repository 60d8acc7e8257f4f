// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package api

import (
	"net/http"

	"github.com/creatorpulse/creatorpulse/internal/metrics"
	"github.com/creatorpulse/creatorpulse/internal/tuning"
	"github.com/creatorpulse/creatorpulse/internal/validation"
	"github.com/creatorpulse/creatorpulse/internal/virality"
)

type kFactorRequest struct {
	Invitations    float64 `json:"invitations" validate:"gte=0"`
	ConversionRate float64 `json:"conversion_rate" validate:"gte=0,lte=1"`
	// Platform is optional; empty skips the platform multiplier.
	Platform string `json:"platform,omitempty" validate:"omitempty,platform"`
}

func handleKFactor(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req kFactorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	var p tuning.Platform
	if req.Platform != "" {
		p, _ = tuning.ParsePlatform(req.Platform)
	}

	result, err := virality.KFactor(req.Invitations, req.ConversionRate, p, snap)
	metrics.RecordComputation("virality", "k_factor", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type viralLoopsRequest struct {
	InitialViewers  float64 `json:"initial_viewers" validate:"gt=0"`
	KFactor         float64 `json:"k_factor" validate:"gte=0"`
	Platform        string  `json:"platform" validate:"required,platform"`
	MaxCycles       int     `json:"max_cycles,omitempty" validate:"gte=0,lte=100"`
	SaturationPoint float64 `json:"saturation_point,omitempty" validate:"gte=0"`
}

func handleViralLoops(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req viralLoopsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	p, _ := tuning.ParsePlatform(req.Platform)

	result, err := virality.ModelViralLoops(req.InitialViewers, req.KFactor, p, req.MaxCycles, req.SaturationPoint, snap)
	metrics.RecordComputation("virality", "model_viral_loops", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type viralReachRequest struct {
	InitialShares float64 `json:"initial_shares" validate:"gte=0"`
	ShareRate     float64 `json:"share_rate" validate:"gte=0,lte=1"`
	ViewsPerShare float64 `json:"views_per_share" validate:"gte=0"`
	Platform      string  `json:"platform" validate:"required,platform"`
	CascadeDepth  int     `json:"cascade_depth,omitempty" validate:"gte=0,lte=50"`
}

func handleViralReach(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req viralReachRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	p, _ := tuning.ParsePlatform(req.Platform)

	result, err := virality.EstimateViralReach(req.InitialShares, req.ShareRate, req.ViewsPerShare, p, req.CascadeDepth, snap)
	metrics.RecordComputation("virality", "estimate_viral_reach", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type decayCurveRequest struct {
	InitialViews   float64 `json:"initial_views" validate:"gt=0"`
	KFactor        float64 `json:"k_factor" validate:"gte=0"`
	ProjectionDays int     `json:"projection_days,omitempty" validate:"gte=0,lte=365"`
}

func handleDecayCurve(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req decayCurveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := virality.ViralDecayCurve(req.InitialViews, req.KFactor, req.ProjectionDays, snap)
	metrics.RecordComputation("virality", "viral_decay_curve", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
