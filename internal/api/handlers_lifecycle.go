// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package api

import (
	"net/http"

	"github.com/creatorpulse/creatorpulse/internal/lifecycle"
	"github.com/creatorpulse/creatorpulse/internal/metrics"
	"github.com/creatorpulse/creatorpulse/internal/tuning"
	"github.com/creatorpulse/creatorpulse/internal/validation"
)

type decayRequest struct {
	ContentType       string  `json:"content_type" validate:"required,content_type"`
	Platform          string  `json:"platform" validate:"required,platform"`
	InitialEngagement float64 `json:"initial_engagement" validate:"gt=0"`
	HoursElapsed      float64 `json:"hours_elapsed" validate:"gte=0"`
}

func handleDecay(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req decayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	ct, _ := tuning.ParseContentType(req.ContentType)
	p, _ := tuning.ParsePlatform(req.Platform)

	result, err := lifecycle.CalculateDecay(ct, p, req.InitialEngagement, req.HoursElapsed, snap)
	metrics.RecordComputation("lifecycle", "calculate_decay", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func handleLifespan(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req decayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	ct, _ := tuning.ParseContentType(req.ContentType)
	p, _ := tuning.ParsePlatform(req.Platform)

	result, err := lifecycle.EstimateLifespan(ct, p, req.InitialEngagement, req.HoursElapsed, snap)
	metrics.RecordComputation("lifecycle", "estimate_lifespan", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type adaptationRequest struct {
	Platform      string   `json:"platform" validate:"required,platform"`
	LengthSeconds float64  `json:"length_seconds" validate:"gt=0"`
	PostHour      int      `json:"post_hour" validate:"gte=0,lte=23"`
	Format        string   `json:"format" validate:"required"`
	Topics        []string `json:"topics,omitempty"`
}

func handleAdaptation(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req adaptationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	p, _ := tuning.ParsePlatform(req.Platform)

	result, err := lifecycle.AlgorithmAdaptation(lifecycle.ContentAttributes{
		Platform:      p,
		LengthSeconds: req.LengthSeconds,
		PostHour:      req.PostHour,
		Format:        req.Format,
		Topics:        req.Topics,
	}, snap)
	metrics.RecordComputation("lifecycle", "algorithm_adaptation", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type revitalizationRequest struct {
	ContentType       string  `json:"content_type" validate:"required,content_type"`
	CurrentEngagement float64 `json:"current_engagement" validate:"gt=0"`
	HoursElapsed      float64 `json:"hours_elapsed" validate:"gte=0"`
}

func handleRevitalization(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req revitalizationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	ct, _ := tuning.ParseContentType(req.ContentType)

	result, err := lifecycle.AssessRevitalization(ct, req.CurrentEngagement, req.HoursElapsed, snap)
	metrics.RecordComputation("lifecycle", "assess_revitalization", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
