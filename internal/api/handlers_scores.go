// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package api

import (
	"net/http"

	"github.com/creatorpulse/creatorpulse/internal/metrics"
	"github.com/creatorpulse/creatorpulse/internal/normalize"
	"github.com/creatorpulse/creatorpulse/internal/tuning"
	"github.com/creatorpulse/creatorpulse/internal/validation"
)

type compositeScoreRequest struct {
	Platform       string             `json:"platform" validate:"required,platform"`
	Followers      float64            `json:"followers" validate:"gte=0"`
	EngagementRate float64            `json:"engagement_rate" validate:"gte=0,lte=100"`
	MonthlyRevenue float64            `json:"monthly_revenue" validate:"gte=0"`
	Reach          float64            `json:"reach,omitempty" validate:"gte=0"`
	CPM            float64            `json:"cpm,omitempty" validate:"gte=0"`
	Weights        *normalize.Weights `json:"weights,omitempty"`
}

func (req *compositeScoreRequest) compute(snap *tuning.Snapshot) (normalize.CompositeScore, error) {
	p, err := tuning.ParsePlatform(req.Platform)
	if err != nil {
		return normalize.CompositeScore{}, err
	}
	weights := normalize.Weights{}
	if req.Weights != nil {
		weights = *req.Weights
	}
	return normalize.Composite(normalize.Metrics{
		Followers:      req.Followers,
		EngagementRate: req.EngagementRate,
		MonthlyRevenue: req.MonthlyRevenue,
		Reach:          req.Reach,
		CPM:            req.CPM,
	}, p, weights, snap)
}

func handleCompositeScore(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req compositeScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	score, err := req.compute(snap)
	metrics.RecordComputation("normalize", "composite_score", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, score)
}

type crossPlatformRequest struct {
	Snapshots []compositeScoreRequest `json:"snapshots" validate:"required,min=1,dive"`
}

type crossPlatformResponse struct {
	Overall     float64                    `json:"overall"`
	PerPlatform []normalize.CompositeScore `json:"per_platform"`
}

func handleCrossPlatformScore(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req crossPlatformRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	scores := make([]normalize.CompositeScore, 0, len(req.Snapshots))
	for i := range req.Snapshots {
		score, err := req.Snapshots[i].compute(snap)
		if err != nil {
			metrics.RecordComputation("normalize", "cross_platform_score", err)
			writeError(w, r, err)
			return
		}
		scores = append(scores, score)
	}
	metrics.RecordComputation("normalize", "cross_platform_score", nil)

	writeJSON(w, r, http.StatusOK, crossPlatformResponse{
		Overall:     normalize.CrossPlatform(scores),
		PerPlatform: scores,
	})
}
