// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package api

import (
	"net/http"

	"github.com/creatorpulse/creatorpulse/internal/metrics"
	"github.com/creatorpulse/creatorpulse/internal/risk"
	"github.com/creatorpulse/creatorpulse/internal/tuning"
	"github.com/creatorpulse/creatorpulse/internal/validation"
)

type revenueVolatilityRequest struct {
	MonthlyRevenue []float64 `json:"monthly_revenue" validate:"required,min=3,dive,gte=0"`
}

func handleRevenueVolatility(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req revenueVolatilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := risk.RevenueVolatility(req.MonthlyRevenue, snap)
	metrics.RecordComputation("risk", "revenue_volatility", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type diversificationRequest struct {
	RevenueBySource map[string]float64 `json:"revenue_by_source" validate:"required"`
}

func handleDiversification(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req diversificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := risk.Diversify(req.RevenueBySource, snap)
	metrics.RecordComputation("risk", "diversification", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type assessmentRequest struct {
	MonthlyRevenue  []float64          `json:"monthly_revenue" validate:"required,min=3,dive,gte=0"`
	PlatformRevenue map[string]float64 `json:"platform_revenue" validate:"required"`
	StreamRevenue   map[string]float64 `json:"stream_revenue" validate:"required"`
	// AudienceRevenue is optional; omitted drops the audience axis and
	// rescales the remaining weights.
	AudienceRevenue map[string]float64 `json:"audience_revenue,omitempty"`
}

func (req *assessmentRequest) assess(snap *tuning.Snapshot) (risk.Assessment, error) {
	return risk.Assess(req.MonthlyRevenue, req.PlatformRevenue, req.StreamRevenue, req.AudienceRevenue, snap)
}

func handleAssessment(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req assessmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := req.assess(snap)
	metrics.RecordComputation("risk", "assessment", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type riskForecastRequest struct {
	assessmentRequest
	Baseline      float64 `json:"baseline" validate:"gte=0"`
	MonthlyStdDev float64 `json:"monthly_std_dev" validate:"gte=0"`
}

type riskForecastResponse struct {
	Assessment risk.Assessment       `json:"assessment"`
	Forecast   risk.AdjustedForecast `json:"forecast"`
}

func handleRiskForecast(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req riskForecastRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	assessment, err := req.assess(snap)
	if err != nil {
		metrics.RecordComputation("risk", "adjust_forecast", err)
		writeError(w, r, err)
		return
	}

	forecast, err := risk.AdjustForecast(req.Baseline, assessment, req.MonthlyStdDev, snap)
	metrics.RecordComputation("risk", "adjust_forecast", err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, riskForecastResponse{
		Assessment: assessment,
		Forecast:   forecast,
	})
}
