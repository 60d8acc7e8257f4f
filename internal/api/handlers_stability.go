// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package api

import (
	"net/http"

	"github.com/creatorpulse/creatorpulse/internal/metrics"
	"github.com/creatorpulse/creatorpulse/internal/stability"
	"github.com/creatorpulse/creatorpulse/internal/tuning"
	"github.com/creatorpulse/creatorpulse/internal/validation"
)

type volatilityRequest struct {
	Series []float64 `json:"series" validate:"required,min=2"`
}

func handleVolatility(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req volatilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := stability.Volatility(req.Series, snap)
	metrics.RecordComputation("stability", "volatility", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type retentionRequest struct {
	CohortSize   float64  `json:"cohort_size" validate:"gt=0"`
	Day7Active   float64  `json:"day7_active" validate:"gte=0"`
	Day30Active  float64  `json:"day30_active" validate:"gte=0"`
	Day90Active  float64  `json:"day90_active" validate:"gte=0"`
	Day365Active *float64 `json:"day365_active,omitempty"`
}

func handleRetention(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req retentionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := stability.CohortRetention(stability.Cohort{
		CohortSize:   req.CohortSize,
		Day7Active:   req.Day7Active,
		Day30Active:  req.Day30Active,
		Day90Active:  req.Day90Active,
		Day365Active: req.Day365Active,
	}, snap)
	metrics.RecordComputation("stability", "cohort_retention", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type churnForecastRequest struct {
	History []float64 `json:"history" validate:"required,min=1,dive,gte=0,lte=100"`
}

func handleChurnForecast(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req churnForecastRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := stability.ForecastChurn(req.History, snap)
	metrics.RecordComputation("stability", "forecast_churn", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type ltvRequest struct {
	MonthlyRevenue float64   `json:"monthly_revenue" validate:"gte=0"`
	RetentionCurve []float64 `json:"retention_curve"`
	// DiscountRate is optional; omitted means the configured default.
	DiscountRate *float64 `json:"discount_rate,omitempty"`
}

func handleLTV(w http.ResponseWriter, r *http.Request) {
	snap := tuning.Active()

	var req ltvRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	discount := -1.0
	if req.DiscountRate != nil {
		discount = *req.DiscountRate
	}

	result, err := stability.LifetimeValue(req.MonthlyRevenue, req.RetentionCurve, discount, snap)
	metrics.RecordComputation("stability", "lifetime_value", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
