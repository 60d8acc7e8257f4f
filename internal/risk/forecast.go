// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package risk

import (
	"errors"
	"math"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// Forecast input errors.
var (
	// ErrNegativeBaseline indicates a negative baseline revenue.
	ErrNegativeBaseline = errors.New("baseline revenue must be non-negative")

	// ErrNegativeStdDev indicates a negative standard deviation.
	ErrNegativeStdDev = errors.New("standard deviation must be non-negative")
)

// Discount surcharges and ceiling for the risk-adjusted forecast.
const (
	extremeVolatilitySurcharge = 10.0
	monopolisticSurcharge      = 15.0
	maxDiscountPct             = 50.0
)

// AdjustedForecast is a risk-discounted revenue projection with a confidence
// interval.
type AdjustedForecast struct {
	Baseline         float64 `json:"baseline"`
	DiscountPct      float64 `json:"discount_pct"` // 0-50
	AdjustedForecast float64 `json:"adjusted_forecast"`
	ConfidenceLower  float64 `json:"confidence_lower"`
	ConfidenceUpper  float64 `json:"confidence_upper"`
}

// AdjustForecast discounts a baseline revenue forecast by the assessment's
// overall risk score, with surcharges for extreme volatility and a
// monopolistic platform split, capped at 50%. The confidence interval is the
// adjusted forecast plus or minus the registry z-score times monthlyStdDev,
// with the lower bound floored at zero.
func AdjustForecast(baseline float64, a Assessment, monthlyStdDev float64, snap *tuning.Snapshot) (AdjustedForecast, error) {
	if baseline < 0 {
		return AdjustedForecast{}, ErrNegativeBaseline
	}
	if monthlyStdDev < 0 {
		return AdjustedForecast{}, ErrNegativeStdDev
	}

	discount := a.OverallRiskScore
	if a.Volatility.Band == BandExtreme {
		discount += extremeVolatilitySurcharge
	}
	if a.Platform.Concentration == ConcentrationMonopolistic {
		discount += monopolisticSurcharge
	}
	discount = math.Min(discount, maxDiscountPct)

	adjusted := baseline * (1 - discount/100)
	margin := snap.Forecast.ConfidenceZ * monthlyStdDev

	return AdjustedForecast{
		Baseline:         baseline,
		DiscountPct:      round1(discount),
		AdjustedForecast: round2(adjusted),
		ConfidenceLower:  round2(math.Max(0, adjusted-margin)),
		ConfidenceUpper:  round2(adjusted + margin),
	}, nil
}
