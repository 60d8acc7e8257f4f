// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package stability

import (
	"errors"
	"math"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// LTV validation errors.
var (
	// ErrNegativeRevenue indicates a negative per-member monthly revenue.
	ErrNegativeRevenue = errors.New("monthly revenue must be non-negative")

	// ErrInvalidDiscount indicates a discount rate outside [0, 1).
	ErrInvalidDiscount = errors.New("discount rate must be in [0, 1)")

	// ErrInvalidRetention indicates a retention figure outside 0-100.
	ErrInvalidRetention = errors.New("retention percentages must be in [0, 100]")
)

// LTVResult is a discounted lifetime-value estimate for one audience member.
type LTVResult struct {
	LifetimeValue   float64   `json:"lifetime_value"`
	MonthlyRevenue  float64   `json:"monthly_revenue"`
	DiscountRate    float64   `json:"discount_rate"`
	Months          int       `json:"months"`
	MonthlyCashflow []float64 `json:"monthly_cashflow"`
}

// LifetimeValue sums monthlyRevenue * retention[m]/100 * (1-discountRate)^m
// over the retention curve. Curve entries are survival percentages (0-100)
// for months 0, 1, 2, ...; month 0 is undiscounted. Pass a negative
// discountRate to use the registry default.
func LifetimeValue(monthlyRevenue float64, retentionCurve []float64, discountRate float64, snap *tuning.Snapshot) (LTVResult, error) {
	if monthlyRevenue < 0 {
		return LTVResult{}, ErrNegativeRevenue
	}
	if discountRate < 0 {
		discountRate = snap.Forecast.LTVDiscountRate
	}
	if discountRate >= 1 {
		return LTVResult{}, ErrInvalidDiscount
	}

	var total float64
	cashflow := make([]float64, 0, len(retentionCurve))
	for m, retention := range retentionCurve {
		if retention < 0 || retention > 100 {
			return LTVResult{}, ErrInvalidRetention
		}
		monthly := monthlyRevenue * (retention / 100) * math.Pow(1-discountRate, float64(m))
		total += monthly
		cashflow = append(cashflow, round2(monthly))
	}

	return LTVResult{
		LifetimeValue:   round2(total),
		MonthlyRevenue:  monthlyRevenue,
		DiscountRate:    discountRate,
		Months:          len(retentionCurve),
		MonthlyCashflow: cashflow,
	}, nil
}
