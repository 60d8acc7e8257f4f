// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package risk

import (
	"fmt"
	"math"

	"github.com/creatorpulse/creatorpulse/internal/stability"
	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// minRevenuePoints is the history floor for a revenue volatility score. Two
// revenue points are a difference, not a distribution.
const minRevenuePoints = 3

// extremeCVCeiling is the CV at which the extreme band saturates at 100.
const extremeCVCeiling = 1.0

// Band is a 0-100 risk score band.
type Band string

// Risk bands, mapped from coefficient-of-variation cut points onto
// consecutive 25-point score ranges.
const (
	BandLow     Band = "low"     // score 0-25
	BandMedium  Band = "medium"  // score 25-50
	BandHigh    Band = "high"    // score 50-75
	BandExtreme Band = "extreme" // score 75-100
)

// VolatilityRisk scores revenue dispersion on the 0-100 risk scale.
type VolatilityRisk struct {
	Mean                   float64 `json:"mean"`
	StdDev                 float64 `json:"std_dev"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	RiskScore              float64 `json:"risk_score"` // 0-100
	Band                   Band    `json:"band"`
	SampleSize             int     `json:"sample_size"`
}

// RevenueVolatility computes the coefficient of variation of a monthly
// revenue series (at least three points) and maps it linearly across four
// 25-point risk bands keyed by the registry's volatility cut points. A CV at
// or past 1.0 saturates the extreme band at 100.
func RevenueVolatility(monthlyRevenue []float64, snap *tuning.Snapshot) (VolatilityRisk, error) {
	if len(monthlyRevenue) < minRevenuePoints {
		return VolatilityRisk{}, fmt.Errorf("need %d revenue points, have %d: %w",
			minRevenuePoints, len(monthlyRevenue), stability.ErrInsufficientData)
	}

	v, err := stability.Volatility(monthlyRevenue, snap)
	if err != nil {
		return VolatilityRisk{}, err
	}

	score, band := scoreCV(v.CoefficientOfVariation, snap.Risk.Volatility)

	return VolatilityRisk{
		Mean:                   v.Mean,
		StdDev:                 v.StdDev,
		CoefficientOfVariation: v.CoefficientOfVariation,
		RiskScore:              round1(score),
		Band:                   band,
		SampleSize:             v.SampleSize,
	}, nil
}

// scoreCV interpolates a CV within its band onto the band's 25-point score
// range, so the risk score moves continuously rather than jumping at cut
// points.
func scoreCV(cv float64, bands tuning.VolatilityBands) (float64, Band) {
	switch {
	case cv < bands.Stable:
		return cv / bands.Stable * 25, BandLow
	case cv < bands.Moderate:
		return 25 + (cv-bands.Stable)/(bands.Moderate-bands.Stable)*25, BandMedium
	case cv < bands.Volatile:
		return 50 + (cv-bands.Moderate)/(bands.Volatile-bands.Moderate)*25, BandHigh
	default:
		span := extremeCVCeiling - bands.Volatile
		score := 75 + (cv-bands.Volatile)/span*25
		return math.Min(100, score), BandExtreme
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
