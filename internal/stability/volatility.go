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

// Input validation errors.
var (
	// ErrInsufficientData indicates a series too short for the requested
	// statistic.
	ErrInsufficientData = errors.New("insufficient data points")

	// ErrZeroMean indicates a series whose mean is zero, for which the
	// coefficient of variation is undefined.
	ErrZeroMean = errors.New("series mean is zero")
)

// VolatilityLevel labels a coefficient of variation band.
type VolatilityLevel string

// Volatility bands, from calmest to wildest.
const (
	VolatilityStable         VolatilityLevel = "stable"
	VolatilityModerate       VolatilityLevel = "moderate"
	VolatilityVolatile       VolatilityLevel = "volatile"
	VolatilityHighlyVolatile VolatilityLevel = "highly_volatile"
)

// RiskLabel is the qualitative risk attached to a volatility band.
type RiskLabel string

// Risk labels.
const (
	RiskLow    RiskLabel = "low"
	RiskMedium RiskLabel = "medium"
	RiskHigh   RiskLabel = "high"
)

// VolatilityResult summarizes the dispersion of one engagement series.
type VolatilityResult struct {
	Mean                   float64         `json:"mean"`
	StdDev                 float64         `json:"std_dev"`
	CoefficientOfVariation float64         `json:"coefficient_of_variation"`
	Level                  VolatilityLevel `json:"level"`
	Risk                   RiskLabel       `json:"risk"`
	SampleSize             int             `json:"sample_size"`
}

// Volatility computes mean, population standard deviation and coefficient of
// variation for a series of at least two points, then bands the CV against
// the registry's volatility cut points. A zero-mean series is rejected with
// ErrZeroMean rather than returning an undefined ratio.
func Volatility(series []float64, snap *tuning.Snapshot) (VolatilityResult, error) {
	if len(series) < 2 {
		return VolatilityResult{}, ErrInsufficientData
	}

	mean := meanOf(series)
	if mean == 0 {
		return VolatilityResult{}, ErrZeroMean
	}

	sd := stdDevOf(series, mean)
	cv := math.Abs(sd / mean)
	level, risk := classifyCV(cv, snap.Risk.Volatility)

	return VolatilityResult{
		Mean:                   round2(mean),
		StdDev:                 round2(sd),
		CoefficientOfVariation: round3(cv),
		Level:                  level,
		Risk:                   risk,
		SampleSize:             len(series),
	}, nil
}

func classifyCV(cv float64, bands tuning.VolatilityBands) (VolatilityLevel, RiskLabel) {
	switch {
	case cv < bands.Stable:
		return VolatilityStable, RiskLow
	case cv < bands.Moderate:
		return VolatilityModerate, RiskLow
	case cv < bands.Volatile:
		return VolatilityVolatile, RiskMedium
	default:
		return VolatilityHighlyVolatile, RiskHigh
	}
}

func meanOf(series []float64) float64 {
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// stdDevOf is the population standard deviation around a precomputed mean.
func stdDevOf(series []float64, mean float64) float64 {
	var sumSq float64
	for _, v := range series {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(series)))
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

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
