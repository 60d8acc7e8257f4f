// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package stability

import (
	"fmt"
	"math"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// Trend direction thresholds: a smoothed trend term within this band of zero
// counts as stable.
const trendStableBand = 0.5

// confidenceWindow is how many trailing points feed the confidence estimate.
const confidenceWindow = 4

// TrendDirection labels where a churn series is heading.
type TrendDirection string

// Trend directions. Churn going down is improving.
const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendWorsening TrendDirection = "worsening"
)

// ChurnForecast is a one-period-ahead churn projection.
type ChurnForecast struct {
	ForecastPct    float64        `json:"forecast_pct"` // 0-100
	Level          float64        `json:"level"`
	Trend          float64        `json:"trend"`
	TrendDirection TrendDirection `json:"trend_direction"`
	Confidence     float64        `json:"confidence"` // 50-100
	Recommendation string         `json:"recommendation"`
}

// ForecastChurn runs double exponential smoothing (Holt) over a history of
// monthly churn percentages and forecasts the next period as level plus
// trend, clamped to 0-100. Confidence falls with recent variance but never
// below 50. History shorter than the registry minimum is rejected.
func ForecastChurn(history []float64, snap *tuning.Snapshot) (ChurnForecast, error) {
	minHistory := snap.Forecast.MinHistory
	if len(history) < minHistory {
		return ChurnForecast{}, fmt.Errorf("need %d churn points, have %d: %w",
			minHistory, len(history), ErrInsufficientData)
	}

	alpha := snap.Forecast.LevelSmoothing
	beta := snap.Forecast.TrendSmoothing

	level := history[0]
	trend := history[1] - history[0]
	for _, x := range history[1:] {
		prevLevel := level
		level = alpha*x + (1-alpha)*(level+trend)
		trend = beta*(level-prevLevel) + (1-beta)*trend
	}

	forecast := clampScore(level + trend)
	direction := classifyTrend(trend)
	confidence := forecastConfidence(history)

	return ChurnForecast{
		ForecastPct:    round1(forecast),
		Level:          round2(level),
		Trend:          round2(trend),
		TrendDirection: direction,
		Confidence:     round1(confidence),
		Recommendation: churnRecommendation(forecast, direction, snap.Retention),
	}, nil
}

func classifyTrend(trend float64) TrendDirection {
	switch {
	case trend > trendStableBand:
		return TrendWorsening
	case trend < -trendStableBand:
		return TrendImproving
	default:
		return TrendStable
	}
}

// forecastConfidence shrinks with the dispersion of the trailing window. A
// flat recent series yields 100; heavy swings bottom out at 50.
func forecastConfidence(history []float64) float64 {
	start := len(history) - confidenceWindow
	if start < 0 {
		start = 0
	}
	recent := history[start:]

	mean := meanOf(recent)
	sd := stdDevOf(recent, mean)
	return math.Max(50, 100-sd*2)
}

func churnRecommendation(forecast float64, direction TrendDirection, b tuning.RetentionBenchmarks) string {
	switch {
	case forecast >= b.ChurnCritical:
		return fmt.Sprintf("projected churn %.1f%% is at critical levels; "+
			"pause acquisition spend and run win-back campaigns immediately", forecast)
	case forecast >= b.ChurnAcceptable:
		return fmt.Sprintf("projected churn %.1f%% exceeds the acceptable ceiling; "+
			"prioritize re-engagement of lapsing segments this period", forecast)
	case direction == TrendWorsening:
		return "churn is within bounds but trending up; review recent content and cadence changes"
	default:
		return "churn is within acceptable bounds; maintain current retention strategy"
	}
}
