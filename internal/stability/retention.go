// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package stability

import (
	"errors"
	"fmt"
	"math"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// Cohort validation errors.
var (
	// ErrEmptyCohort indicates a cohort size that is not positive.
	ErrEmptyCohort = errors.New("cohort size must be positive")

	// ErrCountExceedsCohort indicates a retained count larger than the cohort.
	ErrCountExceedsCohort = errors.New("retained count exceeds cohort size")
)

// benchmarkTolerance is the band (retention points) within which a window
// counts as meeting its benchmark rather than beating or missing it.
const benchmarkTolerance = 2.0

// Health-score weights per survivorship window. They sum to 1; when the
// day-365 window is absent the remaining three are rescaled by 1/0.8.
const (
	day7HealthWeight   = 0.2
	day30HealthWeight  = 0.3
	day90HealthWeight  = 0.3
	day365HealthWeight = 0.2
)

// BenchmarkBand positions a window's retention against its benchmark.
type BenchmarkBand string

// Benchmark comparison outcomes.
const (
	BandAbove BenchmarkBand = "above"
	BandAt    BenchmarkBand = "at"
	BandBelow BenchmarkBand = "below"
)

// Cohort holds raw survivorship counts for one acquisition cohort.
// Day365Active is optional; leave it nil when the cohort is too young.
type Cohort struct {
	CohortSize   float64  `json:"cohort_size"`
	Day7Active   float64  `json:"day7_active"`
	Day30Active  float64  `json:"day30_active"`
	Day90Active  float64  `json:"day90_active"`
	Day365Active *float64 `json:"day365_active,omitempty"`
}

// RetentionWindow is the derived retention state of one survivorship window.
type RetentionWindow struct {
	Window        string        `json:"window"` // day7, day30, day90, day365
	RetainedCount float64       `json:"retained_count"`
	RetentionPct  float64       `json:"retention_pct"` // 0-100
	ChurnPct      float64       `json:"churn_pct"`     // 0-100
	BenchmarkPct  float64       `json:"benchmark_pct"`
	Comparison    BenchmarkBand `json:"comparison"`
}

// RetentionReport is the full health assessment of one cohort.
type RetentionReport struct {
	CohortSize  float64           `json:"cohort_size"`
	Windows     []RetentionWindow `json:"windows"`
	HealthScore float64           `json:"health_score"` // 0-100
	Warnings    []string          `json:"warnings"`
}

// CohortRetention converts survivorship counts to retention and churn
// percentages, bands each window against the registry benchmarks with a
// two-point tolerance, and computes a weighted health score where each window
// contributes its weight times min(1, retention/benchmark).
func CohortRetention(c Cohort, snap *tuning.Snapshot) (RetentionReport, error) {
	if c.CohortSize <= 0 {
		return RetentionReport{}, ErrEmptyCohort
	}
	counts := []float64{c.Day7Active, c.Day30Active, c.Day90Active}
	if c.Day365Active != nil {
		counts = append(counts, *c.Day365Active)
	}
	for _, n := range counts {
		if n < 0 || n > c.CohortSize {
			return RetentionReport{}, fmt.Errorf("retained count %g of cohort %g: %w", n, c.CohortSize, ErrCountExceedsCohort)
		}
	}

	b := snap.Retention

	windows := []RetentionWindow{
		retentionWindow("day7", c.Day7Active, c.CohortSize, b.Day7Good),
		retentionWindow("day30", c.Day30Active, c.CohortSize, b.Day30Good),
		retentionWindow("day90", c.Day90Active, c.CohortSize, b.Day90Good),
	}
	weights := []float64{day7HealthWeight, day30HealthWeight, day90HealthWeight}

	if c.Day365Active != nil {
		windows = append(windows, retentionWindow("day365", *c.Day365Active, c.CohortSize, b.Day365Good))
		weights = append(weights, day365HealthWeight)
	} else {
		// Rescale the three remaining weights back to a unit sum.
		scale := 1 / (day7HealthWeight + day30HealthWeight + day90HealthWeight)
		for i := range weights {
			weights[i] *= scale
		}
	}

	var health float64
	for i, w := range windows {
		health += weights[i] * math.Min(1, w.RetentionPct/w.BenchmarkPct) * 100
	}

	return RetentionReport{
		CohortSize:  c.CohortSize,
		Windows:     windows,
		HealthScore: round1(clampScore(health)),
		Warnings:    retentionWarnings(windows, b),
	}, nil
}

func retentionWindow(name string, retained, cohortSize, benchmark float64) RetentionWindow {
	retention := retained / cohortSize * 100
	return RetentionWindow{
		Window:        name,
		RetainedCount: retained,
		RetentionPct:  round1(retention),
		ChurnPct:      round1(100 - retention),
		BenchmarkPct:  benchmark,
		Comparison:    compareToBenchmark(retention, benchmark),
	}
}

func compareToBenchmark(retention, benchmark float64) BenchmarkBand {
	switch {
	case retention >= benchmark+benchmarkTolerance:
		return BandAbove
	case retention >= benchmark-benchmarkTolerance:
		return BandAt
	default:
		return BandBelow
	}
}

func retentionWarnings(windows []RetentionWindow, b tuning.RetentionBenchmarks) []string {
	var warnings []string
	for _, w := range windows {
		if w.Comparison == BandBelow {
			warnings = append(warnings, fmt.Sprintf(
				"%s retention %.1f%% is below the %.1f%% benchmark", w.Window, w.RetentionPct, w.BenchmarkPct))
		}

	}

	// Churn thresholds apply to period-over-period attrition: the share of
	// users retained at one window who are gone by the next. Cumulative
	// window churn (100 - retention) runs much higher even in healthy
	// cohorts and is not held against them.
	for i := 1; i < len(windows); i++ {
		prev, cur := windows[i-1], windows[i]
		if prev.RetainedCount <= 0 {
			continue
		}
		churn := (prev.RetainedCount - cur.RetainedCount) / prev.RetainedCount * 100
		switch {
		case churn > b.ChurnCritical:
			warnings = append(warnings, fmt.Sprintf(
				"%.1f%% of %s users churned by %s, exceeding the critical threshold of %.1f%%",
				churn, prev.Window, cur.Window, b.ChurnCritical))
		case churn > b.ChurnAcceptable:
			warnings = append(warnings, fmt.Sprintf(
				"%.1f%% of %s users churned by %s, exceeding the acceptable threshold of %.1f%%",
				churn, prev.Window, cur.Window, b.ChurnAcceptable))
		}
	}
	return warnings
}
