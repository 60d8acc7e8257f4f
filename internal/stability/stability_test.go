// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package stability

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestVolatilityBands(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	tests := []struct {
		name      string
		series    []float64
		wantCV    float64
		wantLevel VolatilityLevel
		wantRisk  RiskLabel
	}{
		{
			// Stddev ~257.7 over mean 9860.
			name:   "steady revenue",
			series: []float64{9500, 10200, 9800, 10100, 9700},
			wantCV: 0.026, wantLevel: VolatilityStable, wantRisk: RiskLow,
		},
		{
			name:   "zero variance",
			series: []float64{100, 100, 100},
			wantCV: 0, wantLevel: VolatilityStable, wantRisk: RiskLow,
		},
		{
			name:   "moderate swings",
			series: []float64{100, 60},
			wantCV: 0.25, wantLevel: VolatilityModerate, wantRisk: RiskLow,
		},
		{
			name:   "volatile swings",
			series: []float64{100, 40},
			wantCV: 0.429, wantLevel: VolatilityVolatile, wantRisk: RiskMedium,
		},
		{
			name:   "wild swings",
			series: []float64{100, 10},
			wantCV: 0.818, wantLevel: VolatilityHighlyVolatile, wantRisk: RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Volatility(tt.series, snap)
			if err != nil {
				t.Fatalf("Volatility() unexpected error: %v", err)
			}
			if !almostEqual(got.CoefficientOfVariation, tt.wantCV, 0.001) {
				t.Errorf("CV = %f, want %f", got.CoefficientOfVariation, tt.wantCV)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", got.Level, tt.wantLevel)
			}
			if got.Risk != tt.wantRisk {
				t.Errorf("Risk = %q, want %q", got.Risk, tt.wantRisk)
			}
		})
	}
}

func TestVolatilityValidation(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	if _, err := Volatility([]float64{42}, snap); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("single point error = %v, want ErrInsufficientData", err)
	}
	if _, err := Volatility([]float64{-1, 1}, snap); !errors.Is(err, ErrZeroMean) {
		t.Errorf("zero mean error = %v, want ErrZeroMean", err)
	}
}

func TestCohortRetentionHealthy(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := CohortRetention(Cohort{
		CohortSize:  10_000,
		Day7Active:  7_000,
		Day30Active: 5_500,
		Day90Active: 4_000,
	}, snap)
	if err != nil {
		t.Fatalf("CohortRetention() unexpected error: %v", err)
	}

	if len(got.Windows) != 3 {
		t.Fatalf("windows = %d, want 3 without a day-365 count", len(got.Windows))
	}

	wantPct := []float64{70, 55, 40}
	for i, w := range got.Windows {
		if w.RetentionPct != wantPct[i] {
			t.Errorf("%s retention = %f, want %f", w.Window, w.RetentionPct, wantPct[i])
		}
		if w.ChurnPct != 100-wantPct[i] {
			t.Errorf("%s churn = %f, want %f", w.Window, w.ChurnPct, 100-wantPct[i])
		}
		if w.Comparison != BandAbove {
			t.Errorf("%s comparison = %q, want above", w.Window, w.Comparison)
		}
	}

	// Every window tops its benchmark, so each capped ratio contributes 1.
	if got.HealthScore != 100 {
		t.Errorf("HealthScore = %f, want 100", got.HealthScore)
	}
	if len(got.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", got.Warnings)
	}
}

func TestCohortRetentionBelowBenchmark(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := CohortRetention(Cohort{
		CohortSize:  10_000,
		Day7Active:  3_000, // 30% vs 40% benchmark
		Day30Active: 2_000, // 20% vs 25% benchmark
		Day90Active: 1_400, // 14% vs 15% benchmark, within tolerance
	}, snap)
	if err != nil {
		t.Fatalf("CohortRetention() unexpected error: %v", err)
	}

	wantBands := []BenchmarkBand{BandBelow, BandBelow, BandAt}
	for i, w := range got.Windows {
		if w.Comparison != wantBands[i] {
			t.Errorf("%s comparison = %q, want %q", w.Window, w.Comparison, wantBands[i])
		}
	}

	// 0.25*75 + 0.375*80 + 0.375*93.33 with day-365 weight redistributed.
	if !almostEqual(got.HealthScore, 83.8, 0.05) {
		t.Errorf("HealthScore = %f, want 83.8", got.HealthScore)
	}
	if len(got.Warnings) != 2 {
		t.Errorf("Warnings = %v, want 2 below-benchmark warnings", got.Warnings)
	}
}

func TestCohortRetentionDay365Window(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	day365 := 1_000.0
	got, err := CohortRetention(Cohort{
		CohortSize:   10_000,
		Day7Active:   7_000,
		Day30Active:  5_500,
		Day90Active:  4_000,
		Day365Active: &day365,
	}, snap)
	if err != nil {
		t.Fatalf("CohortRetention() unexpected error: %v", err)
	}

	if len(got.Windows) != 4 {
		t.Fatalf("windows = %d, want 4 with a day-365 count", len(got.Windows))
	}
	last := got.Windows[3]
	if last.Window != "day365" || last.RetentionPct != 10 {
		t.Errorf("day365 window = %+v, want 10%% retention", last)
	}
	if got.HealthScore != 100 {
		t.Errorf("HealthScore = %f, want 100", got.HealthScore)
	}
}

func TestCohortRetentionChurnWarnings(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	// 60% of day-7 users gone by day 30, past the 50% critical threshold.
	got, err := CohortRetention(Cohort{
		CohortSize:  10_000,
		Day7Active:  5_000,
		Day30Active: 2_000,
		Day90Active: 1_600,
	}, snap)
	if err != nil {
		t.Fatalf("CohortRetention() unexpected error: %v", err)
	}

	found := false
	for _, w := range got.Warnings {
		if strings.Contains(w, "critical") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, want a critical churn warning", got.Warnings)
	}
}

func TestCohortRetentionValidation(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	if _, err := CohortRetention(Cohort{CohortSize: 0}, snap); !errors.Is(err, ErrEmptyCohort) {
		t.Errorf("zero cohort error = %v, want ErrEmptyCohort", err)
	}
	_, err := CohortRetention(Cohort{CohortSize: 100, Day7Active: 150}, snap)
	if !errors.Is(err, ErrCountExceedsCohort) {
		t.Errorf("oversized count error = %v, want ErrCountExceedsCohort", err)
	}
}

func TestForecastChurn(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	tests := []struct {
		name          string
		history       []float64
		wantForecast  float64
		wantDirection TrendDirection
		wantInRec     string
	}{
		{
			name:    "steady climb stays under thresholds",
			history: []float64{20, 22, 24, 26},
			// Holt tracks the linear series exactly: level 26, trend 2.
			wantForecast:  28,
			wantDirection: TrendWorsening,
			wantInRec:     "trending up",
		},
		{
			name:          "flat series",
			history:       []float64{30, 30, 30, 30},
			wantForecast:  30,
			wantDirection: TrendStable,
			wantInRec:     "acceptable bounds",
		},
		{
			name:          "critical trajectory",
			history:       []float64{45, 50, 55, 60},
			wantForecast:  65,
			wantDirection: TrendWorsening,
			wantInRec:     "critical",
		},
		{
			name:          "recovering",
			history:       []float64{40, 36, 32, 28},
			wantForecast:  24,
			wantDirection: TrendImproving,
			wantInRec:     "acceptable bounds",
		},
		{
			name:          "forecast floor at zero",
			history:       []float64{8, 6, 4, 2},
			wantForecast:  0,
			wantDirection: TrendImproving,
			wantInRec:     "acceptable bounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ForecastChurn(tt.history, snap)
			if err != nil {
				t.Fatalf("ForecastChurn() unexpected error: %v", err)
			}
			if !almostEqual(got.ForecastPct, tt.wantForecast, 0.05) {
				t.Errorf("ForecastPct = %f, want %f", got.ForecastPct, tt.wantForecast)
			}
			if got.TrendDirection != tt.wantDirection {
				t.Errorf("TrendDirection = %q, want %q", got.TrendDirection, tt.wantDirection)
			}
			if !strings.Contains(got.Recommendation, tt.wantInRec) {
				t.Errorf("Recommendation = %q, want it to mention %q", got.Recommendation, tt.wantInRec)
			}
			if got.Confidence < 50 || got.Confidence > 100 {
				t.Errorf("Confidence = %f, out of [50, 100]", got.Confidence)
			}
		})
	}
}

func TestForecastChurnConfidence(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	flat, err := ForecastChurn([]float64{25, 25, 25, 25}, snap)
	if err != nil {
		t.Fatalf("ForecastChurn() unexpected error: %v", err)
	}
	if flat.Confidence != 100 {
		t.Errorf("flat series confidence = %f, want 100", flat.Confidence)
	}

	wild, err := ForecastChurn([]float64{5, 60, 5, 60}, snap)
	if err != nil {
		t.Fatalf("ForecastChurn() unexpected error: %v", err)
	}
	if wild.Confidence != 50 {
		t.Errorf("wild series confidence = %f, want the 50 floor", wild.Confidence)
	}
}

func TestForecastChurnMinHistory(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	_, err := ForecastChurn([]float64{20, 25, 30}, snap)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("short history error = %v, want ErrInsufficientData", err)
	}
}

func TestLifetimeValue(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := LifetimeValue(10, []float64{100, 90, 80}, 0.1, snap)
	if err != nil {
		t.Fatalf("LifetimeValue() unexpected error: %v", err)
	}

	// 10*1.0 + 10*0.9*0.9 + 10*0.8*0.81 = 24.58
	if !almostEqual(got.LifetimeValue, 24.58, 0.005) {
		t.Errorf("LifetimeValue = %f, want 24.58", got.LifetimeValue)
	}
	if got.Months != 3 {
		t.Errorf("Months = %d, want 3", got.Months)
	}
	if !almostEqual(got.MonthlyCashflow[0], 10, 0.005) {
		t.Errorf("month 0 cashflow = %f, want undiscounted 10", got.MonthlyCashflow[0])
	}
}

func TestLifetimeValueDefaultDiscount(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := LifetimeValue(10, []float64{100}, -1, snap)
	if err != nil {
		t.Fatalf("LifetimeValue() unexpected error: %v", err)
	}
	if got.DiscountRate != snap.Forecast.LTVDiscountRate {
		t.Errorf("DiscountRate = %f, want registry default %f",
			got.DiscountRate, snap.Forecast.LTVDiscountRate)
	}
}

func TestLifetimeValueValidation(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	if _, err := LifetimeValue(-5, []float64{100}, 0.05, snap); !errors.Is(err, ErrNegativeRevenue) {
		t.Errorf("negative revenue error = %v, want ErrNegativeRevenue", err)
	}
	if _, err := LifetimeValue(5, []float64{100}, 1, snap); !errors.Is(err, ErrInvalidDiscount) {
		t.Errorf("discount 1.0 error = %v, want ErrInvalidDiscount", err)
	}
	if _, err := LifetimeValue(5, []float64{150}, 0.05, snap); !errors.Is(err, ErrInvalidRetention) {
		t.Errorf("retention 150 error = %v, want ErrInvalidRetention", err)
	}

	got, err := LifetimeValue(5, nil, 0.05, snap)
	if err != nil {
		t.Fatalf("empty curve unexpected error: %v", err)
	}
	if got.LifetimeValue != 0 {
		t.Errorf("empty curve LTV = %f, want 0", got.LifetimeValue)
	}
}
