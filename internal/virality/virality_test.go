// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package virality

import (
	"errors"
	"math"
	"testing"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestKFactorClassification(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	tests := []struct {
		name           string
		invitations    float64
		conversionRate float64
		platform       tuning.Platform
		wantK          float64
		wantType       GrowthType
		wantDoubling   bool
	}{
		{
			// 8 * 0.20 * 1.3 (TikTok multiplier) = 2.08
			name:        "tiktok viral",
			invitations: 8, conversionRate: 0.20, platform: tuning.PlatformTikTok,
			wantK: 2.08, wantType: GrowthViral, wantDoubling: true,
		},
		{
			name:        "exactly one is sustained",
			invitations: 5, conversionRate: 0.20, platform: "",
			wantK: 1.0, wantType: GrowthSustained, wantDoubling: false,
		},
		{
			name:        "just above viral threshold",
			invitations: 10, conversionRate: 0.106, platform: "",
			wantK: 1.06, wantType: GrowthViral, wantDoubling: true,
		},
		{
			name:        "sustained band lower edge",
			invitations: 10, conversionRate: 0.095, platform: "",
			wantK: 0.95, wantType: GrowthSustained, wantDoubling: false,
		},
		{
			// Raw 1.0549 rounds to the reported 1.05, which sits on the
			// sustained side of the boundary. The classification must match
			// the coefficient the caller actually sees.
			name:        "rounds down onto viral boundary",
			invitations: 10.549, conversionRate: 0.10, platform: "",
			wantK: 1.05, wantType: GrowthSustained, wantDoubling: true,
		},
		{
			// Raw 1.004 reports as exactly 1.0, so no doubling time.
			name:        "rounds down to one",
			invitations: 10.04, conversionRate: 0.10, platform: "",
			wantK: 1.0, wantType: GrowthSustained, wantDoubling: false,
		},
		{
			name:        "organic",
			invitations: 2, conversionRate: 0.10, platform: "",
			wantK: 0.2, wantType: GrowthOrganic, wantDoubling: false,
		},
		{
			name:        "zero sharing",
			invitations: 0, conversionRate: 0.5, platform: "",
			wantK: 0, wantType: GrowthOrganic, wantDoubling: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := KFactor(tt.invitations, tt.conversionRate, tt.platform, snap)
			if err != nil {
				t.Fatalf("KFactor() unexpected error: %v", err)
			}
			if !almostEqual(got.KFactor, tt.wantK, 0.005) {
				t.Errorf("KFactor = %f, want %f", got.KFactor, tt.wantK)
			}
			if got.GrowthType != tt.wantType {
				t.Errorf("GrowthType = %q, want %q", got.GrowthType, tt.wantType)
			}
			if tt.wantDoubling && got.DoublingTimeCycles == nil {
				t.Error("DoublingTimeCycles = nil, want defined for K > 1")
			}
			if !tt.wantDoubling && got.DoublingTimeCycles != nil {
				t.Errorf("DoublingTimeCycles = %f, want undefined for K <= 1", *got.DoublingTimeCycles)
			}
		})
	}
}

func TestKFactorDoublingTime(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := KFactor(10, 0.2, "", snap) // K = 2
	if err != nil {
		t.Fatalf("KFactor() unexpected error: %v", err)
	}
	if got.DoublingTimeCycles == nil {
		t.Fatal("DoublingTimeCycles = nil, want defined")
	}
	// ln(2)/ln(2) = 1 cycle.
	if !almostEqual(*got.DoublingTimeCycles, 1.0, 0.005) {
		t.Errorf("DoublingTimeCycles = %f, want 1.0", *got.DoublingTimeCycles)
	}
}

func TestKFactorValidation(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	if _, err := KFactor(-1, 0.2, "", snap); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("negative invitations error = %v, want ErrNegativeInput", err)
	}
	if _, err := KFactor(5, 1.2, "", snap); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("conversion rate 1.2 error = %v, want ErrInvalidRate", err)
	}
	if _, err := KFactor(5, 0.2, tuning.Platform("vine"), snap); !errors.Is(err, tuning.ErrUnknownPlatform) {
		t.Errorf("unknown platform error = %v, want ErrUnknownPlatform", err)
	}
}

func TestModelViralLoopsMomentumPeaksAndFades(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := ModelViralLoops(1_000, 2.0, tuning.PlatformYouTube, 10, 0, snap)
	if err != nil {
		t.Fatalf("ModelViralLoops() unexpected error: %v", err)
	}

	if len(got.Cycles) == 0 {
		t.Fatal("no cycles simulated for K=2")
	}
	if got.TotalViewers <= 1_000 {
		t.Errorf("TotalViewers = %f, want growth beyond the initial 1000", got.TotalViewers)
	}
	if got.PeakCycle == 0 {
		t.Error("PeakCycle = 0, want a later peak under K=2 with momentum decay")
	}
	if got.ViralityScore < 0 || got.ViralityScore > 100 {
		t.Errorf("ViralityScore = %f, out of [0, 100]", got.ViralityScore)
	}

	// Totals must be cumulative and non-decreasing.
	prev := 0.0
	for _, c := range got.Cycles {
		if c.TotalViewers < prev {
			t.Errorf("cycle %d total %f below previous %f", c.Cycle, c.TotalViewers, prev)
		}
		prev = c.TotalViewers
	}
}

func TestModelViralLoopsSaturationCapsReach(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := ModelViralLoops(1_000, 2.0, tuning.PlatformYouTube, 20, 2_000, snap)
	if err != nil {
		t.Fatalf("ModelViralLoops() unexpected error: %v", err)
	}
	if got.TotalViewers > 2_000 {
		t.Errorf("TotalViewers = %f, want capped below the 2000 saturation point", got.TotalViewers)
	}
}

func TestModelViralLoopsLowKStopsEarly(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := ModelViralLoops(1_000, 0.0, tuning.PlatformYouTube, 10, 0, snap)
	if err != nil {
		t.Fatalf("ModelViralLoops() unexpected error: %v", err)
	}
	if len(got.Cycles) != 0 {
		t.Errorf("cycles = %d, want 0 for K=0", len(got.Cycles))
	}
	if got.TotalViewers != 1_000 {
		t.Errorf("TotalViewers = %f, want the initial 1000 only", got.TotalViewers)
	}
	if got.ViralityScore != 0 {
		t.Errorf("ViralityScore = %f, want 0", got.ViralityScore)
	}
}

func TestEstimateViralReachCascade(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := EstimateViralReach(100, 0.1, 50, tuning.PlatformTikTok, 3, snap)
	if err != nil {
		t.Fatalf("EstimateViralReach() unexpected error: %v", err)
	}

	if len(got.Levels) != 3 {
		t.Fatalf("levels = %d, want 3", len(got.Levels))
	}
	// Level 1: 100 shares * 50 views = 5000 views.
	if !almostEqual(got.Levels[0].Views, 5_000, 0.5) {
		t.Errorf("level 1 views = %f, want 5000", got.Levels[0].Views)
	}
	// Level 2 shares: 5000 * 0.1 * 1.3 = 650.
	if !almostEqual(got.Levels[1].Shares, 650, 0.5) {
		t.Errorf("level 2 shares = %f, want 650", got.Levels[1].Shares)
	}
	if !got.Truncated {
		t.Error("Truncated = false, want true while shares keep propagating")
	}

	var sum float64
	for _, l := range got.Levels {
		sum += l.Views
	}
	if !almostEqual(got.TotalReach, sum, 1) {
		t.Errorf("TotalReach = %f, want sum of level views %f", got.TotalReach, sum)
	}
}

func TestEstimateViralReachStopsBelowOneShare(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := EstimateViralReach(100, 0.001, 5, tuning.PlatformYouTube, 10, snap)
	if err != nil {
		t.Fatalf("EstimateViralReach() unexpected error: %v", err)
	}
	if len(got.Levels) != 1 {
		t.Errorf("levels = %d, want 1 when second-level shares drop below 1", len(got.Levels))
	}
	if got.Truncated {
		t.Error("Truncated = true, want false for a naturally exhausted cascade")
	}
}

func TestViralDecayCurvePhases(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := ViralDecayCurve(1_000, 2.0, 14, snap)
	if err != nil {
		t.Fatalf("ViralDecayCurve() unexpected error: %v", err)
	}

	if len(got.Points) != 15 {
		t.Fatalf("points = %d, want 15 (days 0-14)", len(got.Points))
	}

	// Defaults: 3 growth days, 2 plateau days.
	if got.Points[0].Phase != PhaseGrowth {
		t.Errorf("day 0 phase = %q, want growth", got.Points[0].Phase)
	}
	if got.Points[3].Phase != PhasePlateau {
		t.Errorf("day 3 phase = %q, want plateau", got.Points[3].Phase)
	}
	if got.Points[6].Phase != PhaseDecline {
		t.Errorf("day 6 phase = %q, want decline", got.Points[6].Phase)
	}

	// Peak: 1000 * 2^3 = 8000 on day 3.
	if got.PeakDay != 3 {
		t.Errorf("PeakDay = %d, want 3", got.PeakDay)
	}
	if !almostEqual(got.PeakViews, 8_000, 0.5) {
		t.Errorf("PeakViews = %f, want 8000", got.PeakViews)
	}
	if got.HalfLifeDays <= 0 {
		t.Errorf("HalfLifeDays = %f, want positive", got.HalfLifeDays)
	}

	// Decline must be strictly decreasing.
	for i := 7; i < len(got.Points); i++ {
		if got.Points[i].Views >= got.Points[i-1].Views {
			t.Errorf("day %d views %f not below day %d views %f",
				i, got.Points[i].Views, i-1, got.Points[i-1].Views)
		}
	}
}

func TestViralDecayCurveSubViralSkipsGrowth(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	got, err := ViralDecayCurve(5_000, 0.8, 10, snap)
	if err != nil {
		t.Fatalf("ViralDecayCurve() unexpected error: %v", err)
	}

	if got.PeakDay != 0 {
		t.Errorf("PeakDay = %d, want 0 for K <= 1", got.PeakDay)
	}
	if !almostEqual(got.PeakViews, 5_000, 0.5) {
		t.Errorf("PeakViews = %f, want the initial 5000", got.PeakViews)
	}
	if got.Points[0].Phase != PhaseDecline {
		t.Errorf("day 0 phase = %q, want immediate decline", got.Points[0].Phase)
	}
}
