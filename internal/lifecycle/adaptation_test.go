// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package lifecycle

import (
	"errors"
	"testing"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

func TestAlgorithmAdaptationWellAlignedContent(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	// Matches every YouTube preference: exact length, peak hour, preferred
	// format, trending topics.
	attrs := ContentAttributes{
		Platform:      tuning.PlatformYouTube,
		LengthSeconds: 600,
		PostHour:      18,
		Format:        "video",
		Topics:        []string{"gaming", "tech"},
	}

	got, err := AlgorithmAdaptation(attrs, snap)
	if err != nil {
		t.Fatalf("AlgorithmAdaptation() unexpected error: %v", err)
	}

	if got.LengthScore != 100 {
		t.Errorf("LengthScore = %f, want 100", got.LengthScore)
	}
	if got.TimingScore != 100 {
		t.Errorf("TimingScore = %f, want 100", got.TimingScore)
	}
	if got.FormatScore != 100 {
		t.Errorf("FormatScore = %f, want 100", got.FormatScore)
	}
	if got.TopicScore != 100 {
		t.Errorf("TopicScore = %f, want 100", got.TopicScore)
	}
	if got.Overall != 100 {
		t.Errorf("Overall = %f, want 100", got.Overall)
	}
	if got.LifespanMultiplier != 2.0 {
		t.Errorf("LifespanMultiplier = %f, want 2.0", got.LifespanMultiplier)
	}
	if len(got.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, want none for perfectly aligned content", got.Suggestions)
	}
}

func TestAlgorithmAdaptationMisalignedContent(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	// Wildly off on every factor for TikTok: hour-long off-format content
	// posted in the dead of night on off-trend topics.
	attrs := ContentAttributes{
		Platform:      tuning.PlatformTikTok,
		LengthSeconds: 3_600,
		PostHour:      4,
		Format:        "article",
		Topics:        []string{"quarterly_reports"},
	}

	got, err := AlgorithmAdaptation(attrs, snap)
	if err != nil {
		t.Fatalf("AlgorithmAdaptation() unexpected error: %v", err)
	}

	if got.Overall >= 50 {
		t.Errorf("Overall = %f, want < 50 for misaligned content", got.Overall)
	}
	if got.LifespanMultiplier != 0.7 {
		t.Errorf("LifespanMultiplier = %f, want 0.7", got.LifespanMultiplier)
	}
	if len(got.Suggestions) == 0 {
		t.Error("Suggestions empty, want improvement suggestions for misaligned content")
	}
}

func TestAlgorithmAdaptationTimingWrapAround(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	// Twitch peak hours run to 23:00. Posting at 00:00 is one wrap-around
	// hour away, not 23 hours.
	attrs := ContentAttributes{
		Platform:      tuning.PlatformTwitch,
		LengthSeconds: 7_200,
		PostHour:      0,
		Format:        "live_stream",
	}

	got, err := AlgorithmAdaptation(attrs, snap)
	if err != nil {
		t.Fatalf("AlgorithmAdaptation() unexpected error: %v", err)
	}
	if got.TimingScore != 85 {
		t.Errorf("TimingScore = %f, want 85 (one wrap-around hour from peak)", got.TimingScore)
	}
}

func TestAlgorithmAdaptationMultiplierBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{name: "poor alignment", score: 30, want: 0.7},
		{name: "boundary fifty", score: 50, want: 1.0},
		{name: "adequate", score: 69, want: 1.0},
		{name: "strong midpoint", score: 77.5, want: 1.25},
		{name: "top band midpoint", score: 92.5, want: 1.75},
		{name: "ceiling", score: 100, want: 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := lifespanMultiplier(tt.score); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("lifespanMultiplier(%f) = %f, want %f", tt.score, got, tt.want)
			}
		})
	}
}

func TestAlgorithmAdaptationValidation(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	if _, err := AlgorithmAdaptation(ContentAttributes{
		Platform: tuning.PlatformYouTube, LengthSeconds: 600, PostHour: 24, Format: "video",
	}, snap); !errors.Is(err, ErrInvalidPostHour) {
		t.Errorf("hour 24 error = %v, want ErrInvalidPostHour", err)
	}

	if _, err := AlgorithmAdaptation(ContentAttributes{
		Platform: tuning.Platform("vine"), LengthSeconds: 10, PostHour: 12, Format: "video",
	}, snap); !errors.Is(err, tuning.ErrUnknownPlatform) {
		t.Errorf("unknown platform error = %v, want ErrUnknownPlatform", err)
	}
}

func TestAssessRevitalizationGates(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	tests := []struct {
		name          string
		ct            tuning.ContentType
		engagement    float64
		hours         float64
		wantRevivable bool
	}{
		// Video floor is 12.
		{name: "too fresh", ct: tuning.ContentVideo, engagement: 100, hours: 6, wantRevivable: false},
		{name: "too dead", ct: tuning.ContentVideo, engagement: 5, hours: 200, wantRevivable: false},
		{name: "healthy candidate", ct: tuning.ContentVideo, engagement: 30, hours: 120, wantRevivable: true},
		{name: "barely above dead threshold", ct: tuning.ContentVideo, engagement: 10, hours: 120, wantRevivable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := AssessRevitalization(tt.ct, tt.engagement, tt.hours, snap)
			if err != nil {
				t.Fatalf("AssessRevitalization() unexpected error: %v", err)
			}
			if got.Revivable != tt.wantRevivable {
				t.Errorf("Revivable = %v (reason %q), want %v", got.Revivable, got.Reason, tt.wantRevivable)
			}
			if !tt.wantRevivable {
				if got.Reason == "" {
					t.Error("Reason empty for non-revivable content")
				}
				if got.ProjectedBoost != 1.0 {
					t.Errorf("ProjectedBoost = %f, want 1.0 for non-revivable content", got.ProjectedBoost)
				}
			}
		})
	}
}

func TestAssessRevitalizationScoring(t *testing.T) {
	t.Parallel()

	snap := tuning.Defaults()

	// Video: floor 12, revival multiplier 1.2. Engagement 30 gives ratio 2.5
	// and score 50 * 2.5 * 1.2 = 100 (clamped).
	got, err := AssessRevitalization(tuning.ContentVideo, 30, 120, snap)
	if err != nil {
		t.Fatalf("AssessRevitalization() unexpected error: %v", err)
	}
	if got.Score != 100 {
		t.Errorf("Score = %f, want 100", got.Score)
	}
	if got.ProjectedBoost != 2.0 {
		t.Errorf("ProjectedBoost = %f, want 2.0", got.ProjectedBoost)
	}
	if len(got.RecommendedActions) != 4 {
		t.Errorf("RecommendedActions count = %d, want all 4 at top score", len(got.RecommendedActions))
	}

	// Weak candidate: engagement just above the floor. Score 50 * (13/12) * 1.2 = 65.
	weak, err := AssessRevitalization(tuning.ContentVideo, 13, 120, snap)
	if err != nil {
		t.Fatalf("AssessRevitalization() unexpected error: %v", err)
	}
	if weak.Score >= got.Score {
		t.Errorf("weaker candidate score %f not below stronger %f", weak.Score, got.Score)
	}
	if weak.Score < 0 || weak.Score > 100 {
		t.Errorf("Score = %f, out of [0, 100]", weak.Score)
	}
}
