// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package normalize

import (
	"math"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// Followers normalizes a raw follower count onto 0-100 using the platform's
// follower range and logarithmic scaling.
func Followers(raw float64, p tuning.Platform, snap *tuning.Snapshot) (float64, error) {
	scale, err := snap.Scale(p)
	if err != nil {
		return 0, err
	}
	return logScale(raw, scale.Followers), nil
}

// Reach normalizes a raw reach count onto 0-100 using logarithmic scaling.
func Reach(raw float64, p tuning.Platform, snap *tuning.Snapshot) (float64, error) {
	scale, err := snap.Scale(p)
	if err != nil {
		return 0, err
	}
	return logScale(raw, scale.Reach), nil
}

// Revenue normalizes raw monthly revenue onto 0-100 using logarithmic scaling.
func Revenue(raw float64, p tuning.Platform, snap *tuning.Snapshot) (float64, error) {
	scale, err := snap.Scale(p)
	if err != nil {
		return 0, err
	}
	return logScale(raw, scale.Revenue), nil
}

// Engagement normalizes an engagement rate (percent, 0-100) onto 0-100 using
// linear scaling against the platform's engagement range.
func Engagement(rate float64, p tuning.Platform, snap *tuning.Snapshot) (float64, error) {
	scale, err := snap.Scale(p)
	if err != nil {
		return 0, err
	}
	return linearScale(rate, scale.Engagement), nil
}

// CPM normalizes a CPM value (USD per thousand impressions) onto 0-100 using
// linear scaling against the platform's CPM range.
func CPM(value float64, p tuning.Platform, snap *tuning.Snapshot) (float64, error) {
	scale, err := snap.Scale(p)
	if err != nil {
		return 0, err
	}
	return linearScale(value, scale.CPM), nil
}

// logScale clamps raw into r and maps it onto 0-100 logarithmically:
//
//	score = 100 * (ln(clamped) - ln(min)) / (ln(max) - ln(min))
//
// The clamp guarantees the logarithm argument is positive (range minima are
// validated as positive for log-scaled metrics) and the result bounded.
func logScale(raw float64, r tuning.Range) float64 {
	clamped := clamp(raw, r.Min, r.Max)
	span := math.Log(r.Max) - math.Log(r.Min)
	if span == 0 {
		return 0
	}
	return clampScore(100 * (math.Log(clamped) - math.Log(r.Min)) / span)
}

// linearScale clamps raw into r and maps it onto 0-100 linearly.
func linearScale(raw float64, r tuning.Range) float64 {
	clamped := clamp(raw, r.Min, r.Max)
	span := r.Max - r.Min
	if span == 0 {
		return 0
	}
	return clampScore(100 * (clamped - r.Min) / span)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampScore(v float64) float64 {
	return clamp(v, 0, 100)
}

// round1 rounds to one decimal place for display stability.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
