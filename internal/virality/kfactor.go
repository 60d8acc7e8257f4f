// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package virality

import (
	"errors"
	"math"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// Input validation errors.
var (
	// ErrNegativeInput indicates a count or rate that must be non-negative.
	ErrNegativeInput = errors.New("input must be non-negative")

	// ErrInvalidRate indicates a rate outside [0, 1].
	ErrInvalidRate = errors.New("rate must be in [0, 1]")
)

// GrowthType classifies the compounding behavior of a K-factor.
type GrowthType string

// Growth classifications.
const (
	GrowthViral     GrowthType = "viral"     // K > 1.05
	GrowthSustained GrowthType = "sustained" // 0.95 <= K <= 1.05
	GrowthOrganic   GrowthType = "organic"   // K < 0.95
)

// K-factor classification cut points.
const (
	viralThreshold     = 1.05
	sustainedThreshold = 0.95
)

// KFactorResult holds a viral coefficient and its classification.
// DoublingTimeCycles is only defined when K exceeds 1.
type KFactorResult struct {
	KFactor            float64         `json:"k_factor"`
	GrowthType         GrowthType      `json:"growth_type"`
	DoublingTimeCycles *float64        `json:"doubling_time_cycles,omitempty"`
	Platform           tuning.Platform `json:"platform,omitempty"`
	PlatformMultiplier float64         `json:"platform_multiplier,omitempty"`
}

// KFactor computes the viral coefficient from average invitations per viewer
// and the invitation conversion rate (0-1), optionally amplified by a
// platform's virality multiplier. Pass an empty platform to skip the
// multiplier.
func KFactor(invitations, conversionRate float64, p tuning.Platform, snap *tuning.Snapshot) (KFactorResult, error) {
	if invitations < 0 {
		return KFactorResult{}, ErrNegativeInput
	}
	if conversionRate < 0 || conversionRate > 1 {
		return KFactorResult{}, ErrInvalidRate
	}

	k := invitations * conversionRate
	result := KFactorResult{Platform: p}

	if p != "" {
		multiplier, err := snap.ViralityMultiplier(p)
		if err != nil {
			return KFactorResult{}, err
		}
		k *= multiplier
		result.PlatformMultiplier = multiplier
	}

	// Classification and doubling time derive from the rounded coefficient
	// so the reported K never contradicts its own growth type.
	k = round2(k)
	result.KFactor = k
	result.GrowthType = classifyK(k)
	if k > 1 {
		doubling := round2(math.Ln2 / math.Log(k))
		result.DoublingTimeCycles = &doubling
	}
	return result, nil
}

func classifyK(k float64) GrowthType {
	switch {
	case k > viralThreshold:
		return GrowthViral
	case k >= sustainedThreshold:
		return GrowthSustained
	default:
		return GrowthOrganic
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
