// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package normalize

import (
	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// derivedReachFraction approximates reach as a fraction of followers when a
// measured reach is not supplied.
const derivedReachFraction = 0.35

// Metrics is one raw per-platform metric snapshot, as supplied by the
// storage layer. Reach and CPM are optional; when zero they are derived from
// followers and revenue/reach.
type Metrics struct {
	Followers      float64 `json:"followers"`
	EngagementRate float64 `json:"engagement_rate"` // percent, 0-100
	MonthlyRevenue float64 `json:"monthly_revenue"` // USD
	Reach          float64 `json:"reach,omitempty"`
	CPM            float64 `json:"cpm,omitempty"`
}

// Weights weights the five normalized sub-scores of a composite score.
type Weights struct {
	Engagement float64 `json:"engagement"`
	Revenue    float64 `json:"revenue"`
	Followers  float64 `json:"followers"`
	Reach      float64 `json:"reach"`
	CPM        float64 `json:"cpm"`
}

// DefaultWeights returns the standard composite weighting. Engagement
// dominates because it signals community health rather than raw size.
func DefaultWeights() Weights {
	return Weights{
		Engagement: 0.30,
		Revenue:    0.25,
		Followers:  0.20,
		Reach:      0.15,
		CPM:        0.10,
	}
}

// SubScores holds every normalized component of a composite score, exposed
// for transparency so callers can explain the overall number.
type SubScores struct {
	Followers  float64 `json:"followers"`
	Engagement float64 `json:"engagement"`
	Revenue    float64 `json:"revenue"`
	Reach      float64 `json:"reach"`
	CPM        float64 `json:"cpm"`
}

// CompositeScore is the unified 0-100 score for one platform snapshot.
type CompositeScore struct {
	Platform           tuning.Platform `json:"platform"`
	Overall            float64         `json:"overall"`
	SubScores          SubScores       `json:"sub_scores"`
	PlatformMultiplier float64         `json:"platform_multiplier"`
}

// Composite normalizes the five metrics, combines them with the given
// weights, applies the platform's revenue multiplier and clamps to [0, 100].
// Zero-value weights fall back to DefaultWeights.
func Composite(m Metrics, p tuning.Platform, w Weights, snap *tuning.Snapshot) (CompositeScore, error) {
	if w == (Weights{}) {
		w = DefaultWeights()
	}

	scale, err := snap.Scale(p)
	if err != nil {
		return CompositeScore{}, err
	}
	mt, err := snap.MonetizationThresholds(p)
	if err != nil {
		return CompositeScore{}, err
	}

	reach := m.Reach
	if reach <= 0 {
		reach = m.Followers * derivedReachFraction
	}
	cpm := m.CPM
	if cpm <= 0 && reach > 0 {
		// Revenue per thousand reached accounts.
		cpm = m.MonthlyRevenue / reach * 1000
	}

	sub := SubScores{
		Followers:  logScale(m.Followers, scale.Followers),
		Engagement: linearScale(m.EngagementRate, scale.Engagement),
		Revenue:    logScale(m.MonthlyRevenue, scale.Revenue),
		Reach:      logScale(reach, scale.Reach),
		CPM:        linearScale(cpm, scale.CPM),
	}

	weighted := sub.Engagement*w.Engagement +
		sub.Revenue*w.Revenue +
		sub.Followers*w.Followers +
		sub.Reach*w.Reach +
		sub.CPM*w.CPM

	overall := clampScore(weighted * mt.RevenueMultiplier)

	return CompositeScore{
		Platform:           p,
		Overall:            round1(overall),
		SubScores:          roundSubScores(sub),
		PlatformMultiplier: mt.RevenueMultiplier,
	}, nil
}

// CrossPlatform returns the arithmetic mean of the overall scores across
// platforms. An empty input yields 0.
func CrossPlatform(scores []CompositeScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s.Overall
	}
	return round1(sum / float64(len(scores)))
}

func roundSubScores(s SubScores) SubScores {
	return SubScores{
		Followers:  round1(s.Followers),
		Engagement: round1(s.Engagement),
		Revenue:    round1(s.Revenue),
		Reach:      round1(s.Reach),
		CPM:        round1(s.CPM),
	}
}
