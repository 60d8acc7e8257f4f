// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package virality

import (
	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// CascadeLevel is one level of a share→view→share cascade.
type CascadeLevel struct {
	Level  int     `json:"level"`
	Shares float64 `json:"shares"`
	Views  float64 `json:"views"`
}

// ReachEstimate is the projected audience of a sharing cascade.
type ReachEstimate struct {
	Platform   tuning.Platform `json:"platform"`
	TotalReach float64         `json:"total_reach"`
	Levels     []CascadeLevel  `json:"levels"`
	Truncated  bool            `json:"truncated"` // stopped at cascadeDepth with shares still propagating
}

// EstimateViralReach cascades shares into views and views into new shares
// (scaled by the platform's virality multiplier) for up to cascadeDepth
// levels, stopping early once projected shares drop below one. Total reach is
// the sum of views across levels.
func EstimateViralReach(
	initialShares, shareRate, viewsPerShare float64,
	p tuning.Platform,
	cascadeDepth int,
	snap *tuning.Snapshot,
) (ReachEstimate, error) {
	multiplier, err := snap.ViralityMultiplier(p)
	if err != nil {
		return ReachEstimate{}, err
	}
	if initialShares < 0 || viewsPerShare < 0 {
		return ReachEstimate{}, ErrNegativeInput
	}
	if shareRate < 0 || shareRate > 1 {
		return ReachEstimate{}, ErrInvalidRate
	}
	if cascadeDepth <= 0 {
		cascadeDepth = 5
	}

	shares := initialShares
	var totalViews float64
	levels := make([]CascadeLevel, 0, cascadeDepth)

	for level := 1; level <= cascadeDepth; level++ {
		if shares < 1 {
			break
		}

		views := shares * viewsPerShare
		totalViews += views
		levels = append(levels, CascadeLevel{
			Level:  level,
			Shares: round1(shares),
			Views:  round1(views),
		})

		shares = views * shareRate * multiplier
	}

	return ReachEstimate{
		Platform:   p,
		TotalReach: round1(totalViews),
		Levels:     levels,
		Truncated:  len(levels) == cascadeDepth && shares >= 1,
	}, nil
}
