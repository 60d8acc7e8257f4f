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

// ErrNonPositiveViewers indicates an initial audience that is not positive.
var ErrNonPositiveViewers = errors.New("initial viewers must be positive")

// loopStopFraction ends the simulation once a cycle brings in fewer new
// viewers than this fraction of the initial audience.
const loopStopFraction = 0.01

// LoopCycle is one sharing cycle of a viral-loop simulation.
type LoopCycle struct {
	Cycle        int     `json:"cycle"`
	NewViewers   float64 `json:"new_viewers"`
	TotalViewers float64 `json:"total_viewers"`
}

// LoopResult is the outcome of a multi-cycle viral-loop simulation.
type LoopResult struct {
	Platform        tuning.Platform `json:"platform"`
	KFactor         float64         `json:"k_factor"`
	Cycles          []LoopCycle     `json:"cycles"`
	TotalViewers    float64         `json:"total_viewers"`
	PeakCycle       int             `json:"peak_cycle"`
	PeakNewViewers  float64         `json:"peak_new_viewers"`
	ReachMultiplier float64         `json:"reach_multiplier"`
	ViralityScore   float64         `json:"virality_score"` // 0-100
}

// ModelViralLoops simulates up to maxCycles sharing cycles. Each cycle's new
// viewers are the previous cycle's new viewers times K, damped by exponential
// momentum decay and, when saturationPoint is positive, by the remaining
// audience fraction (1 - total/saturation). The simulation stops early once a
// cycle yields fewer than 1% of the initial audience.
func ModelViralLoops(
	initialViewers, kFactor float64,
	p tuning.Platform,
	maxCycles int,
	saturationPoint float64,
	snap *tuning.Snapshot,
) (LoopResult, error) {
	if _, err := snap.ViralityMultiplier(p); err != nil {
		return LoopResult{}, err
	}
	if initialViewers <= 0 {
		return LoopResult{}, ErrNonPositiveViewers
	}
	if kFactor < 0 {
		return LoopResult{}, ErrNegativeInput
	}
	if maxCycles <= 0 {
		maxCycles = 10
	}

	momentumDecay := snap.Virality.MomentumDecay

	total := initialViewers
	newViewers := initialViewers
	peakCycle := 0
	peakNew := initialViewers
	cycles := make([]LoopCycle, 0, maxCycles)

	for cycle := 1; cycle <= maxCycles; cycle++ {
		momentum := math.Exp(-momentumDecay * float64(cycle))

		saturation := 1.0
		if saturationPoint > 0 {
			saturation = math.Max(0, 1-total/saturationPoint)
		}

		newViewers = newViewers * kFactor * momentum * saturation
		if newViewers < initialViewers*loopStopFraction {
			break
		}

		total += newViewers
		cycles = append(cycles, LoopCycle{
			Cycle:        cycle,
			NewViewers:   round1(newViewers),
			TotalViewers: round1(total),
		})

		if newViewers > peakNew {
			peakNew = newViewers
			peakCycle = cycle
		}
	}

	multiplier := total / initialViewers

	return LoopResult{
		Platform:        p,
		KFactor:         kFactor,
		Cycles:          cycles,
		TotalViewers:    round1(total),
		PeakCycle:       peakCycle,
		PeakNewViewers:  round1(peakNew),
		ReachMultiplier: round2(multiplier),
		ViralityScore:   round1(viralityScore(multiplier)),
	}, nil
}

// viralityScore maps the reach multiplier onto 0-100: no amplification is 0,
// a 5x total reach saturates the scale.
func viralityScore(reachMultiplier float64) float64 {
	return clampScore((reachMultiplier - 1) * 25)
}
