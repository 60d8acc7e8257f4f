// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package lifecycle

import (
	"errors"
	"math"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// Input validation errors.
var (
	// ErrNonPositiveEngagement indicates an engagement value that must be
	// positive but was not.
	ErrNonPositiveEngagement = errors.New("engagement must be positive")

	// ErrNegativeElapsed indicates a negative elapsed-time argument.
	ErrNegativeElapsed = errors.New("elapsed hours must be non-negative")
)

// floorTolerance is the fraction above the engagement floor within which
// content counts as having reached the floor.
const floorTolerance = 0.1

// decayModel is the shared parameterization behind the forward decay
// projection and the inverse lifespan solve.
type decayModel struct {
	kind  tuning.DecayModel
	rate  float64 // exponential constant (1/h) or linear loss per hour
	floor float64 // absolute engagement floor
}

func newDecayModel(profile tuning.DecayProfile) decayModel {
	return decayModel{kind: profile.Model, rate: profile.HourlyRate, floor: profile.Floor}
}

// engagementAt projects engagement after hours of decay from initial.
//
// Exponential: E(t) = max(floor, initial * e^(-k*t))
// Linear:      E(t) = max(floor, initial - k*t)
func (m decayModel) engagementAt(initial, hours float64) float64 {
	var e float64
	switch m.kind {
	case tuning.DecayLinear:
		e = initial - m.rate*hours
	default:
		e = initial * math.Exp(-m.rate*hours)
	}
	return math.Max(m.floor, e)
}

// hoursToFloor inverts engagementAt: the time for engagement to decay from
// current to the floor. Zero when current is already at or below the floor.
//
// Exponential: t = ln(current/floor) / k
// Linear:      t = (current - floor) / k
func (m decayModel) hoursToFloor(current float64) float64 {
	if current <= m.floor {
		return 0
	}
	switch m.kind {
	case tuning.DecayLinear:
		return (current - m.floor) / m.rate
	default:
		return math.Log(current/m.floor) / m.rate
	}
}

// DecayResult describes the decay state of one content item.
type DecayResult struct {
	ContentType       tuning.ContentType `json:"content_type"`
	Platform          tuning.Platform    `json:"platform"`
	Model             tuning.DecayModel  `json:"model"`
	InitialEngagement float64            `json:"initial_engagement"`
	CurrentEngagement float64            `json:"current_engagement"`
	HourlyRate        float64            `json:"hourly_rate"`
	Floor             float64            `json:"floor"`
	HoursElapsed      float64            `json:"hours_elapsed"`
	PercentDecayed    float64            `json:"percent_decayed"` // 0-100
	FloorReached      bool               `json:"floor_reached"`
}

// CalculateDecay projects the current engagement of a content item from its
// initial engagement and elapsed hours, using the content type's decay
// profile. FloorReached is true once engagement is within 10% of the floor.
func CalculateDecay(
	ct tuning.ContentType,
	p tuning.Platform,
	initialEngagement, hoursElapsed float64,
	snap *tuning.Snapshot,
) (DecayResult, error) {
	// The platform key is validated even though decay rates are keyed by
	// content type, so a bad caller fails here rather than downstream.
	if _, err := snap.Scale(p); err != nil {
		return DecayResult{}, err
	}
	profile, err := snap.DecayProfile(ct)
	if err != nil {
		return DecayResult{}, err
	}
	if initialEngagement <= 0 {
		return DecayResult{}, ErrNonPositiveEngagement
	}
	if hoursElapsed < 0 {
		return DecayResult{}, ErrNegativeElapsed
	}

	model := newDecayModel(profile)
	current := model.engagementAt(initialEngagement, hoursElapsed)

	return DecayResult{
		ContentType:       ct,
		Platform:          p,
		Model:             profile.Model,
		InitialEngagement: initialEngagement,
		CurrentEngagement: round1(current),
		HourlyRate:        profile.HourlyRate,
		Floor:             profile.Floor,
		HoursElapsed:      hoursElapsed,
		PercentDecayed:    round1(percentDecayed(initialEngagement, current, profile.Floor)),
		FloorReached:      current <= profile.Floor*(1+floorTolerance),
	}, nil
}

// percentDecayed measures how far engagement has traveled from initial to the
// floor, clamped to [0, 100]. Content starting at or below the floor counts
// as fully decayed.
func percentDecayed(initial, current, floor float64) float64 {
	span := initial - floor
	if span <= 0 {
		return 100
	}
	return clampScore((initial - current) / span * 100)
}

// LifespanStatus classifies a content item by the fraction of its total
// lifespan already consumed.
type LifespanStatus string

// Lifespan statuses, ordered by elapsed fraction.
const (
	StatusFresh     LifespanStatus = "fresh"     // < 10% elapsed
	StatusPeak      LifespanStatus = "peak"      // < 30%
	StatusDeclining LifespanStatus = "declining" // < 70%
	StatusMature    LifespanStatus = "mature"    // < 95%
	StatusExpired   LifespanStatus = "expired"
)

// LifespanEstimate describes how much useful life a content item has left.
type LifespanEstimate struct {
	ContentType        tuning.ContentType `json:"content_type"`
	Platform           tuning.Platform    `json:"platform"`
	Status             LifespanStatus     `json:"status"`
	CurrentEngagement  float64            `json:"current_engagement"`
	TotalLifespanHours float64            `json:"total_lifespan_hours"`
	RemainingHours     float64            `json:"remaining_hours"`
	TotalLifespanDays  float64            `json:"total_lifespan_days"`
	RemainingDays      float64            `json:"remaining_days"`
	PercentElapsed     float64            `json:"percent_elapsed"` // 0-100
}

// EstimateLifespan inverts the decay model to solve for the time at which
// engagement reaches the floor, and classifies the item's lifecycle status by
// the fraction of that lifespan already elapsed. Content at or below the
// floor reports a fully consumed lifespan.
func EstimateLifespan(
	ct tuning.ContentType,
	p tuning.Platform,
	initialEngagement, hoursElapsed float64,
	snap *tuning.Snapshot,
) (LifespanEstimate, error) {
	if _, err := snap.Scale(p); err != nil {
		return LifespanEstimate{}, err
	}
	profile, err := snap.DecayProfile(ct)
	if err != nil {
		return LifespanEstimate{}, err
	}
	if initialEngagement <= 0 {
		return LifespanEstimate{}, ErrNonPositiveEngagement
	}
	if hoursElapsed < 0 {
		return LifespanEstimate{}, ErrNegativeElapsed
	}

	model := newDecayModel(profile)
	current := model.engagementAt(initialEngagement, hoursElapsed)
	total := model.hoursToFloor(initialEngagement)
	remaining := model.hoursToFloor(current)

	var percentElapsed float64
	switch {
	case total <= 0, current <= profile.Floor:
		percentElapsed = 100
		remaining = 0
	default:
		percentElapsed = clampScore((total - remaining) / total * 100)
	}

	return LifespanEstimate{
		ContentType:        ct,
		Platform:           p,
		Status:             classifyLifespan(percentElapsed),
		CurrentEngagement:  round1(current),
		TotalLifespanHours: round1(total),
		RemainingHours:     round1(remaining),
		TotalLifespanDays:  round1(total / 24),
		RemainingDays:      round1(remaining / 24),
		PercentElapsed:     round1(percentElapsed),
	}, nil
}

func classifyLifespan(percentElapsed float64) LifespanStatus {
	switch {
	case percentElapsed < 10:
		return StatusFresh
	case percentElapsed < 30:
		return StatusPeak
	case percentElapsed < 70:
		return StatusDeclining
	case percentElapsed < 95:
		return StatusMature
	default:
		return StatusExpired
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
