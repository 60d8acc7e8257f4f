// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package virality

import (
	"math"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// CurvePhase labels one phase of the viral view curve.
type CurvePhase string

// View curve phases.
const (
	PhaseGrowth  CurvePhase = "growth"
	PhasePlateau CurvePhase = "plateau"
	PhaseDecline CurvePhase = "decline"
)

// CurvePoint is one day of a projected view curve.
type CurvePoint struct {
	Day   int        `json:"day"`
	Views float64    `json:"views"`
	Phase CurvePhase `json:"phase"`
}

// DecayCurve is a three-phase day-by-day view projection.
type DecayCurve struct {
	Points       []CurvePoint `json:"points"`
	PeakDay      int          `json:"peak_day"`
	PeakViews    float64      `json:"peak_views"`
	HalfLifeDays float64      `json:"half_life_days"` // days from peak to 50% of peak
}

// ViralDecayCurve projects daily views over projectionDays using a
// three-phase model: exponential growth while K exceeds 1 (for the
// registry-configured growth window), a flat plateau at the growth ceiling,
// then exponential decline. Content with K at or below 1 skips straight to
// decline from the initial view level.
func ViralDecayCurve(initialViews, kFactor float64, projectionDays int, snap *tuning.Snapshot) (DecayCurve, error) {
	if initialViews <= 0 {
		return DecayCurve{}, ErrNonPositiveViewers
	}
	if kFactor < 0 {
		return DecayCurve{}, ErrNegativeInput
	}
	if projectionDays <= 0 {
		projectionDays = 30
	}

	growthDays := 0
	plateauDays := 0
	if kFactor > 1 {
		growthDays = snap.Virality.GrowthDays
		plateauDays = snap.Virality.PlateauDays
	}
	declineRate := snap.Virality.DeclineRate

	peak := initialViews * math.Pow(math.Max(kFactor, 1), float64(growthDays))
	plateauEnd := growthDays + plateauDays

	points := make([]CurvePoint, 0, projectionDays+1)
	peakDay := growthDays
	halfLife := 0.0

	for day := 0; day <= projectionDays; day++ {
		var point CurvePoint
		switch {
		case day < growthDays:
			point = CurvePoint{
				Day:   day,
				Views: round1(initialViews * math.Pow(kFactor, float64(day))),
				Phase: PhaseGrowth,
			}
		case day < plateauEnd:
			point = CurvePoint{Day: day, Views: round1(peak), Phase: PhasePlateau}
		default:
			views := peak * math.Exp(-declineRate*float64(day-plateauEnd))
			point = CurvePoint{Day: day, Views: round1(views), Phase: PhaseDecline}
		}

		if halfLife == 0 && day > peakDay && point.Views <= peak/2 {
			halfLife = float64(day - peakDay)
		}
		points = append(points, point)
	}

	if halfLife == 0 {
		// Not reached within the projection window; solve analytically.
		halfLife = float64(plateauEnd-peakDay) + math.Ln2/declineRate
	}

	return DecayCurve{
		Points:       points,
		PeakDay:      peakDay,
		PeakViews:    round1(peak),
		HalfLifeDays: round1(halfLife),
	}, nil
}
