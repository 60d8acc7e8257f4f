// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package risk

import (
	"errors"
	"fmt"
	"sort"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// ErrNegativeSourceRevenue indicates a revenue source with a negative amount.
var ErrNegativeSourceRevenue = errors.New("source revenue must be non-negative")

// maxHHI is the Herfindahl-Hirschman index of a single-source split.
const maxHHI = 10_000

// Concentration labels how concentrated a revenue split is.
type Concentration string

// Concentration levels, from healthiest to most exposed.
const (
	ConcentrationLow          Concentration = "low"
	ConcentrationModerate     Concentration = "moderate"
	ConcentrationHigh         Concentration = "high"
	ConcentrationMonopolistic Concentration = "monopolistic"
)

// SourceShare is one revenue source's slice of the total.
type SourceShare struct {
	Source   string  `json:"source"`
	Revenue  float64 `json:"revenue"`
	SharePct float64 `json:"share_pct"` // 0-100
}

// Diversification describes revenue-source concentration for one grouping
// axis (platform, stream, audience segment).
type Diversification struct {
	HHI                  float64       `json:"hhi"`                   // 0-10000
	DiversificationScore float64       `json:"diversification_score"` // 0-100, higher is healthier
	Concentration        Concentration `json:"concentration"`
	TopSource            string        `json:"top_source"`
	TopSourcePct         float64       `json:"top_source_pct"`
	EffectiveSources     float64       `json:"effective_sources"`
	Shares               []SourceShare `json:"shares"`
	Recommendations      []string      `json:"recommendations"`
}

// Diversify computes percentage shares, the Herfindahl-Hirschman index over
// those shares, and the diversification score 100 - HHI/100, then bands the
// score against the registry cut points. Shares are reported largest first.
// An empty or all-zero split carries no income and reports the most
// concentrated level for a zero score, so callers always see an in-band
// concentration.
func Diversify(revenueBySource map[string]float64, snap *tuning.Snapshot) (Diversification, error) {
	var total float64
	for source, revenue := range revenueBySource {
		if revenue < 0 {
			return Diversification{}, fmt.Errorf("source %q: %w", source, ErrNegativeSourceRevenue)
		}
		total += revenue
	}
	if total == 0 {
		return Diversification{
			Concentration: classifyConcentration(0, snap.Risk.Diversification),
			Recommendations: []string{
				"no revenue recorded across sources; establish at least one income stream",
			},
		}, nil
	}

	shares := make([]SourceShare, 0, len(revenueBySource))
	var hhi float64
	for source, revenue := range revenueBySource {
		pct := revenue / total * 100
		hhi += pct * pct
		shares = append(shares, SourceShare{
			Source:   source,
			Revenue:  revenue,
			SharePct: round1(pct),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].SharePct != shares[j].SharePct {
			return shares[i].SharePct > shares[j].SharePct
		}
		return shares[i].Source < shares[j].Source
	})

	if hhi > maxHHI {
		hhi = maxHHI
	}

	score := clampScore(100 - hhi/100)
	concentration := classifyConcentration(score, snap.Risk.Diversification)

	d := Diversification{
		HHI:                  round1(hhi),
		DiversificationScore: round1(score),
		Concentration:        concentration,
		TopSource:            shares[0].Source,
		TopSourcePct:         shares[0].SharePct,
		EffectiveSources:     round2(maxHHI / hhi),
		Shares:               shares,
	}
	d.Recommendations = diversificationRecommendations(d, snap.Risk)
	return d, nil
}

func classifyConcentration(score float64, bands tuning.DiversificationBands) Concentration {
	switch {
	case score >= bands.Low:
		return ConcentrationLow
	case score >= bands.Moderate:
		return ConcentrationModerate
	case score >= bands.High:
		return ConcentrationHigh
	default:
		return ConcentrationMonopolistic
	}
}

func diversificationRecommendations(d Diversification, t tuning.RiskThresholds) []string {
	var recs []string
	if d.Concentration == ConcentrationMonopolistic {
		recs = append(recs, fmt.Sprintf(
			"revenue is effectively single-source; diversify away from %s urgently", d.TopSource))
	}
	if d.TopSourcePct > t.MaxSingleSourceShare {
		recs = append(recs, fmt.Sprintf(
			"reduce reliance on %s from %.1f%% to below %.0f%% of revenue",
			d.TopSource, d.TopSourcePct, t.MaxSingleSourceShare))
	}
	if d.EffectiveSources < t.MinEffectiveSources {
		recs = append(recs, fmt.Sprintf(
			"effective source count is %.2f; build toward at least %.0f independent revenue streams",
			d.EffectiveSources, t.MinEffectiveSources))
	}
	return recs
}
