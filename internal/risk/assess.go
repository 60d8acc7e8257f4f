// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package risk

import (
	"fmt"
	"sort"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// actionRiskFloor is the axis risk score above which a remediation action is
// surfaced.
const actionRiskFloor = 40.0

// lowSustainabilityFloor triggers the overall sustainability warning.
const lowSustainabilityFloor = 40.0

// Level bands an overall risk score.
type Level string

// Overall risk levels.
const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// Axis is one weighted contributor to the overall risk score.
type Axis struct {
	Name         string  `json:"name"` // volatility, platform, stream, audience
	RiskScore    float64 `json:"risk_score"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"` // risk score times weight
}

// Assessment is the composite monetization sustainability verdict.
type Assessment struct {
	OverallRiskScore    float64 `json:"overall_risk_score"`   // 0-100
	SustainabilityScore float64 `json:"sustainability_score"` // 100 - overall risk
	RiskLevel           Level   `json:"risk_level"`

	Volatility VolatilityRisk   `json:"volatility"`
	Platform   Diversification  `json:"platform"`
	Stream     Diversification  `json:"stream"`
	Audience   *Diversification `json:"audience,omitempty"`

	Axes     []Axis   `json:"axes"`
	Warnings []string `json:"warnings"`
	Actions  []string `json:"actions"`
}

// Assess combines revenue volatility with platform, stream and (optionally)
// audience concentration into one weighted risk score. Pass a nil
// audienceRevenue map to skip that axis; its weight is then redistributed
// proportionally across the other three. Actions are ranked by each axis's
// weighted contribution and only surfaced for axes whose risk exceeds 40.
func Assess(
	monthlyRevenue []float64,
	platformRevenue, streamRevenue map[string]float64,
	audienceRevenue map[string]float64,
	snap *tuning.Snapshot,
) (Assessment, error) {
	volatility, err := RevenueVolatility(monthlyRevenue, snap)
	if err != nil {
		return Assessment{}, fmt.Errorf("revenue volatility: %w", err)
	}
	platform, err := Diversify(platformRevenue, snap)
	if err != nil {
		return Assessment{}, fmt.Errorf("platform diversification: %w", err)
	}
	stream, err := Diversify(streamRevenue, snap)
	if err != nil {
		return Assessment{}, fmt.Errorf("stream diversification: %w", err)
	}

	var audience *Diversification
	if audienceRevenue != nil {
		a, err := Diversify(audienceRevenue, snap)
		if err != nil {
			return Assessment{}, fmt.Errorf("audience diversification: %w", err)
		}
		audience = &a
	}

	w := snap.Risk.Weights
	axes := []Axis{
		{Name: "volatility", RiskScore: volatility.RiskScore, Weight: w.Volatility},
		{Name: "platform", RiskScore: 100 - platform.DiversificationScore, Weight: w.Platform},
		{Name: "stream", RiskScore: 100 - stream.DiversificationScore, Weight: w.Stream},
	}
	if audience != nil {
		axes = append(axes, Axis{
			Name:      "audience",
			RiskScore: 100 - audience.DiversificationScore,
			Weight:    w.Audience,
		})
	} else {
		// Redistribute the absent axis's weight so the rest still sum to 1.
		scale := 1 / (w.Volatility + w.Platform + w.Stream)
		for i := range axes {
			axes[i].Weight *= scale
		}
	}

	var overall float64
	for i := range axes {
		axes[i].RiskScore = round1(axes[i].RiskScore)
		overall += axes[i].RiskScore * axes[i].Weight
		axes[i].Contribution = round1(axes[i].RiskScore * axes[i].Weight)
		axes[i].Weight = round2(axes[i].Weight)
	}
	overall = clampScore(overall)

	a := Assessment{
		OverallRiskScore:    round1(overall),
		SustainabilityScore: round1(100 - overall),
		RiskLevel:           classifyRisk(overall, snap.Risk),
		Volatility:          volatility,
		Platform:            platform,
		Stream:              stream,
		Audience:            audience,
		Axes:                axes,
	}
	a.Warnings = assessmentWarnings(a)
	a.Actions = assessmentActions(a)
	return a, nil
}

func classifyRisk(score float64, t tuning.RiskThresholds) Level {
	switch {
	case score < t.RiskLow:
		return LevelLow
	case score < t.RiskModerate:
		return LevelModerate
	case score < t.RiskHigh:
		return LevelHigh
	default:
		return LevelCritical
	}
}

func assessmentWarnings(a Assessment) []string {
	var warnings []string
	if a.Volatility.Band == BandExtreme {
		warnings = append(warnings, fmt.Sprintf(
			"revenue volatility is extreme (CV %.3f); income is effectively unpredictable",
			a.Volatility.CoefficientOfVariation))
	}
	for _, axis := range []struct {
		name string
		d    *Diversification
	}{
		{"platform", &a.Platform},
		{"stream", &a.Stream},
		{"audience", a.Audience},
	} {
		if axis.d != nil && axis.d.Concentration == ConcentrationMonopolistic {
			if axis.d.TopSource == "" {
				warnings = append(warnings, fmt.Sprintf(
					"%s revenue is monopolistic: no income recorded across sources", axis.name))
				continue
			}
			warnings = append(warnings, fmt.Sprintf(
				"%s revenue is monopolistic: %s carries %.1f%% of income",
				axis.name, axis.d.TopSource, axis.d.TopSourcePct))
		}
	}
	if a.SustainabilityScore < lowSustainabilityFloor {
		warnings = append(warnings, fmt.Sprintf(
			"sustainability score %.1f is below %.0f; monetization needs structural changes",
			a.SustainabilityScore, lowSustainabilityFloor))
	}
	return warnings
}

// assessmentActions ranks remediation by weighted contribution so the axis
// hurting the score most comes first.
func assessmentActions(a Assessment) []string {
	ranked := make([]Axis, len(a.Axes))
	copy(ranked, a.Axes)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Contribution != ranked[j].Contribution {
			return ranked[i].Contribution > ranked[j].Contribution
		}
		return ranked[i].Name < ranked[j].Name
	})

	var actions []string
	for _, axis := range ranked {
		if axis.RiskScore <= actionRiskFloor {
			continue
		}
		switch axis.Name {
		case "volatility":
			actions = append(actions, "stabilize income with recurring revenue (memberships, sponsorship retainers) to dampen month-to-month swings")
		case "platform":
			if a.Platform.TopSource == "" {
				actions = append(actions, "establish revenue on at least one platform")
				continue
			}
			actions = append(actions, fmt.Sprintf(
				"grow revenue on platforms beyond %s to reduce platform dependence", a.Platform.TopSource))
		case "stream":
			if a.Stream.TopSource == "" {
				actions = append(actions, "establish at least one revenue stream")
				continue
			}
			actions = append(actions, fmt.Sprintf(
				"add revenue streams beyond %s (merchandise, licensing, direct support)", a.Stream.TopSource))
		case "audience":
			if a.Audience != nil && a.Audience.TopSource != "" {
				actions = append(actions, fmt.Sprintf(
					"broaden the paying audience beyond the %s segment", a.Audience.TopSource))
			}
		}
	}
	return actions
}
