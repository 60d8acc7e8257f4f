// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package lifecycle

import (
	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

const (
	// minRevivalAgeHours gates revitalization: content younger than this is
	// still in its natural distribution window.
	minRevivalAgeHours = 24

	// deadFloorFraction gates revitalization at the other end: content whose
	// engagement has fallen below this fraction of the floor is exhausted.
	deadFloorFraction = 0.8
)

// RevitalizationAssessment is the verdict on whether refreshing a content
// item is worth the effort, and what to do if so.
type RevitalizationAssessment struct {
	ContentType        tuning.ContentType `json:"content_type"`
	Revivable          bool               `json:"revivable"`
	Reason             string             `json:"reason,omitempty"`
	Score              float64            `json:"score"` // 0-100
	RecommendedActions []string           `json:"recommended_actions,omitempty"`
	ProjectedBoost     float64            `json:"projected_boost"` // engagement multiplier
}

// AssessRevitalization scores how revivable a content item is from the ratio
// of its current engagement to the content type's floor, adjusted by the
// type's revival multiplier. Content that is too fresh (<24h) or too far
// below the floor is not revivable.
func AssessRevitalization(
	ct tuning.ContentType,
	currentEngagement, hoursElapsed float64,
	snap *tuning.Snapshot,
) (RevitalizationAssessment, error) {
	profile, err := snap.DecayProfile(ct)
	if err != nil {
		return RevitalizationAssessment{}, err
	}
	if currentEngagement <= 0 {
		return RevitalizationAssessment{}, ErrNonPositiveEngagement
	}
	if hoursElapsed < 0 {
		return RevitalizationAssessment{}, ErrNegativeElapsed
	}

	if hoursElapsed < minRevivalAgeHours {
		return RevitalizationAssessment{
			ContentType:    ct,
			Revivable:      false,
			Reason:         "content is still in its natural distribution window",
			ProjectedBoost: 1.0,
		}, nil
	}
	if currentEngagement < profile.Floor*deadFloorFraction {
		return RevitalizationAssessment{
			ContentType:    ct,
			Revivable:      false,
			Reason:         "engagement has fallen too far below the floor to recover",
			ProjectedBoost: 1.0,
		}, nil
	}

	ratio := currentEngagement / profile.Floor
	score := clampScore(50 * ratio * profile.RevivalMultiplier)

	return RevitalizationAssessment{
		ContentType:        ct,
		Revivable:          true,
		Score:              round1(score),
		RecommendedActions: revivalActions(score),
		ProjectedBoost:     round2(1 + score/100),
	}, nil
}

// revivalActions lists refresh actions in escalating order of expected payoff.
func revivalActions(score float64) []string {
	actions := []string{
		"Refresh the title and thumbnail to reset click-through signals",
	}
	if score >= 25 {
		actions = append(actions, "Work currently trending elements into the description and tags")
	}
	if score >= 40 {
		actions = append(actions, "Repost during the platform's peak engagement hours")
	}
	if score >= 60 {
		actions = append(actions, "Syndicate to other platforms to restart the discovery loop")
	}
	return actions
}
