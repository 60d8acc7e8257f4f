// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package lifecycle

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

// Adaptation input validation errors.
var (
	// ErrInvalidPostHour indicates a posting hour outside 0-23.
	ErrInvalidPostHour = errors.New("post hour must be in [0, 23]")

	// ErrNonPositiveLength indicates a content length that is not positive.
	ErrNonPositiveLength = errors.New("content length must be positive")
)

// suggestionThreshold is the sub-score below which an improvement suggestion
// is emitted.
const suggestionThreshold = 60

// ContentAttributes describes one content item for algorithm-alignment scoring.
type ContentAttributes struct {
	Platform      tuning.Platform `json:"platform"`
	LengthSeconds float64         `json:"length_seconds"`
	PostHour      int             `json:"post_hour"` // local hour of day, 0-23
	Format        string          `json:"format"`    // content-type identifier
	Topics        []string        `json:"topics,omitempty"`
}

// AdaptationResult scores how well a content item aligns with its platform's
// recommendation algorithm, and the lifespan multiplier that alignment earns.
type AdaptationResult struct {
	Platform           tuning.Platform `json:"platform"`
	Overall            float64         `json:"overall"` // 0-100
	LengthScore        float64         `json:"length_score"`
	TimingScore        float64         `json:"timing_score"`
	FormatScore        float64         `json:"format_score"`
	TopicScore         float64         `json:"topic_score"`
	LifespanMultiplier float64         `json:"lifespan_multiplier"`
	Suggestions        []string        `json:"suggestions,omitempty"`
}

// AlgorithmAdaptation scores four weighted sub-factors against the platform's
// preference tables and maps the combined score to a lifespan multiplier.
func AlgorithmAdaptation(attrs ContentAttributes, snap *tuning.Snapshot) (AdaptationResult, error) {
	prefs, err := snap.AlgorithmPreferences(attrs.Platform)
	if err != nil {
		return AdaptationResult{}, err
	}
	if attrs.LengthSeconds <= 0 {
		return AdaptationResult{}, ErrNonPositiveLength
	}
	if attrs.PostHour < 0 || attrs.PostHour > 23 {
		return AdaptationResult{}, ErrInvalidPostHour
	}

	length := lengthScore(attrs.LengthSeconds, prefs)
	timing := timingScore(attrs.PostHour, prefs.PeakHours)
	format := formatScore(attrs.Format, prefs.PreferredFormats)
	topic := topicScore(attrs.Topics, prefs.TrendingTopics)

	w := prefs.Weights
	overall := clampScore(length*w.Length + timing*w.Timing + format*w.Format + topic*w.Topic)

	return AdaptationResult{
		Platform:           attrs.Platform,
		Overall:            round1(overall),
		LengthScore:        round1(length),
		TimingScore:        round1(timing),
		FormatScore:        round1(format),
		TopicScore:         round1(topic),
		LifespanMultiplier: round2(lifespanMultiplier(overall)),
		Suggestions:        suggestions(attrs, prefs, length, timing, format, topic),
	}, nil
}

// lengthScore measures closeness to the platform's preferred length, bounded
// by the tolerance: zero once the relative deviation reaches the tolerance.
func lengthScore(length float64, prefs tuning.AlgorithmPreferences) float64 {
	deviation := math.Abs(length-prefs.PreferredLengthSeconds) / prefs.PreferredLengthSeconds
	if deviation >= prefs.LengthTolerance {
		return 0
	}
	return 100 * (1 - deviation/prefs.LengthTolerance)
}

// timingScore measures wrap-around distance to the nearest platform peak
// hour: 100 at a peak hour, dropping 15 points per hour of distance.
func timingScore(hour int, peaks []int) float64 {
	if len(peaks) == 0 {
		return 50
	}
	nearest := 24.0
	for _, peak := range peaks {
		d := math.Abs(float64(hour - peak))
		if wrapped := 24 - d; wrapped < d {
			d = wrapped
		}
		if d < nearest {
			nearest = d
		}
	}
	return math.Max(0, 100-nearest*15)
}

// formatScore gives full credit for a preferred format, half credit otherwise.
func formatScore(format string, preferred []string) float64 {
	normalized := strings.ToLower(strings.TrimSpace(format))
	for _, f := range preferred {
		if normalized == f {
			return 100
		}
	}
	return 50
}

// topicScore is a keyword-overlap heuristic against the platform's trending
// topics: 50 with no overlap, 100 with full overlap, neutral 70 when the
// item carries no topics at all.
func topicScore(topics, trending []string) float64 {
	if len(topics) == 0 {
		return 70
	}
	trendingSet := make(map[string]struct{}, len(trending))
	for _, tp := range trending {
		trendingSet[strings.ToLower(tp)] = struct{}{}
	}
	matched := 0
	for _, tp := range topics {
		if _, ok := trendingSet[strings.ToLower(strings.TrimSpace(tp))]; ok {
			matched++
		}
	}
	return 50 + 50*float64(matched)/float64(len(topics))
}

// lifespanMultiplier maps an alignment score to a lifespan multiplier:
// poorly aligned content gets cut to 0.7x, strong alignment scales linearly
// up to 2.0x.
func lifespanMultiplier(score float64) float64 {
	switch {
	case score < 50:
		return 0.7
	case score < 70:
		return 1.0
	case score < 85:
		return 1.0 + 0.5*(score-70)/15
	default:
		m := 1.5 + 0.5*(score-85)/15
		return math.Min(2.0, m)
	}
}

func suggestions(
	attrs ContentAttributes,
	prefs tuning.AlgorithmPreferences,
	length, timing, format, topic float64,
) []string {
	var out []string
	if length < suggestionThreshold {
		out = append(out, fmt.Sprintf(
			"Adjust content length toward the platform's preferred %.0f seconds (currently %.0f)",
			prefs.PreferredLengthSeconds, attrs.LengthSeconds))
	}
	if timing < suggestionThreshold {
		out = append(out, fmt.Sprintf(
			"Publish closer to platform peak hours %v (currently posting at %02d:00)",
			prefs.PeakHours, attrs.PostHour))
	}
	if format < suggestionThreshold {
		out = append(out, fmt.Sprintf(
			"Switch to a preferred format for this platform: %s",
			strings.Join(prefs.PreferredFormats, ", ")))
	}
	if topic < suggestionThreshold {
		out = append(out, fmt.Sprintf(
			"Incorporate trending topics such as %s",
			strings.Join(prefs.TrendingTopics, ", ")))
	}
	return out
}
