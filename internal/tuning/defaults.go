// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package tuning

// Defaults returns the built-in tuning tables. These are the baseline layer
// of every loaded snapshot; a YAML overlay can override any individual value.
func Defaults() *Snapshot {
	return &Snapshot{
		Version: "2026.1",

		Scales: map[Platform]ScaleProfile{
			PlatformYouTube: {
				Followers:  Range{Min: 1_000, Max: 100_000_000},
				Engagement: Range{Min: 0, Max: 15},
				Revenue:    Range{Min: 100, Max: 1_000_000},
				Reach:      Range{Min: 5_000, Max: 500_000_000},
				CPM:        Range{Min: 2, Max: 12},
			},
			PlatformTikTok: {
				Followers:  Range{Min: 1_000, Max: 50_000_000},
				Engagement: Range{Min: 0, Max: 20},
				Revenue:    Range{Min: 50, Max: 500_000},
				Reach:      Range{Min: 10_000, Max: 1_000_000_000},
				CPM:        Range{Min: 0.5, Max: 4},
			},
			PlatformInstagram: {
				Followers:  Range{Min: 1_000, Max: 50_000_000},
				Engagement: Range{Min: 0, Max: 12},
				Revenue:    Range{Min: 100, Max: 500_000},
				Reach:      Range{Min: 5_000, Max: 200_000_000},
				CPM:        Range{Min: 3, Max: 10},
			},
			PlatformTwitch: {
				Followers:  Range{Min: 100, Max: 10_000_000},
				Engagement: Range{Min: 0, Max: 25},
				Revenue:    Range{Min: 50, Max: 300_000},
				Reach:      Range{Min: 500, Max: 50_000_000},
				CPM:        Range{Min: 3, Max: 10},
			},
			PlatformTwitter: {
				Followers:  Range{Min: 500, Max: 50_000_000},
				Engagement: Range{Min: 0, Max: 8},
				Revenue:    Range{Min: 20, Max: 200_000},
				Reach:      Range{Min: 2_000, Max: 200_000_000},
				CPM:        Range{Min: 1, Max: 7},
			},
			PlatformPodcast: {
				Followers:  Range{Min: 100, Max: 5_000_000},
				Engagement: Range{Min: 0, Max: 40},
				Revenue:    Range{Min: 50, Max: 200_000},
				Reach:      Range{Min: 500, Max: 20_000_000},
				CPM:        Range{Min: 15, Max: 40},
			},
		},

		EngagementBenchmarks: map[Platform]EngagementBenchmark{
			PlatformYouTube:   {Poor: 1, Average: 3, Good: 6, Excellent: 10},
			PlatformTikTok:    {Poor: 3, Average: 6, Good: 10, Excellent: 15},
			PlatformInstagram: {Poor: 1, Average: 3, Good: 5, Excellent: 8},
			PlatformTwitch:    {Poor: 2, Average: 6, Good: 12, Excellent: 20},
			PlatformTwitter:   {Poor: 0.5, Average: 1.5, Good: 3, Excellent: 5},
			PlatformPodcast:   {Poor: 5, Average: 12, Good: 20, Excellent: 30},
		},

		Monetization: map[Platform]MonetizationThresholds{
			PlatformYouTube: {
				MinFollowers:      1_000,
				MinMonthlyViews:   4_000,
				MinEngagementRate: 2,
				RevenueMultiplier: 1.0,
				CPMRange:          Range{Min: 2, Max: 12},
			},
			PlatformTikTok: {
				MinFollowers:      10_000,
				MinMonthlyViews:   100_000,
				MinEngagementRate: 4,
				RevenueMultiplier: 0.85,
				CPMRange:          Range{Min: 0.5, Max: 4},
			},
			PlatformInstagram: {
				MinFollowers:      10_000,
				MinMonthlyViews:   30_000,
				MinEngagementRate: 2,
				RevenueMultiplier: 0.9,
				CPMRange:          Range{Min: 3, Max: 10},
			},
			PlatformTwitch: {
				MinFollowers:      50,
				MinMonthlyViews:   500,
				MinEngagementRate: 3,
				RevenueMultiplier: 0.95,
				CPMRange:          Range{Min: 3, Max: 10},
			},
			PlatformTwitter: {
				MinFollowers:      500,
				MinMonthlyViews:   5_000,
				MinEngagementRate: 1,
				RevenueMultiplier: 0.7,
				CPMRange:          Range{Min: 1, Max: 7},
			},
			PlatformPodcast: {
				MinFollowers:      500,
				MinMonthlyViews:   1_000,
				MinEngagementRate: 8,
				RevenueMultiplier: 1.1,
				CPMRange:          Range{Min: 15, Max: 40},
			},
		},

		ViralityMultipliers: map[Platform]float64{
			PlatformYouTube:   1.0,
			PlatformTikTok:    1.3,
			PlatformInstagram: 1.1,
			PlatformTwitch:    0.8,
			PlatformTwitter:   1.2,
			PlatformPodcast:   0.6,
		},

		Preferences: map[Platform]AlgorithmPreferences{
			PlatformYouTube: {
				PreferredLengthSeconds: 600,
				LengthTolerance:        0.5,
				PeakHours:              []int{15, 16, 17, 18, 19, 20},
				PreferredFormats:       []string{"video", "short_video", "live_stream"},
				TrendingTopics:         []string{"gaming", "tech", "tutorial", "commentary", "music"},
				Weights:                AdaptationWeights{Length: 0.3, Timing: 0.25, Format: 0.25, Topic: 0.2},
			},
			PlatformTikTok: {
				PreferredLengthSeconds: 30,
				LengthTolerance:        0.6,
				PeakHours:              []int{12, 19, 20, 21, 22},
				PreferredFormats:       []string{"short_video", "live_stream"},
				TrendingTopics:         []string{"dance", "comedy", "lifehack", "food", "music"},
				Weights:                AdaptationWeights{Length: 0.3, Timing: 0.25, Format: 0.25, Topic: 0.2},
			},
			PlatformInstagram: {
				PreferredLengthSeconds: 45,
				LengthTolerance:        0.6,
				PeakHours:              []int{11, 12, 13, 19, 20, 21},
				PreferredFormats:       []string{"short_video", "post"},
				TrendingTopics:         []string{"fashion", "travel", "fitness", "food", "beauty"},
				Weights:                AdaptationWeights{Length: 0.3, Timing: 0.25, Format: 0.25, Topic: 0.2},
			},
			PlatformTwitch: {
				PreferredLengthSeconds: 7_200,
				LengthTolerance:        0.5,
				PeakHours:              []int{18, 19, 20, 21, 22, 23},
				PreferredFormats:       []string{"live_stream"},
				TrendingTopics:         []string{"gaming", "esports", "just_chatting", "music", "art"},
				Weights:                AdaptationWeights{Length: 0.25, Timing: 0.3, Format: 0.25, Topic: 0.2},
			},
			PlatformTwitter: {
				PreferredLengthSeconds: 60,
				LengthTolerance:        0.8,
				PeakHours:              []int{8, 9, 12, 13, 17, 18},
				PreferredFormats:       []string{"post", "short_video"},
				TrendingTopics:         []string{"news", "tech", "sports", "politics", "memes"},
				Weights:                AdaptationWeights{Length: 0.2, Timing: 0.3, Format: 0.25, Topic: 0.25},
			},
			PlatformPodcast: {
				PreferredLengthSeconds: 2_400,
				LengthTolerance:        0.6,
				PeakHours:              []int{6, 7, 8, 16, 17},
				PreferredFormats:       []string{"podcast"},
				TrendingTopics:         []string{"true_crime", "interview", "business", "comedy", "health"},
				Weights:                AdaptationWeights{Length: 0.35, Timing: 0.2, Format: 0.25, Topic: 0.2},
			},
		},

		Decay: map[ContentType]DecayProfile{
			// Fast-decaying feed formats: exponential.
			ContentVideo:      {Model: DecayExponential, HourlyRate: 0.008, Floor: 12, RevivalMultiplier: 1.2},
			ContentShortVideo: {Model: DecayExponential, HourlyRate: 0.03, Floor: 8, RevivalMultiplier: 0.8},
			ContentLiveStream: {Model: DecayExponential, HourlyRate: 0.10, Floor: 2, RevivalMultiplier: 0.5},
			ContentPost:       {Model: DecayExponential, HourlyRate: 0.02, Floor: 5, RevivalMultiplier: 0.9},
			// Slow-decaying long-form text/audio: linear.
			ContentArticle: {Model: DecayLinear, HourlyRate: 0.15, Floor: 10, RevivalMultiplier: 1.3},
			ContentPodcast: {Model: DecayLinear, HourlyRate: 0.08, Floor: 15, RevivalMultiplier: 1.4},
		},

		Retention: RetentionBenchmarks{
			Day7Good:         40,
			Day7Acceptable:   25,
			Day30Good:        25,
			Day30Acceptable:  15,
			Day90Good:        15,
			Day90Acceptable:  8,
			Day365Good:       8,
			Day365Acceptable: 4,
			ChurnAcceptable:  35,
			ChurnCritical:    50,
		},

		Risk: RiskThresholds{
			Volatility:      VolatilityBands{Stable: 0.15, Moderate: 0.30, Volatile: 0.50},
			Diversification: DiversificationBands{Low: 70, Moderate: 45, High: 20},
			RiskLow:         30,
			RiskModerate:    50,
			RiskHigh:        70,
			Weights: RiskWeights{
				Volatility: 0.35,
				Platform:   0.30,
				Stream:     0.25,
				Audience:   0.10,
			},
			MaxSingleSourceShare: 40,
			MinEffectiveSources:  3,
		},

		Forecast: ForecastParams{
			LevelSmoothing:  0.4,
			TrendSmoothing:  0.3,
			MinHistory:      4,
			LTVDiscountRate: 0.05,
			ConfidenceZ:     1.96,
		},

		Virality: ViralityParams{
			MomentumDecay: 0.2,
			GrowthDays:    3,
			PlateauDays:   2,
			DeclineRate:   0.35,
		},
	}
}
