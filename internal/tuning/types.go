// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package tuning

import "strings"

// Platform identifies a distribution platform in the registry key set.
type Platform string

// Supported platforms. Lookups for any other value fail with ErrUnknownPlatform.
const (
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformTwitch    Platform = "twitch"
	PlatformTwitter   Platform = "twitter"
	PlatformPodcast   Platform = "podcast"
)

// Platforms lists every supported platform identifier.
func Platforms() []Platform {
	return []Platform{
		PlatformYouTube,
		PlatformTikTok,
		PlatformInstagram,
		PlatformTwitch,
		PlatformTwitter,
		PlatformPodcast,
	}
}

// ParsePlatform normalizes free-form platform names ("YouTube", " TIKTOK ")
// to registry keys. Unknown names return ErrUnknownPlatform.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PlatformYouTube, PlatformTikTok, PlatformInstagram,
		PlatformTwitch, PlatformTwitter, PlatformPodcast:
		return p, nil
	}
	return "", unknownPlatform(s)
}

// ContentType identifies a content format in the registry key set.
type ContentType string

// Supported content types. Lookups for any other value fail with
// ErrUnknownContentType.
const (
	ContentVideo      ContentType = "video"
	ContentShortVideo ContentType = "short_video"
	ContentLiveStream ContentType = "live_stream"
	ContentPost       ContentType = "post"
	ContentArticle    ContentType = "article"
	ContentPodcast    ContentType = "podcast"
)

// ContentTypes lists every supported content-type identifier.
func ContentTypes() []ContentType {
	return []ContentType{
		ContentVideo,
		ContentShortVideo,
		ContentLiveStream,
		ContentPost,
		ContentArticle,
		ContentPodcast,
	}
}

// ParseContentType normalizes free-form content-type names to registry keys.
// Unknown names return ErrUnknownContentType.
func ParseContentType(s string) (ContentType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	ct := ContentType(normalized)
	switch ct {
	case ContentVideo, ContentShortVideo, ContentLiveStream,
		ContentPost, ContentArticle, ContentPodcast:
		return ct, nil
	}
	return "", unknownContentType(s)
}

// Range is an inclusive [Min, Max] interval for one raw metric.
type Range struct {
	Min float64 `koanf:"min"`
	Max float64 `koanf:"max"`
}

// ScaleProfile holds the per-platform raw metric ranges used by the
// normalization engine. Followers, revenue and reach span orders of magnitude
// and are log-scaled; engagement and CPM are narrow-ranged and linear-scaled.
type ScaleProfile struct {
	Followers  Range `koanf:"followers"`
	Engagement Range `koanf:"engagement"` // percent, 0-100
	Revenue    Range `koanf:"revenue"`    // monthly USD
	Reach      Range `koanf:"reach"`      // unique accounts reached
	CPM        Range `koanf:"cpm"`        // USD per thousand impressions
}

// EngagementBenchmark bands an engagement rate (percent) into qualitative tiers.
type EngagementBenchmark struct {
	Poor      float64 `koanf:"poor"`
	Average   float64 `koanf:"average"`
	Good      float64 `koanf:"good"`
	Excellent float64 `koanf:"excellent"`
}

// MonetizationThresholds holds per-platform monetization eligibility floors
// and the revenue multiplier applied to composite scores.
type MonetizationThresholds struct {
	MinFollowers      float64 `koanf:"min_followers"`
	MinMonthlyViews   float64 `koanf:"min_monthly_views"`
	MinEngagementRate float64 `koanf:"min_engagement_rate"` // percent
	RevenueMultiplier float64 `koanf:"revenue_multiplier"`
	CPMRange          Range   `koanf:"cpm_range"`
}

// DecayModel selects the decay formula family for a content type.
type DecayModel string

// Decay model kinds. Slow-decaying long-form formats use linear decay,
// everything else decays exponentially.
const (
	DecayExponential DecayModel = "exponential"
	DecayLinear      DecayModel = "linear"
)

// DecayProfile parameterizes the engagement decay model for one content type.
//
// HourlyRate is the exponential constant k (1/hour) for exponential profiles
// and the absolute engagement loss per hour for linear profiles. Floor is the
// absolute engagement level below which content is considered exhausted.
type DecayProfile struct {
	Model             DecayModel `koanf:"model"`
	HourlyRate        float64    `koanf:"hourly_rate"`
	Floor             float64    `koanf:"floor"`
	RevivalMultiplier float64    `koanf:"revival_multiplier"`
}

// AdaptationWeights weights the four algorithm-adaptation sub-factors.
// The four weights must sum to 1.
type AdaptationWeights struct {
	Length float64 `koanf:"length"`
	Timing float64 `koanf:"timing"`
	Format float64 `koanf:"format"`
	Topic  float64 `koanf:"topic"`
}

// AlgorithmPreferences describes what one platform's recommendation algorithm
// favors: content length, posting time, format, and currently trending topics.
type AlgorithmPreferences struct {
	PreferredLengthSeconds float64           `koanf:"preferred_length_seconds"`
	LengthTolerance        float64           `koanf:"length_tolerance"` // fraction of preferred length
	PeakHours              []int             `koanf:"peak_hours"`       // local hours 0-23
	PreferredFormats       []string          `koanf:"preferred_formats"`
	TrendingTopics         []string          `koanf:"trending_topics"`
	Weights                AdaptationWeights `koanf:"weights"`
}

// RetentionBenchmarks holds the cohort retention targets (percent) per
// survivorship window plus churn thresholds (percent per period).
type RetentionBenchmarks struct {
	Day7Good         float64 `koanf:"day7_good"`
	Day7Acceptable   float64 `koanf:"day7_acceptable"`
	Day30Good        float64 `koanf:"day30_good"`
	Day30Acceptable  float64 `koanf:"day30_acceptable"`
	Day90Good        float64 `koanf:"day90_good"`
	Day90Acceptable  float64 `koanf:"day90_acceptable"`
	Day365Good       float64 `koanf:"day365_good"`
	Day365Acceptable float64 `koanf:"day365_acceptable"`
	ChurnAcceptable  float64 `koanf:"churn_acceptable"`
	ChurnCritical    float64 `koanf:"churn_critical"`
}

// VolatilityBands holds the coefficient-of-variation cut points (rates, 0-1)
// separating stable / moderate / volatile / highly volatile series.
type VolatilityBands struct {
	Stable   float64 `koanf:"stable"`
	Moderate float64 `koanf:"moderate"`
	Volatile float64 `koanf:"volatile"`
}

// DiversificationBands holds the diversification-score cut points separating
// low / moderate / high / monopolistic revenue concentration.
type DiversificationBands struct {
	Low      float64 `koanf:"low"`      // score at or above: low concentration
	Moderate float64 `koanf:"moderate"` // score at or above: moderate concentration
	High     float64 `koanf:"high"`     // score at or above: high; below: monopolistic
}

// RiskWeights weights the four monetization risk axes. The four weights must
// sum to 1; the audience weight is redistributed when that axis is absent.
type RiskWeights struct {
	Volatility float64 `koanf:"volatility"`
	Platform   float64 `koanf:"platform"`
	Stream     float64 `koanf:"stream"`
	Audience   float64 `koanf:"audience"`
}

// RiskThresholds holds every banding table used by the risk assessor.
type RiskThresholds struct {
	Volatility      VolatilityBands      `koanf:"volatility"`
	Diversification DiversificationBands `koanf:"diversification"`

	// Overall risk-level cut points: below Low is low risk, below Moderate
	// is moderate, below High is high, otherwise critical.
	RiskLow      float64 `koanf:"risk_low"`
	RiskModerate float64 `koanf:"risk_moderate"`
	RiskHigh     float64 `koanf:"risk_high"`

	Weights RiskWeights `koanf:"weights"`

	// MaxSingleSourceShare is the recommended ceiling (percent) for any one
	// revenue source; MinEffectiveSources the recommended floor for the
	// effective source count.
	MaxSingleSourceShare float64 `koanf:"max_single_source_share"`
	MinEffectiveSources  float64 `koanf:"min_effective_sources"`
}

// ForecastParams holds the exponential-smoothing and discounting constants
// used by churn forecasting, LTV and risk-adjusted forecasting.
type ForecastParams struct {
	LevelSmoothing  float64 `koanf:"level_smoothing"`   // alpha, 0-1
	TrendSmoothing  float64 `koanf:"trend_smoothing"`   // beta, 0-1
	MinHistory      int     `koanf:"min_history"`       // minimum points for a churn forecast
	LTVDiscountRate float64 `koanf:"ltv_discount_rate"` // monthly rate, 0-1
	ConfidenceZ     float64 `koanf:"confidence_z"`      // z-score for forecast intervals
}

// ViralityParams holds the platform-independent constants of the virality model.
type ViralityParams struct {
	// MomentumDecay is the per-cycle exponential loss of sharing momentum.
	MomentumDecay float64 `koanf:"momentum_decay"`

	// GrowthDays is the length of the exponential growth phase of the view
	// curve when K exceeds 1.
	GrowthDays int `koanf:"growth_days"`

	// PlateauDays is the length of the plateau at the growth ceiling.
	PlateauDays int `koanf:"plateau_days"`

	// DeclineRate is the per-day exponential decline constant after the plateau.
	DeclineRate float64 `koanf:"decline_rate"`
}

// Snapshot is one immutable, validated set of tuning tables.
//
// Snapshots are value records: build or load one, validate it, publish it via
// Store, and never mutate it afterwards.
type Snapshot struct {
	Version string `koanf:"version"`

	Scales               map[Platform]ScaleProfile           `koanf:"scales"`
	EngagementBenchmarks map[Platform]EngagementBenchmark    `koanf:"engagement_benchmarks"`
	Monetization         map[Platform]MonetizationThresholds `koanf:"monetization"`
	ViralityMultipliers  map[Platform]float64                `koanf:"virality_multipliers"`
	Preferences          map[Platform]AlgorithmPreferences   `koanf:"preferences"`
	Decay                map[ContentType]DecayProfile        `koanf:"decay"`

	Retention RetentionBenchmarks `koanf:"retention"`
	Risk      RiskThresholds      `koanf:"risk"`
	Forecast  ForecastParams      `koanf:"forecast"`
	Virality  ViralityParams      `koanf:"virality"`
}
