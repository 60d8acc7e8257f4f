// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package tuning

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Registry lookup errors.
var (
	// ErrUnknownPlatform indicates a platform identifier outside the fixed
	// registry key set. This is a caller error, never silently defaulted.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrUnknownContentType indicates a content-type identifier outside the
	// fixed registry key set.
	ErrUnknownContentType = errors.New("unknown content type")

	// ErrInvalidSnapshot indicates a snapshot that failed validation and must
	// not be published.
	ErrInvalidSnapshot = errors.New("invalid tuning snapshot")
)

func unknownPlatform(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
}

func unknownContentType(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownContentType, name)
}

// Scale returns the raw metric scale ranges for a platform.
func (s *Snapshot) Scale(p Platform) (ScaleProfile, error) {
	profile, ok := s.Scales[p]
	if !ok {
		return ScaleProfile{}, unknownPlatform(string(p))
	}
	return profile, nil
}

// EngagementBenchmark returns the engagement tier thresholds for a platform.
func (s *Snapshot) EngagementBenchmark(p Platform) (EngagementBenchmark, error) {
	bm, ok := s.EngagementBenchmarks[p]
	if !ok {
		return EngagementBenchmark{}, unknownPlatform(string(p))
	}
	return bm, nil
}

// MonetizationThresholds returns monetization eligibility floors and the
// revenue multiplier for a platform.
func (s *Snapshot) MonetizationThresholds(p Platform) (MonetizationThresholds, error) {
	mt, ok := s.Monetization[p]
	if !ok {
		return MonetizationThresholds{}, unknownPlatform(string(p))
	}
	return mt, nil
}

// ViralityMultiplier returns the platform-specific K-factor multiplier.
func (s *Snapshot) ViralityMultiplier(p Platform) (float64, error) {
	m, ok := s.ViralityMultipliers[p]
	if !ok {
		return 0, unknownPlatform(string(p))
	}
	return m, nil
}

// AlgorithmPreferences returns the recommendation-algorithm preference table
// for a platform.
func (s *Snapshot) AlgorithmPreferences(p Platform) (AlgorithmPreferences, error) {
	prefs, ok := s.Preferences[p]
	if !ok {
		return AlgorithmPreferences{}, unknownPlatform(string(p))
	}
	return prefs, nil
}

// DecayProfile returns the decay model parameters for a content type.
func (s *Snapshot) DecayProfile(ct ContentType) (DecayProfile, error) {
	dp, ok := s.Decay[ct]
	if !ok {
		return DecayProfile{}, unknownContentType(string(ct))
	}
	return dp, nil
}

// Validate checks every table for internal consistency. A snapshot that fails
// validation must never be published.
func (s *Snapshot) Validate() error {
	for _, p := range Platforms() {
		profile, ok := s.Scales[p]
		if !ok {
			return fmt.Errorf("%w: missing scale profile for %q", ErrInvalidSnapshot, p)
		}
		if err := validateScale(p, profile); err != nil {
			return err
		}
		if _, ok := s.EngagementBenchmarks[p]; !ok {
			return fmt.Errorf("%w: missing engagement benchmark for %q", ErrInvalidSnapshot, p)
		}
		mt, ok := s.Monetization[p]
		if !ok {
			return fmt.Errorf("%w: missing monetization thresholds for %q", ErrInvalidSnapshot, p)
		}
		if mt.RevenueMultiplier <= 0 {
			return fmt.Errorf("%w: revenue multiplier for %q must be positive, got %f",
				ErrInvalidSnapshot, p, mt.RevenueMultiplier)
		}
		if m, ok := s.ViralityMultipliers[p]; !ok || m <= 0 {
			return fmt.Errorf("%w: virality multiplier for %q must be positive", ErrInvalidSnapshot, p)
		}
		prefs, ok := s.Preferences[p]
		if !ok {
			return fmt.Errorf("%w: missing algorithm preferences for %q", ErrInvalidSnapshot, p)
		}
		if err := validatePreferences(p, prefs); err != nil {
			return err
		}
	}

	for _, ct := range ContentTypes() {
		dp, ok := s.Decay[ct]
		if !ok {
			return fmt.Errorf("%w: missing decay profile for %q", ErrInvalidSnapshot, ct)
		}
		if dp.Model != DecayExponential && dp.Model != DecayLinear {
			return fmt.Errorf("%w: decay model for %q must be exponential or linear, got %q",
				ErrInvalidSnapshot, ct, dp.Model)
		}
		if dp.HourlyRate <= 0 {
			return fmt.Errorf("%w: decay rate for %q must be positive, got %f",
				ErrInvalidSnapshot, ct, dp.HourlyRate)
		}
		if dp.Floor <= 0 {
			return fmt.Errorf("%w: engagement floor for %q must be positive, got %f",
				ErrInvalidSnapshot, ct, dp.Floor)
		}
	}

	if err := validateRetention(s.Retention); err != nil {
		return err
	}
	if err := validateRisk(s.Risk); err != nil {
		return err
	}
	if err := validateForecast(s.Forecast); err != nil {
		return err
	}
	return validateVirality(s.Virality)
}

func validateScale(p Platform, profile ScaleProfile) error {
	ranges := []struct {
		name string
		r    Range
		// engagement may have a zero lower bound; every other minimum must be positive
		zeroMinOK bool
	}{
		{"followers", profile.Followers, false},
		{"engagement", profile.Engagement, true},
		{"revenue", profile.Revenue, false},
		{"reach", profile.Reach, false},
		{"cpm", profile.CPM, false},
	}
	for _, rr := range ranges {
		if rr.r.Min >= rr.r.Max {
			return fmt.Errorf("%w: %s range for %q must have min < max, got [%f, %f]",
				ErrInvalidSnapshot, rr.name, p, rr.r.Min, rr.r.Max)
		}
		if rr.zeroMinOK {
			if rr.r.Min < 0 {
				return fmt.Errorf("%w: %s minimum for %q must be >= 0, got %f",
					ErrInvalidSnapshot, rr.name, p, rr.r.Min)
			}
		} else if rr.r.Min <= 0 {
			return fmt.Errorf("%w: %s minimum for %q must be positive, got %f",
				ErrInvalidSnapshot, rr.name, p, rr.r.Min)
		}
	}
	return nil
}

func validatePreferences(p Platform, prefs AlgorithmPreferences) error {
	if prefs.PreferredLengthSeconds <= 0 {
		return fmt.Errorf("%w: preferred length for %q must be positive", ErrInvalidSnapshot, p)
	}
	if prefs.LengthTolerance <= 0 {
		return fmt.Errorf("%w: length tolerance for %q must be positive", ErrInvalidSnapshot, p)
	}
	for _, h := range prefs.PeakHours {
		if h < 0 || h > 23 {
			return fmt.Errorf("%w: peak hour %d for %q out of range [0, 23]", ErrInvalidSnapshot, h, p)
		}
	}
	sum := prefs.Weights.Length + prefs.Weights.Timing + prefs.Weights.Format + prefs.Weights.Topic
	if !approxOne(sum) {
		return fmt.Errorf("%w: adaptation weights for %q must sum to 1, got %f",
			ErrInvalidSnapshot, p, sum)
	}
	return nil
}

func validateRetention(rb RetentionBenchmarks) error {
	// Retention health scoring divides by these benchmarks, so a zero or
	// negative value would leak NaN into the health score.
	windows := []struct {
		name             string
		good, acceptable float64
	}{
		{"day7", rb.Day7Good, rb.Day7Acceptable},
		{"day30", rb.Day30Good, rb.Day30Acceptable},
		{"day90", rb.Day90Good, rb.Day90Acceptable},
		{"day365", rb.Day365Good, rb.Day365Acceptable},
	}
	for _, w := range windows {
		if w.good <= 0 || w.good > 100 {
			return fmt.Errorf("%w: %s retention benchmark must be in (0, 100], got %f",
				ErrInvalidSnapshot, w.name, w.good)
		}
		if w.acceptable <= 0 || w.acceptable > w.good {
			return fmt.Errorf("%w: %s acceptable retention must be in (0, %f], got %f",
				ErrInvalidSnapshot, w.name, w.good, w.acceptable)
		}
	}
	if !(rb.ChurnAcceptable > 0 && rb.ChurnAcceptable < rb.ChurnCritical && rb.ChurnCritical <= 100) {
		return fmt.Errorf("%w: churn thresholds must satisfy 0 < acceptable < critical <= 100, got %f / %f",
			ErrInvalidSnapshot, rb.ChurnAcceptable, rb.ChurnCritical)
	}
	return nil
}

func validateVirality(vp ViralityParams) error {
	if vp.MomentumDecay <= 0 {
		return fmt.Errorf("%w: momentum decay must be positive, got %f", ErrInvalidSnapshot, vp.MomentumDecay)
	}
	// The analytic view-curve half-life divides by the decline rate.
	if vp.DeclineRate <= 0 {
		return fmt.Errorf("%w: decline rate must be positive, got %f", ErrInvalidSnapshot, vp.DeclineRate)
	}
	if vp.GrowthDays < 0 || vp.PlateauDays < 0 {
		return fmt.Errorf("%w: growth and plateau days must be non-negative, got %d / %d",
			ErrInvalidSnapshot, vp.GrowthDays, vp.PlateauDays)
	}
	return nil
}

func validateRisk(rt RiskThresholds) error {
	vb := rt.Volatility
	if !(vb.Stable > 0 && vb.Stable < vb.Moderate && vb.Moderate < vb.Volatile) {
		return fmt.Errorf("%w: volatility bands must be strictly increasing and positive", ErrInvalidSnapshot)
	}
	db := rt.Diversification
	if !(db.High > 0 && db.High < db.Moderate && db.Moderate < db.Low && db.Low <= 100) {
		return fmt.Errorf("%w: diversification bands must satisfy 0 < high < moderate < low <= 100", ErrInvalidSnapshot)
	}
	if !(rt.RiskLow > 0 && rt.RiskLow < rt.RiskModerate && rt.RiskModerate < rt.RiskHigh && rt.RiskHigh < 100) {
		return fmt.Errorf("%w: risk level bands must be strictly increasing within (0, 100)", ErrInvalidSnapshot)
	}
	sum := rt.Weights.Volatility + rt.Weights.Platform + rt.Weights.Stream + rt.Weights.Audience
	if !approxOne(sum) {
		return fmt.Errorf("%w: risk weights must sum to 1, got %f", ErrInvalidSnapshot, sum)
	}
	return nil
}

func validateForecast(fp ForecastParams) error {
	if fp.LevelSmoothing <= 0 || fp.LevelSmoothing >= 1 {
		return fmt.Errorf("%w: level smoothing must be in (0, 1), got %f", ErrInvalidSnapshot, fp.LevelSmoothing)
	}
	if fp.TrendSmoothing <= 0 || fp.TrendSmoothing >= 1 {
		return fmt.Errorf("%w: trend smoothing must be in (0, 1), got %f", ErrInvalidSnapshot, fp.TrendSmoothing)
	}
	if fp.MinHistory < 3 {
		return fmt.Errorf("%w: minimum forecast history must be >= 3, got %d", ErrInvalidSnapshot, fp.MinHistory)
	}
	if fp.LTVDiscountRate < 0 || fp.LTVDiscountRate >= 1 {
		return fmt.Errorf("%w: LTV discount rate must be in [0, 1), got %f", ErrInvalidSnapshot, fp.LTVDiscountRate)
	}
	if fp.ConfidenceZ <= 0 {
		return fmt.Errorf("%w: confidence z-score must be positive, got %f", ErrInvalidSnapshot, fp.ConfidenceZ)
	}
	return nil
}

const weightEpsilon = 1e-6

func approxOne(v float64) bool {
	return v > 1-weightEpsilon && v < 1+weightEpsilon
}

// active holds the process-global snapshot. Swapped atomically so concurrent
// readers always see one consistent table set.
var active atomic.Pointer[Snapshot]

// Active returns the currently published snapshot, falling back to the
// built-in defaults when nothing has been published yet.
func Active() *Snapshot {
	if s := active.Load(); s != nil {
		return s
	}
	s := Defaults()
	active.CompareAndSwap(nil, s)
	return active.Load()
}

// Store validates and publishes a snapshot as the active registry.
func Store(s *Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	active.Store(s)
	return nil
}
