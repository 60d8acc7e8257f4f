// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

// Package normalize maps raw per-platform creator metrics onto a common
// 0-100 scale and combines them into weighted composite scores.
//
// Followers, reach and revenue span multiple orders of magnitude, so they
// are scaled logarithmically: linear scaling would compress every small and
// mid-sized creator into a near-zero band. Engagement rate and CPM are
// already percentage-like or narrow-ranged and are scaled linearly.
//
// All functions are pure: they read only their arguments and the tuning
// snapshot, and return freshly computed value records.
package normalize
