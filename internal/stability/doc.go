// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

// Package stability analyzes engagement and audience time series: volatility
// from the coefficient of variation, cohort retention health against
// benchmark tables, churn forecasting via double exponential smoothing, and
// discounted lifetime value.
//
// All functions are pure. Series values and retention figures are percentages
// on the 0-100 scale; smoothing constants and discount rates are 0-1 rates.
package stability
