// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

// Package risk assesses monetization sustainability: revenue volatility
// scored onto 0-100 risk bands, revenue-source concentration via the
// Herfindahl-Hirschman index, a weighted composite risk verdict across
// volatility and diversification axes, and risk-discounted revenue
// forecasting with confidence intervals.
//
// All functions are pure. Risk and diversification scores are 0-100; HHI is
// 0-10,000 over percentage shares summing to 100.
package risk
