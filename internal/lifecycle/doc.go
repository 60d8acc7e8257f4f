// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

// Package lifecycle models content engagement decay, remaining lifespan,
// algorithmic-amplification alignment and revitalization potential.
//
// Decay and lifespan are two views of one parameterized decay model (model
// kind, hourly rate, engagement floor): the forward direction projects
// engagement at an elapsed time, the inverse solves for the time at which
// engagement reaches the floor. Implementing both from the shared model
// guarantees the two calculations never drift apart.
package lifecycle
