// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

// Package virality models sharing-driven growth: the viral coefficient
// (K-factor), multi-cycle viral-loop cascades, total reach estimation and
// the growth/plateau/decline view curve of a viral event.
//
// K is the average number of new viewers each existing viewer brings in one
// sharing cycle. K above 1 compounds; K at 1 sustains; K below 1 decays to
// organic reach. Loop simulations additionally apply per-cycle momentum
// decay and an optional audience saturation factor, which is why even K > 1
// content eventually plateaus.
package virality
