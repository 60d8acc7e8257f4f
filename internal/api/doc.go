// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

// Package api exposes the scoring engines over HTTP with a chi router.
//
// Every engine operation maps 1:1 onto a POST endpoint under /api/v1. The
// handlers are thin: decode JSON, validate, call the engine against the
// active tuning snapshot, encode the result. All state lives in the tuning
// registry; the handlers themselves are stateless and safe for concurrent
// use.
package api
