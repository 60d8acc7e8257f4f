// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/creatorpulse/creatorpulse/internal/lifecycle"
	"github.com/creatorpulse/creatorpulse/internal/logging"
	"github.com/creatorpulse/creatorpulse/internal/risk"
	"github.com/creatorpulse/creatorpulse/internal/stability"
	"github.com/creatorpulse/creatorpulse/internal/tuning"
	"github.com/creatorpulse/creatorpulse/internal/validation"
	"github.com/creatorpulse/creatorpulse/internal/virality"
)

// maxBodyBytes caps request bodies. Engine inputs are small records; anything
// bigger is abuse.
const maxBodyBytes = 1 << 20

// ErrEmptyBody indicates a request with no JSON body.
var ErrEmptyBody = errors.New("request body is required")

// errorBody is the JSON error envelope of every non-2xx response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

// invalidInputErrs enumerates engine sentinels that indicate a caller-side
// input problem. Every one maps to 400.
var invalidInputErrs = []error{
	lifecycle.ErrNonPositiveEngagement,
	lifecycle.ErrNegativeElapsed,
	lifecycle.ErrInvalidPostHour,
	lifecycle.ErrNonPositiveLength,
	virality.ErrNegativeInput,
	virality.ErrInvalidRate,
	virality.ErrNonPositiveViewers,
	stability.ErrZeroMean,
	stability.ErrEmptyCohort,
	stability.ErrCountExceedsCohort,
	stability.ErrNegativeRevenue,
	stability.ErrInvalidDiscount,
	stability.ErrInvalidRetention,
	risk.ErrNegativeSourceRevenue,
	risk.ErrNegativeBaseline,
	risk.ErrNegativeStdDev,
	ErrEmptyBody,
}

// decodeJSON reads and decodes the request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

// writeJSON encodes v with the given status. Encoding failures are logged,
// not surfaced; headers are already gone by then.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.CtxErr(r.Context(), err).Msg("encode response")
	}
}

// writeError maps err onto a status code and structured error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := classifyError(err)
	if status == http.StatusInternalServerError {
		logging.CtxErr(r.Context(), err).Msg("internal error")
		// Do not leak internals.
		detail.Message = "internal error"
	}
	writeJSON(w, r, status, errorBody{Error: detail})
}

func classifyError(err error) (int, errorDetail) {
	var reqErr *validation.RequestError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest, errorDetail{
			Code:    "VALIDATION_ERROR",
			Message: reqErr.Error(),
			Fields:  reqErr.Fields,
		}
	}

	switch {
	case errors.Is(err, tuning.ErrUnknownPlatform),
		errors.Is(err, tuning.ErrUnknownContentType):
		return http.StatusBadRequest, errorDetail{Code: "UNKNOWN_KEY", Message: err.Error()}
	case errors.Is(err, stability.ErrInsufficientData):
		return http.StatusBadRequest, errorDetail{Code: "INSUFFICIENT_DATA", Message: err.Error()}
	}

	for _, sentinel := range invalidInputErrs {
		if errors.Is(err, sentinel) {
			return http.StatusBadRequest, errorDetail{Code: "INVALID_INPUT", Message: err.Error()}
		}
	}

	// Anything unwrapped from JSON decoding is malformed input.
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) {
		return http.StatusBadRequest, errorDetail{Code: "MALFORMED_JSON", Message: "request body is not valid JSON"}
	}

	return http.StatusInternalServerError, errorDetail{Code: "INTERNAL", Message: err.Error()}
}
