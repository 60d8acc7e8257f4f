// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

// Package validation provides struct validation using go-playground/validator
// v10. It exposes a thread-safe singleton validator plus custom validators for
// platform and content-type identifiers, and translates failures into field
// errors suitable for API responses.
//
//	type ScoreRequest struct {
//	    Platform  string  `validate:"required,platform"`
//	    Followers float64 `validate:"min=0"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil { ... }
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Error returns the human-readable message.
func (e FieldError) Error() string {
	return e.Message
}

// RequestError is a collection of field validation failures for one request.
type RequestError struct {
	Fields []FieldError `json:"fields"`
}

// Error implements the error interface with a combined message.
func (e *RequestError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		messages[i] = f.Message
	}
	return strings.Join(messages, "; ")
}

// getValidator returns the singleton validator, building it on first use.
// The validator caches struct metadata, so sharing one instance matters.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// platform: a known platform identifier, case-insensitive.
		_ = validate.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			_, err := tuning.ParsePlatform(fl.Field().String())
			return err == nil
		})

		// content_type: a known content-type identifier.
		_ = validate.RegisterValidation("content_type", func(fl validator.FieldLevel) bool {
			_, err := tuning.ParseContentType(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// ValidateStruct validates a struct against its validate tags. Returns a
// *RequestError describing every failed field, or nil when valid.
func ValidateStruct(s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: a nil or non-struct argument.
		return &RequestError{Fields: []FieldError{{
			Field:   "",
			Tag:     "struct",
			Message: "request body is not a valid structure",
		}}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: messageFor(fe),
		})
	}
	return &RequestError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "platform":
		return fmt.Sprintf("%s must be a supported platform", fe.Field())
	case "content_type":
		return fmt.Sprintf("%s must be a supported content type", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
