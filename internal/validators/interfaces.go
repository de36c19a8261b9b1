// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate request bodies.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: per-field messages keyed by JSON field name, rendered
//     by the HTTP layer as a 400 body of the form {"field": ["message"]}.
//
// RequestValidator is the implementation used by the server handlers.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation and cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
