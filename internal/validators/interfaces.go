// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harborlight Recovery Services

// Package validators provides required-field validation for intake form
// payloads.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary payloads before
//     they reach the store.
//   - FormValidator: the concrete implementation covering every intake form
//     type, enforcing each form's ordered required-field contract.
//
// Validation is pure and synchronous: no I/O, no store interaction. It
// short-circuits on the first missing required field, which is reported by
// its JSON payload name; nothing else is checked after that.
package validators

import "context"

// Validator defines a generic validation interface for submission payloads.
// Implementations perform structural presence checks and per-row rules for
// repeating entries.
type Validator interface {

	// Validate validates the provided payload. The returned error wraps
	// [ErrMissingRequiredField] and names the offending field when the
	// payload is structurally incomplete.
	Validate(context.Context, any) error
}
