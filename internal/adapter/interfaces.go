// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harborlight Recovery Services

// Package adapter provides the client side of the intake API.
//
// The primary abstraction is [IntakeGateway], which decouples callers (the
// CLI submitter, integration scripts) from the HTTP transport. The package
// ships an HTTP/REST implementation ([NewHTTPIntakeGateway]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/harborlight/intake-server/models"
)

// IntakeGateway defines transport-agnostic communication with the intake
// server's public form API. Implementations are responsible for
// serialisation and for mapping transport-level errors to the sentinel
// values defined in this package.
type IntakeGateway interface {
	// Submit POSTs one form payload and returns the server-assigned
	// submission identifier. The payload must be the JSON body of the form,
	// exactly as the API expects it.
	Submit(ctx context.Context, form string, payload json.RawMessage) (int64, error)

	// List fetches one page of submissions for a form. The items are
	// returned raw so that one gateway serves all six form types.
	List(ctx context.Context, form string, page, limit int) (json.RawMessage, models.Pagination, error)

	// Get fetches a single submission with its child collections.
	Get(ctx context.Context, form string, id int64) (json.RawMessage, error)

	// Options fetches the master data options behind one selectable field
	// of a form.
	Options(ctx context.Context, form, field string) ([]models.MasterDataOption, error)

	// Health probes the server's health endpoint. A nil return means the
	// server is up and its database is reachable.
	Health(ctx context.Context) error
}
