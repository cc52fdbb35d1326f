package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnknownForm is returned before any request is made when the caller
	// names a form the API does not serve.
	ErrUnknownForm = errors.New("unknown form")
)
