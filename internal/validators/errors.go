package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrMissingRequiredField is wrapped by every required-field violation;
	// the wrapping error names the offending JSON field.
	ErrMissingRequiredField = errors.New("missing required field")
)
