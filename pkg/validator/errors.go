package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	ErrFieldRequired = errors.New("field is required")
	ErrInvalidValue  = errors.New("invalid value")

	// ErrUnknownCode is the cause of failed code rules: the value names no
	// defined entry in the code table.
	ErrUnknownCode = errors.New("unknown code")
)
