package isocode

import "errors"

var (
	// ErrNilPattern is returned by the name search functions when no pattern is given.
	ErrNilPattern = errors.New("nil search pattern")

	// Table loading
	ErrFailedToReadData  = errors.New("failed to read code table document")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")

	// Table validation
	ErrDuplicateKey        = errors.New("duplicate canonical key")
	ErrUnknownReference    = errors.New("reference to unknown entry")
	ErrInconsistentLink    = errors.New("cross-reference does not point back")
	ErrInvalidSynonym      = errors.New("invalid synonym pair")
	ErrUnresolvedCollision = errors.New("shared code without a preferred entry")
	ErrInvalidSentinel     = errors.New("invalid undefined sentinel")
	ErrInvalidValue        = errors.New("invalid field value")

	// ErrInvalidConfig is returned by LoadConfig and Config.Validate.
	ErrInvalidConfig = errors.New("invalid isocode configuration")
)
