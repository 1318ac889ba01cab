package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Corpus and vector file parsing
	ErrParse = errors.New("parse error")

	// Alternatives lookup and selection
	ErrKeyNotFound           = errors.New("key not found")
	ErrNoCandidates          = errors.New("no candidates")
	ErrConfigurationMismatch = errors.New("configuration mismatch")

	// Embedding providers
	ErrUnknownWord = errors.New("unknown word")
)
