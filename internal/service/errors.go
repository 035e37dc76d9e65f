// Package service provides the orchestration layer: it sequences store and
// gateway calls per API operation and emits activity records as side
// effects.
package service

import (
	"errors"
)

// Error taxonomy surfaced to the HTTP layer. Validation and not-found are
// detected before any mutation; generation failures come wrapped in
// llm.ErrGenerationFailed.
var (
	// ErrValidation marks malformed or missing required input.
	ErrValidation = errors.New("invalid request")

	// ErrNotFound marks a referenced id that does not exist.
	ErrNotFound = errors.New("not found")
)
