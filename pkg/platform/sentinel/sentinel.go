package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Loaders, providers and config code
// return these (optionally wrapped) so callers can branch with errors.Is.
//
// These represent factual states, not compliance verdicts:
// - ErrNotFound: file or component does not exist
// - ErrInvalidInput: a document or argument could not be accepted
// - ErrInvalidState: entity in wrong state for requested operation
// - ErrUnavailable: a component could not report its value
//
// Compliance failures are never errors; they are boolean results.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
