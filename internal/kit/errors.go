package kit

import (
	"fmt"
	"time"
)

// ErrorKind classifies why the AI path could not produce a kit. Every kind is
// non-fatal: the caller falls back to the deterministic selector.
type ErrorKind string

const (
	ErrMissingCredential ErrorKind = "MISSING_CREDENTIAL"
	ErrTransport         ErrorKind = "TRANSPORT"
	ErrRateLimited       ErrorKind = "RATE_LIMITED"
	ErrInvalidResponse   ErrorKind = "INVALID_RESPONSE"
	ErrEmptyResult       ErrorKind = "EMPTY_RESULT"
)

type RecommendationError struct {
	Kind       ErrorKind
	RetryAfter time.Duration // set for RATE_LIMITED when the upstream hinted
	cause      error
}

func (e *RecommendationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("recommendation failed (%s): %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("recommendation failed (%s)", e.Kind)
}

func (e *RecommendationError) Unwrap() error {
	return e.cause
}
