package llm

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingCredential means no API key was configured at all.
	ErrMissingCredential = errors.New("missing api credential")

	// ErrBlockedCredential means the upstream rejected the configured key
	// (400/401/403). Retrying with the same key is pointless.
	ErrBlockedCredential = errors.New("api credential rejected by upstream")
)

// RateLimitError is returned on HTTP 429. RetryAfter is zero when the
// upstream gave no hint.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry in %s", e.RetryAfter)
	}
	return "rate limited"
}
