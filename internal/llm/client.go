package llm

import (
	"context"
)

// Client is the vendor-neutral generation contract. Implementations return a
// JSON document as raw text, or one of the typed errors from errors.go.
type Client interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}
