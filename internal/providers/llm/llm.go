package llm

import "context"

// Turn is one conversation turn in storage vocabulary ("user"|"assistant").
// Provider implementations translate roles at their own boundary; the
// provider vocabulary never leaks back into storage.
type Turn struct {
	Role    string
	Content string
}

type Provider interface {
	// Generate produces a single reply for the oldest-first history.
	// One call per request; no streaming, no retries.
	Generate(ctx context.Context, history []Turn) (string, error)
	Close() error
}
