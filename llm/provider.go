package llm

import "context"

// CompletionProvider is the interface every model backend must implement.
// Complete is synchronous and blocking; the reasoning loop makes exactly
// one call per iteration. Implementations must be safe for concurrent use
// so that independent runs can share one provider.
type CompletionProvider interface {
	// Name returns the provider identifier (e.g. "openai", "anthropic").
	Name() string

	// Complete sends the conversation and tool schemas to the model and
	// returns its full response. Transport failures (auth, rate limit,
	// network) return an error from this package's taxonomy; they are
	// never retried here.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Closer is implemented by providers that hold releasable resources.
type Closer interface {
	Close() error
}
