package llm

import (
	"context"

	"github.com/astrolabs/webdev-answerbot/internal/stream"
)

// Embedder converts text into a fixed-length vector via a hosted embedding
// model. Implementations make a single network call and do not retry; the
// caller decides whether a failure aborts the operation or skips the item.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Completer sends a prompt to a hosted completion model configured for
// incremental delivery and returns the live fragment stream without
// buffering it first.
type Completer interface {
	StreamCompletion(ctx context.Context, prompt string) (stream.Stream, error)
}
