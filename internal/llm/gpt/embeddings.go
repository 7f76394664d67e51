package gpt

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
)

// EmbedQuery generates the embedding vector for a single text. Newlines are
// replaced with spaces before submission; embedding models score literal
// newlines poorly.
func (c *Client) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	input := strings.ReplaceAll(text, "\n", " ")

	output, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(input)},
		Model: openai.EmbeddingModel(c.config.EmbeddingModel),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create embedding. Error: %w", err)
	}

	if len(output.Data) == 0 {
		return nil, fmt.Errorf("no embedding in response")
	}

	raw := output.Data[0].Embedding
	embedding := make([]float32, len(raw))
	for i, v := range raw {
		embedding[i] = float32(v)
	}

	return embedding, nil
}
