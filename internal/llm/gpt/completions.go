package gpt

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/ssestream"

	"github.com/astrolabs/webdev-answerbot/internal/stream"
)

// StreamCompletion sends the prompt to the completion API with greedy
// sampling (temperature 0, top_p 1, no penalties, single candidate) and
// returns the live fragment stream. Fragments are forwarded as they arrive,
// never accumulated here.
func (c *Client) StreamCompletion(ctx context.Context, prompt string) (stream.Stream, error) {
	events := c.client.Completions.NewStreaming(ctx, openai.CompletionNewParams{
		Model:            openai.CompletionNewParamsModel(c.config.CompletionModel),
		Prompt:           openai.CompletionNewParamsPromptUnion{OfString: openai.String(prompt)},
		MaxTokens:        openai.Int(int64(c.config.MaxTokens)),
		Temperature:      openai.Float(0),
		TopP:             openai.Float(1),
		FrequencyPenalty: openai.Float(0),
		PresencePenalty:  openai.Float(0),
		N:                openai.Int(1),
	})

	if err := events.Err(); err != nil {
		return nil, fmt.Errorf("unable to invoke completion model. Error: %w", err)
	}

	return &completionStream{events: events}, nil
}

// completionStream adapts the SSE event stream to the fragment stream
// contract: one text fragment per event, transport errors via Err.
type completionStream struct {
	events  *ssestream.Stream[openai.Completion]
	current string
}

func (s *completionStream) Next() bool {
	for s.events.Next() {
		chunk := s.events.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		s.current = chunk.Choices[0].Text
		return true
	}
	return false
}

func (s *completionStream) Current() string { return s.current }

func (s *completionStream) Err() error { return s.events.Err() }
