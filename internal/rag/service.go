package rag

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/astrolabs/webdev-answerbot/internal/database"
	"github.com/astrolabs/webdev-answerbot/internal/llm"
	"github.com/astrolabs/webdev-answerbot/internal/stream"
)

// DocumentMatcher runs the similarity query against the vector store.
type DocumentMatcher interface {
	MatchDocuments(ctx context.Context, queryEmbedding []float32, threshold float64, limit int) ([]database.Match, error)
}

// Options carries the retrieval tuning knobs. The threshold and match count
// defaults are low-confidence and deliberately configurable rather than
// hard-coded.
type Options struct {
	SimilarityThreshold float64
	MatchCount          int
	ContextTokenBudget  int
}

// Service is the canonical query pipeline: embed the question, retrieve
// ranked matches, assemble a budgeted context, build the prompt, and return
// the live completion stream.
type Service struct {
	embedder  llm.Embedder
	matcher   DocumentMatcher
	assembler *Assembler
	completer llm.Completer
	options   Options
	logger    *zerolog.Logger
}

func NewService(
	embedder llm.Embedder,
	matcher DocumentMatcher,
	assembler *Assembler,
	completer llm.Completer,
	options Options,
	logger *zerolog.Logger,
) *Service {
	return &Service{
		embedder:  embedder,
		matcher:   matcher,
		assembler: assembler,
		completer: completer,
		options:   options,
		logger:    logger,
	}
}

// Answer runs two blocking round trips (embed, retrieve) and then hands the
// caller the completion stream before any fragment has been consumed.
// Embedding and retrieval errors propagate; there is no degraded mode.
func (s *Service) Answer(ctx context.Context, question string) (stream.Stream, error) {
	queryEmbedding, err := s.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("unable to embed question: %w", err)
	}

	matches, err := s.matcher.MatchDocuments(ctx, queryEmbedding, s.options.SimilarityThreshold, s.options.MatchCount)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve matching documents: %w", err)
	}

	contextText, included := s.assembler.Assemble(matches, s.options.ContextTokenBudget)

	s.logger.Debug().
		Int("matches", len(matches)).
		Int("included", included).
		Msg("Context assembled")

	prompt := BuildPrompt(contextText, question)

	return s.completer.StreamCompletion(ctx, prompt)
}
