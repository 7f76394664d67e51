package setup

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/astrolabs/webdev-answerbot/internal/config"
	"github.com/astrolabs/webdev-answerbot/internal/database"
	"github.com/astrolabs/webdev-answerbot/internal/ingestion"
	"github.com/astrolabs/webdev-answerbot/internal/llm/gpt"
	"github.com/astrolabs/webdev-answerbot/internal/rag"
)

type Dependencies struct {
	DB       *database.DB
	Pipeline *ingestion.Pipeline
	RAG      *rag.Service
	Logger   *zerolog.Logger
}

// Wire builds every component from a validated configuration. Construction
// is explicit here rather than scattered across package-level globals, so a
// missing setting fails once, at startup.
func Wire(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	db, err := database.NewWithBackoff(ctx, database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gptClient, err := gpt.NewClient(gpt.Config{
		APIKey:          cfg.OpenAIKey,
		BaseURL:         cfg.OpenAIBaseURL,
		EmbeddingModel:  cfg.EmbeddingModel,
		CompletionModel: cfg.CompletionModel,
		MaxTokens:       cfg.CompletionMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	tokenizer, err := rag.NewTiktokenCounter(cfg.CompletionModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer: %w", err)
	}

	fetcher := ingestion.NewFetcher(&http.Client{Timeout: 30 * time.Second}, cfg.RenderProxyURL)
	chunker := ingestion.NewChunker(cfg.ChunkSize)
	pipeline := ingestion.NewPipeline(fetcher, chunker, gptClient, db, logger)

	assembler := rag.NewAssembler(tokenizer)
	ragService := rag.NewService(gptClient, db, assembler, gptClient, rag.Options{
		SimilarityThreshold: cfg.SimilarityThreshold,
		MatchCount:          cfg.MatchCount,
		ContextTokenBudget:  cfg.ContextTokenBudget,
	}, logger)

	return &Dependencies{
		DB:       db,
		Pipeline: pipeline,
		RAG:      ragService,
		Logger:   logger,
	}, nil
}

func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
