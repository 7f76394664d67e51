package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Config carries the fixed model identifiers and sampling limits for the
// hosted embedding and completion APIs.
type Config struct {
	APIKey          string
	BaseURL         string
	EmbeddingModel  string
	CompletionModel string
	// MaxTokens caps completion generation length.
	MaxTokens int
}

type Client struct {
	client openai.Client
	config Config
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if cfg.EmbeddingModel == "" {
		return nil, fmt.Errorf("embedding model ID is required")
	}
	if cfg.CompletionModel == "" {
		return nil, fmt.Errorf("completion model ID is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client: openai.NewClient(opts...),
		config: cfg,
	}, nil
}
