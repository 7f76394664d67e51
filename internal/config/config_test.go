package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ANSWERBOT_DB_HOST", "localhost")
	t.Setenv("ANSWERBOT_DB_USER", "postgres")
	t.Setenv("ANSWERBOT_DB_DATABASE", "answerbot")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg := Load()

	if cfg.EmbeddingModel != "text-embedding-ada-002" {
		t.Errorf("EmbeddingModel = %q", cfg.EmbeddingModel)
	}
	if cfg.CompletionModel != "gpt-3.5-turbo-instruct" {
		t.Errorf("CompletionModel = %q", cfg.CompletionModel)
	}
	if cfg.CompletionMaxTokens != 2000 {
		t.Errorf("CompletionMaxTokens = %d", cfg.CompletionMaxTokens)
	}
	if cfg.SimilarityThreshold != 0.1 {
		t.Errorf("SimilarityThreshold = %v", cfg.SimilarityThreshold)
	}
	if cfg.MatchCount != 10 {
		t.Errorf("MatchCount = %d", cfg.MatchCount)
	}
	if cfg.ContextTokenBudget != 1500 {
		t.Errorf("ContextTokenBudget = %d", cfg.ContextTokenBudget)
	}
	if cfg.ChunkSize != 1000 {
		t.Errorf("ChunkSize = %d", cfg.ChunkSize)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DBPort != "5432" {
		t.Errorf("DBPort = %q", cfg.DBPort)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SIMILARITY_THRESHOLD", "0.25")
	t.Setenv("MATCH_COUNT", "5")
	t.Setenv("CHUNK_SIZE", "500")
	t.Setenv("ANSWERBOT_API_PORT", "9090")

	cfg := Load()

	if cfg.SimilarityThreshold != 0.25 {
		t.Errorf("SimilarityThreshold = %v", cfg.SimilarityThreshold)
	}
	if cfg.MatchCount != 5 {
		t.Errorf("MatchCount = %d", cfg.MatchCount)
	}
	if cfg.ChunkSize != 500 {
		t.Errorf("ChunkSize = %d", cfg.ChunkSize)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
}

func TestLoad_MalformedNumberFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("MATCH_COUNT", "ten")

	if got := Load().MatchCount; got != 10 {
		t.Errorf("MatchCount = %d, want default 10", got)
	}
}

func TestValidate_MissingVars(t *testing.T) {
	cfg := &Config{
		SimilarityThreshold: 0.1,
		ChunkSize:           1000,
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty config")
	}

	for _, name := range []string{"OPENAI_API_KEY", "ANSWERBOT_DB_HOST", "ANSWERBOT_DB_USER", "ANSWERBOT_DB_DATABASE"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
}

func TestValidate_Ranges(t *testing.T) {
	base := Config{
		OpenAIKey: "sk-test",
		DBHost:    "localhost",
		DBUser:    "postgres",
		DBName:    "answerbot",
		ChunkSize: 1000,
	}

	cfg := base
	cfg.SimilarityThreshold = 1.5
	if cfg.Validate() == nil {
		t.Error("expected error for out-of-range threshold")
	}

	cfg = base
	cfg.SimilarityThreshold = 0.1
	cfg.ChunkSize = 0
	if cfg.Validate() == nil {
		t.Error("expected error for non-positive chunk size")
	}

	cfg = base
	cfg.SimilarityThreshold = 0.1
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
