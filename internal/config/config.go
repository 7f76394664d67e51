package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every recognized environment option. Defaults are applied at
// load time; Validate reports the settings that have no usable default.
type Config struct {
	OpenAIKey     string
	OpenAIBaseURL string

	EmbeddingModel      string
	CompletionModel     string
	CompletionMaxTokens int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	SimilarityThreshold float64
	MatchCount          int
	ContextTokenBudget  int
	ChunkSize           int

	// RenderProxyURL, when set, routes page fetches through a rendering proxy
	// so JavaScript-heavy documentation sites return usable HTML.
	RenderProxyURL string

	Port     string
	LogLevel string
}

func Load() *Config {
	return &Config{
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),

		EmbeddingModel:      getEnv("EMBEDDING_MODEL", "text-embedding-ada-002"),
		CompletionModel:     getEnv("COMPLETION_MODEL", "gpt-3.5-turbo-instruct"),
		CompletionMaxTokens: getEnvInt("COMPLETION_MAX_TOKENS", 2000),

		DBHost:     getEnv("ANSWERBOT_DB_HOST", ""),
		DBPort:     getEnv("ANSWERBOT_DB_PORT", "5432"),
		DBUser:     getEnv("ANSWERBOT_DB_USER", ""),
		DBPassword: getEnv("ANSWERBOT_DB_PASSWORD", ""),
		DBName:     getEnv("ANSWERBOT_DB_DATABASE", ""),
		DBSSLMode:  getEnv("ANSWERBOT_DB_SSLMODE", "disable"),

		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", 0.1),
		MatchCount:          getEnvInt("MATCH_COUNT", 10),
		ContextTokenBudget:  getEnvInt("CONTEXT_TOKEN_BUDGET", 1500),
		ChunkSize:           getEnvInt("CHUNK_SIZE", 1000),

		RenderProxyURL: getEnv("RENDER_PROXY_URL", ""),

		Port:     getEnv("ANSWERBOT_API_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate fails fast on missing credentials so the process never serves
// requests with a partial configuration.
func (c *Config) Validate() error {
	var missing []string

	if c.OpenAIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.DBHost == "" {
		missing = append(missing, "ANSWERBOT_DB_HOST")
	}
	if c.DBUser == "" {
		missing = append(missing, "ANSWERBOT_DB_USER")
	}
	if c.DBName == "" {
		missing = append(missing, "ANSWERBOT_DB_DATABASE")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("SIMILARITY_THRESHOLD must be between 0 and 1, got %v", c.SimilarityThreshold)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}

	return nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		value = defaultValue
	}

	return value
}
