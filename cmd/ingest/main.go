package main

import (
	"bufio"
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/astrolabs/webdev-answerbot/internal/config"
	"github.com/astrolabs/webdev-answerbot/internal/setup"
	"github.com/astrolabs/webdev-answerbot/internal/setup/logger"
)

func main() {
	urlFile := flag.String("file", "", "Path to a file with one URL per line")
	initSchema := flag.Bool("init", false, "Create the pgvector schema before ingesting")
	flag.Parse()

	envErr := godotenv.Load()

	cfg := config.Load()

	logger := logger.New(cfg.LogLevel)
	log.Logger = logger

	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	urls := flag.Args()
	if *urlFile != "" {
		fileURLs, err := readURLs(*urlFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *urlFile).Msg("Failed to read URL list")
		}
		urls = append(urls, fileURLs...)
	}

	if len(urls) == 0 && !*initSchema {
		log.Fatal().Msg("Provide URLs as arguments or via -file")
	}

	ctx := context.Background()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.Close()

	if *initSchema {
		if err := deps.DB.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize schema")
		}
		log.Info().Msg("Schema ready")
	}

	if len(urls) == 0 {
		return
	}

	results := deps.Pipeline.Ingest(ctx, urls)

	stored, failed := 0, 0
	for _, result := range results {
		stored += result.Stored
		failed += result.Failed
		if result.FetchErr != nil {
			failed++
		}
	}

	log.Info().
		Int("urls", len(results)).
		Int("chunks_stored", stored).
		Int("failures", failed).
		Msg("Ingestion complete")
}

func readURLs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}

	return urls, scanner.Err()
}
