package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/astrolabs/webdev-answerbot/internal/answer"
	"github.com/astrolabs/webdev-answerbot/internal/stream"
)

func main() {
	question := flag.String("question", "", "The question to ask")
	server := flag.String("server", "http://localhost:8080", "Answerbot API base URL")
	flag.Parse()

	if *question == "" {
		log.Fatal().Msg("Please provide a question using -question")
	}

	body, err := json.Marshal(map[string]string{"question": *question})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode request")
	}

	resp, err := http.Post(*server+"/api/docs", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatal().Err(err).Msg("Request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		message, _ := io.ReadAll(resp.Body)
		log.Fatal().Int("status", resp.StatusCode).Str("body", string(message)).Msg("Server returned an error")
	}

	// Print fragments as they arrive, keeping the full text for the
	// sources breakdown afterwards.
	var full strings.Builder
	fragments := stream.FromReader(resp.Body)
	for fragments.Next() {
		fmt.Print(fragments.Current())
		full.WriteString(fragments.Current())
	}
	fmt.Println()

	if err := fragments.Err(); err != nil {
		log.Fatal().Err(err).Msg("Stream aborted")
	}
	if full.Len() == 0 {
		log.Fatal().Msg("Empty answer stream")
	}

	parsed := answer.Parse(full.String())
	if len(parsed.Sources) == 0 {
		return
	}

	fmt.Fprintln(os.Stdout, "\nSources:")
	for _, source := range parsed.Sources {
		if source.IsLink {
			fmt.Printf("  - %s\n", source.URL)
		} else {
			fmt.Printf("  - %s (not a link)\n", source.URL)
		}
	}
}
