package ingestion

import (
	"context"

	"github.com/rs/zerolog"
)

// PageFetcher downloads a page and returns its extracted body text.
type PageFetcher interface {
	FetchText(ctx context.Context, pageURL string) (string, error)
}

// Embedder produces the vector for one chunk of text.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// DocumentStore appends one (content, embedding, url) record.
type DocumentStore interface {
	InsertDocument(ctx context.Context, content string, embedding []float32, url string) error
}

// Pipeline runs fetch, chunk, embed, store for a batch of source URLs.
// Processing is strictly sequential across URLs and across chunks within a
// URL: one embed-then-insert round trip at a time, preserving insertion
// order and keeping the hosted embedding API at a gentle request rate.
type Pipeline struct {
	fetcher  PageFetcher
	chunker  *Chunker
	embedder Embedder
	store    DocumentStore
	logger   *zerolog.Logger
}

func NewPipeline(
	fetcher PageFetcher,
	chunker *Chunker,
	embedder Embedder,
	store DocumentStore,
	logger *zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		fetcher:  fetcher,
		chunker:  chunker,
		embedder: embedder,
		store:    store,
		logger:   logger,
	}
}

// URLResult summarizes one URL's outcome. FetchErr is set when the page
// could not be fetched at all; Failed counts chunks whose embed or insert
// call failed and was skipped.
type URLResult struct {
	URL      string
	Chunks   int
	Stored   int
	Failed   int
	FetchErr error
}

// Ingest processes urls in order. Failures are logged and skipped so one bad
// page or one upstream hiccup never aborts the rest of the batch.
func (p *Pipeline) Ingest(ctx context.Context, urls []string) []URLResult {
	results := make([]URLResult, 0, len(urls))

	for _, pageURL := range urls {
		result := p.ingestURL(ctx, pageURL)
		results = append(results, result)

		p.logger.Info().
			Str("url", result.URL).
			Int("chunks", result.Chunks).
			Int("stored", result.Stored).
			Int("failed", result.Failed).
			Msg("URL processed")
	}

	return results
}

func (p *Pipeline) ingestURL(ctx context.Context, pageURL string) URLResult {
	result := URLResult{URL: pageURL}

	text, err := p.fetcher.FetchText(ctx, pageURL)
	if err != nil {
		p.logger.Error().Err(err).Str("url", pageURL).Msg("Failed to fetch page, skipping")
		result.FetchErr = err
		return result
	}

	chunks := p.chunker.Chunk(text)
	result.Chunks = len(chunks)

	for _, chunk := range chunks {
		embedding, err := p.embedder.EmbedQuery(ctx, chunk.Content)
		if err != nil {
			p.logger.Error().Err(err).
				Str("url", pageURL).
				Int("chunk_index", chunk.Index).
				Msg("Failed to generate embedding, skipping chunk")
			result.Failed++
			continue
		}

		if err := p.store.InsertDocument(ctx, chunk.Content, embedding, pageURL); err != nil {
			p.logger.Error().Err(err).
				Str("url", pageURL).
				Int("chunk_index", chunk.Index).
				Msg("Failed to store chunk, skipping")
			result.Failed++
			continue
		}

		result.Stored++
	}

	return result
}
