package database

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
)

// embeddingDimensions matches text-embedding-ada-002 output.
const embeddingDimensions = 1536

// EnsureSchema creates the pgvector extension, the documents table, and the
// cosine-distance index. Safe to run repeatedly.
func (db *DB) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS documents (
			id bigserial PRIMARY KEY,
			content text NOT NULL,
			embedding vector(%d) NOT NULL,
			url text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT NOW()
		)`, embeddingDimensions),
		`CREATE INDEX IF NOT EXISTS documents_embedding_idx
			ON documents USING ivfflat (embedding vector_cosine_ops)`,
	}

	for _, statement := range statements {
		if _, err := db.Pool.Exec(ctx, statement); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}

// InsertDocument appends one embedding record. Inserts are append-only and
// not idempotent: re-ingesting the same URL set creates duplicate rows.
func (db *DB) InsertDocument(ctx context.Context, content string, embedding []float32, url string) error {
	query := `INSERT INTO documents (content, embedding, url) VALUES ($1, $2, $3)`

	_, err := db.Pool.Exec(ctx, query, content, pgvector.NewVector(embedding), url)
	if err != nil {
		return fmt.Errorf("failed to insert document chunk: %w", err)
	}

	return nil
}

// MatchDocuments returns stored chunks ranked by descending cosine
// similarity to queryEmbedding, excluding scores at or below threshold and
// capped at limit rows.
func (db *DB) MatchDocuments(ctx context.Context, queryEmbedding []float32, threshold float64, limit int) ([]Match, error) {
	vector := pgvector.NewVector(queryEmbedding)

	query := `
	SELECT
	  content,
	  url,
	  1 - (embedding <=> $1) AS similarity
	FROM documents
	WHERE 1 - (embedding <=> $1) > $2
	ORDER BY embedding <=> $1 ASC
	LIMIT $3`

	rows, err := db.Pool.Query(ctx, query, vector, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("unable to query the database: %w", err)
	}

	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var match Match

		if err := rows.Scan(&match.Content, &match.URL, &match.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}

		matches = append(matches, match)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return matches, nil
}
