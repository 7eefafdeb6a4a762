package store

import (
	"context"
	"fmt"
)

// EnsureSchema creates the presentation tables. The slide_embeddings table is
// only created when an embedding dimension is configured; the rest of the
// store works without the pgvector extension.
func (s *Store) EnsureSchema(ctx context.Context, dimension int) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS presentations (
			id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS slides (
			presentation_id TEXT NOT NULL REFERENCES presentations(id) ON DELETE CASCADE,
			slide_index INT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			narration TEXT,
			audio_path TEXT,
			PRIMARY KEY (presentation_id, slide_index)
		)`,
		`CREATE TABLE IF NOT EXISTS qa_logs (
			id BIGSERIAL PRIMARY KEY,
			presentation_id TEXT NOT NULL,
			slide_index INT NOT NULL,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_qa_logs_presentation ON qa_logs(presentation_id, id)",
	}

	if dimension > 0 {
		stmts = append(stmts,
			"CREATE EXTENSION IF NOT EXISTS vector",
			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS slide_embeddings (
				presentation_id TEXT NOT NULL,
				slide_index INT NOT NULL,
				embedding VECTOR(%d) NOT NULL,
				PRIMARY KEY (presentation_id, slide_index)
			)`, dimension),
		)
	}

	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("execute schema statement: %w", err)
		}
	}
	return nil
}
