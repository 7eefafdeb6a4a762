package store

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
)

// SlideMatch is one result of a vector search over a presentation's slides.
type SlideMatch struct {
	Index   int
	Title   string
	Content string
	Score   float64
}

func (s *Store) SaveSlideEmbedding(ctx context.Context, presentationID string, index int, embedding []float32) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO slide_embeddings (presentation_id, slide_index, embedding)
		VALUES ($1, $2, $3)
		ON CONFLICT (presentation_id, slide_index)
		DO UPDATE SET embedding = EXCLUDED.embedding
	`, presentationID, index, pgvector.NewVector(embedding))
	if err != nil {
		return fmt.Errorf("save slide embedding: %w", err)
	}
	return nil
}

// SearchSlides returns the slides of one presentation nearest to the query
// embedding, best first. Distance is converted to a 0..1 score.
func (s *Store) SearchSlides(ctx context.Context, presentationID string, embedding []float32, limit int) ([]SlideMatch, error) {
	if len(embedding) == 0 {
		return nil, fmt.Errorf("embedding is empty")
	}
	if limit <= 0 {
		limit = 3
	}

	rows, err := s.pool.Query(ctx, `
		SELECT sl.slide_index, sl.title, sl.content,
			(se.embedding <-> $2::vector) AS distance
		FROM slide_embeddings se
		JOIN slides sl ON sl.presentation_id = se.presentation_id
			AND sl.slide_index = se.slide_index
		WHERE se.presentation_id = $1
		ORDER BY se.embedding <-> $2::vector
		LIMIT $3
	`, presentationID, pgvector.NewVector(embedding), limit)
	if err != nil {
		return nil, fmt.Errorf("query slide embeddings: %w", err)
	}
	defer rows.Close()

	matches := make([]SlideMatch, 0, limit)
	for rows.Next() {
		var m SlideMatch
		var distance float64
		if err := rows.Scan(&m.Index, &m.Title, &m.Content, &distance); err != nil {
			return nil, fmt.Errorf("scan slide match: %w", err)
		}
		m.Score = 1 / (1 + distance)
		matches = append(matches, m)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return matches, nil
}
