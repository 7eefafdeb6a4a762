// Package store persists presentations, slides, and Q&A logs in Postgres.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a presentation or slide does not exist.
var ErrNotFound = errors.New("not found")

type Presentation struct {
	ID       string
	Filename string
}

type Slide struct {
	Index     int
	Title     string
	Content   string
	Narration string
	AudioPath string
}

type QARecord struct {
	PresentationID string
	SlideIndex     int
	Question       string
	Answer         string
}

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	return &Store{pool: pool}, nil
}

func NewWithPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) SavePresentation(ctx context.Context, id, filename string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO presentations (id, filename) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET filename = EXCLUDED.filename
	`, id, filename)
	if err != nil {
		return fmt.Errorf("save presentation: %w", err)
	}
	return nil
}

func (s *Store) GetPresentation(ctx context.Context, id string) (Presentation, error) {
	var p Presentation
	err := s.pool.QueryRow(ctx,
		"SELECT id, filename FROM presentations WHERE id = $1", id,
	).Scan(&p.ID, &p.Filename)
	if errors.Is(err, pgx.ErrNoRows) {
		return Presentation{}, ErrNotFound
	}
	if err != nil {
		return Presentation{}, fmt.Errorf("get presentation: %w", err)
	}
	return p, nil
}

func (s *Store) SaveSlide(ctx context.Context, presentationID string, index int, title, content string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO slides (presentation_id, slide_index, title, content)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (presentation_id, slide_index)
		DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content
	`, presentationID, index, title, content)
	if err != nil {
		return fmt.Errorf("save slide: %w", err)
	}
	return nil
}

// GetSlides returns the presentation's slides ordered by slide index.
func (s *Store) GetSlides(ctx context.Context, presentationID string) ([]Slide, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT slide_index, title, content, COALESCE(narration, ''), COALESCE(audio_path, '')
		FROM slides
		WHERE presentation_id = $1
		ORDER BY slide_index
	`, presentationID)
	if err != nil {
		return nil, fmt.Errorf("query slides: %w", err)
	}
	defer rows.Close()

	var slides []Slide
	for rows.Next() {
		var sl Slide
		if err := rows.Scan(&sl.Index, &sl.Title, &sl.Content, &sl.Narration, &sl.AudioPath); err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		slides = append(slides, sl)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return slides, nil
}

func (s *Store) UpdateSlideNarration(ctx context.Context, presentationID string, index int, narration, audioPath string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE slides SET narration = $1, audio_path = $2
		WHERE presentation_id = $3 AND slide_index = $4
	`, narration, audioPath, presentationID, index)
	if err != nil {
		return fmt.Errorf("update slide narration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) AppendQALog(ctx context.Context, presentationID string, index int, question, answer string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO qa_logs (presentation_id, slide_index, question, answer)
		VALUES ($1, $2, $3, $4)
	`, presentationID, index, question, answer)
	if err != nil {
		return fmt.Errorf("append qa log: %w", err)
	}
	return nil
}

// GetQALogs returns the presentation's Q&A records in insertion order.
func (s *Store) GetQALogs(ctx context.Context, presentationID string) ([]QARecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT presentation_id, slide_index, question, answer
		FROM qa_logs
		WHERE presentation_id = $1
		ORDER BY id
	`, presentationID)
	if err != nil {
		return nil, fmt.Errorf("query qa logs: %w", err)
	}
	defer rows.Close()

	var records []QARecord
	for rows.Next() {
		var r QARecord
		if err := rows.Scan(&r.PresentationID, &r.SlideIndex, &r.Question, &r.Answer); err != nil {
			return nil, fmt.Errorf("scan qa log: %w", err)
		}
		records = append(records, r)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return records, nil
}
