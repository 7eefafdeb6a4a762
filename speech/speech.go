// Package speech turns narration text into audio files.
package speech

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Synthesizer produces an audio file for the given text and returns its
// path. Implementations must be best-effort: a degraded placeholder file is
// acceptable, a hard failure is not.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language, voice string) (string, error)
}

// placeholderHeader makes the fallback file look enough like an mp3 that
// players fail gracefully instead of erroring on an empty body.
var placeholderHeader = []byte("ID3")

// Service writes tts_<uuid>.mp3 files into its directory. When a provider is
// configured it does real synthesis; any provider failure degrades to a
// placeholder file so narration responses never break.
type Service struct {
	provider Provider
	dir      string
	logger   *log.Logger
}

// Provider is one speech backend attempt.
type Provider interface {
	Speak(ctx context.Context, text, language, voice string, w *os.File) error
}

func NewService(provider Provider, dir string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{provider: provider, dir: dir, logger: logger}
}

func (s *Service) Synthesize(ctx context.Context, text, language, voice string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("tts_%s.mp3", uuid.New().String()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	defer f.Close()

	if s.provider != nil {
		if err := s.provider.Speak(ctx, text, language, voice, f); err == nil {
			return path, nil
		} else {
			s.logger.Printf("speech synthesis failed, writing placeholder: %v", err)
		}
	}

	if err := f.Truncate(0); err != nil {
		return "", fmt.Errorf("reset audio file: %w", err)
	}
	if _, err := f.WriteAt(placeholderHeader, 0); err != nil {
		return "", fmt.Errorf("write placeholder audio: %w", err)
	}
	return path, nil
}

var _ Synthesizer = (*Service)(nil)
