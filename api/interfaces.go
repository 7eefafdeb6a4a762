package api

import (
	"context"

	"github.com/Swayamk2912/gen-ai/narration"
	"github.com/Swayamk2912/gen-ai/store"
	"github.com/Swayamk2912/gen-ai/summary"
)

// Narrator generates narration for one slide.
type Narrator interface {
	Generate(ctx context.Context, slide store.Slide, slides []store.Slide, tone, language string) narration.Result
}

// SpeechSynthesizer turns narration text into an audio file path.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, language, voice string) (string, error)
}

// Answerer composes an answer to a question about a slide.
type Answerer interface {
	Answer(ctx context.Context, question string, slide store.Slide, slides []store.Slide, qaLogs []store.QARecord, language, tone string) string
}

// TextTranslator is the translation collaborator surface the handlers use.
type TextTranslator interface {
	DetectLanguage(text string) string
	Translate(ctx context.Context, text, target, source string) string
}

// SummaryReporter generates the AI summary report.
type SummaryReporter interface {
	AIReport(ctx context.Context, pres store.Presentation, slides []store.Slide, qaLogs []store.QARecord, language string) summary.AIReport
}

// QueryEmbedder embeds text for the slide search endpoint.
type QueryEmbedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// NarrationStore is the slice of the store the narration handler needs.
type NarrationStore interface {
	GetSlides(ctx context.Context, presentationID string) ([]store.Slide, error)
	UpdateSlideNarration(ctx context.Context, presentationID string, index int, narration, audioPath string) error
}

// QAStore is the slice of the store the Q&A handler needs.
type QAStore interface {
	GetSlides(ctx context.Context, presentationID string) ([]store.Slide, error)
	GetQALogs(ctx context.Context, presentationID string) ([]store.QARecord, error)
	AppendQALog(ctx context.Context, presentationID string, index int, question, answer string) error
}

// PresentationStore is the slice of the store the presentation handler needs.
type PresentationStore interface {
	SavePresentation(ctx context.Context, id, filename string) error
	GetPresentation(ctx context.Context, id string) (store.Presentation, error)
	SaveSlide(ctx context.Context, presentationID string, index int, title, content string) error
	GetSlides(ctx context.Context, presentationID string) ([]store.Slide, error)
	SaveSlideEmbedding(ctx context.Context, presentationID string, index int, embedding []float32) error
	SearchSlides(ctx context.Context, presentationID string, embedding []float32, limit int) ([]store.SlideMatch, error)
}

// SummaryStore is the slice of the store the summary handler needs.
type SummaryStore interface {
	GetPresentation(ctx context.Context, id string) (store.Presentation, error)
	GetSlides(ctx context.Context, presentationID string) ([]store.Slide, error)
	GetQALogs(ctx context.Context, presentationID string) ([]store.QARecord, error)
}
