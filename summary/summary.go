// Package summary produces presentation-level reports.
package summary

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Swayamk2912/gen-ai/llm"
	"github.com/Swayamk2912/gen-ai/store"
	"github.com/Swayamk2912/gen-ai/translate"
)

// Report is the plain, always-available presentation summary.
type Report struct {
	Title     string   `json:"title"`
	NumSlides int      `json:"num_slides"`
	Topics    []string `json:"topics"`
	QACount   int      `json:"qa_count"`
}

// AIReport extends Report with a generated abstract.
type AIReport struct {
	Report
	Abstract string `json:"abstract"`
	Language string `json:"language"`
}

// BuildReport computes the plain report from stored data.
func BuildReport(pres store.Presentation, slides []store.Slide, qaLogs []store.QARecord) Report {
	topics := make([]string, 0, len(slides))
	for _, s := range slides {
		if strings.TrimSpace(s.Title) != "" {
			topics = append(topics, s.Title)
		}
	}
	return Report{
		Title:     pres.Filename,
		NumSlides: len(slides),
		Topics:    topics,
		QACount:   len(qaLogs),
	}
}

// Reporter writes abstracts with an optional LLM; without one (or when the
// LLM call fails) it falls back to a templated abstract.
type Reporter struct {
	llm        llm.Client
	translator translate.Translator
	logger     *log.Logger
}

func NewReporter(client llm.Client, translator translate.Translator, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{llm: client, translator: translator, logger: logger}
}

func (r *Reporter) AIReport(ctx context.Context, pres store.Presentation, slides []store.Slide, qaLogs []store.QARecord, language string) AIReport {
	if language == "" {
		language = "en"
	}
	report := BuildReport(pres, slides, qaLogs)

	abstract, ok := r.generateAbstract(ctx, report, slides)
	if !ok {
		abstract = templatedAbstract(report)
	}
	if language != "en" {
		abstract = r.translator.Translate(ctx, abstract, language, "en")
	}

	return AIReport{Report: report, Abstract: abstract, Language: language}
}

func (r *Reporter) generateAbstract(ctx context.Context, report Report, slides []store.Slide) (string, bool) {
	if r.llm == nil {
		return "", false
	}

	var outline strings.Builder
	for _, s := range slides {
		title := s.Title
		if strings.TrimSpace(title) == "" {
			title = "Untitled"
		}
		fmt.Fprintf(&outline, "- %s\n", title)
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: "You summarize slide decks. Answer with a short abstract, three sentences at most."},
		{Role: llm.RoleUser, Content: fmt.Sprintf("Presentation: %s\nOutline:\n%s", report.Title, outline.String())},
	}

	abstract, err := r.llm.Generate(ctx, messages)
	if err != nil {
		r.logger.Printf("abstract generation failed, using template: %v", err)
		return "", false
	}
	if strings.TrimSpace(abstract) == "" {
		return "", false
	}
	return strings.TrimSpace(abstract), true
}

func templatedAbstract(report Report) string {
	if len(report.Topics) == 0 {
		return fmt.Sprintf("The presentation '%s' contains %d slides.", report.Title, report.NumSlides)
	}
	return fmt.Sprintf("The presentation '%s' covers %d slides on: %s.",
		report.Title, report.NumSlides, strings.Join(report.Topics, ", "))
}
