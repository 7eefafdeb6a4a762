package narration

import (
	"context"
	"log"
	"strings"

	"github.com/Swayamk2912/gen-ai/store"
	"github.com/Swayamk2912/gen-ai/translate"
)

// maxNarrationLength caps the concatenated narration text.
const maxNarrationLength = 3000

// Part is one rendered narration sentence tied to a single slide element.
type Part struct {
	Kind    Kind   `json:"kind"`
	Text    string `json:"text"`
	Source  string `json:"source_element"`
	Ordinal int    `json:"ordinal"`
}

// Result is the full narration for one slide.
type Result struct {
	FullText string    `json:"full_text"`
	Parts    []Part    `json:"parts"`
	Segments []Segment `json:"segments"`
	Language string    `json:"language"`
	Tone     string    `json:"tone"`
}

// Service renders narration. It is stateless; every call restructures the
// slide from scratch.
type Service struct {
	translator translate.Translator
	logger     *log.Logger
}

func NewService(translator translate.Translator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{translator: translator, logger: logger}
}

// Generate produces narration parts, the concatenated narration text, and the
// playback timeline for one slide. Deterministic for fixed inputs and a
// deterministic translator; the surrounding slide set is accepted for
// interface parity with the request layer but does not affect the output.
func (s *Service) Generate(ctx context.Context, slide store.Slide, _ []store.Slide, tone, language string) Result {
	if language == "" {
		language = defaultLanguage
	}
	if tone == "" {
		tone = ToneFormal
	}

	title := slide.Title
	content := slide.Content
	if language != defaultLanguage {
		if strings.TrimSpace(title) != "" {
			title = s.translator.Translate(ctx, title, language, "auto")
		}
		if strings.TrimSpace(content) != "" {
			content = s.translator.Translate(ctx, content, language, "auto")
		}
	}

	structure := StructureSlide(title, content)
	set, builtin := lookupTemplates(language, tone)

	parts := make([]Part, 0, 8)
	add := func(kind Kind, source string, ordinal int) {
		rendered := renderPart(set, kind, source, ordinal)
		if !builtin {
			rendered = s.translator.Translate(ctx, rendered, language, defaultLanguage)
		}
		parts = append(parts, Part{Kind: kind, Text: rendered, Source: source, Ordinal: ordinal})
	}

	if structure.Title != "" {
		add(KindTitle, structure.Title, 1)
	}
	for i, h := range structure.Headings {
		add(KindHeading, h, i+1)
	}
	for i, b := range structure.BulletPoints {
		add(KindBullet, b, i+1)
	}
	for i, n := range structure.NumberedItems {
		add(KindNumbered, n, i+1)
	}
	for i, p := range structure.Paragraphs {
		add(KindParagraph, p, i+1)
	}

	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.Text
	}

	return Result{
		FullText: truncate(strings.Join(texts, " "), maxNarrationLength),
		Parts:    parts,
		Segments: Timeline(parts, language),
		Language: language,
		Tone:     tone,
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
