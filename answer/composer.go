// Package answer composes grounded answers to free-text questions about a
// presentation, using retrieval over its slides and Q&A history.
package answer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Swayamk2912/gen-ai/rag"
	"github.com/Swayamk2912/gen-ai/store"
	"github.com/Swayamk2912/gen-ai/translate"
)

const (
	maxAnswerLength   = 3000
	maxContextLength  = 600
	maxFallbackLength = 400
)

type Composer struct {
	translator translate.Translator
	ranker     *rag.Ranker
	logger     *log.Logger
}

func NewComposer(translator translate.Translator, ranker *rag.Ranker, logger *log.Logger) *Composer {
	if logger == nil {
		logger = log.Default()
	}
	return &Composer{translator: translator, ranker: ranker, logger: logger}
}

// Answer classifies the question, retrieves the best-matching corpus
// documents, and fills the matching answer template. It always returns a
// non-empty string: when retrieval comes back empty the slide's own content
// answers the question. Tone is accepted for interface parity with narration
// but does not change answer wording.
func (c *Composer) Answer(ctx context.Context, question string, slide store.Slide, slides []store.Slide, qaLogs []store.QARecord, language, tone string) string {
	if language == "" {
		language = "en"
	}

	composed, ok := c.compose(ctx, question, slide, slides, qaLogs, language)
	if !ok {
		composed = c.fallbackAnswer(slide, language)
	}
	if strings.TrimSpace(composed) == "" {
		composed = c.fallbackAnswer(slide, language)
	}
	return truncate(composed, maxAnswerLength)
}

func (c *Composer) compose(ctx context.Context, question string, slide store.Slide, slides []store.Slide, qaLogs []store.QARecord, language string) (string, bool) {
	detected := c.translator.DetectLanguage(question)

	retrievalQuestion := question
	if detected != "en" {
		retrievalQuestion = c.translator.Translate(ctx, question, "en", detected)
	}

	category := classify(question, retrievalQuestion, detected)

	docs := rag.BuildCorpus(slides, qaLogs)
	contexts := c.ranker.TopK(ctx, retrievalQuestion, docs, rag.DefaultK)
	if len(contexts) == 0 {
		return "", false
	}

	texts := make([]string, len(contexts))
	for i, con := range contexts {
		texts[i] = con.Text
	}
	contextText := truncate(strings.Join(texts, "\n---\n"), maxContextLength)

	templateLang := language
	byCategory, builtin := answerTemplates[templateLang]
	if !builtin {
		templateLang = "en"
		byCategory = answerTemplates[templateLang]
	}

	answer := fmt.Sprintf(byCategory[category], slideTitle(slide, templateLang), contextText)
	if !builtin {
		answer = c.translator.Translate(ctx, answer, language, "en")
	}
	return answer, true
}

func (c *Composer) fallbackAnswer(slide store.Slide, language string) string {
	tmplLang := language
	tmpl, ok := fallbackTemplates[tmplLang]
	if !ok {
		tmplLang = "en"
		tmpl = fallbackTemplates[tmplLang]
	}
	answer := fmt.Sprintf(tmpl, slideTitle(slide, tmplLang), truncate(slide.Content, maxFallbackLength))
	if strings.TrimSpace(answer) == "" {
		answer = fmt.Sprintf("About '%s'.", slideTitle(slide, "en"))
	}
	return answer
}

// classify inspects the original question in its detected language first,
// then the English rendering, and defaults to general.
func classify(original, translated, detectedLanguage string) Category {
	if keywords, ok := questionKeywords[detectedLanguage]; ok && detectedLanguage != "en" {
		if cat, found := matchCategory(original, keywords); found {
			return cat
		}
	}
	if cat, found := matchCategory(translated, questionKeywords["en"]); found {
		return cat
	}
	return CategoryGeneral
}

func matchCategory(question string, keywords map[Category][]string) (Category, bool) {
	lowered := strings.ToLower(question)
	for _, cat := range categoryOrder {
		for _, kw := range keywords[cat] {
			if strings.Contains(lowered, kw) {
				return cat, true
			}
		}
	}
	return CategoryGeneral, false
}

func slideTitle(slide store.Slide, language string) string {
	if strings.TrimSpace(slide.Title) != "" {
		return slide.Title
	}
	if name, ok := untitledSlide[language]; ok {
		return name
	}
	return untitledSlide["en"]
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
