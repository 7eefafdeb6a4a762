// Package rag builds a retrieval corpus from presentation data and ranks it
// against free-text questions.
package rag

import (
	"fmt"
	"strings"

	"github.com/Swayamk2912/gen-ai/store"
)

// BuildCorpus flattens slides and Q&A history into one document list: slides
// in display order, then Q&A pairs in log order. A document's position in
// the list is its identifier for ranking. Fully empty slides and Q&A pairs
// are skipped.
func BuildCorpus(slides []store.Slide, qaLogs []store.QARecord) []string {
	docs := make([]string, 0, len(slides)+len(qaLogs))

	for _, s := range slides {
		if strings.TrimSpace(s.Title) == "" && strings.TrimSpace(s.Content) == "" {
			continue
		}
		docs = append(docs, fmt.Sprintf("%s\n%s", s.Title, s.Content))
	}

	for _, qa := range qaLogs {
		if strings.TrimSpace(qa.Question) == "" && strings.TrimSpace(qa.Answer) == "" {
			continue
		}
		docs = append(docs, fmt.Sprintf("Q: %s\nA: %s", qa.Question, qa.Answer))
	}

	return docs
}
