package rag

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
)

// englishStopWords mirrors the usual English stop list. Non-Latin tokens
// simply never match it, so stop-word filtering degrades to a no-op for
// scripts we have no list for.
var englishStopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "about", "above", "after", "again", "all", "am", "an", "and",
		"any", "are", "as", "at", "be", "because", "been", "before", "being",
		"below", "between", "both", "but", "by", "can", "did", "do", "does",
		"doing", "down", "during", "each", "few", "for", "from", "further",
		"had", "has", "have", "having", "he", "her", "here", "hers", "him",
		"his", "how", "i", "if", "in", "into", "is", "it", "its", "just",
		"me", "more", "most", "my", "no", "nor", "not", "now", "of", "off",
		"on", "once", "only", "or", "other", "our", "out", "over", "own",
		"same", "she", "should", "so", "some", "such", "than", "that", "the",
		"their", "them", "then", "there", "these", "they", "this", "those",
		"through", "to", "too", "under", "until", "up", "very", "was", "we",
		"were", "what", "when", "where", "which", "while", "who", "whom",
		"why", "will", "with", "you", "your",
	} {
		englishStopWords[w] = struct{}{}
	}
}

// LexicalStrategy scores documents by cosine similarity of term-frequency
// vectors over unigrams and bigrams.
type LexicalStrategy struct{}

func (LexicalStrategy) Name() string { return "lexical" }

func (LexicalStrategy) Rank(_ context.Context, query string, docs []string, k int) ([]Context, error) {
	queryVec := termFrequencies(query)
	if len(queryVec) == 0 {
		return nil, fmt.Errorf("query produced no indexable terms")
	}

	contexts := make([]Context, 0, len(docs))
	for i, doc := range docs {
		contexts = append(contexts, Context{
			Index: i,
			Score: cosineTF(queryVec, termFrequencies(doc)),
			Text:  doc,
		})
	}

	// Stable sort keeps ascending document order among equal scores.
	sort.SliceStable(contexts, func(i, j int) bool {
		return contexts[i].Score > contexts[j].Score
	})

	if len(contexts) > k {
		contexts = contexts[:k]
	}
	return contexts, nil
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	return fields
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r > 127:
		// Keep non-ASCII letters so non-Latin scripts stay retrievable.
		return true
	default:
		return false
	}
}

// termFrequencies builds a unigram+bigram frequency vector. When stop-word
// filtering would drop every token the unfiltered tokens are used instead.
func termFrequencies(text string) map[string]float64 {
	tokens := tokenize(text)
	filtered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, stop := englishStopWords[t]; !stop {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 {
		filtered = tokens
	}

	vec := make(map[string]float64, len(filtered)*2)
	for i, t := range filtered {
		vec[t]++
		if i+1 < len(filtered) {
			vec[t+" "+filtered[i+1]]++
		}
	}
	return vec
}

func cosineTF(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for term, weight := range a {
		normA += weight * weight
		if other, ok := b[term]; ok {
			dot += weight * other
		}
	}
	for _, weight := range b {
		normB += weight * weight
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

var _ Strategy = LexicalStrategy{}
