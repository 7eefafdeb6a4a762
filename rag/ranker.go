package rag

import (
	"context"
	"log"
)

// DefaultK is the number of contexts retrieved when the caller passes k <= 0.
const DefaultK = 3

// Context is one ranked corpus document.
type Context struct {
	Index int     `json:"document_index"`
	Score float64 `json:"score"`
	Text  string  `json:"text"`
}

// Strategy scores documents against a query. A strategy that cannot run
// (missing provider, network failure) returns an error so the ranker can try
// the next one.
type Strategy interface {
	Name() string
	Rank(ctx context.Context, query string, docs []string, k int) ([]Context, error)
}

// Ranker tries its strategies in order and falls back to returning the first
// k documents with zero scores when all of them fail. Retrieval never fails
// the caller.
type Ranker struct {
	strategies []Strategy
	logger     *log.Logger
}

func NewRanker(logger *log.Logger, strategies ...Strategy) *Ranker {
	if logger == nil {
		logger = log.Default()
	}
	return &Ranker{strategies: strategies, logger: logger}
}

// TopK returns at most min(k, len(docs)) contexts in non-increasing score
// order, ties broken by ascending document index. An empty corpus yields an
// empty result.
func (r *Ranker) TopK(ctx context.Context, query string, docs []string, k int) []Context {
	if k <= 0 {
		k = DefaultK
	}
	if len(docs) == 0 {
		return []Context{}
	}

	for _, s := range r.strategies {
		contexts, err := s.Rank(ctx, query, docs, k)
		if err != nil {
			r.logger.Printf("ranking strategy %s failed: %v", s.Name(), err)
			continue
		}
		return contexts
	}

	return firstK(docs, k)
}

func firstK(docs []string, k int) []Context {
	if k > len(docs) {
		k = len(docs)
	}
	contexts := make([]Context, 0, k)
	for i := 0; i < k; i++ {
		contexts = append(contexts, Context{Index: i, Score: 0.0, Text: docs[i]})
	}
	return contexts
}
