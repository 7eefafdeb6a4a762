package rag

import (
	"context"
	"fmt"
	"sort"

	"github.com/Swayamk2912/gen-ai/embeddings"
)

// SemanticStrategy scores documents by cosine similarity of embeddings from
// an external provider. Any provider failure is surfaced as an error so the
// ranker chain can fall through to the lexical strategy.
type SemanticStrategy struct {
	Embedder embeddings.Embedder
}

func (SemanticStrategy) Name() string { return "semantic" }

func (s SemanticStrategy) Rank(ctx context.Context, query string, docs []string, k int) ([]Context, error) {
	if s.Embedder == nil {
		return nil, fmt.Errorf("no embedder configured")
	}

	inputs := make([]string, 0, len(docs)+1)
	inputs = append(inputs, docs...)
	inputs = append(inputs, query)

	vectors, err := s.Embedder.Embed(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("embed corpus: %w", err)
	}
	if len(vectors) != len(docs)+1 {
		return nil, fmt.Errorf("embedder returned %d vectors for %d inputs", len(vectors), len(docs)+1)
	}

	queryVec := vectors[len(vectors)-1]
	contexts := make([]Context, 0, len(docs))
	for i, doc := range docs {
		contexts = append(contexts, Context{
			Index: i,
			Score: embeddings.Cosine(queryVec, vectors[i]),
			Text:  doc,
		})
	}

	sort.SliceStable(contexts, func(i, j int) bool {
		return contexts[i].Score > contexts[j].Score
	})

	if len(contexts) > k {
		contexts = contexts[:k]
	}
	return contexts, nil
}

var _ Strategy = SemanticStrategy{}
