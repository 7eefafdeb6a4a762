package embeddings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func ollamaTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestOllamaEmbedBatchesInputs(t *testing.T) {
	var got ollamaEmbedRequest
	srv := ollamaTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embed" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ollamaEmbedResponse{
			Embeddings: [][]float32{{1, 0, 0}, {0, 1, 0}},
		})
	})

	emb := NewOllamaEmbedder(Options{OllamaHost: srv.URL, Model: "nomic-embed-text", Dimension: 3})
	vectors, err := emb.Embed(context.Background(), []string{"Intro\nhello", "Next\nworld"})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	if got.Model != "nomic-embed-text" {
		t.Errorf("request model = %q", got.Model)
	}
	if len(got.Input) != 2 || got.Input[1] != "Next\nworld" {
		t.Errorf("request input = %v, want both slides in one call", got.Input)
	}
	if len(vectors) != 2 || vectors[1][1] != 1 {
		t.Fatalf("vectors = %v", vectors)
	}
}

func TestOllamaEmbedDimensionMismatch(t *testing.T) {
	srv := ollamaTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaEmbedResponse{Embeddings: [][]float32{{1, 0}}})
	})

	emb := NewOllamaEmbedder(Options{OllamaHost: srv.URL, Model: "m", Dimension: 3})
	if _, err := emb.Embed(context.Background(), []string{"text"}); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestOllamaEmbedCountMismatch(t *testing.T) {
	srv := ollamaTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaEmbedResponse{Embeddings: [][]float32{{1, 0, 0}}})
	})

	emb := NewOllamaEmbedder(Options{OllamaHost: srv.URL, Model: "m", Dimension: 3})
	if _, err := emb.Embed(context.Background(), []string{"one", "two"}); err == nil {
		t.Fatal("expected count mismatch error")
	}
}

func TestOllamaEmbedServerError(t *testing.T) {
	srv := ollamaTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	})

	emb := NewOllamaEmbedder(Options{OllamaHost: srv.URL, Model: "m"})
	if _, err := emb.Embed(context.Background(), []string{"text"}); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestOllamaEmbedNoInputsSkipsCall(t *testing.T) {
	called := false
	srv := ollamaTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	emb := NewOllamaEmbedder(Options{OllamaHost: srv.URL, Model: "m"})
	vectors, err := emb.Embed(context.Background(), nil)
	if err != nil || vectors != nil {
		t.Fatalf("Embed = %v, %v", vectors, err)
	}
	if called {
		t.Fatal("no request expected for empty input")
	}
}
