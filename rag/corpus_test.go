package rag

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Swayamk2912/gen-ai/store"
)

func TestBuildCorpusOrderAndCount(t *testing.T) {
	slides := []store.Slide{
		{Index: 0, Title: "Overview", Content: "• Fast"},
		{Index: 1, Title: "", Content: ""}, // skipped
		{Index: 2, Title: "Roadmap", Content: ""},
	}
	qaLogs := []store.QARecord{
		{Question: "What is this?", Answer: "A demo."},
		{Question: "", Answer: ""}, // skipped
	}

	docs := BuildCorpus(slides, qaLogs)

	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d: %#v", len(docs), docs)
	}
	if !strings.HasPrefix(docs[0], "Overview\n") {
		t.Fatalf("slide documents must come first, got %q", docs[0])
	}
	if docs[2] != "Q: What is this?\nA: A demo." {
		t.Fatalf("unexpected qa document %q", docs[2])
	}
}

func TestBuildCorpusDeterministic(t *testing.T) {
	slides := []store.Slide{
		{Title: "A", Content: "alpha"},
		{Title: "B", Content: "beta"},
	}
	qaLogs := []store.QARecord{{Question: "q", Answer: "a"}}

	first := BuildCorpus(slides, qaLogs)
	second := BuildCorpus(slides, qaLogs)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("corpus order must be stable: %v vs %v", first, second)
	}
}

func TestBuildCorpusEmpty(t *testing.T) {
	if docs := BuildCorpus(nil, nil); len(docs) != 0 {
		t.Fatalf("expected empty corpus, got %v", docs)
	}
}
