package narration

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/Swayamk2912/gen-ai/store"
)

// echoTranslator is a deterministic translation fake that returns text
// unchanged and records what it was asked to translate.
type echoTranslator struct {
	calls []string
}

func (e *echoTranslator) DetectLanguage(string) string { return "en" }

func (e *echoTranslator) Translate(_ context.Context, text, target, _ string) string {
	e.calls = append(e.calls, target+"|"+text)
	return text
}

func testService() (*Service, *echoTranslator) {
	tr := &echoTranslator{}
	return NewService(tr, log.New(os.Stderr, "", 0)), tr
}

func TestGenerateFormalEnglishBullets(t *testing.T) {
	svc, _ := testService()
	slide := store.Slide{Title: "Overview", Content: "• Fast\n• Reliable\n• Secure"}

	result := svc.Generate(context.Background(), slide, []store.Slide{slide}, "formal", "en")

	if !strings.HasPrefix(result.FullText, "This slide is titled Overview.") {
		t.Fatalf("expected leading title sentence, got %q", result.FullText)
	}
	for i, want := range []string{"Point 1: Fast.", "Point 2: Reliable.", "Point 3: Secure."} {
		if !strings.Contains(result.FullText, want) {
			t.Fatalf("missing bullet phrase %d %q in %q", i+1, want, result.FullText)
		}
	}

	if len(result.Segments) != 4 {
		t.Fatalf("expected 1 title + 3 bullet segments, got %d", len(result.Segments))
	}
	if result.Segments[0].Kind != KindTitle {
		t.Fatalf("first segment must narrate the title, got %s", result.Segments[0].Kind)
	}
	prev := -1.0
	for i, seg := range result.Segments {
		if seg.Start <= prev {
			t.Fatalf("segment %d start %f not strictly increasing", i, seg.Start)
		}
		prev = seg.Start
	}
	if result.Segments[0].Start != 0 {
		t.Fatalf("timeline must begin at 0, got %f", result.Segments[0].Start)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	svc, _ := testService()
	slide := store.Slide{Title: "Roadmap", Content: "1. Plan\n2. Build\n3. Ship"}

	first := svc.Generate(context.Background(), slide, nil, "academic", "en")
	second := svc.Generate(context.Background(), slide, nil, "academic", "en")

	if first.FullText != second.FullText {
		t.Fatalf("narration must be deterministic:\n%q\n%q", first.FullText, second.FullText)
	}
}

func TestGenerateUnsupportedLanguageGoesThroughTranslator(t *testing.T) {
	svc, tr := testService()
	slide := store.Slide{Title: "Overview", Content: "• Fast"}

	result := svc.Generate(context.Background(), slide, nil, "formal", "pl")

	if len(result.Parts) != 2 {
		t.Fatalf("expected title + bullet parts, got %d", len(result.Parts))
	}

	sawRendered := false
	for _, call := range tr.calls {
		if strings.HasPrefix(call, "pl|This slide is titled") {
			sawRendered = true
		}
	}
	if !sawRendered {
		t.Fatalf("rendered English template was not passed through the translator: %v", tr.calls)
	}
}

func TestGenerateHumorousToneAddsEmphasis(t *testing.T) {
	svc, _ := testService()
	slide := store.Slide{Title: "", Content: "• Fast"}

	result := svc.Generate(context.Background(), slide, nil, "humorous", "en")

	if !strings.Contains(result.FullText, "Impressive, right?") {
		t.Fatalf("expected humorous emphasis, got %q", result.FullText)
	}
}

func TestGenerateUnknownToneFallsBackToFormal(t *testing.T) {
	svc, _ := testService()
	slide := store.Slide{Title: "Overview", Content: ""}

	result := svc.Generate(context.Background(), slide, nil, "sarcastic", "en")

	if result.FullText != "This slide is titled Overview." {
		t.Fatalf("expected formal rendering, got %q", result.FullText)
	}
}

func TestGenerateTruncatesFullText(t *testing.T) {
	svc, _ := testService()
	slide := store.Slide{
		Title:   "Big",
		Content: strings.Repeat("this paragraph line is deliberately made quite long to inflate the narration text output.\n", 80),
	}

	result := svc.Generate(context.Background(), slide, nil, "formal", "en")

	if len([]rune(result.FullText)) > maxNarrationLength {
		t.Fatalf("full text exceeds cap: %d", len([]rune(result.FullText)))
	}
}
