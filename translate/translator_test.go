package translate

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, libre, google, mymemory http.Handler) (*Client, *Cache) {
	t.Helper()

	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	if libre == nil {
		libre = failing
	}
	if google == nil {
		google = failing
	}
	if mymemory == nil {
		mymemory = failing
	}

	libreSrv := httptest.NewServer(libre)
	googleSrv := httptest.NewServer(google)
	myMemorySrv := httptest.NewServer(mymemory)
	t.Cleanup(libreSrv.Close)
	t.Cleanup(googleSrv.Close)
	t.Cleanup(myMemorySrv.Close)

	cache := NewCache()
	client := NewClient(cache, log.New(io.Discard, "", 0),
		WithLibreTranslateURL(libreSrv.URL),
		WithGoogleURL(googleSrv.URL),
		WithMyMemoryURL(myMemorySrv.URL),
	)
	return client, cache
}

func TestTranslateUsesFirstProvider(t *testing.T) {
	libre := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostFormValue("q"); got != "hello" {
			t.Errorf("unexpected text %q", got)
		}
		if got := r.PostFormValue("target"); got != "es" {
			t.Errorf("unexpected target %q", got)
		}
		io.WriteString(w, `{"translatedText":"hola"}`)
	})

	client, _ := newTestClient(t, libre, nil, nil)
	got := client.Translate(context.Background(), "hello", "es", "en")
	if got != "hola" {
		t.Fatalf("Translate = %q, want %q", got, "hola")
	}
}

func TestTranslateFallsBackToGoogle(t *testing.T) {
	google := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tl"); got != "fr" {
			t.Errorf("unexpected target %q", got)
		}
		io.WriteString(w, `[[["bonjour le monde","hello world",null]]]`)
	})

	client, _ := newTestClient(t, nil, google, nil)
	got := client.Translate(context.Background(), "hello world", "fr", "en")
	if got != "bonjour le monde" {
		t.Fatalf("Translate = %q, want %q", got, "bonjour le monde")
	}
}

func TestTranslateFallsBackToMyMemory(t *testing.T) {
	mymemory := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("langpair"); got != "en|de" {
			t.Errorf("unexpected langpair %q", got)
		}
		io.WriteString(w, `{"responseStatus":200,"responseData":{"translatedText":"hallo welt"}}`)
	})

	client, _ := newTestClient(t, nil, nil, mymemory)
	got := client.Translate(context.Background(), "hello world", "de", "en")
	if got != "hallo welt" {
		t.Fatalf("Translate = %q, want %q", got, "hallo welt")
	}
}

func TestTranslateAllProvidersFailReturnsMarker(t *testing.T) {
	client, _ := newTestClient(t, nil, nil, nil)
	got := client.Translate(context.Background(), "hello world", "ja", "en")
	if got != "[ja] hello world" {
		t.Fatalf("Translate = %q, want marker fallback", got)
	}
}

func TestTranslateSameLanguageIsANoOp(t *testing.T) {
	called := false
	noisy := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		io.WriteString(w, `{"translatedText":"should not happen"}`)
	})

	client, _ := newTestClient(t, noisy, nil, nil)
	got := client.Translate(context.Background(), "hello world", "en", "en")
	if got != "hello world" {
		t.Fatalf("Translate = %q, want passthrough", got)
	}
	if called {
		t.Fatal("no provider should be contacted for same-language requests")
	}
}

func TestTranslateAutoSourceResolvesToDetected(t *testing.T) {
	var gotSource string
	libre := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotSource = r.PostFormValue("source")
		io.WriteString(w, `{"translatedText":"the red car"}`)
	})

	client, _ := newTestClient(t, libre, nil, nil)
	client.Translate(context.Background(), "el coche rojo", "en", "auto")
	if gotSource != "es" {
		t.Fatalf("resolved source = %q, want %q", gotSource, "es")
	}
}

func TestTranslateEmptyTextSkipsProviders(t *testing.T) {
	client, cache := newTestClient(t, nil, nil, nil)
	if got := client.Translate(context.Background(), "   ", "es", "en"); got != "   " {
		t.Fatalf("blank text must pass through, got %q", got)
	}
	if cache.Len() != 0 {
		t.Fatal("blank text must not be cached")
	}
}

func TestTranslateCachesResults(t *testing.T) {
	calls := 0
	libre := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		io.WriteString(w, `{"translatedText":"hola"}`)
	})

	client, cache := newTestClient(t, libre, nil, nil)
	first := client.Translate(context.Background(), "hello", "es", "en")
	second := client.Translate(context.Background(), "hello", "es", "en")

	if first != second {
		t.Fatalf("cached result mismatch: %q vs %q", first, second)
	}
	if calls != 1 {
		t.Fatalf("provider called %d times, want 1", calls)
	}
	if cache.Len() != 1 {
		t.Fatalf("cache holds %d entries, want 1", cache.Len())
	}
}

func TestTranslateSkipsBlankProviderOutput(t *testing.T) {
	libre := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"translatedText":"  "}`)
	})
	google := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[[["ciao","hello",null]]]`)
	})

	client, _ := newTestClient(t, libre, google, nil)
	got := client.Translate(context.Background(), "hello", "it", "en")
	if got != "ciao" {
		t.Fatalf("Translate = %q, want %q", got, "ciao")
	}
}

func TestGoogleMultiChunkResponse(t *testing.T) {
	google := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[[["part one ","x",null],["part two","y",null]]]`)
	})

	client, _ := newTestClient(t, nil, google, nil)
	got := client.Translate(context.Background(), "two sentences here", "pt", "en")
	if !strings.Contains(got, "part one") || !strings.Contains(got, "part two") {
		t.Fatalf("chunks not concatenated: %q", got)
	}
}
