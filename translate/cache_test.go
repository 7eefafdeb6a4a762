package translate

import "testing"

func TestCachePutGet(t *testing.T) {
	cache := NewCache()

	if _, ok := cache.Get("hello", "en", "es"); ok {
		t.Fatal("empty cache must miss")
	}

	cache.Put("hello", "en", "es", "hola")
	got, ok := cache.Get("hello", "en", "es")
	if !ok || got != "hola" {
		t.Fatalf("Get = %q, %v", got, ok)
	}

	// Same text toward a different target is a distinct entry.
	if _, ok := cache.Get("hello", "en", "fr"); ok {
		t.Fatal("target language must be part of the key")
	}

	cache.Put("hello", "en", "fr", "bonjour")
	if cache.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cache.Len())
	}
}

func TestCacheOverwrite(t *testing.T) {
	cache := NewCache()
	cache.Put("hello", "en", "es", "hola")
	cache.Put("hello", "en", "es", "buenas")

	got, _ := cache.Get("hello", "en", "es")
	if got != "buenas" {
		t.Fatalf("Get = %q, want latest value", got)
	}
	if cache.Len() != 1 {
		t.Fatalf("Len = %d, want 1", cache.Len())
	}
}
