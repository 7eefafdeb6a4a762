package speech

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeProvider struct {
	payload string
	err     error

	gotText  string
	gotVoice string
}

func (f *fakeProvider) Speak(ctx context.Context, text, language, voice string, w *os.File) error {
	f.gotText = text
	f.gotVoice = voice
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, f.payload)
	return err
}

func TestSynthesizeWithProvider(t *testing.T) {
	dir := t.TempDir()
	provider := &fakeProvider{payload: "fake mp3 bytes"}
	svc := NewService(provider, dir, log.New(io.Discard, "", 0))

	path, err := svc.Synthesize(context.Background(), "Hello there.", "en", "alloy")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, "tts_") || !strings.HasSuffix(name, ".mp3") {
		t.Errorf("unexpected file name %q", name)
	}
	if provider.gotText != "Hello there." || provider.gotVoice != "alloy" {
		t.Errorf("provider got text=%q voice=%q", provider.gotText, provider.gotVoice)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "fake mp3 bytes" {
		t.Errorf("file contents = %q", data)
	}
}

func TestSynthesizeProviderFailureWritesPlaceholder(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(&fakeProvider{err: errors.New("quota exceeded")}, dir, log.New(io.Discard, "", 0))

	path, err := svc.Synthesize(context.Background(), "Hello.", "en", "")
	if err != nil {
		t.Fatalf("Synthesize must degrade, not fail: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ID3" {
		t.Errorf("placeholder contents = %q", data)
	}
}

func TestSynthesizeWithoutProviderWritesPlaceholder(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(nil, dir, log.New(io.Discard, "", 0))

	path, err := svc.Synthesize(context.Background(), "Hello.", "en", "")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ID3" {
		t.Errorf("placeholder contents = %q", data)
	}
}

func TestSynthesizeUniquePaths(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(nil, dir, log.New(io.Discard, "", 0))

	first, err := svc.Synthesize(context.Background(), "one", "en", "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Synthesize(context.Background(), "two", "en", "")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatalf("paths collide: %q", first)
	}
}
