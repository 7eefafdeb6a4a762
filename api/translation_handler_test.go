package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/Swayamk2912/gen-ai/translate"
)

// markerTranslator echoes text with a target marker, so assertions can see
// exactly what the handler asked for.
type markerTranslator struct{}

func (markerTranslator) DetectLanguage(text string) string {
	return translate.DetectLanguage(text)
}

func (markerTranslator) Translate(ctx context.Context, text, target, source string) string {
	return fmt.Sprintf("[%s<-%s] %s", target, source, text)
}

func translationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTranslationHandler(markerTranslator{})
	r := gin.New()
	r.GET("/languages", h.Languages)
	r.POST("/detect-language", h.Detect)
	r.POST("/translate", h.Translate)
	return r
}

func TestLanguages(t *testing.T) {
	r := translationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/languages", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Languages map[string]string `json:"languages"`
		Default   string            `json:"default"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	assert.Equal(t, "en", resp.Default)
	assert.Equal(t, "Hindi", resp.Languages["hi"])
	if len(resp.Languages) < 20 {
		t.Fatalf("got %d languages, want at least 20", len(resp.Languages))
	}
}

func TestDetect(t *testing.T) {
	r := translationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/detect-language", strings.NewReader(`{"text":"यह क्या है?"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Language     string `json:"language"`
		LanguageName string `json:"language_name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	assert.Equal(t, "hi", resp.Language)
	assert.Equal(t, "Hindi", resp.LanguageName)
}

func TestDetectMissingText(t *testing.T) {
	r := translationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/detect-language", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTranslateDefaultsSourceToAuto(t *testing.T) {
	r := translationRouter()

	body := `{"text":"hello","target_language":"es"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/translate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TranslatedText string `json:"translated_text"`
		SourceLanguage string `json:"source_language"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	assert.Equal(t, "[es<-auto] hello", resp.TranslatedText)
	assert.Equal(t, "auto", resp.SourceLanguage)
}

func TestTranslateMissingTarget(t *testing.T) {
	r := translationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/translate", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
