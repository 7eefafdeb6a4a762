// Package translate is a best-effort translation collaborator. It tries a
// chain of free providers and never returns an error to callers: when every
// provider fails the original text comes back with a language marker.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

const (
	defaultLibreTranslateURL = "https://libretranslate.de/translate"
	defaultGoogleURL         = "https://translate.googleapis.com/translate_a/single"
	defaultMyMemoryURL       = "https://api.mymemory.translated.net/get"
)

type Translator interface {
	DetectLanguage(text string) string
	// Translate returns text rendered in the target language. Source may be
	// "auto". Transient failures yield a best-effort marker, never an error.
	Translate(ctx context.Context, text, target, source string) string
}

// providerFunc is one translation backend attempt. The chain tries each in
// order and takes the first success.
type providerFunc struct {
	name string
	fn   func(ctx context.Context, text, source, target string) (string, error)
}

type Client struct {
	providers []providerFunc
	cache     *Cache
	http      *http.Client
	logger    *log.Logger

	libreURL    string
	googleURL   string
	myMemoryURL string
}

type Option func(*Client)

func WithLibreTranslateURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.libreURL = u
		}
	}
}

func WithMyMemoryURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.myMemoryURL = u
		}
	}
}

func WithGoogleURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.googleURL = u
		}
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(cache *Cache, logger *log.Logger, opts ...Option) *Client {
	if cache == nil {
		cache = NewCache()
	}
	if logger == nil {
		logger = log.Default()
	}

	c := &Client{
		cache:       cache,
		logger:      logger,
		http:        &http.Client{Timeout: requestTimeout},
		libreURL:    defaultLibreTranslateURL,
		googleURL:   defaultGoogleURL,
		myMemoryURL: defaultMyMemoryURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.providers = []providerFunc{
		{name: "libretranslate", fn: c.translateLibre},
		{name: "google", fn: c.translateGoogle},
		{name: "mymemory", fn: c.translateMyMemory},
	}
	return c
}

func (c *Client) DetectLanguage(text string) string {
	return DetectLanguage(text)
}

func (c *Client) Translate(ctx context.Context, text, target, source string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	if cached, ok := c.cache.Get(text, source, target); ok {
		return cached
	}

	resolved := source
	if resolved == "" || resolved == "auto" {
		resolved = DetectLanguage(text)
	}
	if resolved == target {
		return text
	}

	var translated string
	for _, p := range c.providers {
		out, err := p.fn(ctx, text, resolved, target)
		if err != nil {
			c.logger.Printf("translation provider %s failed: %v", p.name, err)
			continue
		}
		if strings.TrimSpace(out) != "" {
			translated = out
			break
		}
	}

	if translated == "" {
		translated = fmt.Sprintf("[%s] %s", target, text)
	}

	c.cache.Put(text, source, target, translated)
	return translated
}

func (c *Client) translateLibre(ctx context.Context, text, source, target string) (string, error) {
	form := url.Values{
		"q":      {text},
		"source": {source},
		"target": {target},
		"format": {"text"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.libreURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create libretranslate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call libretranslate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("libretranslate status %d", resp.StatusCode)
	}

	var payload struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode libretranslate response: %w", err)
	}
	return payload.TranslatedText, nil
}

func (c *Client) translateGoogle(ctx context.Context, text, source, target string) (string, error) {
	params := url.Values{
		"client": {"gtx"},
		"sl":     {source},
		"tl":     {target},
		"dt":     {"t"},
		"q":      {text},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.googleURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create google translate request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call google translate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google translate status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read google translate response: %w", err)
	}

	// The gtx endpoint answers with nested arrays; the translated text is
	// the first element of each item in the first array.
	var decoded []any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode google translate response: %w", err)
	}
	if len(decoded) == 0 {
		return "", fmt.Errorf("empty google translate response")
	}
	items, ok := decoded[0].([]any)
	if !ok || len(items) == 0 {
		return "", fmt.Errorf("unexpected google translate response shape")
	}

	var sb strings.Builder
	for _, raw := range items {
		item, ok := raw.([]any)
		if !ok || len(item) == 0 {
			continue
		}
		if chunk, ok := item[0].(string); ok {
			sb.WriteString(chunk)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("google translate returned no text")
	}
	return sb.String(), nil
}

func (c *Client) translateMyMemory(ctx context.Context, text, source, target string) (string, error) {
	params := url.Values{
		"q":        {text},
		"langpair": {fmt.Sprintf("%s|%s", source, target)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.myMemoryURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create mymemory request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call mymemory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mymemory status %d", resp.StatusCode)
	}

	var payload struct {
		ResponseStatus  int `json:"responseStatus"`
		ResponseDetails any `json:"responseDetails"`
		ResponseData    struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode mymemory response: %w", err)
	}
	if payload.ResponseStatus != 200 {
		return "", fmt.Errorf("mymemory error: %v", payload.ResponseDetails)
	}
	return payload.ResponseData.TranslatedText, nil
}

var _ Translator = (*Client)(nil)
