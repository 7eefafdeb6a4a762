package config

import (
	"os"
	"strconv"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

type EmbeddingConfig struct {
	Provider  string
	Model     string
	Dimension int
}

type LLMConfig struct {
	Provider string
	Model    string
}

type Config struct {
	HTTPAddr    string
	PostgresDSN string

	UploadDir string
	AudioDir  string

	OllamaHost    string
	OpenAIAPIKey  string
	OpenAIBaseURL string

	Embeddings EmbeddingConfig
	LLM        LLMConfig

	// Base URLs for the translation provider chain. Empty entries fall
	// back to the public endpoints.
	LibreTranslateURL  string
	GoogleTranslateURL string
	MyMemoryURL        string
}

func Load() Config {
	return Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8000"),
		PostgresDSN: getEnv("POSTGRES_DSN", "postgres://localhost:5432/gen-ai?sslmode=disable"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		AudioDir:    getEnv("AUDIO_DIR", "audio"),

		OllamaHost:    getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),

		Embeddings: EmbeddingConfig{
			Provider:  getEnv("EMBEDDINGS_PROVIDER", ""),
			Model:     getEnv("EMBEDDINGS_MODEL", "text-embedding-3-small"),
			Dimension: getEnvInt("EMBEDDINGS_DIMENSION", 1536),
		},
		LLM: LLMConfig{
			Provider: getEnv("LLM_PROVIDER", ""),
			Model:    getEnv("LLM_MODEL", "gpt-4o-mini"),
		},

		LibreTranslateURL:  getEnv("LIBRETRANSLATE_URL", ""),
		GoogleTranslateURL: getEnv("GOOGLE_TRANSLATE_URL", ""),
		MyMemoryURL:        getEnv("MYMEMORY_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
