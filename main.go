package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Swayamk2912/gen-ai/answer"
	"github.com/Swayamk2912/gen-ai/api"
	"github.com/Swayamk2912/gen-ai/config"
	"github.com/Swayamk2912/gen-ai/embeddings"
	"github.com/Swayamk2912/gen-ai/llm"
	"github.com/Swayamk2912/gen-ai/narration"
	"github.com/Swayamk2912/gen-ai/rag"
	"github.com/Swayamk2912/gen-ai/speech"
	"github.com/Swayamk2912/gen-ai/store"
	"github.com/Swayamk2912/gen-ai/summary"
	"github.com/Swayamk2912/gen-ai/translate"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	if err := godotenv.Load(); err != nil {
		logger.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := store.New(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatalf("postgres connection: %v", err)
	}
	defer db.Close()

	// Embeddings and the LLM are optional: without them the ranker stays
	// lexical, slide search is disabled, and summaries are templated.
	var embedder embeddings.Embedder
	embeddingDim := 0
	if cfg.Embeddings.Provider != "" {
		embedder, err = embeddings.NewEmbedder(cfg)
		if err != nil {
			logger.Printf("embedder disabled: %v", err)
			embedder = nil
		} else {
			embeddingDim = cfg.Embeddings.Dimension
		}
	}

	if err := db.EnsureSchema(ctx, embeddingDim); err != nil {
		logger.Fatalf("ensure schema: %v", err)
	}

	var llmClient llm.Client
	if cfg.LLM.Provider != "" {
		llmClient, err = llm.NewClient(cfg)
		if err != nil {
			logger.Printf("llm disabled: %v", err)
			llmClient = nil
		}
	}

	translator := translate.NewClient(translate.NewCache(), logger,
		translate.WithLibreTranslateURL(cfg.LibreTranslateURL),
		translate.WithGoogleURL(cfg.GoogleTranslateURL),
		translate.WithMyMemoryURL(cfg.MyMemoryURL),
	)

	strategies := []rag.Strategy{}
	if embedder != nil {
		strategies = append(strategies, rag.SemanticStrategy{Embedder: embedder})
	}
	strategies = append(strategies, rag.LexicalStrategy{})
	ranker := rag.NewRanker(logger, strategies...)

	narrator := narration.NewService(translator, logger)
	composer := answer.NewComposer(translator, ranker, logger)
	reporter := summary.NewReporter(llmClient, translator, logger)

	var speechProvider speech.Provider
	if cfg.OpenAIAPIKey != "" {
		speechProvider = speech.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	}
	synthesizer := speech.NewService(speechProvider, cfg.AudioDir, logger)

	server := api.NewServer(cfg.HTTPAddr, api.Deps{
		Store:      db,
		Narrator:   narrator,
		Speech:     synthesizer,
		Composer:   composer,
		Translator: translator,
		Reporter:   reporter,
		Embedder:   embedder,
		UploadDir:  cfg.UploadDir,
		AudioDir:   cfg.AudioDir,
	}, logger)

	if err := server.Run(); err != nil {
		logger.Fatalf("server: %v", err)
	}
}
