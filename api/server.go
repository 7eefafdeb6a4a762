// Package api exposes the HTTP request surface over the presentation core.
package api

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Swayamk2912/gen-ai/store"
)

// Server wires the handlers onto a gin engine.
type Server struct {
	engine *gin.Engine
	addr   string
	logger *log.Logger
}

// Deps carries the collaborators the handlers need.
type Deps struct {
	Store      *store.Store
	Narrator   Narrator
	Speech     SpeechSynthesizer
	Composer   Answerer
	Translator TextTranslator
	Reporter   SummaryReporter
	Embedder   QueryEmbedder

	UploadDir string
	AudioDir  string
}

func NewServer(addr string, deps Deps, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	engine := gin.Default()
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	ph := NewPresentationHandler(deps.Store, deps.Embedder, deps.UploadDir, logger)
	nh := NewNarrationHandler(deps.Store, deps.Narrator, deps.Speech, deps.AudioDir, logger)
	qh := NewQAHandler(deps.Store, deps.Composer, logger)
	th := NewTranslationHandler(deps.Translator)
	sh := NewSummaryHandler(deps.Store, deps.Reporter, logger)

	engine.POST("/presentation/upload", ph.Upload)
	engine.GET("/presentation/:id", ph.Get)
	engine.GET("/presentation/:id/search", ph.Search)

	engine.POST("/narrate", nh.Narrate)
	engine.GET("/audio/:filename", nh.Audio)

	engine.POST("/qa", qh.Ask)

	engine.GET("/languages", th.Languages)
	engine.POST("/detect-language", th.Detect)
	engine.POST("/translate", th.Translate)

	engine.GET("/summary/:id", sh.Summary)
	engine.GET("/ai-summary/:id", sh.AISummary)

	return &Server{engine: engine, addr: addr, logger: logger}
}

func (s *Server) Run() error {
	s.logger.Printf("listening on %s", s.addr)
	return s.engine.Run(s.addr)
}
