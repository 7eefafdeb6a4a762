package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Swayamk2912/gen-ai/deck"
	"github.com/Swayamk2912/gen-ai/store"
)

type PresentationHandler struct {
	store     PresentationStore
	embedder  QueryEmbedder
	uploadDir string
	logger    *log.Logger

	// parse is swappable in tests.
	parse func(path string) ([]deck.SlideData, error)
}

func NewPresentationHandler(store PresentationStore, embedder QueryEmbedder, uploadDir string, logger *log.Logger) *PresentationHandler {
	return &PresentationHandler{
		store:     store,
		embedder:  embedder,
		uploadDir: uploadDir,
		logger:    logger,
		parse:     deck.ParseFile,
	}
}

type UploadResponse struct {
	PresentationID string `json:"presentation_id"`
	NumSlides      int    `json:"num_slides"`
}

func (h *PresentationHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	if deck.DetectFormat(file.Filename) == deck.FormatUnknown {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only .pdf, .txt, or .md decks are supported"})
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.logger.Printf("create upload dir: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	presentationID := uuid.New().String()
	dest := filepath.Join(h.uploadDir, fmt.Sprintf("%s_%s", presentationID, filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, dest); err != nil {
		h.logger.Printf("save upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	slides, err := h.parse(dest)
	if err != nil {
		h.logger.Printf("parse deck: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not parse deck"})
		return
	}

	ctx := c.Request.Context()
	if err := h.store.SavePresentation(ctx, presentationID, file.Filename); err != nil {
		h.logger.Printf("save presentation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	for idx, slide := range slides {
		if err := h.store.SaveSlide(ctx, presentationID, idx, slide.Title, slide.Content); err != nil {
			h.logger.Printf("save slide %d: %v", idx, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	h.indexSlides(c, presentationID, slides)

	c.JSON(http.StatusOK, UploadResponse{PresentationID: presentationID, NumSlides: len(slides)})
}

// indexSlides stores slide embeddings for vector search. Best-effort: a
// missing or failing embedder only disables search, never the upload.
func (h *PresentationHandler) indexSlides(c *gin.Context, presentationID string, slides []deck.SlideData) {
	if h.embedder == nil {
		return
	}

	ctx := c.Request.Context()
	texts := make([]string, len(slides))
	for i, s := range slides {
		texts[i] = fmt.Sprintf("%s\n%s", s.Title, s.Content)
	}

	vectors, err := h.embedder.Embed(ctx, texts)
	if err != nil {
		h.logger.Printf("embed slides: %v", err)
		return
	}
	for i, vec := range vectors {
		if err := h.store.SaveSlideEmbedding(ctx, presentationID, i, vec); err != nil {
			h.logger.Printf("save slide embedding %d: %v", i, err)
			return
		}
	}
}

type SlideResponse struct {
	Index     int    `json:"index"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Narration string `json:"narration"`
	AudioPath string `json:"audio_path"`
}

type PresentationResponse struct {
	Presentation struct {
		ID       string `json:"id"`
		Filename string `json:"filename"`
	} `json:"presentation"`
	Slides []SlideResponse `json:"slides"`
}

func (h *PresentationHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	pres, err := h.store.GetPresentation(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Presentation not found"})
		return
	}
	if err != nil {
		h.logger.Printf("get presentation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	slides, err := h.store.GetSlides(ctx, id)
	if err != nil {
		h.logger.Printf("get slides: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := PresentationResponse{Slides: make([]SlideResponse, 0, len(slides))}
	res.Presentation.ID = pres.ID
	res.Presentation.Filename = pres.Filename
	for _, s := range slides {
		res.Slides = append(res.Slides, SlideResponse{
			Index:     s.Index,
			Title:     s.Title,
			Content:   s.Content,
			Narration: s.Narration,
			AudioPath: s.AudioPath,
		})
	}

	c.JSON(http.StatusOK, res)
}

type SearchMatchResponse struct {
	Index   int     `json:"index"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

func (h *PresentationHandler) Search(c *gin.Context) {
	if h.embedder == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Semantic search is not configured"})
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("k", "3"))

	ctx := c.Request.Context()
	vectors, err := h.embedder.Embed(ctx, []string{query})
	if err != nil || len(vectors) == 0 {
		h.logger.Printf("embed query: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Embedding provider error"})
		return
	}

	matches, err := h.store.SearchSlides(ctx, c.Param("id"), vectors[0], limit)
	if err != nil {
		h.logger.Printf("search slides: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	out := make([]SearchMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, SearchMatchResponse(m))
	}
	c.JSON(http.StatusOK, gin.H{"matches": out})
}
