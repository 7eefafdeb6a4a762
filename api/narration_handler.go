package api

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Swayamk2912/gen-ai/narration"
)

type NarrationHandler struct {
	store    NarrationStore
	narrator Narrator
	speech   SpeechSynthesizer
	audioDir string
	logger   *log.Logger
}

func NewNarrationHandler(store NarrationStore, narrator Narrator, speech SpeechSynthesizer, audioDir string, logger *log.Logger) *NarrationHandler {
	return &NarrationHandler{
		store:    store,
		narrator: narrator,
		speech:   speech,
		audioDir: audioDir,
		logger:   logger,
	}
}

type NarrateRequest struct {
	PresentationID string `json:"presentation_id" binding:"required"`
	SlideIndex     int    `json:"slide_index"`
	Voice          string `json:"voice"`
	Language       string `json:"language"`
	Tone           string `json:"tone"`
}

type NarrateResponse struct {
	Text     string              `json:"text"`
	AudioURL string              `json:"audio_url"`
	Segments []narration.Segment `json:"segments"`
	Language string              `json:"language"`
	Tone     string              `json:"tone"`
}

func (h *NarrationHandler) Narrate(c *gin.Context) {
	var req NarrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	slides, err := h.store.GetSlides(ctx, req.PresentationID)
	if err != nil {
		h.logger.Printf("get slides: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if req.SlideIndex < 0 || req.SlideIndex >= len(slides) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
		return
	}

	result := h.narrator.Generate(ctx, slides[req.SlideIndex], slides, req.Tone, req.Language)

	audioURL := ""
	audioPath, err := h.speech.Synthesize(ctx, result.FullText, result.Language, req.Voice)
	if err != nil {
		h.logger.Printf("speech synthesis: %v", err)
	} else {
		audioURL = "/audio/" + filepath.Base(audioPath)
	}

	if err := h.store.UpdateSlideNarration(ctx, req.PresentationID, req.SlideIndex, result.FullText, audioPath); err != nil {
		h.logger.Printf("update slide narration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, NarrateResponse{
		Text:     result.FullText,
		AudioURL: audioURL,
		Segments: result.Segments,
		Language: result.Language,
		Tone:     result.Tone,
	})
}

func (h *NarrationHandler) Audio(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(h.audioDir, filename)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio not found"})
		return
	}

	c.Header("Content-Type", "audio/mpeg")
	c.File(path)
}
