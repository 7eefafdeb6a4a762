package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QAHandler struct {
	store    QAStore
	composer Answerer
	logger   *log.Logger
}

func NewQAHandler(store QAStore, composer Answerer, logger *log.Logger) *QAHandler {
	return &QAHandler{store: store, composer: composer, logger: logger}
}

type QARequest struct {
	PresentationID string `json:"presentation_id" binding:"required"`
	SlideIndex     int    `json:"slide_index"`
	Question       string `json:"question" binding:"required"`
	Language       string `json:"language"`
	Tone           string `json:"tone"`
}

type QAResponse struct {
	Answer string `json:"answer"`
}

func (h *QAHandler) Ask(c *gin.Context) {
	var req QARequest
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

	qaLogs, err := h.store.GetQALogs(ctx, req.PresentationID)
	if err != nil {
		h.logger.Printf("get qa logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	answerText := h.composer.Answer(ctx, req.Question, slides[req.SlideIndex], slides, qaLogs, req.Language, req.Tone)

	// The answer is already composed; a failed audit write should not lose it.
	if err := h.store.AppendQALog(ctx, req.PresentationID, req.SlideIndex, req.Question, answerText); err != nil {
		h.logger.Printf("append qa log: %v", err)
	}

	c.JSON(http.StatusOK, QAResponse{Answer: answerText})
}
