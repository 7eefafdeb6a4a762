package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Swayamk2912/gen-ai/store"
	"github.com/Swayamk2912/gen-ai/summary"
)

type SummaryHandler struct {
	store    SummaryStore
	reporter SummaryReporter
	logger   *log.Logger
}

func NewSummaryHandler(store SummaryStore, reporter SummaryReporter, logger *log.Logger) *SummaryHandler {
	return &SummaryHandler{store: store, reporter: reporter, logger: logger}
}

func (h *SummaryHandler) load(c *gin.Context) (store.Presentation, []store.Slide, []store.QARecord, bool) {
	ctx := c.Request.Context()
	id := c.Param("id")

	pres, err := h.store.GetPresentation(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Presentation not found"})
		return store.Presentation{}, nil, nil, false
	}
	if err != nil {
		h.logger.Printf("get presentation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return store.Presentation{}, nil, nil, false
	}

	slides, err := h.store.GetSlides(ctx, id)
	if err != nil {
		h.logger.Printf("get slides: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return store.Presentation{}, nil, nil, false
	}

	qaLogs, err := h.store.GetQALogs(ctx, id)
	if err != nil {
		h.logger.Printf("get qa logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return store.Presentation{}, nil, nil, false
	}

	return pres, slides, qaLogs, true
}

func (h *SummaryHandler) Summary(c *gin.Context) {
	pres, slides, qaLogs, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, summary.BuildReport(pres, slides, qaLogs))
}

func (h *SummaryHandler) AISummary(c *gin.Context) {
	pres, slides, qaLogs, ok := h.load(c)
	if !ok {
		return
	}
	language := c.DefaultQuery("language", "en")
	c.JSON(http.StatusOK, h.reporter.AIReport(c.Request.Context(), pres, slides, qaLogs, language))
}
