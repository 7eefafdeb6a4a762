package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Swayamk2912/gen-ai/translate"
)

type TranslationHandler struct {
	translator TextTranslator
}

func NewTranslationHandler(translator TextTranslator) *TranslationHandler {
	return &TranslationHandler{translator: translator}
}

func (h *TranslationHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": translate.SupportedLanguages(),
		"default":   "en",
	})
}

type DetectRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *TranslationHandler) Detect(c *gin.Context) {
	var req DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	code := h.translator.DetectLanguage(req.Text)
	c.JSON(http.StatusOK, gin.H{
		"language":      code,
		"language_name": translate.LanguageName(code),
		"confidence":    "medium",
	})
}

type TranslateRequest struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
	SourceLanguage string `json:"source_language"`
}

func (h *TranslationHandler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	source := req.SourceLanguage
	if source == "" {
		source = "auto"
	}

	translated := h.translator.Translate(c.Request.Context(), req.Text, req.TargetLanguage, source)
	c.JSON(http.StatusOK, gin.H{
		"original_text":   req.Text,
		"translated_text": translated,
		"source_language": source,
		"target_language": req.TargetLanguage,
	})
}
