package handlers

import (
	"gps-coord-bot/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	extractionSvc *services.ExtractionService
}

func New(extractionSvc *services.ExtractionService) *Handler {
	return &Handler{extractionSvc: extractionSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Extractions
	r.POST("/extractions", h.CreateExtraction)
	r.GET("/extractions", h.ListExtractions)
	r.GET("/extractions/:id", h.GetExtraction)

	// Aggregates
	r.GET("/stats", h.GetStats)
}
