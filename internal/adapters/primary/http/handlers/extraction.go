package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"gps-coord-bot/internal/adapters/primary/http/dto"
	"gps-coord-bot/internal/core/domain"
	"gps-coord-bot/internal/core/ports/output"
	"gps-coord-bot/internal/core/services"
)

// maxUploadBytes caps multipart image uploads.
const maxUploadBytes = 20 << 20

func (h *Handler) CreateExtraction(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'image' is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open uploaded image"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded image"})
		return
	}

	rec, err := h.extractionSvc.ProcessImage(c.Request.Context(), services.ExtractionInput{
		Source:   domain.SourceAPI,
		FileName: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		if rec != nil {
			// OCR ran but no usable coordinates came out; return the
			// attempt record with the failure.
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":      err.Error(),
				"extraction": dto.ToExtractionResponse(rec),
			})
			return
		}
		log.WithError(err).Error("process uploaded image failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExtractionResponse(rec))
}

func (h *Handler) ListExtractions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	chatID, _ := strconv.ParseInt(c.Query("chat_id"), 10, 64)

	// Mirror the service's clamping so page_size reports the limit that
	// was actually applied, not the raw query value.
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := ports.ListFilter{
		ChatID: chatID,
		Source: c.Query("source"),
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	}

	items, total, err := h.extractionSvc.History(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list extractions failed")
		mapDomainError(c, err)
		return
	}

	resp := make([]dto.ExtractionResponse, 0, len(items))
	for _, e := range items {
		resp = append(resp, dto.ToExtractionResponse(e))
	}

	c.JSON(http.StatusOK, dto.ListExtractionsResponse{
		Items:      resp,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(resp),
	})
}

func (h *Handler) GetExtraction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid extraction id"})
		return
	}

	e, err := h.extractionSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExtractionResponse(e))
}

func (h *Handler) GetStats(c *gin.Context) {
	chatID, _ := strconv.ParseInt(c.Query("chat_id"), 10, 64)

	stats, err := h.extractionSvc.Stats(c.Request.Context(), ports.StatsFilter{
		ChatID: chatID,
		Source: c.Query("source"),
	})
	if err != nil {
		log.WithError(err).Error("load stats failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}
