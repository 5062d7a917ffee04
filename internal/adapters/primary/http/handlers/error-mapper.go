package handlers

import (
	"errors"
	"net/http"

	"gps-coord-bot/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrExtractionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request errors
	case errors.Is(err, domain.ErrUnsupportedImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Extraction pipeline failures
	case errors.Is(err, domain.ErrNoTextFound),
		errors.Is(err, domain.ErrNoCoordinatesFound),
		errors.Is(err, domain.ErrMalformedCoordinates),
		errors.Is(err, domain.ErrInvalidLatitude),
		errors.Is(err, domain.ErrInvalidLongitude):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	// History disabled
	case errors.Is(err, domain.ErrHistoryDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
