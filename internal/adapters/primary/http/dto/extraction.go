package dto

import (
	"time"

	"github.com/google/uuid"

	"gps-coord-bot/internal/core/domain"
)

type ExtractionResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt string    `json:"created_at"`
	Source    string    `json:"source"`
	ChatID    int64     `json:"chat_id,omitempty"`
	UserID    int64     `json:"user_id,omitempty"`
	FileName  string    `json:"file_name,omitempty"`
	Status    string    `json:"status"`
	RawMatch  string    `json:"raw_match,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Formatted string    `json:"formatted,omitempty"`
	OCRMillis int64     `json:"ocr_millis"`
}

type ListExtractionsResponse struct {
	Items      []ExtractionResponse `json:"items"`
	Total      int                  `json:"total"`
	PageSize   int                  `json:"page_size"`
	NextOffset int                  `json:"next_offset"`
}

type StatsResponse struct {
	Total         int     `json:"total"`
	Succeeded     int     `json:"succeeded"`
	NoText        int     `json:"no_text"`
	NoCoordinates int     `json:"no_coordinates"`
	ParseFailed   int     `json:"parse_failed"`
	SuccessRate   float64 `json:"success_rate"`
	AvgOCRMillis  float64 `json:"avg_ocr_millis"`
}

func ToExtractionResponse(e *domain.Extraction) ExtractionResponse {
	resp := ExtractionResponse{
		ID:        e.ID,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		Source:    string(e.Source),
		ChatID:    e.ChatID,
		UserID:    e.UserID,
		FileName:  e.FileName,
		Status:    string(e.Status),
		RawMatch:  e.RawMatch,
		OCRMillis: e.OCRMillis,
	}
	if e.Coordinate != nil {
		resp.Latitude = &e.Coordinate.Latitude
		resp.Longitude = &e.Coordinate.Longitude
		resp.Formatted = e.Coordinate.Format()
	}
	return resp
}

func ToStatsResponse(s *domain.Stats) StatsResponse {
	return StatsResponse{
		Total:         s.Total,
		Succeeded:     s.Succeeded,
		NoText:        s.NoText,
		NoCoordinates: s.NoCoordinates,
		ParseFailed:   s.ParseFailed,
		SuccessRate:   s.SuccessRate(),
		AvgOCRMillis:  s.AvgOCRMillis,
	}
}
