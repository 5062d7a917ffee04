package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies which transport an extraction request arrived on.
type Source string

const (
	SourceTelegram Source = "telegram"
	SourceAPI      Source = "api"
)

// Status is the outcome of a single extraction attempt.
type Status string

const (
	StatusOK            Status = "ok"
	StatusNoText        Status = "no_text"
	StatusNoCoordinates Status = "no_coordinates"
	StatusParseFailed   Status = "parse_failed"
)

// Extraction records one attempt to pull GPS coordinates out of an image.
type Extraction struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	Source     Source
	ChatID     int64
	UserID     int64
	MessageID  int64
	FileName   string
	Status     Status
	RawMatch   string
	Coordinate *Coordinate
	OCRMillis  int64
}

// Stats aggregates extraction attempts, optionally scoped to one chat.
type Stats struct {
	Total         int
	Succeeded     int
	NoText        int
	NoCoordinates int
	ParseFailed   int
	AvgOCRMillis  float64
}

// SuccessRate returns the fraction of attempts that produced coordinates.
func (s Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Total)
}
