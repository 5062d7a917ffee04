package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"gps-coord-bot/internal/core/domain"
	"gps-coord-bot/internal/core/ports/output"
)

// ExtractionInput carries one image and the identity of its sender.
type ExtractionInput struct {
	Source    domain.Source
	ChatID    int64
	UserID    int64
	MessageID int64
	FileName  string
	Data      []byte
}

type ExtractionService struct {
	ocr  ports.OCRClient
	repo ports.ExtractionRepository // nil when history is disabled
}

func NewExtractionService(ocr ports.OCRClient, repo ports.ExtractionRepository) *ExtractionService {
	return &ExtractionService{ocr: ocr, repo: repo}
}

// ProcessImage runs the full pipeline: OCR, coordinate scan, parse,
// validate. Every attempt that reaches OCR is recorded; a failed stage
// returns the record alongside the stage's domain error so callers can
// build a specific reply.
func (s *ExtractionService) ProcessImage(ctx context.Context, in ExtractionInput) (*domain.Extraction, error) {
	start := time.Now()
	text, err := s.ocr.Recognize(ctx, in.Data)
	if err != nil {
		return nil, err
	}

	e := &domain.Extraction{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Source:    in.Source,
		ChatID:    in.ChatID,
		UserID:    in.UserID,
		MessageID: in.MessageID,
		FileName:  in.FileName,
		OCRMillis: time.Since(start).Milliseconds(),
	}

	if strings.TrimSpace(text) == "" {
		e.Status = domain.StatusNoText
		s.record(ctx, e)
		return e, domain.ErrNoTextFound
	}

	raw, ok := domain.FindCoordinates(text)
	if !ok {
		e.Status = domain.StatusNoCoordinates
		s.record(ctx, e)
		return e, domain.ErrNoCoordinatesFound
	}
	e.RawMatch = raw

	coord, err := domain.ParseCoordinates(raw)
	if err != nil {
		e.Status = domain.StatusParseFailed
		s.record(ctx, e)
		return e, err
	}

	e.Status = domain.StatusOK
	e.Coordinate = &coord
	s.record(ctx, e)

	log.WithFields(log.Fields{
		"extraction_id": e.ID,
		"source":        e.Source,
		"latitude":      coord.Latitude,
		"longitude":     coord.Longitude,
		"ocr_ms":        e.OCRMillis,
	}).Info("coordinates extracted")

	return e, nil
}

// record persists the attempt best-effort. A storage failure must never
// turn a successful extraction into an error for the sender.
func (s *ExtractionService) record(ctx context.Context, e *domain.Extraction) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Create(ctx, e); err != nil {
		log.WithError(err).WithField("extraction_id", e.ID).Warn("persist extraction failed")
	}
}

func (s *ExtractionService) Get(ctx context.Context, id uuid.UUID) (*domain.Extraction, error) {
	if s.repo == nil {
		return nil, domain.ErrHistoryDisabled
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ExtractionService) History(ctx context.Context, filter ports.ListFilter) ([]*domain.Extraction, int, error) {
	if s.repo == nil {
		return nil, 0, domain.ErrHistoryDisabled
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *ExtractionService) Stats(ctx context.Context, filter ports.StatsFilter) (*domain.Stats, error) {
	if s.repo == nil {
		return nil, domain.ErrHistoryDisabled
	}
	return s.repo.Stats(ctx, filter)
}
