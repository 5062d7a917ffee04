package ports

import (
	"context"

	"github.com/google/uuid"

	"gps-coord-bot/internal/core/domain"
)

type ListFilter struct {
	ChatID int64
	Source string
	Status string
	Limit  int
	Offset int
}

type StatsFilter struct {
	ChatID int64
	Source string
}

type ExtractionRepository interface {
	Create(ctx context.Context, e *domain.Extraction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Extraction, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Extraction, int, error)
	Stats(ctx context.Context, filter StatsFilter) (*domain.Stats, error)
}
