package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gps-coord-bot/internal/core/domain"
	"gps-coord-bot/internal/core/ports/output"
)

type extractionRepo struct {
	pool *pgxpool.Pool
}

func NewExtractionRepository(pool *pgxpool.Pool) ports.ExtractionRepository {
	return &extractionRepo{pool: pool}
}

func (r *extractionRepo) Create(ctx context.Context, e *domain.Extraction) error {
	var lat, lon *float64
	if e.Coordinate != nil {
		lat = &e.Coordinate.Latitude
		lon = &e.Coordinate.Longitude
	}

	query := `
		INSERT INTO extraction
			(id, created_at, source, chat_id, user_id, message_id,
			 file_name, status, raw_match, latitude, longitude, ocr_millis)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.CreatedAt, string(e.Source), e.ChatID, e.UserID, e.MessageID,
		e.FileName, string(e.Status), e.RawMatch, lat, lon, e.OCRMillis,
	)
	if err != nil {
		return fmt.Errorf("create extraction: %w", err)
	}
	return nil
}

func (r *extractionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Extraction, error) {
	query := `
		SELECT id, created_at, source, chat_id, user_id, message_id,
			   file_name, status, raw_match, latitude, longitude, ocr_millis
		FROM extraction
		WHERE id = $1
	`
	e, err := scanExtraction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExtractionNotFound
		}
		return nil, fmt.Errorf("get extraction by id: %w", err)
	}
	return e, nil
}

func (r *extractionRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Extraction, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.ChatID != 0 {
		conditions = append(conditions, fmt.Sprintf("chat_id = $%d", argPos))
		args = append(args, filter.ChatID)
		argPos++
	}
	if filter.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", argPos))
		args = append(args, filter.Source)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM extraction WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count extractions: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, source, chat_id, user_id, message_id,
			   file_name, status, raw_match, latitude, longitude, ocr_millis
		FROM extraction
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list extractions: %w", err)
	}
	defer rows.Close()

	var items []*domain.Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan extraction row: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate extraction rows: %w", err)
	}

	return items, total, nil
}

func (r *extractionRepo) Stats(ctx context.Context, filter ports.StatsFilter) (*domain.Stats, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.ChatID != 0 {
		conditions = append(conditions, fmt.Sprintf("chat_id = $%d", argPos))
		args = append(args, filter.ChatID)
		argPos++
	}
	if filter.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", argPos))
		args = append(args, filter.Source)
		argPos++
	}

	query := fmt.Sprintf(`
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'ok'),
			   COUNT(*) FILTER (WHERE status = 'no_text'),
			   COUNT(*) FILTER (WHERE status = 'no_coordinates'),
			   COUNT(*) FILTER (WHERE status = 'parse_failed'),
			   COALESCE(AVG(ocr_millis), 0)::float8
		FROM extraction
		WHERE %s
	`, strings.Join(conditions, " AND "))

	s := &domain.Stats{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&s.Total, &s.Succeeded, &s.NoText, &s.NoCoordinates, &s.ParseFailed, &s.AvgOCRMillis,
	)
	if err != nil {
		return nil, fmt.Errorf("extraction stats: %w", err)
	}
	return s, nil
}

func scanExtraction(row pgx.Row) (*domain.Extraction, error) {
	e := &domain.Extraction{}
	var source, status string
	var lat, lon *float64

	err := row.Scan(
		&e.ID, &e.CreatedAt, &source, &e.ChatID, &e.UserID, &e.MessageID,
		&e.FileName, &status, &e.RawMatch, &lat, &lon, &e.OCRMillis,
	)
	if err != nil {
		return nil, err
	}

	e.Source = domain.Source(source)
	e.Status = domain.Status(status)
	if lat != nil && lon != nil {
		e.Coordinate = &domain.Coordinate{Latitude: *lat, Longitude: *lon}
	}
	return e, nil
}
