package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultHistoryLimit caps List when no positive limit is given.
const DefaultHistoryLimit = 20

// DetectionRepository handles detection history operations.
type DetectionRepository struct {
	pool *pgxpool.Pool
}

// Create inserts a detection, assigning an ID if it has none.
func (r *DetectionRepository) Create(ctx context.Context, d *Detection) error {
	query := `
		INSERT INTO detections (id, emotion, mood, method, playlists, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	playlists := d.Playlists
	if playlists == nil {
		playlists = []string{}
	}
	err := r.pool.QueryRow(ctx, query,
		d.ID,
		d.Emotion,
		d.Mood,
		d.Method,
		playlists,
	).Scan(&d.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting detection: %w", err)
	}
	return nil
}

// Get retrieves a detection by ID.
func (r *DetectionRepository) Get(ctx context.Context, id uuid.UUID) (*Detection, error) {
	query := `
		SELECT id, emotion, mood, method, playlists, created_at
		FROM detections
		WHERE id = $1
	`
	var d Detection
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.Emotion,
		&d.Mood,
		&d.Method,
		&d.Playlists,
		&d.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying detection: %w", err)
	}
	return &d, nil
}

// List returns the most recent detections, newest first.
func (r *DetectionRepository) List(ctx context.Context, limit int) ([]Detection, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	query := `
		SELECT id, emotion, mood, method, playlists, created_at
		FROM detections
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying detections: %w", err)
	}
	defer rows.Close()

	var detections []Detection
	for rows.Next() {
		var d Detection
		if err := rows.Scan(
			&d.ID,
			&d.Emotion,
			&d.Mood,
			&d.Method,
			&d.Playlists,
			&d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning detection: %w", err)
		}
		detections = append(detections, d)
	}
	return detections, rows.Err()
}
