package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/friendsofchildren/backend/internal/models"
	"go.uber.org/zap"
)

type mediaSQLRepository struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewMediaSQLRepository creates a media repository backed by the media table
func NewMediaSQLRepository(db *sql.DB, logger *zap.Logger) *mediaSQLRepository {
	return &mediaSQLRepository{
		db:     db,
		logger: logger,
		now:    timestamp,
	}
}

// List retrieves media records ordered by id, optionally filtered by type
func (r *mediaSQLRepository) List(ctx context.Context, mediaType string) ([]models.MediaAsset, error) {
	query := `SELECT id, name, type, size, date, icon, url, created_at FROM media`
	var args []any
	if mediaType != "" && mediaType != models.CategoryAll {
		query += ` WHERE type = ?`
		args = append(args, mediaType)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query media", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to query media: %w", models.ErrStorage, err)
	}
	defer rows.Close()

	assets := []models.MediaAsset{}
	for rows.Next() {
		var m models.MediaAsset
		if err := rows.Scan(&m.ID, &m.Name, &m.Type, &m.Size, &m.Date, &m.Icon, &m.URL, &m.CreatedAt); err != nil {
			r.logger.Error("failed to scan media", zap.Error(err))
			return nil, fmt.Errorf("%w: failed to scan media: %w", models.ErrStorage, err)
		}
		assets = append(assets, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("%w: error iterating rows: %w", models.ErrStorage, err)
	}

	return assets, nil
}

// GetByID retrieves a media record by its ID
func (r *mediaSQLRepository) GetByID(ctx context.Context, id int) (*models.MediaAsset, error) {
	query := `
		SELECT id, name, type, size, date, icon, url, created_at
		FROM media
		WHERE id = ?
		LIMIT 1
	`

	var m models.MediaAsset
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Type, &m.Size, &m.Date, &m.Icon, &m.URL, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("media %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to query media by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("%w: failed to query media: %w", models.ErrStorage, err)
	}

	return &m, nil
}

// Create inserts the record with id MAX(id)+1 inside a transaction
func (r *mediaSQLRepository) Create(ctx context.Context, asset *models.MediaAsset) (*models.MediaAsset, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", models.ErrStorage, err)
	}
	defer tx.Rollback()

	var id int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM media FOR UPDATE`).Scan(&id); err != nil {
		r.logger.Error("failed to allocate media id", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to allocate media id: %w", models.ErrStorage, err)
	}

	created := *asset
	created.ID = id
	created.CreatedAt = r.now()

	query := `
		INSERT INTO media (id, name, type, size, date, icon, url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		created.ID,
		created.Name,
		created.Type,
		created.Size,
		created.Date,
		created.Icon,
		created.URL,
		created.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert media", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to insert media: %w", models.ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit media: %w", models.ErrStorage, err)
	}

	return &created, nil
}

// Delete removes the record and reports whether a row was deleted
func (r *mediaSQLRepository) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM media WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete media", zap.Error(err), zap.Int("id", id))
		return false, fmt.Errorf("%w: failed to delete media: %w", models.ErrStorage, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: failed to get rows affected: %w", models.ErrStorage, err)
	}

	return affected > 0, nil
}
