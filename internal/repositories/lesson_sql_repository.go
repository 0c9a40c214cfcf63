package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/friendsofchildren/backend/internal/filter"
	"github.com/friendsofchildren/backend/internal/models"
	"go.uber.org/zap"
)

const lessonColumns = `id, title, scripture, category, date, duration, age_group, description, overview,
	objectives, lesson_content, materials, discussion_questions, article_title, article_author,
	article_date, article_content, article_link, video_url, audio_url, status, link, gradient,
	created_at, updated_at`

type lessonSQLRepository struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewLessonSQLRepository creates a lesson repository backed by the lessons table
func NewLessonSQLRepository(db *sql.DB, logger *zap.Logger) *lessonSQLRepository {
	return &lessonSQLRepository{
		db:     db,
		logger: logger,
		now:    timestamp,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLesson(row rowScanner) (*models.Lesson, error) {
	var l models.Lesson
	err := row.Scan(
		&l.ID,
		&l.Title,
		&l.Scripture,
		&l.Category,
		&l.Date,
		&l.Duration,
		&l.AgeGroup,
		&l.Description,
		&l.Overview,
		&l.Objectives,
		&l.LessonContent,
		&l.Materials,
		&l.DiscussionQuestions,
		&l.ArticleTitle,
		&l.ArticleAuthor,
		&l.ArticleDate,
		&l.ArticleContent,
		&l.ArticleLink,
		&l.VideoURL,
		&l.AudioURL,
		&l.Status,
		&l.Link,
		&l.Gradient,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// lessonArgs returns the column values in lessonColumns order
func lessonArgs(l *models.Lesson) []any {
	return []any{
		l.ID,
		l.Title,
		l.Scripture,
		l.Category,
		l.Date,
		l.Duration,
		l.AgeGroup,
		l.Description,
		l.Overview,
		l.Objectives,
		l.LessonContent,
		l.Materials,
		l.DiscussionQuestions,
		l.ArticleTitle,
		l.ArticleAuthor,
		l.ArticleDate,
		l.ArticleContent,
		l.ArticleLink,
		l.VideoURL,
		l.AudioURL,
		l.Status,
		l.Link,
		l.Gradient,
		l.CreatedAt,
		l.UpdatedAt,
	}
}

// List loads every lesson ordered by id and applies the filter in memory,
// so matching is identical to the file-backed repository regardless of column collation.
func (r *lessonSQLRepository) List(ctx context.Context, criteria models.LessonCriteria) ([]models.Lesson, error) {
	query := fmt.Sprintf(`SELECT %s FROM lessons ORDER BY id`, lessonColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query lessons", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to query lessons: %w", models.ErrStorage, err)
	}
	defer rows.Close()

	lessons := []models.Lesson{}
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			r.logger.Error("failed to scan lesson", zap.Error(err))
			return nil, fmt.Errorf("%w: failed to scan lesson: %w", models.ErrStorage, err)
		}
		lessons = append(lessons, *lesson)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("%w: error iterating rows: %w", models.ErrStorage, err)
	}

	return filter.Lessons(lessons, criteria.Search, criteria.Category), nil
}

// GetByID retrieves a lesson by its ID
func (r *lessonSQLRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	query := fmt.Sprintf(`SELECT %s FROM lessons WHERE id = ? LIMIT 1`, lessonColumns)

	lesson, err := scanLesson(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lesson %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to query lesson by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("%w: failed to query lesson: %w", models.ErrStorage, err)
	}

	return lesson, nil
}

// Create inserts the lesson with id MAX(id)+1 inside a transaction
func (r *lessonSQLRepository) Create(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", models.ErrStorage, err)
	}
	defer tx.Rollback()

	var id int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM lessons FOR UPDATE`).Scan(&id); err != nil {
		r.logger.Error("failed to allocate lesson id", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to allocate lesson id: %w", models.ErrStorage, err)
	}

	created := *lesson
	created.ID = id
	created.CreatedAt = r.now()
	created.UpdatedAt = created.CreatedAt

	query := fmt.Sprintf(`INSERT INTO lessons (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, lessonColumns)
	if _, err := tx.ExecContext(ctx, query, lessonArgs(&created)...); err != nil {
		r.logger.Error("failed to insert lesson", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to insert lesson: %w", models.ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit lesson: %w", models.ErrStorage, err)
	}

	return &created, nil
}

// Update loads the lesson, applies the patch and writes every column back
func (r *lessonSQLRepository) Update(ctx context.Context, id int, patch *models.LessonPatch) (*models.Lesson, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", models.ErrStorage, err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`SELECT %s FROM lessons WHERE id = ? FOR UPDATE`, lessonColumns)
	lesson, err := scanLesson(tx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lesson %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to query lesson for update", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("%w: failed to query lesson: %w", models.ErrStorage, err)
	}

	patch.Apply(lesson)
	lesson.ID = id
	lesson.UpdatedAt = r.now()

	update := `
		UPDATE lessons SET title = ?, scripture = ?, category = ?, date = ?, duration = ?, age_group = ?,
			description = ?, overview = ?, objectives = ?, lesson_content = ?, materials = ?,
			discussion_questions = ?, article_title = ?, article_author = ?, article_date = ?,
			article_content = ?, article_link = ?, video_url = ?, audio_url = ?, status = ?, link = ?,
			gradient = ?, updated_at = ?
		WHERE id = ?
	`
	args := lessonArgs(lesson)
	// drop id and created_at, append id for the WHERE clause
	args = append(args[1:len(args)-2], lesson.UpdatedAt, id)
	if _, err := tx.ExecContext(ctx, update, args...); err != nil {
		r.logger.Error("failed to update lesson", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("%w: failed to update lesson: %w", models.ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit lesson: %w", models.ErrStorage, err)
	}

	return lesson, nil
}

// Delete removes the lesson and reports whether a row was deleted
func (r *lessonSQLRepository) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM lessons WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete lesson", zap.Error(err), zap.Int("id", id))
		return false, fmt.Errorf("%w: failed to delete lesson: %w", models.ErrStorage, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: failed to get rows affected: %w", models.ErrStorage, err)
	}

	return affected > 0, nil
}
