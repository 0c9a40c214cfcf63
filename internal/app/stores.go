// Package app assembles stores, services and the HTTP router from configuration
package app

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/friendsofchildren/backend/internal/config"
	"github.com/friendsofchildren/backend/internal/repositories"
	"github.com/friendsofchildren/backend/internal/seed"
	"github.com/friendsofchildren/backend/internal/services"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

const migrationsTable = "schema_migrations"

// Stores holds the lesson and media stores selected by the store driver
type Stores struct {
	Lessons services.LessonRepository
	Media   services.MediaRepository
	db      *sql.DB
}

// Close releases the database connection of the mysql driver
func (s *Stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// OpenStores opens the stores for the configured driver.
// The mysql driver connects and runs pending migrations first.
func OpenStores(cfg *config.Config, logger *zap.Logger) (*Stores, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		return &Stores{
			Lessons: repositories.NewLessonMemoryRepository(seed.Lessons(), logger),
			Media:   repositories.NewMediaMemoryRepository(logger),
		}, nil
	case config.StoreMySQL:
		db, err := connectDB(cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return &Stores{
			Lessons: repositories.NewLessonSQLRepository(db, logger),
			Media:   repositories.NewMediaSQLRepository(db, logger),
			db:      db,
		}, nil
	case config.StoreJSON, "":
		if err := os.MkdirAll(cfg.Store.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		lessons, err := repositories.NewLessonJSONRepository(cfg.Store.LessonsFile(), logger)
		if err != nil {
			return nil, err
		}
		media, err := repositories.NewMediaJSONRepository(cfg.Store.MediaFile(), logger)
		if err != nil {
			return nil, err
		}
		return &Stores{Lessons: lessons, Media: media}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath(), "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("database migrations applied")
	return nil
}

// migrationsPath resolves the migrations directory from the repository root or one level below it
func migrationsPath() string {
	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		return "file://" + dir
	}
	if _, err := os.Stat("migrations"); err != nil {
		return "file://../migrations"
	}
	return "file://migrations"
}
