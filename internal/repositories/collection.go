package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/friendsofchildren/backend/internal/models"
	"go.uber.org/zap"
)

// collection persists a whole slice of records as a single unit.
// Every repository operation loads the full collection and, when mutating, saves it back.
type collection[T any] interface {
	load() []T
	save(records []T) error
}

// fileCollection keeps the records as a JSON array in one file
type fileCollection[T any] struct {
	path   string
	logger *zap.Logger
}

// newFileCollection creates the backing file with an empty array if it does not exist yet
func newFileCollection[T any](path string, logger *zap.Logger) (*fileCollection[T], error) {
	c := &fileCollection[T]{
		path:   path,
		logger: logger,
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		if err := c.save([]T{}); err != nil {
			return nil, err
		}
		logger.Info("created data file", zap.String("path", path))
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat data file: %w", err)
	}

	return c, nil
}

// load reads the collection from disk.
// A missing or unreadable file yields an empty collection instead of an error.
func (c *fileCollection[T]) load() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		c.logger.Warn("failed to read data file, using empty collection", zap.String("path", c.path), zap.Error(err))
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.logger.Warn("failed to decode data file, using empty collection", zap.String("path", c.path), zap.Error(err))
		return []T{}
	}
	if records == nil {
		records = []T{}
	}

	return records
}

// save overwrites the file with the full collection
func (c *fileCollection[T]) save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %w", models.ErrStorage, c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", models.ErrStorage, c.path, err)
	}
	return nil
}

// memoryCollection keeps the records for the lifetime of the process
type memoryCollection[T any] struct {
	records []T
}

func newMemoryCollection[T any](records []T) *memoryCollection[T] {
	return &memoryCollection[T]{records: slices.Clone(records)}
}

func (c *memoryCollection[T]) load() []T {
	if c.records == nil {
		return []T{}
	}
	return slices.Clone(c.records)
}

func (c *memoryCollection[T]) save(records []T) error {
	c.records = slices.Clone(records)
	return nil
}

// nextID returns the highest existing id plus one, or 1 for an empty collection
func nextID[T any](records []T, id func(T) int) int {
	maxID := 0
	for _, r := range records {
		if v := id(r); v > maxID {
			maxID = v
		}
	}
	return maxID + 1
}
