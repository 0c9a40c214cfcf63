package storage

import (
	"io"
	"os"
	"path/filepath"
)

// localStorage keeps uploaded files flat in a single directory on the local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance rooted at basePath
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// path resolves a stored name inside the base directory.
// Only the base name is used so a name can never escape the upload directory.
func (s *localStorage) path(name string) string {
	return filepath.Join(s.basePath, filepath.Base(name))
}

// Dir returns the directory uploaded files are written to
func (s *localStorage) Dir() string {
	return s.basePath
}

// Create creates a new file and returns a WriteCloser
func (s *localStorage) Create(name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return nil, err
	}

	return os.Create(s.path(name))
}

// Delete removes a file.
// A missing file is reported with an error satisfying os.IsNotExist.
func (s *localStorage) Delete(name string) error {
	return os.Remove(s.path(name))
}
