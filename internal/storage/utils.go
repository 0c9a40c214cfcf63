package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateFileName generates a stored file name of the form file-<unix millis>-<random><ext>
func GenerateFileName(extension string) string {
	return generateFileName(time.Now(), extension)
}

func generateFileName(now time.Time, extension string) string {
	random := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	if extension != "" && extension[0] != '.' {
		extension = "." + extension
	}
	return fmt.Sprintf("file-%d-%s%s", now.UnixMilli(), random, extension)
}

// sizeWriter counts the bytes written through it
type sizeWriter struct {
	size int64
}

// Write implements io.Writer
func (sw *sizeWriter) Write(p []byte) (int, error) {
	n := len(p)
	sw.size += int64(n)
	return n, nil
}

// Size returns the total number of bytes written
func (sw *sizeWriter) Size() int64 {
	return sw.size
}

// NewSizeWriter creates a new sizeWriter instance
func NewSizeWriter() *sizeWriter {
	return &sizeWriter{}
}
