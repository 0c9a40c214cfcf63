package storage

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_CreateAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s := NewLocalStorage(dir)

	w, err := s.Create("file-1-abc.png")
	require.NoError(t, err)
	_, err = io.Copy(w, strings.NewReader("png bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(dir, "file-1-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))

	require.NoError(t, s.Delete("file-1-abc.png"))
	_, err = os.Stat(filepath.Join(dir, "file-1-abc.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_DeleteMissing(t *testing.T) {
	s := NewLocalStorage(t.TempDir())

	err := s.Delete("nothing-here.mp3")

	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_PathStaysInBase(t *testing.T) {
	base := t.TempDir()
	s := NewLocalStorage(base)

	assert.Equal(t, filepath.Join(base, "passwd"), s.path("../../etc/passwd"))
	assert.Equal(t, base, s.Dir())
}

func TestGenerateFileName(t *testing.T) {
	now := time.UnixMilli(1733040000123)
	pattern := regexp.MustCompile(`^file-1733040000123-[0-9a-f]{12}\.jpg$`)

	assert.Regexp(t, pattern, generateFileName(now, ".jpg"))
	assert.Regexp(t, pattern, generateFileName(now, "jpg"))
	assert.Regexp(t, regexp.MustCompile(`^file-1733040000123-[0-9a-f]{12}$`), generateFileName(now, ""))
	assert.NotEqual(t, GenerateFileName(".png"), GenerateFileName(".png"))
}

func TestSizeWriter(t *testing.T) {
	sw := NewSizeWriter()
	tee := io.TeeReader(strings.NewReader("hello world"), sw)

	_, err := io.Copy(io.Discard, tee)
	require.NoError(t, err)

	assert.Equal(t, int64(11), sw.Size())
}
