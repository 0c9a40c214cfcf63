package app

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/friendsofchildren/backend/internal/config"
	"github.com/friendsofchildren/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	root := t.TempDir()
	return &config.Config{
		Server:    config.ServerConfig{Port: 3000},
		Logging:   config.LoggingConfig{Level: "info"},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		Store:     config.StoreConfig{Driver: driver, DataDir: filepath.Join(root, "data")},
		Upload:    config.UploadConfig{Dir: filepath.Join(root, "uploads"), MaxSizeBytes: 1 << 20},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 1000},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	stores, err := OpenStores(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	router, err := NewRouter(cfg, stores, zap.NewNop())
	require.NoError(t, err)
	return router
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestOpenStores(t *testing.T) {
	t.Run("json creates data files", func(t *testing.T) {
		cfg := newTestConfig(t, config.StoreJSON)
		stores, err := OpenStores(cfg, zap.NewNop())
		require.NoError(t, err)
		defer stores.Close()

		assert.FileExists(t, cfg.Store.LessonsFile())
		assert.FileExists(t, cfg.Store.MediaFile())
	})

	t.Run("memory is seeded with lessons", func(t *testing.T) {
		stores, err := OpenStores(newTestConfig(t, config.StoreMemory), zap.NewNop())
		require.NoError(t, err)

		lessons, err := stores.Lessons.List(context.Background(), models.LessonCriteria{})
		require.NoError(t, err)
		assert.Len(t, lessons, 6)
		assert.NoError(t, stores.Close())
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := OpenStores(newTestConfig(t, "postgres"), zap.NewNop())
		assert.Error(t, err)
	})
}

func TestSeed(t *testing.T) {
	cfg := newTestConfig(t, config.StoreJSON)
	stores, err := OpenStores(cfg, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	result, err := Seed(ctx, stores)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Lessons: 6, Media: 8}, result)

	result, err = Seed(ctx, stores)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, result)

	memory, err := OpenStores(newTestConfig(t, config.StoreMemory), zap.NewNop())
	require.NoError(t, err)
	result, err = Seed(ctx, memory)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Lessons: 0, Media: 8}, result)
}

func TestRouter_LessonLifecycle(t *testing.T) {
	router := newTestServer(t, newTestConfig(t, config.StoreJSON))

	w := doJSON(t, router, http.MethodPost, "/api/lessons", map[string]any{
		"title":       "The Good Samaritan",
		"scripture":   "Luke 10:25-37",
		"category":    "parables",
		"description": "Loving our neighbors",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Lesson
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, models.LessonStatusPublished, created.Status)
	assert.Equal(t, models.DefaultGradient, created.Gradient)

	w = doJSON(t, router, http.MethodPost, "/api/lessons", map[string]any{"title": "Missing fields"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/lessons?search=SAMARITAN", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lessons []models.Lesson
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lessons))
	assert.Len(t, lessons, 1)

	w = doJSON(t, router, http.MethodGet, "/api/lessons?category=faith", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(t, router, http.MethodPut, "/api/lessons/1", map[string]any{"status": "draft"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Lesson
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.LessonStatusDraft, updated.Status)
	assert.Equal(t, "The Good Samaritan", updated.Title)

	w = doJSON(t, router, http.MethodDelete, "/api/lessons/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Lesson deleted successfully","id":1}`, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/lessons/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Lesson not found"}`, w.Body.String())
}

func TestRouter_MediaLifecycle(t *testing.T) {
	cfg := newTestConfig(t, config.StoreJSON)
	router := newTestServer(t, cfg)
	content := "\x89PNG fake image bytes"

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="logo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var asset models.MediaAsset
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &asset))
	assert.Equal(t, "logo.png", asset.Name)
	assert.Equal(t, models.MediaTypeImage, asset.Type)
	require.True(t, strings.HasPrefix(asset.URL, "/uploads/file-"))

	stored := filepath.Join(cfg.Upload.Dir, path.Base(asset.URL))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	w = doJSON(t, router, http.MethodGet, asset.URL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/media?type=video", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(t, router, http.MethodDelete, "/api/media/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Media file deleted successfully","id":1}`, w.Body.String())
	assert.NoFileExists(t, stored)

	w = doJSON(t, router, http.MethodGet, asset.URL, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ServesPagesAndMeta(t *testing.T) {
	router := newTestServer(t, newTestConfig(t, config.StoreMemory))

	t.Run("index", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Friends of Children Ministries API Server")
	})

	t.Run("health", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("lessons page", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/lessons?category=creation", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Showing 2 lessons in Creation")
	})

	t.Run("unknown route", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/unknown", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Endpoint not found"}`, w.Body.String())
	})

	t.Run("upload directory is not listed", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/uploads/", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/lessons", nil)
		req.Header.Set("Origin", "http://example.org")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("request id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/health", nil)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}

func TestRouter_StaticFallback(t *testing.T) {
	cfg := newTestConfig(t, config.StoreMemory)
	cfg.Server.StaticDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Server.StaticDir, "about.html"), []byte("<h1>About</h1>"), 0644))
	router := newTestServer(t, cfg)

	w := doJSON(t, router, http.MethodGet, "/about.html", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>About</h1>", w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/missing.html", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Endpoint not found"}`, w.Body.String())
}

func TestRouter_LessonFieldsStoredAsGiven(t *testing.T) {
	router := newTestServer(t, newTestConfig(t, config.StoreJSON))

	w := doJSON(t, router, http.MethodPost, "/api/lessons", map[string]any{
		"title":     "Jonah",
		"scripture": "Jonah 1-4",
		"category":  "faith",
		"duration":  "45 minutes",
		"status":    "archived",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"duration":"45 minutes"`)
	assert.Contains(t, w.Body.String(), `"status":"archived"`)

	w = doJSON(t, router, http.MethodPut, "/api/lessons/1", map[string]any{"title": "", "duration": 30})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Lesson
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "", updated.Title)
	require.NotNil(t, updated.Duration)
	assert.Equal(t, models.Duration("30"), *updated.Duration)
	assert.Contains(t, w.Body.String(), `"duration":30`)

	w = doJSON(t, router, http.MethodPut, "/api/lessons/2", map[string]any{"title": "Nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_SearchIsNotTrimmed(t *testing.T) {
	router := newTestServer(t, newTestConfig(t, config.StoreMemory))

	w := doJSON(t, router, http.MethodGet, "/api/lessons?search=%20", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var lessons []models.Lesson
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lessons))
	assert.Len(t, lessons, 6)
	for _, l := range lessons {
		assert.Contains(t, l.Title+l.Scripture+l.DescriptionText()+l.Category, " ")
	}

	w = doJSON(t, router, http.MethodGet, "/api/lessons?search=%20samaritan", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lessons))
	assert.Len(t, lessons, 1)

	w = doJSON(t, router, http.MethodGet, "/api/lessons?search=samaritan%20%20", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lessons))
	assert.Empty(t, lessons)
}

func TestRouter_OversizedUploadIsBadRequest(t *testing.T) {
	cfg := newTestConfig(t, config.StoreJSON)
	router := newTestServer(t, cfg)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="big.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0xAB}, 3<<20))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"file is too large"}`, w.Body.String())

	entries, err := os.ReadDir(cfg.Upload.Dir)
	if err == nil {
		assert.Empty(t, entries)
	}
}
