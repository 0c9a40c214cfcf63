package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealthHandler_Health(t *testing.T) {
	h := NewHealthHandler(zap.NewNop())
	h.now = func() time.Time { return time.Date(2024, 12, 1, 10, 30, 0, 0, time.UTC) }
	w := httptest.NewRecorder()

	h.Health(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{
		"status":    "ok",
		"message":   "Church API Server is running",
		"timestamp": "2024-12-01T10:30:00.000Z",
	}, body)
}

func TestHealthHandler_Index(t *testing.T) {
	h := NewHealthHandler(zap.NewNop())
	w := httptest.NewRecorder()

	h.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Message   string            `json:"message"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Friends of Children Ministries API Server", body.Message)
	assert.Equal(t, "1.0.0", body.Version)
	assert.Equal(t, "/api/lessons", body.Endpoints["lessons"])
}

func TestHealthHandler_NotFound(t *testing.T) {
	h := NewHealthHandler(zap.NewNop())
	w := httptest.NewRecorder()

	h.NotFound(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `{"error":"Endpoint not found"}`+"\n", w.Body.String())
}
