package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/friendsofchildren/backend/internal/config"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
	minBodyTimeout    = 30 * time.Second
	// slowest client upload rate the body timeout still accommodates, in bytes per second
	minUploadRate = 128 << 10
)

// NewServer creates the HTTP server for handler.
// Body read and write deadlines grow with the upload limit so a full-size upload
// over a slow connection completes; headers still have to arrive quickly.
func NewServer(cfg *config.Config, handler http.Handler) *http.Server {
	bodyTimeout := uploadTimeout(cfg.Upload.MaxSizeBytes)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       bodyTimeout,
		WriteTimeout:      bodyTimeout + minBodyTimeout,
		IdleTimeout:       idleTimeout,
	}
}

func uploadTimeout(maxBytes int64) time.Duration {
	timeout := time.Duration(maxBytes/minUploadRate) * time.Second
	if timeout < minBodyTimeout {
		return minBodyTimeout
	}
	return timeout
}
