package app

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/friendsofchildren/backend/internal/config"
	"github.com/friendsofchildren/backend/internal/handlers"
	"github.com/friendsofchildren/backend/internal/middleware"
	"github.com/friendsofchildren/backend/internal/render"
	"github.com/friendsofchildren/backend/internal/services"
	"github.com/friendsofchildren/backend/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const (
	// multipart headers and form fields on top of the file itself
	uploadOverhead = 1 << 20
	jsonBodyLimit  = 1 << 20
)

// NewRouter builds services and handlers over the stores and mounts them on a chi router
func NewRouter(cfg *config.Config, stores *Stores, logger *zap.Logger) (http.Handler, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	files := storage.NewLocalStorage(cfg.Upload.Dir)
	lessonService := services.NewLessonService(stores.Lessons, logger)
	mediaService := services.NewMediaService(stores.Media, files, cfg.Upload.MaxSizeBytes, logger)

	healthHandler := handlers.NewHealthHandler(logger)
	lessonHandler := handlers.NewLessonHandler(lessonService, logger)
	mediaHandler := handlers.NewMediaHandler(mediaService, logger)
	pageHandler := handlers.NewPageHandler(lessonService, renderer, logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	notFound := http.HandlerFunc(healthHandler.NotFound)
	if cfg.Server.StaticDir != "" {
		notFound = staticFallback(cfg.Server.StaticDir, notFound)
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(healthHandler.NotFound)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/", healthHandler.Index)

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimit.RequestsPerMinute > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerMinute, time.Minute))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequestSizeLimit(jsonBodyLimit, "request body too large"))
			healthHandler.RegisterRoutes(r)
			lessonHandler.RegisterRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequestSizeLimit(cfg.Upload.MaxSizeBytes+uploadOverhead, handlers.MsgFileTooLarge))
			mediaHandler.RegisterRoutes(r)
		})
	})

	pageHandler.RegisterRoutes(r)

	r.Handle(services.UploadURLPrefix+"*", http.StripPrefix(services.UploadURLPrefix,
		fileOnly(http.Dir(cfg.Upload.Dir), notFound)))

	return r, nil
}

// fileOnly serves regular files from root and hands directories and missing paths to fallback
func fileOnly(root http.Dir, fallback http.Handler) http.Handler {
	server := http.FileServer(root)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if !isRegularFile(string(root), name) {
			fallback.ServeHTTP(w, r)
			return
		}
		server.ServeHTTP(w, r)
	})
}

// staticFallback serves the front-end directory for paths no route claimed
func staticFallback(dir string, notFound http.Handler) http.HandlerFunc {
	server := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			notFound.ServeHTTP(w, r)
			return
		}
		name := path.Clean("/" + r.URL.Path)
		if strings.HasPrefix(name, "/api/") || !isRegularFile(dir, name) {
			notFound.ServeHTTP(w, r)
			return
		}
		server.ServeHTTP(w, r)
	}
}

func isRegularFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
	return err == nil && info.Mode().IsRegular()
}
