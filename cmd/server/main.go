package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/friendsofchildren/backend/docs"
	"github.com/friendsofchildren/backend/internal/app"
	"github.com/friendsofchildren/backend/internal/config"
	"github.com/friendsofchildren/backend/internal/logger"
	"go.uber.org/zap"
)

// @title Friends of Children Ministries API
// @version 1.0
// @description Lesson catalog and media library for the ministry website.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	stores, err := app.OpenStores(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to open stores", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer stores.Close()

	if err := os.MkdirAll(cfg.Upload.Dir, 0755); err != nil {
		zapLogger.Fatal("Failed to create upload directory", zap.String("dir", cfg.Upload.Dir), zap.Error(err))
	}

	router, err := app.NewRouter(cfg, stores, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to build router", zap.Error(err))
	}

	srv := app.NewServer(cfg, router)

	go func() {
		zapLogger.Info("Server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("store", cfg.Store.Driver),
			zap.String("uploads", cfg.Upload.Dir),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}
