package main

import (
	"context"
	"log"

	"github.com/friendsofchildren/backend/internal/app"
	"github.com/friendsofchildren/backend/internal/config"
	"github.com/friendsofchildren/backend/internal/logger"
	"go.uber.org/zap"
)

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

	result, err := app.Seed(context.Background(), stores)
	if err != nil {
		zapLogger.Fatal("Failed to seed stores", zap.Error(err))
	}

	zapLogger.Info("Seeding finished",
		zap.Int("lessons", result.Lessons),
		zap.Int("media", result.Media),
	)
}
