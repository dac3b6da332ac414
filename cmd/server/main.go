package main

import (
	"log"

	"pixel_casino/internal/app"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := app.NewApp(logger).Run(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
