package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aseptimu/tinylink/internal/app/config"
	handlers "github.com/aseptimu/tinylink/internal/app/handlers/http"
	"github.com/aseptimu/tinylink/internal/app/logger"
	"github.com/aseptimu/tinylink/internal/app/metrics"
	"github.com/aseptimu/tinylink/internal/app/server/http"
	"github.com/aseptimu/tinylink/internal/app/service"
	"github.com/aseptimu/tinylink/internal/app/shortkey"
	"github.com/aseptimu/tinylink/internal/app/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("shortener: %v", err)
	}
}

func run() error {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		return err
	}

	sugar, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer sugar.Sync()

	sugar.Infow("Starting shortener",
		"address", cfg.ServerAddress,
		"keyLength", cfg.KeyLength,
		"keyAttempts", cfg.KeyAttempts,
	)

	urlStore := store.NewStore(
		store.WithGenerator(shortkey.NanoidGenerator{Length: cfg.KeyLength}),
		store.WithKeyAttempts(cfg.KeyAttempts),
	)
	urlService := service.NewURLService(urlStore)
	m := metrics.New(urlStore.Len)

	h := handlers.New(cfg, urlService, urlStore, m, sugar)
	srv := http.NewServer(cfg.ServerAddress, cfg.ShutdownTimeout, m, sugar, h)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		sugar.Errorw("Server failed", "address", cfg.ServerAddress, "error", err)
		return err
	}
	sugar.Info("Server stopped")
	return nil
}
