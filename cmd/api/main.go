package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-mvp/internal/config"
	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/middleware"
	"github.com/BruksfildServices01/barber-mvp/internal/observ"
	"github.com/BruksfildServices01/barber-mvp/internal/routes"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger, err := observ.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	blob, err := newBlob(cfg)
	if err != nil {
		return fmt.Errorf("open storage (%s): %w", cfg.StorageDriver, err)
	}

	store := docstore.New(blob, logger)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := routes.RegisterRoutes(r, store, cfg, logger); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}

	logger.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("storage_driver", cfg.StorageDriver),
	)

	if err := r.Run(cfg.Addr()); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}

// newBlob escolhe o backend de persistência do documento.
func newBlob(cfg *config.Config) (docstore.Blob, error) {
	switch cfg.StorageDriver {
	case "redis":
		return docstore.NewRedisBlob(cfg.RedisURL)
	case "postgres":
		return docstore.NewGormBlob(cfg.DBUrl)
	default:
		return docstore.NewBoltBlob(cfg.BoltPath)
	}
}
