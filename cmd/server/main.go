package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Reaffith/quiz-builder/docs"
	"github.com/Reaffith/quiz-builder/internal/config"
	"github.com/Reaffith/quiz-builder/internal/database"
	"github.com/Reaffith/quiz-builder/internal/handlers"
	"github.com/Reaffith/quiz-builder/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
)

// @title           Quiz Builder API
// @version         1.0
// @description     Create, list, preview and delete quizzes
// @host            localhost:3001
// @BasePath        /

func main() {
	cfg := config.Load()

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cfg.SlogLevel(),
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(logger)

	if os.Getenv(gin.EnvGinMode) == "" && cfg.SlogLevel() > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}
	logger.Info("database migrated")

	r := handlers.NewRouter(handlers.RouterConfig{
		DB:          db,
		Hub:         ws.NewHub(logger),
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
