// cmd/api/main.go
// Main entry point for the SoulConnect API
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/imadgeboyega/soulconnect-backend/internal/auth"
	"github.com/imadgeboyega/soulconnect-backend/internal/chat"
	"github.com/imadgeboyega/soulconnect-backend/internal/common/database"
	"github.com/imadgeboyega/soulconnect-backend/internal/common/logger"
	"github.com/imadgeboyega/soulconnect-backend/internal/config"
	"github.com/imadgeboyega/soulconnect-backend/internal/dating"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load environment variables
	envErr := godotenv.Load()

	// 2. Load configuration
	cfg := config.Load()

	// 3. Set up logging
	log := logger.Setup(cfg.LogLevel)
	if envErr != nil {
		log.Warn("no .env file found, using environment variables", "error", envErr)
	}
	for _, w := range cfg.Warnings {
		log.Warn("ignoring invalid environment value", "detail", w)
	}

	// 4. Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	log.Info("configuration loaded",
		"environment", cfg.Environment,
		"profile_source", cfg.ProfileSource,
		"session_store", cfg.SessionStore)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 5. Profile data source
	profiles, closeProfiles, err := newProfileRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeProfiles()

	// 6. Session store
	store, memoryStore, closeStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// 7. Services
	authService := auth.NewService(store, &auth.Config{
		JWTSecret:     cfg.JWTSecret,
		BCryptCost:    cfg.BCryptCost,
		SessionExpiry: cfg.SessionExpiry,
	}, log.With("component", "auth"))
	if err := authService.SeedDemoAccount(ctx); err != nil {
		return err
	}

	chatService := chat.NewService(chat.Options{
		MinReplyDelay: cfg.ReplyMinDelay,
		MaxReplyDelay: cfg.ReplyMaxDelay,
		Logger:        log.With("component", "chat"),
	})
	defer chatService.Close()

	engineConfig := dating.DefaultConfig()
	engineConfig.MetroAreas = cfg.MetroAreaCities
	engine, err := dating.NewEngine(engineConfig)
	if err != nil {
		return err
	}

	datingService := dating.NewService(profiles, engine, chatService, dating.ServiceConfig{
		LikeThreshold: cfg.LikeThreshold,
	}, log.With("component", "dating"))

	// 8. Router
	router := newRouter(&app{
		logger:        log,
		authService:   authService,
		chatService:   chatService,
		datingService: datingService,
	})

	// 9. Scheduled jobs
	jobs := []dating.Job{dating.FeedRefreshJob(datingService, cfg.FeedRefreshSpec, log)}
	if memoryStore != nil {
		jobs = append(jobs, dating.Job{
			Name: "session-sweep",
			Spec: cfg.SessionSweepSpec,
			Run: func(ctx context.Context) error {
				if n := memoryStore.Sweep(); n > 0 {
					log.Info("expired sessions swept", "count", n)
				}
				return nil
			},
		})
	}
	scheduler := dating.NewScheduler(log.With("component", "scheduler"), jobs...)
	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer scheduler.Stop()

	// 10. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal
	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exited gracefully")
	return nil
}

// newProfileRepository returns the configured profile source and a cleanup func.
func newProfileRepository(ctx context.Context, cfg *config.Config, log *slog.Logger) (dating.Repository, func(), error) {
	if cfg.ProfileSource != "postgres" {
		log.Info("using mock profile dataset")
		return dating.NewMockRepository(), func() {}, nil
	}

	db, err := database.NewPostgresDBFromURL(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	repo := dating.NewPostgresRepository(db, log.With("component", "profiles"))
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	if cfg.SeedProfiles {
		n, err := repo.Seed(ctx, dating.MockProfiles(time.Now()))
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("profiles seeded", "inserted", n)
	}

	log.Info("connected to PostgreSQL")
	return repo, func() { db.Close() }, nil
}

// newSessionStore returns the configured store. memory is non-nil only for
// the in-process store, which needs periodic sweeping.
func newSessionStore(ctx context.Context, cfg *config.Config) (store auth.Store, memory *auth.MemoryStore, cleanup func(), err error) {
	if cfg.SessionStore != "redis" {
		memory = auth.NewMemoryStore()
		return memory, memory, func() {}, nil
	}

	client, err := database.NewRedisClientFromURL(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, err
	}
	return auth.NewRedisStore(client), nil, func() { client.Close() }, nil
}
