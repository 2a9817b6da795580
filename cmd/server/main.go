package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/acme/user-directory/internal/api"
	"github.com/acme/user-directory/internal/infrastructure/config"
	"github.com/acme/user-directory/internal/infrastructure/memory"
	"github.com/acme/user-directory/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	clock := clockwork.NewRealClock()

	// The store is rebuilt from the fixed seed on every start; nothing persists.
	repo := memory.NewUserRepository()
	if err := memory.Seed(ctx, repo, clock); err != nil {
		log.Fatal().Err(err).Msg("failed to seed user store")
	}
	log.Info().Int("users", memory.SeedCount()).Msg("user store seeded")

	e := api.NewRouter(repo, cfg.JWTSecret, cfg.TokenTTL, clock, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
}
