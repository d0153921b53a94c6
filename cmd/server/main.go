package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/iho/bankrecon/internal/adapter/fuzzy"
	httpAdapter "github.com/iho/bankrecon/internal/adapter/http"
	"github.com/iho/bankrecon/internal/adapter/http/handler"
	"github.com/iho/bankrecon/internal/adapter/http/middleware"
	"github.com/iho/bankrecon/internal/adapter/idgen"
	redisRepo "github.com/iho/bankrecon/internal/adapter/repository/redis"
	"github.com/iho/bankrecon/internal/infrastructure/config"
	"github.com/iho/bankrecon/internal/infrastructure/logger"
	"github.com/iho/bankrecon/internal/infrastructure/metrics"
	"github.com/iho/bankrecon/internal/infrastructure/redis"
	"github.com/iho/bankrecon/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to Redis when configured; the engine itself is stateless, so
	// the service runs fine without it.
	var idempotencyStore middleware.IdempotencyStore
	healthHandler := handler.NewHealthHandler(nil)
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		appLogger.Info().Msg("connected to redis")

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		healthHandler = handler.NewHealthHandler(redisClient)
	}

	// Pick the fuzzy matcher: remote service when a URL is configured,
	// otherwise the built-in Levenshtein matcher.
	var matcher usecase.FuzzyMatcher
	if cfg.FuzzyMatcherURL != "" {
		matcher = fuzzy.NewHTTPClient(cfg.FuzzyMatcherURL, cfg.FuzzyTimeout, appLogger)
		appLogger.Info().Str("url", cfg.FuzzyMatcherURL).Msg("using remote fuzzy matcher")
	} else {
		matcher = fuzzy.NewLevenshteinMatcher(cfg.FuzzySimilarity)
	}

	m := metrics.New()
	idGen := idgen.NewULIDGenerator()

	reconUC := usecase.NewReconciliationUseCase(matcher, idGen, appLogger)

	reconHandler := handler.NewReconciliationHandler(reconUC, m, appLogger, cfg.FuzzyTimeout)
	benfordHandler := handler.NewBenfordHandler(m, appLogger)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ReconciliationHandler: reconHandler,
		BenfordHandler:        benfordHandler,
		HealthHandler:         healthHandler,
		IdempotencyStore:      idempotencyStore,
		Logger:                appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
