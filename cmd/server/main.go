package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avilanova/barcarate/internal/config"
	"github.com/avilanova/barcarate/internal/engine"
	"github.com/avilanova/barcarate/internal/handler"
	"github.com/avilanova/barcarate/internal/logger"
	"github.com/avilanova/barcarate/internal/service"
	"github.com/avilanova/barcarate/internal/upstream"
)

const shutdownGrace = 10 * time.Second

func main() {
	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	if cfg.App.Env == "dev" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Upstream gateway, scoring engine and the services on top of them.
	gateway := upstream.NewClient(upstream.Config{
		BaseURL:         cfg.Upstream.BaseURL,
		APIKey:          cfg.Upstream.APIKey,
		LeagueID:        cfg.Upstream.LeagueID,
		Season:          cfg.Upstream.Season,
		SquadTeamID:     cfg.Upstream.SquadTeamID,
		Timeout:         cfg.Upstream.Timeout(),
		RequestInterval: cfg.Upstream.RequestInterval(),
		MockFallback:    cfg.Upstream.MockFallback,
	}, appLogger)

	eng := engine.New(engine.DefaultTables(), appLogger)

	squadSvc := service.NewSquadService(gateway, eng, appLogger)
	playerSvc := service.NewPlayerService(gateway, eng, appLogger)
	transferSvc := service.NewTransferService(gateway, eng, appLogger)

	router := gin.New()
	router.Use(gin.Recovery())
	handler.Register(router, gateway, squadSvc, playerSvc, transferSvc)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info().Int("port", cfg.App.Port).Str("env", cfg.App.Env).Msg("service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	appLogger.Info().Msg("server stopped")
}
