package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"visionland/config"
	chainAdapter "visionland/internal/adapter/chain"
	httpHandler "visionland/internal/adapter/http/handler"
	"visionland/internal/adapter/pieces"
	"visionland/internal/adapter/pinning"
	pgStorage "visionland/internal/adapter/storage/postgres"
	redisStorage "visionland/internal/adapter/storage/redis"
	"visionland/internal/core/ports"
	"visionland/internal/service"
	"visionland/pkg/logger"
	"visionland/pkg/mockid"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("persistence", cfg.Persistence.Backend).
		Msg("Starting VisionLand API")

	ctx := context.Background()

	// Initialize the document store behind the simulation store.
	var (
		docs    ports.DocumentStore
		health  []ports.HealthChecker
		cleanup func()
	)
	switch cfg.Persistence.Backend {
	case config.BackendPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Persistence.Postgres, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		docs = pgStorage.NewDocumentStore(pool)
		health = append(health, pgStorage.NewHealthCheck(pool))
		cleanup = pool.Close
		log.Info().Msg("PostgreSQL connected")
	default:
		rdb, err := redisStorage.NewClient(ctx, cfg.Persistence.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		docs = redisStorage.NewDocumentStore(rdb)
		health = append(health, redisStorage.NewHealthCheck(rdb))
		cleanup = func() { _ = rdb.Close() }
		log.Info().Msg("Redis connected")
	}
	defer cleanup()

	// The simulation store loads its persisted state once at startup.
	store := service.NewSimStore(ctx, docs, mockid.New(), log)

	// Chain adapter, only when an RPC endpoint is configured.
	var chainClient *chainAdapter.Client
	if cfg.Chain.RPCURL != "" {
		chainClient = chainAdapter.NewClient(cfg.Chain, &http.Client{Timeout: cfg.Chain.Timeout}, log)
		log.Info().Str("rpc_url", cfg.Chain.RPCURL).Msg("Chain RPC configured")
	}

	// Content storage backends for listing snapshots.
	backends := make(map[string]ports.ContentStorage)
	if cfg.Storage.Pieces.Endpoint != "" {
		var signer pieces.MessageSigner
		if chainClient != nil {
			signer = chainClient
		}
		backends[ports.BackendPieces] = pieces.NewClient(
			cfg.Storage.Pieces,
			signer,
			&http.Client{Timeout: cfg.Storage.Pieces.Timeout},
			log,
		)
	}
	if cfg.Storage.Pinning.Endpoint != "" {
		backends[ports.BackendPinning] = pinning.NewClient(
			cfg.Storage.Pinning,
			&http.Client{Timeout: cfg.Storage.Pinning.Timeout},
			log,
		)
	}

	// Core services
	tokenSvc := service.NewJWTTokenService(cfg.Session.Secret, cfg.Session.Expiry, cfg.Session.Issuer)

	var chainReader ports.ChainReader
	if chainClient != nil {
		chainReader = chainClient
	}
	walletSvc := service.NewWalletService(store, tokenSvc, chainReader, log)
	rentalSvc := service.NewRentalService(store, log)
	backupSvc := service.NewBackupService(store, backends, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Store:          store,
		RentalSvc:      rentalSvc,
		WalletSvc:      walletSvc,
		BackupSvc:      backupSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: health,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
