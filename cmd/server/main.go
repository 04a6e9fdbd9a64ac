package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"colour-trade/internal/config"
	"colour-trade/internal/database"
	"colour-trade/internal/game"
	"colour-trade/internal/handler"
	"colour-trade/internal/logger"
	"colour-trade/internal/repository/postgres"
	"colour-trade/internal/service"
	"colour-trade/internal/worker"

	"github.com/joho/godotenv"

	_ "colour-trade/docs"
)

// @title Colour Trade API
// @version 1.0
// @description API for colour trading rounds, wallets and settlement
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// Optional .env for local development
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment")
	}

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	walletRepo := postgres.NewWalletRepository(dbPool)
	betRepo := postgres.NewBetRepository(dbPool)
	transactionRepo := postgres.NewTransactionRepository(dbPool)
	bankRepo := postgres.NewBankRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Services
	selector := game.NewSelector(cfg.Game.EdgeProbability, nil)
	tradeService := service.NewTradeService(walletRepo, betRepo, transactionRepo, txManager, cfg.Game, log)
	settlementService := service.NewSettlementService(walletRepo, betRepo, transactionRepo, txManager, selector, cfg.Game, log)
	walletService := service.NewWalletService(walletRepo, transactionRepo, bankRepo, txManager, cfg.Game, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker settles each round shortly after it closes
	settlementWorker := worker.NewSettlementWorker(settlementService, cfg.Game.RoundDuration, cfg.Worker.SettleDelay, log)
	settlementWorker.Start(ctx)
	defer settlementWorker.Stop()

	// http handler
	h := handler.NewHandler(tradeService, settlementService, walletService, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
