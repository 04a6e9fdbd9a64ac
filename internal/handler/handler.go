package handler

import (
	"errors"
	"net/http"

	"colour-trade/internal/model"
	"colour-trade/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	tradeService      service.TradeService
	settlementService service.SettlementService
	walletService     service.WalletService
	logger            zerolog.Logger
}

func NewHandler(
	tradeService service.TradeService,
	settlementService service.SettlementService,
	walletService service.WalletService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		tradeService:      tradeService,
		settlementService: settlementService,
		walletService:     walletService,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	trades := v1.Group("/trades")
	trades.POST("", h.PlaceBet)
	trades.GET("/user/:id", h.GetBetsByUser)

	rounds := v1.Group("/rounds")
	rounds.GET("/current", h.GetCurrentRound)
	rounds.POST("/settle", h.SettleRound)

	users := v1.Group("/users")
	users.GET("/:id/wallet", h.GetWallet)
	users.GET("/:id/transactions", h.GetTransactionsByUser)
	users.GET("/:id/withdrawals", h.GetWithdrawalsByUser)
	users.GET("/:id/bank-account", h.GetBankAccount)
	users.POST("/:id/bank-account", h.UpsertBankAccount)

	wallet := v1.Group("/wallet")
	wallet.POST("/deposit", h.Deposit)
	wallet.POST("/withdraw", h.Withdraw)

	admin := v1.Group("/admin")
	admin.GET("/wallets", h.ListWallets)
	admin.POST("/wallets/:id/block", h.ToggleWalletBlock)
	admin.POST("/bets/:id/cancel", h.CancelBet)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInsufficientBalance):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_BALANCE"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidColour):
		status = http.StatusBadRequest
		code = "INVALID_COLOUR"
	case errors.Is(err, model.ErrInvalidNumber):
		status = http.StatusBadRequest
		code = "INVALID_NUMBER"
	case errors.Is(err, model.ErrBettingClosed):
		status = http.StatusConflict
		code = "BETTING_CLOSED"
	case errors.Is(err, model.ErrDuplicateBet):
		status = http.StatusConflict
		code = "DUPLICATE_BET"
		resp.Details = "Only one bet per round is allowed"
	case errors.Is(err, model.ErrWalletBlocked):
		status = http.StatusForbidden
		code = "WALLET_BLOCKED"
	case errors.Is(err, model.ErrWalletNotFound):
		status = http.StatusNotFound
		code = "WALLET_NOT_FOUND"
	case errors.Is(err, model.ErrBetNotFound):
		status = http.StatusNotFound
		code = "BET_NOT_FOUND"
	case errors.Is(err, model.ErrNoBankAccount):
		status = http.StatusBadRequest
		code = "NO_BANK_ACCOUNT"
		resp.Details = "Add an active bank account before withdrawing"
	case errors.Is(err, model.ErrTransactionNotFound):
		status = http.StatusNotFound
		code = "TRANSACTION_NOT_FOUND"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
