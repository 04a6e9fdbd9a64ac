package handler

import (
	"net/http"
	"strconv"

	"colour-trade/internal/model"

	"github.com/gin-gonic/gin"
)

// GetWallet
// @Summary Get user wallet
// @Description Returns the balance and blocked flag for a user's wallet
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.WalletResponse
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Router /users/{id}/wallet [get]
func (h *Handler) GetWallet(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	resp, err := h.walletService.GetWallet(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Deposit
// @Summary Deposit funds
// @Description Credits the user's wallet; the wallet is created on first deposit
// @Tags wallet
// @Accept json
// @Produce json
// @Param user_id query int true "User ID"
// @Param deposit body model.DepositRequest true "Deposit details"
// @Success 201 {object} model.AmountResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 403 {object} model.ErrorResponse "Wallet blocked"
// @Router /wallet/deposit [post]
func (h *Handler) Deposit(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.walletService.Deposit(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Withdraw
// @Summary Withdraw funds
// @Description Moves wallet funds to the user's active bank account
// @Tags wallet
// @Accept json
// @Produce json
// @Param user_id query int true "User ID"
// @Param withdrawal body model.WithdrawRequest true "Withdrawal details"
// @Success 201 {object} model.AmountResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 403 {object} model.ErrorResponse "Wallet blocked"
// @Router /wallet/withdraw [post]
func (h *Handler) Withdraw(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	var req model.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.walletService.Withdraw(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTransactionsByUser
// @Summary Get user transactions
// @Description Returns a paginated list of ledger entries for a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Router /users/{id}/transactions [get]
func (h *Handler) GetTransactionsByUser(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.walletService.GetTransactionsByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        limit,
		Offset:       offset,
	})
}

// GetWithdrawalsByUser
// @Summary Get user withdrawals
// @Description Returns recent withdrawal requests for a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit" default(10)
// @Success 200 {array} model.Withdrawal
// @Router /users/{id}/withdrawals [get]
func (h *Handler) GetWithdrawalsByUser(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	withdrawals, err := h.walletService.GetWithdrawalsByUser(c.Request.Context(), userID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, withdrawals)
}

// GetBankAccount
// @Summary Get user bank account
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.BankAccount
// @Failure 400 {object} model.ErrorResponse "No bank account"
// @Router /users/{id}/bank-account [get]
func (h *Handler) GetBankAccount(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	account, err := h.walletService.GetBankAccount(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpsertBankAccount
// @Summary Add or replace user bank account
// @Description One active bank account per user; a new submission replaces the old one
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param account body model.BankAccountRequest true "Bank account details"
// @Success 200 {object} model.BankAccount
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /users/{id}/bank-account [post]
func (h *Handler) UpsertBankAccount(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	var req model.BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	account, err := h.walletService.UpsertBankAccount(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// ListWallets
// @Summary List all wallets
// @Tags admin
// @Produce json
// @Success 200 {object} model.WalletListResponse
// @Router /admin/wallets [get]
func (h *Handler) ListWallets(c *gin.Context) {
	wallets, err := h.walletService.ListWallets(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.WalletListResponse{
		Wallets: wallets,
		Total:   len(wallets),
	})
}

// ToggleWalletBlock
// @Summary Block or unblock a wallet
// @Description Flips the blocked flag; blocked wallets reject deposits, withdrawals and bets
// @Tags admin
// @Produce json
// @Param id path int true "Wallet ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Router /admin/wallets/{id}/block [post]
func (h *Handler) ToggleWalletBlock(c *gin.Context) {
	walletID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.handleError(c, model.ErrWalletNotFound)
		return
	}

	blocked, err := h.walletService.ToggleWalletBlock(c.Request.Context(), walletID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_blocked": blocked})
}
