package handler

import (
	"net/http"
	"strconv"
	"time"

	"colour-trade/internal/model"

	"github.com/gin-gonic/gin"
)

// PlaceBet
// @Summary Place a bet
// @Description Place a colour/number bet for the currently open round
// @Tags trades
// @Accept json
// @Produce json
// @Param user_id query int true "User ID"
// @Param bet body model.PlaceBetRequest true "Bet details"
// @Success 201 {object} model.PlaceBetResponse "Created"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Betting closed or duplicate bet"
// @Router /trades [post]
func (h *Handler) PlaceBet(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	var req model.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.tradeService.PlaceBet(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetCurrentRound
// @Summary Current round state
// @Description Returns the active round window, phase and seconds remaining
// @Tags rounds
// @Produce json
// @Success 200 {object} model.RoundStateResponse
// @Router /rounds/current [get]
func (h *Handler) GetCurrentRound(c *gin.Context) {
	c.JSON(http.StatusOK, h.tradeService.CurrentRound())
}

// SettleRound
// @Summary Settle the current round
// @Description Resolves all pending bets of the round containing now; idempotent
// @Tags rounds
// @Produce json
// @Success 200 {object} model.SettleRoundResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /rounds/settle [post]
func (h *Handler) SettleRound(c *gin.Context) {
	resp, err := h.settlementService.SettleRound(c.Request.Context(), time.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBetsByUser
// @Summary Get user bet history
// @Description Returns a paginated list of bets for a user, newest first
// @Tags trades
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.BetListResponse
// @Router /trades/user/{id} [get]
func (h *Handler) GetBetsByUser(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bets, err := h.tradeService.GetBetsByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.BetListResponse{
		Bets:   bets,
		Total:  len(bets),
		Limit:  limit,
		Offset: offset,
	})
}

// CancelBet
// @Summary Cancel a pending bet
// @Description Administratively cancels a pending bet and refunds the stake
// @Tags admin
// @Produce json
// @Param id path int true "Bet ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} model.ErrorResponse "Bet not found or already resolved"
// @Router /admin/bets/{id}/cancel [post]
func (h *Handler) CancelBet(c *gin.Context) {
	betID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.handleError(c, model.ErrBetNotFound)
		return
	}

	if err := h.settlementService.CancelBet(c.Request.Context(), betID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Bet cancelled and stake refunded"})
}

func userIDFromQuery(c *gin.Context) (int64, bool) {
	userIDStr := c.Query("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user_id query parameter is required",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user_id must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	return userID, true
}

func userIDFromPath(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "id must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	return userID, true
}
