package service

import (
	"context"
	"fmt"
	"time"

	"colour-trade/internal/config"
	"colour-trade/internal/model"
	"colour-trade/internal/repository"
	"colour-trade/internal/round"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type TradeServiceImpl struct {
	walletRepo      repository.WalletRepository
	betRepo         repository.BetRepository
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	game            config.GameConfig
	now             func() time.Time
	logger          zerolog.Logger
}

func NewTradeService(
	walletRepo repository.WalletRepository,
	betRepo repository.BetRepository,
	transactionRepo repository.TransactionRepository,
	dbManager repository.DBManager,
	game config.GameConfig,
	logger zerolog.Logger,
) TradeService {
	return &TradeServiceImpl{
		walletRepo:      walletRepo,
		betRepo:         betRepo,
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		game:            game,
		now:             time.Now,
		logger:          logger,
	}
}

// parseAmount parses a wager or transfer amount: a positive whole
// number of currency units.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}
	if !amount.IsInteger() {
		return decimal.Zero, fmt.Errorf("%w: amount must be a whole number", model.ErrInvalidAmount)
	}
	return amount, nil
}

// PlaceBet records one wager for the round containing the current
// instant. The wallet debit, the bet row and the stake-debit ledger
// entry commit as one unit or not at all.
func (s *TradeServiceImpl) PlaceBet(ctx context.Context, userID int64, req *model.PlaceBetRequest) (*model.PlaceBetResponse, error) {
	// Validate inputs early, before transaction and locks
	colour, err := model.ParseColour(req.Color)
	if err != nil {
		return nil, err
	}
	if req.Number < 0 || req.Number > 9 {
		return nil, model.ErrInvalidNumber
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	st := round.StateAt(s.now(), s.game.RoundDuration, s.game.ClosingBuffer)
	if st.Phase != model.PhaseOpen {
		return nil, model.ErrBettingClosed
	}

	var result *model.PlaceBetResponse
	err = s.dbManager.WithTransactionRetry(ctx, func(tx pgx.Tx) error {
		// Lock the wallet row; the same-user path serializes here
		wallet, err := s.walletRepo.GetWalletForUpdate(ctx, userID, tx)
		if err != nil {
			return err
		}
		if wallet.IsBlocked {
			return model.ErrWalletBlocked
		}
		if amount.GreaterThan(wallet.Balance) {
			return model.ErrInsufficientBalance
		}

		exists, err := s.betRepo.HasBetInRound(ctx, userID, st.Window.Start, tx)
		if err != nil {
			return err
		}
		if exists {
			return model.ErrDuplicateBet
		}

		newBalance := wallet.Balance.Sub(amount)
		if err := s.walletRepo.UpdateBalance(ctx, wallet.ID, newBalance, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		bet := &model.Bet{
			UserID:     userID,
			Colour:     colour,
			Number:     req.Number,
			Amount:     amount,
			Result:     model.BetPending,
			RoundStart: st.Window.Start,
		}
		// The unique (user_id, round_start) index catches the race the
		// existence check above can miss
		if err := s.betRepo.InsertBet(ctx, bet, tx); err != nil {
			return err
		}

		trans := &model.Transaction{
			UserID:      userID,
			WalletID:    wallet.ID,
			BetID:       &bet.ID,
			Type:        model.TypeLoss,
			Amount:      amount.Neg(),
			Description: fmt.Sprintf("Bet of %s on %s %d", amount.String(), colour, req.Number),
			Status:      model.StatusPending,
		}
		if err := s.transactionRepo.InsertTransaction(ctx, trans, tx); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		s.logger.Info().
			Int64("user_id", userID).
			Int64("bet_id", bet.ID).
			Str("colour", colour.String()).
			Int("number", req.Number).
			Str("amount", amount.String()).
			Time("round_start", st.Window.Start).
			Str("new_balance", newBalance.String()).
			Msg("bet placed")

		result = &model.PlaceBetResponse{
			Success: "Bet placed successfully",
			BetID:   bet.ID,
			Balance: newBalance.String(),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

// CurrentRound reports the active round window and phase
func (s *TradeServiceImpl) CurrentRound() *model.RoundStateResponse {
	st := round.StateAt(s.now(), s.game.RoundDuration, s.game.ClosingBuffer)
	return &model.RoundStateResponse{
		RoundStart:       st.Window.Start,
		RoundEnd:         st.Window.End,
		Phase:            st.Phase,
		SecondsRemaining: st.SecondsRemaining,
	}
}

// GetBetsByUser retrieves paginated bet history for a user
func (s *TradeServiceImpl) GetBetsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Bet, error) {
	bets, err := s.betRepo.GetBetsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user bets: %w", err)
	}
	return bets, nil
}
