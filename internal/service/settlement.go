package service

import (
	"context"
	"fmt"
	"time"

	"colour-trade/internal/config"
	"colour-trade/internal/game"
	"colour-trade/internal/model"
	"colour-trade/internal/repository"
	"colour-trade/internal/round"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type SettlementServiceImpl struct {
	walletRepo      repository.WalletRepository
	betRepo         repository.BetRepository
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	selector        *game.Selector
	game            config.GameConfig
	logger          zerolog.Logger
}

func NewSettlementService(
	walletRepo repository.WalletRepository,
	betRepo repository.BetRepository,
	transactionRepo repository.TransactionRepository,
	dbManager repository.DBManager,
	selector *game.Selector,
	gameCfg config.GameConfig,
	logger zerolog.Logger,
) SettlementService {
	return &SettlementServiceImpl{
		walletRepo:      walletRepo,
		betRepo:         betRepo,
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		selector:        selector,
		game:            gameCfg,
		logger:          logger,
	}
}

// SettleRound resolves every pending bet of the round containing at.
// The whole round settles in one database transaction under a
// per-round advisory lock, so one pass performs every transition and
// redundant invocations observe nothing left to do. Re-running a
// settled round finds zero pending bets and is a no-op, which is what
// makes double-payout impossible.
func (s *SettlementServiceImpl) SettleRound(ctx context.Context, at time.Time) (*model.SettleRoundResponse, error) {
	window := round.WindowAt(at, s.game.RoundDuration)

	var result *model.SettleRoundResponse
	err := s.dbManager.WithTransactionRetry(ctx, func(tx pgx.Tx) error {
		result = nil

		acquired, err := s.betRepo.TryRoundLock(ctx, window.Start, tx)
		if err != nil {
			return err
		}
		if !acquired {
			s.logger.Debug().Time("round_start", window.Start).Msg("settlement already in progress for round")
			result = &model.SettleRoundResponse{Success: "Round settlement already in progress"}
			return nil
		}

		bets, err := s.betRepo.GetPendingBetsForUpdate(ctx, window.Start, tx)
		if err != nil {
			return err
		}
		if len(bets) == 0 {
			result = &model.SettleRoundResponse{Success: "No pending bets to settle"}
			return nil
		}

		outcome, ok := s.selector.SelectOutcome(bets)
		if !ok {
			result = &model.SettleRoundResponse{Success: "No pending bets to settle"}
			return nil
		}

		trades := make([]model.TradeResult, 0, len(bets))
		for _, bet := range bets {
			trade, err := s.settleBet(ctx, bet, outcome, tx)
			if err != nil {
				return err
			}
			if trade != nil {
				trades = append(trades, *trade)
			}
		}

		s.logger.Info().
			Time("round_start", window.Start).
			Str("outcome_colour", outcome.Colour.String()).
			Int("outcome_number", outcome.Number).
			Int("bets_settled", len(trades)).
			Msg("round settled")

		result = &model.SettleRoundResponse{
			Success: "Round settled",
			Outcome: &outcome,
			Trades:  trades,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

// settleBet applies the outcome to a single bet. A bet that is no
// longer pending was claimed by another pass and is skipped; that is
// the guard working, not an error.
func (s *SettlementServiceImpl) settleBet(ctx context.Context, bet *model.Bet, outcome model.Outcome, tx pgx.Tx) (*model.TradeResult, error) {
	isWinner := bet.Colour == outcome.Colour && bet.Number == outcome.Number

	betResult := model.BetLoss
	if isWinner {
		betResult = model.BetWin
	}

	claimed, err := s.betRepo.ResolveBetIfPending(ctx, bet.ID, betResult, tx)
	if err != nil {
		return nil, fmt.Errorf("resolve bet: %w", err)
	}
	if !claimed {
		s.logger.Debug().Int64("bet_id", bet.ID).Msg("bet already resolved, skipping")
		return nil, nil
	}

	// Complete the stake-debit ledger entry written at placement
	completed, err := s.transactionRepo.SetBetTransactionStatus(ctx, bet.ID, model.StatusCompleted, tx)
	if err != nil {
		return nil, fmt.Errorf("complete bet transaction: %w", err)
	}
	if !completed {
		s.logger.Warn().Int64("bet_id", bet.ID).Msg("no pending ledger entry found for bet")
	}

	if !isWinner {
		// The stake was debited at placement; a loss changes nothing
		wallet, err := s.walletRepo.GetWallet(ctx, bet.UserID, tx)
		if err != nil {
			return nil, fmt.Errorf("get wallet: %w", err)
		}
		return &model.TradeResult{
			UserID:     bet.UserID,
			IsWinner:   false,
			WinAmount:  "0",
			BetAmount:  bet.Amount.String(),
			NewBalance: wallet.Balance.String(),
		}, nil
	}

	winAmount := bet.Amount.Mul(decimal.NewFromInt(s.game.WinMultiplier))

	wallet, err := s.walletRepo.GetWalletForUpdate(ctx, bet.UserID, tx)
	if err != nil {
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}

	newBalance := wallet.Balance.Add(winAmount)
	if err := s.walletRepo.UpdateBalance(ctx, wallet.ID, newBalance, tx); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	trans := &model.Transaction{
		UserID:      bet.UserID,
		WalletID:    wallet.ID,
		BetID:       &bet.ID,
		Type:        model.TypeWin,
		Amount:      winAmount,
		Description: fmt.Sprintf("Win of %s on %s %d", winAmount.String(), outcome.Colour, outcome.Number),
		Status:      model.StatusCompleted,
	}
	if err := s.transactionRepo.InsertTransaction(ctx, trans, tx); err != nil {
		return nil, fmt.Errorf("insert win transaction: %w", err)
	}

	s.logger.Info().
		Int64("user_id", bet.UserID).
		Int64("bet_id", bet.ID).
		Str("win_amount", winAmount.String()).
		Str("new_balance", newBalance.String()).
		Msg("bet won")

	return &model.TradeResult{
		UserID:     bet.UserID,
		IsWinner:   true,
		WinAmount:  winAmount.String(),
		BetAmount:  bet.Amount.String(),
		NewBalance: newBalance.String(),
	}, nil
}

// CancelBet administratively cancels a pending bet, refunds the stake
// and fails the stake-debit ledger entry. A bet that already resolved
// cannot be cancelled.
func (s *SettlementServiceImpl) CancelBet(ctx context.Context, betID int64) error {
	return s.dbManager.WithTransactionRetry(ctx, func(tx pgx.Tx) error {
		bet, err := s.betRepo.GetBetForUpdate(ctx, betID, tx)
		if err != nil {
			return err
		}

		cancelled, err := s.betRepo.ResolveBetIfPending(ctx, betID, model.BetCancelled, tx)
		if err != nil {
			return fmt.Errorf("cancel bet: %w", err)
		}
		if !cancelled {
			return fmt.Errorf("bet %d is not pending: %w", betID, model.ErrBetNotFound)
		}

		// The debit never settled; fail its ledger entry and refund
		if _, err := s.transactionRepo.SetBetTransactionStatus(ctx, betID, model.StatusFailed, tx); err != nil {
			return fmt.Errorf("fail bet transaction: %w", err)
		}

		wallet, err := s.walletRepo.GetWalletForUpdate(ctx, bet.UserID, tx)
		if err != nil {
			return err
		}
		if err := s.walletRepo.UpdateBalance(ctx, wallet.ID, wallet.Balance.Add(bet.Amount), tx); err != nil {
			return fmt.Errorf("refund stake: %w", err)
		}

		s.logger.Info().
			Int64("bet_id", betID).
			Int64("user_id", bet.UserID).
			Str("refunded", bet.Amount.String()).
			Msg("bet cancelled")
		return nil
	})
}
