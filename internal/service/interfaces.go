package service

import (
	"context"
	"time"

	"colour-trade/internal/model"
)

// TradeService defines the business logic for placing bets
type TradeService interface {
	// PlaceBet validates and records a wager for the round containing
	// the current instant
	PlaceBet(ctx context.Context, userID int64, req *model.PlaceBetRequest) (*model.PlaceBetResponse, error)

	// CurrentRound reports the active round window and phase
	CurrentRound() *model.RoundStateResponse

	// GetBetsByUser retrieves paginated bet history for a user
	GetBetsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Bet, error)
}

// SettlementService defines the business logic for resolving rounds
type SettlementService interface {
	// SettleRound resolves every pending bet of the round containing
	// at, exactly once. Safe to invoke redundantly: a round that is
	// already settled (or being settled) is a no-op success.
	SettleRound(ctx context.Context, at time.Time) (*model.SettleRoundResponse, error)

	// CancelBet administratively cancels a pending bet and refunds the
	// stake. Settlement never produces a cancelled bet.
	CancelBet(ctx context.Context, betID int64) error
}

// WalletService defines the business logic for wallets, deposits,
// withdrawals and bank accounts
type WalletService interface {
	GetWallet(ctx context.Context, userID int64) (*model.WalletResponse, error)
	Deposit(ctx context.Context, userID int64, req *model.DepositRequest) (*model.AmountResponse, error)
	Withdraw(ctx context.Context, userID int64, req *model.WithdrawRequest) (*model.AmountResponse, error)
	GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)
	GetWithdrawalsByUser(ctx context.Context, userID int64, limit int) ([]*model.Withdrawal, error)
	GetBankAccount(ctx context.Context, userID int64) (*model.BankAccount, error)
	UpsertBankAccount(ctx context.Context, userID int64, req *model.BankAccountRequest) (*model.BankAccount, error)
	ListWallets(ctx context.Context) ([]*model.Wallet, error)
	ToggleWalletBlock(ctx context.Context, walletID int64) (bool, error)
}
