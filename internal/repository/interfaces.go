package repository

import (
	"context"
	"time"

	"colour-trade/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error

	// WithTransactionRetry is WithTransaction with bounded retries and
	// exponential backoff on serialization failures and deadlocks. A
	// failed attempt commits nothing, so retrying re-runs fn from
	// scratch.
	WithTransactionRetry(ctx context.Context, fn func(pgx.Tx) error) error
}

// WalletRepository defines operations for wallet/balance management
type WalletRepository interface {
	// GetWalletForUpdate retrieves a user's wallet with a row-level lock (must be in transaction)
	GetWalletForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Wallet, error)

	// GetWallet retrieves a user's wallet (read-only)
	GetWallet(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Wallet, error)

	// CreateWallet inserts a zero-balance wallet for a user
	CreateWallet(ctx context.Context, userID int64, tx pgx.Tx) (*model.Wallet, error)

	// UpdateBalance updates a wallet's balance
	UpdateBalance(ctx context.Context, walletID int64, balance decimal.Decimal, tx pgx.Tx) error

	// ToggleBlocked flips a wallet's blocked flag and returns the new value
	ToggleBlocked(ctx context.Context, walletID int64) (bool, error)

	// ListWallets retrieves all wallets for the admin view
	ListWallets(ctx context.Context) ([]*model.Wallet, error)
}

// BetRepository defines operations for bet management
type BetRepository interface {
	// InsertBet creates a new pending bet; returns ErrDuplicateBet when
	// the user already has a bet in the same round
	InsertBet(ctx context.Context, bet *model.Bet, tx pgx.Tx) error

	// HasBetInRound reports whether the user already placed a bet in the round
	HasBetInRound(ctx context.Context, userID int64, roundStart time.Time, tx pgx.Tx) (bool, error)

	// GetPendingBetsForUpdate retrieves and locks all pending bets of a
	// round, ordered by user id (must be in transaction)
	GetPendingBetsForUpdate(ctx context.Context, roundStart time.Time, tx pgx.Tx) ([]*model.Bet, error)

	// ResolveBetIfPending transitions a bet from pending to the given
	// result; reports false when the bet was no longer pending
	ResolveBetIfPending(ctx context.Context, betID int64, result model.BetResult, tx pgx.Tx) (bool, error)

	// TryRoundLock takes the per-round advisory lock for the current
	// transaction; reports false when another settlement pass holds it
	TryRoundLock(ctx context.Context, roundStart time.Time, tx pgx.Tx) (bool, error)

	// GetBetForUpdate retrieves a bet by id with a row-level lock (must be in transaction)
	GetBetForUpdate(ctx context.Context, betID int64, tx pgx.Tx) (*model.Bet, error)

	// GetBetsByUser retrieves paginated bets for a user, newest first
	GetBetsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Bet, error)
}

// TransactionRepository defines operations for ledger entries
type TransactionRepository interface {
	// InsertTransaction creates a new ledger entry
	InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	// SetBetTransactionStatus moves the still-pending stake-debit entry
	// of a bet to a terminal status; reports false when no pending
	// entry matched
	SetBetTransactionStatus(ctx context.Context, betID int64, status model.TransactionStatus, tx pgx.Tx) (bool, error)

	// UpdateTransactionStatus sets the status of a ledger entry
	UpdateTransactionStatus(ctx context.Context, id int64, status model.TransactionStatus, tx pgx.Tx) error

	// GetTransactionsByUser retrieves paginated ledger entries for a user
	GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)
}

// BankRepository defines operations for bank accounts and withdrawals
type BankRepository interface {
	// GetBankAccount retrieves a user's bank account
	GetBankAccount(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.BankAccount, error)

	// UpsertBankAccount creates or replaces a user's bank account
	UpsertBankAccount(ctx context.Context, account *model.BankAccount) error

	// InsertWithdrawal creates a withdrawal record
	InsertWithdrawal(ctx context.Context, withdrawal *model.Withdrawal, tx pgx.Tx) error

	// UpdateWithdrawalStatus sets the status of a withdrawal
	UpdateWithdrawalStatus(ctx context.Context, id int64, status model.WithdrawalStatus, tx pgx.Tx) error

	// GetWithdrawalsByUser retrieves recent withdrawals for a user
	GetWithdrawalsByUser(ctx context.Context, userID int64, limit int) ([]*model.Withdrawal, error)
}
