package postgres

import (
	"context"
	"errors"
	"fmt"

	"colour-trade/internal/model"
	"colour-trade/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.WalletRepository = (*WalletRepositoryImpl)(nil)

// WalletRepositoryImpl is the PostgreSQL implementation of WalletRepository
type WalletRepositoryImpl struct {
	*TransactionManager
}

func NewWalletRepository(pool *pgxpool.Pool) repository.WalletRepository {
	return &WalletRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const walletColumns = `id, user_id, balance, is_blocked, created_at, updated_at`

// GetWalletForUpdate retrieves a user's wallet with a row-level lock
func (r *WalletRepositoryImpl) GetWalletForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 FOR UPDATE`

	wallet := &model.Wallet{}
	err := tx.QueryRow(ctx, query, userID).
		Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.IsBlocked, &wallet.CreatedAt, &wallet.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet for update: %w", err)
	}
	return wallet, nil
}

// GetWallet retrieves a user's wallet
func (r *WalletRepositoryImpl) GetWallet(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`

	wallet := &model.Wallet{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID).
		Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.IsBlocked, &wallet.CreatedAt, &wallet.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

// CreateWallet inserts a zero-balance wallet for a user
func (r *WalletRepositoryImpl) CreateWallet(ctx context.Context, userID int64, tx pgx.Tx) (*model.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, balance, is_blocked)
        VALUES ($1, 0, FALSE)
        RETURNING ` + walletColumns

	wallet := &model.Wallet{}
	err := tx.QueryRow(ctx, query, userID).
		Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.IsBlocked, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return wallet, nil
}

// UpdateBalance updates a wallet's balance
func (r *WalletRepositoryImpl) UpdateBalance(ctx context.Context, walletID int64, balance decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE wallets
        SET balance = $1, updated_at = NOW()
        WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, balance, walletID)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return model.ErrInsufficientBalance
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrWalletNotFound
	}
	return nil
}

// ToggleBlocked flips a wallet's blocked flag and returns the new value
func (r *WalletRepositoryImpl) ToggleBlocked(ctx context.Context, walletID int64) (bool, error) {
	query := `UPDATE wallets SET is_blocked = NOT is_blocked, updated_at = NOW() WHERE id = $1 RETURNING is_blocked`

	var blocked bool
	err := r.pool.QueryRow(ctx, query, walletID).Scan(&blocked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, model.ErrWalletNotFound
		}
		return false, fmt.Errorf("failed to toggle wallet blocked flag: %w", err)
	}
	return blocked, nil
}

// ListWallets retrieves all wallets for the admin view
func (r *WalletRepositoryImpl) ListWallets(ctx context.Context) ([]*model.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets: %w", err)
	}
	defer rows.Close()

	var wallets []*model.Wallet
	for rows.Next() {
		wallet := &model.Wallet{}
		if err := rows.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.IsBlocked, &wallet.CreatedAt, &wallet.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, wallet)
	}
	return wallets, nil
}
