package postgres

import (
	"context"
	"errors"
	"fmt"

	"colour-trade/internal/model"
	"colour-trade/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.BankRepository = (*BankRepositoryImpl)(nil)

// BankRepositoryImpl is the PostgreSQL implementation of BankRepository
type BankRepositoryImpl struct {
	*TransactionManager
}

func NewBankRepository(pool *pgxpool.Pool) repository.BankRepository {
	return &BankRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetBankAccount retrieves a user's bank account
func (r *BankRepositoryImpl) GetBankAccount(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.BankAccount, error) {
	query := `
        SELECT id, user_id, bank_name, account_number, account_holder, is_active, created_at, updated_at
        FROM bank_accounts WHERE user_id = $1`

	account := &model.BankAccount{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID).
		Scan(&account.ID, &account.UserID, &account.BankName, &account.AccountNumber,
			&account.AccountHolder, &account.IsActive, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoBankAccount
		}
		return nil, fmt.Errorf("failed to get bank account: %w", err)
	}
	return account, nil
}

// UpsertBankAccount creates or replaces a user's bank account. One
// account per user; a new submission replaces the previous one.
func (r *BankRepositoryImpl) UpsertBankAccount(ctx context.Context, account *model.BankAccount) error {
	query := `
        INSERT INTO bank_accounts (user_id, bank_name, account_number, account_holder, is_active)
        VALUES ($1, $2, $3, $4, TRUE)
        ON CONFLICT (user_id) DO UPDATE
        SET bank_name = EXCLUDED.bank_name,
            account_number = EXCLUDED.account_number,
            account_holder = EXCLUDED.account_holder,
            is_active = TRUE,
            updated_at = NOW()
        RETURNING id, is_active, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, account.UserID, account.BankName, account.AccountNumber, account.AccountHolder).
		Scan(&account.ID, &account.IsActive, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert bank account: %w", err)
	}
	return nil
}

// InsertWithdrawal creates a withdrawal record
func (r *BankRepositoryImpl) InsertWithdrawal(ctx context.Context, withdrawal *model.Withdrawal, tx pgx.Tx) error {
	query := `
        INSERT INTO withdrawals (user_id, bank_account_id, amount, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, withdrawal.UserID, withdrawal.BankAccountID, withdrawal.Amount, withdrawal.Status).
		Scan(&withdrawal.ID, &withdrawal.CreatedAt, &withdrawal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert withdrawal: %w", err)
	}
	return nil
}

// UpdateWithdrawalStatus sets the status of a withdrawal
func (r *BankRepositoryImpl) UpdateWithdrawalStatus(ctx context.Context, id int64, status model.WithdrawalStatus, tx pgx.Tx) error {
	query := `UPDATE withdrawals SET status = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update withdrawal status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal %d not found", id)
	}
	return nil
}

// GetWithdrawalsByUser retrieves recent withdrawals for a user
func (r *BankRepositoryImpl) GetWithdrawalsByUser(ctx context.Context, userID int64, limit int) ([]*model.Withdrawal, error) {
	query := `
        SELECT id, user_id, bank_account_id, amount, status, created_at, updated_at
        FROM withdrawals WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals: %w", err)
	}
	defer rows.Close()

	var withdrawals []*model.Withdrawal
	for rows.Next() {
		w := &model.Withdrawal{}
		if err := rows.Scan(&w.ID, &w.UserID, &w.BankAccountID, &w.Amount, &w.Status, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan withdrawal: %w", err)
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, nil
}
