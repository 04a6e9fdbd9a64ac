package postgres

import (
	"context"
	"fmt"

	"colour-trade/internal/model"
	"colour-trade/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TransactionRepository = (*TransactionRepositoryImpl)(nil)

// TransactionRepositoryImpl is the PostgreSQL implementation of TransactionRepository
type TransactionRepositoryImpl struct {
	*TransactionManager
}

func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionRepository {
	return &TransactionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const transactionColumns = `id, user_id, wallet_id, bet_id, type, amount, description, status, created_at, updated_at`

// InsertTransaction creates a new ledger entry
func (r *TransactionRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO transactions (user_id, wallet_id, bet_id, type, amount, description, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, trans.UserID, trans.WalletID, trans.BetID, trans.Type,
		trans.Amount, trans.Description, trans.Status).
		Scan(&trans.ID, &trans.CreatedAt, &trans.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// SetBetTransactionStatus moves the still-pending stake-debit entry of
// a bet to a terminal status. Status only ever moves forward; a
// terminal entry is never touched again.
func (r *TransactionRepositoryImpl) SetBetTransactionStatus(ctx context.Context, betID int64, status model.TransactionStatus, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $1, updated_at = NOW()
        WHERE bet_id = $2 AND status = $3`

	commandTag, err := tx.Exec(ctx, query, status, betID, model.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update bet transaction: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// UpdateTransactionStatus sets the status of a ledger entry
func (r *TransactionRepositoryImpl) UpdateTransactionStatus(ctx context.Context, id int64, status model.TransactionStatus, tx pgx.Tx) error {
	query := `UPDATE transactions SET status = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrTransactionNotFound
	}
	return nil
}

// GetTransactionsByUser retrieves paginated ledger entries for a user
func (r *TransactionRepositoryImpl) GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trans := &model.Transaction{}
		if err := rows.Scan(&trans.ID, &trans.UserID, &trans.WalletID, &trans.BetID, &trans.Type,
			&trans.Amount, &trans.Description, &trans.Status, &trans.CreatedAt, &trans.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, nil
}
