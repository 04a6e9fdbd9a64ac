package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"colour-trade/internal/model"
	"colour-trade/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.BetRepository = (*BetRepositoryImpl)(nil)

// BetRepositoryImpl is the PostgreSQL implementation of BetRepository
type BetRepositoryImpl struct {
	*TransactionManager
}

func NewBetRepository(pool *pgxpool.Pool) repository.BetRepository {
	return &BetRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const betColumns = `id, user_id, colour, number, amount, result, round_start, created_at, updated_at`

func scanBet(row pgx.Row) (*model.Bet, error) {
	bet := &model.Bet{}
	err := row.Scan(&bet.ID, &bet.UserID, &bet.Colour, &bet.Number, &bet.Amount,
		&bet.Result, &bet.RoundStart, &bet.CreatedAt, &bet.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return bet, nil
}

// InsertBet creates a new pending bet. The unique index on
// (user_id, round_start) turns a concurrent duplicate into
// ErrDuplicateBet.
func (r *BetRepositoryImpl) InsertBet(ctx context.Context, bet *model.Bet, tx pgx.Tx) error {
	query := `
        INSERT INTO bets (user_id, colour, number, amount, result, round_start)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, bet.UserID, bet.Colour, bet.Number, bet.Amount, bet.Result, bet.RoundStart).
		Scan(&bet.ID, &bet.CreatedAt, &bet.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateBet
		}
		return fmt.Errorf("failed to insert bet: %w", err)
	}
	return nil
}

// HasBetInRound reports whether the user already placed a bet in the round
func (r *BetRepositoryImpl) HasBetInRound(ctx context.Context, userID int64, roundStart time.Time, tx pgx.Tx) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bets WHERE user_id = $1 AND round_start = $2)`

	var exists bool
	if err := tx.QueryRow(ctx, query, userID, roundStart).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check bet existence: %w", err)
	}
	return exists, nil
}

// GetPendingBetsForUpdate retrieves and locks all pending bets of a
// round. Ordering by user id keeps wallet lock acquisition in a fixed
// order across concurrent settlement and intake transactions.
func (r *BetRepositoryImpl) GetPendingBetsForUpdate(ctx context.Context, roundStart time.Time, tx pgx.Tx) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE round_start = $1 AND result = $2
        ORDER BY user_id
        FOR UPDATE`

	rows, err := tx.Query(ctx, query, roundStart, model.BetPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending bets: %w", err)
	}
	defer rows.Close()

	var bets []*model.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}
	return bets, nil
}

// ResolveBetIfPending transitions a bet from pending to the given
// result. A zero rows-affected count means another pass claimed the
// bet first.
func (r *BetRepositoryImpl) ResolveBetIfPending(ctx context.Context, betID int64, result model.BetResult, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE bets
        SET result = $1, updated_at = NOW()
        WHERE id = $2 AND result = $3`

	commandTag, err := tx.Exec(ctx, query, result, betID, model.BetPending)
	if err != nil {
		return false, fmt.Errorf("failed to resolve bet: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// TryRoundLock takes the per-round advisory lock, released at commit
// or rollback. Keyed by the window start so at most one settlement
// pass runs per round.
func (r *BetRepositoryImpl) TryRoundLock(ctx context.Context, roundStart time.Time, tx pgx.Tx) (bool, error) {
	query := `SELECT pg_try_advisory_xact_lock($1)`

	var acquired bool
	if err := tx.QueryRow(ctx, query, roundStart.Unix()).Scan(&acquired); err != nil {
		return false, fmt.Errorf("failed to take round lock: %w", err)
	}
	return acquired, nil
}

// GetBetForUpdate retrieves a bet by id with a row-level lock
func (r *BetRepositoryImpl) GetBetForUpdate(ctx context.Context, betID int64, tx pgx.Tx) (*model.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE id = $1 FOR UPDATE`

	bet, err := scanBet(tx.QueryRow(ctx, query, betID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBetNotFound
		}
		return nil, fmt.Errorf("failed to get bet for update: %w", err)
	}
	return bet, nil
}

// GetBetsByUser retrieves paginated bets for a user, newest first
func (r *BetRepositoryImpl) GetBetsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	var bets []*model.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}
	return bets, nil
}
