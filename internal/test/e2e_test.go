package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"colour-trade/internal/config"
	"colour-trade/internal/database"
	"colour-trade/internal/game"
	"colour-trade/internal/handler"
	"colour-trade/internal/model"
	"colour-trade/internal/repository/postgres"
	"colour-trade/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPool *pgxpool.Pool
	testCfg  *config.Config
)

const (
	testUserA = 101
	testUserB = 102
	testUserC = 103
)

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}
	// Keep intake open for the whole round and make settlement pick
	// the least-staked outcome, so the tests are deterministic
	cfg.Game.ClosingBuffer = 0
	cfg.Game.EdgeProbability = 1
	testCfg = cfg

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	testPool = pool
	os.Exit(m.Run())
}

func setupE2E(t *testing.T) *handler.Handler {
	if testPool == nil {
		t.Skip("Database connection not available")
	}

	ctx := context.Background()
	for _, userID := range []int64{testUserA, testUserB, testUserC} {
		_, err := testPool.Exec(ctx, "DELETE FROM transactions WHERE user_id = $1", userID)
		require.NoError(t, err)
		_, err = testPool.Exec(ctx, "DELETE FROM withdrawals WHERE user_id = $1", userID)
		require.NoError(t, err)
		_, err = testPool.Exec(ctx, "DELETE FROM bets WHERE user_id = $1", userID)
		require.NoError(t, err)
		_, err = testPool.Exec(ctx, "DELETE FROM bank_accounts WHERE user_id = $1", userID)
		require.NoError(t, err)

		_, err = testPool.Exec(ctx, `
			INSERT INTO users (id, name, email)
			VALUES ($1, 'e2e trader', 'e2e-trader-' || $1 || '@example.test')
			ON CONFLICT (id) DO NOTHING
		`, userID)
		require.NoError(t, err)
	}

	// A and B start with funded wallets; C has none so the lazy
	// wallet-create path gets exercised
	for _, userID := range []int64{testUserA, testUserB} {
		_, err := testPool.Exec(ctx, `
			INSERT INTO wallets (user_id, balance, is_blocked)
			VALUES ($1, 1000, FALSE)
			ON CONFLICT (user_id) DO UPDATE
			SET balance = EXCLUDED.balance,
				is_blocked = EXCLUDED.is_blocked,
				updated_at = NOW()
		`, userID)
		require.NoError(t, err)
	}
	_, err := testPool.Exec(ctx, "DELETE FROM wallets WHERE user_id = $1", testUserC)
	require.NoError(t, err)

	logger := zerolog.Nop()
	walletRepo := postgres.NewWalletRepository(testPool)
	betRepo := postgres.NewBetRepository(testPool)
	transRepo := postgres.NewTransactionRepository(testPool)
	bankRepo := postgres.NewBankRepository(testPool)
	dbManager := postgres.NewTransactionManager(testPool)

	selector := game.NewSelector(testCfg.Game.EdgeProbability, nil)
	tradeSvc := service.NewTradeService(walletRepo, betRepo, transRepo, dbManager, testCfg.Game, logger)
	settlementSvc := service.NewSettlementService(walletRepo, betRepo, transRepo, dbManager, selector, testCfg.Game, logger)
	walletSvc := service.NewWalletService(walletRepo, transRepo, bankRepo, dbManager, testCfg.Game, logger)

	return handler.NewHandler(tradeSvc, settlementSvc, walletSvc, logger)
}

// waitForFreshRound sleeps past the round boundary when the current
// round is about to end, so placing and settling stay in one window.
func waitForFreshRound(t *testing.T) {
	now := time.Now()
	end := now.Truncate(testCfg.Game.RoundDuration).Add(testCfg.Game.RoundDuration)
	if remaining := end.Sub(now); remaining < 3*time.Second {
		t.Logf("waiting %v for the next round", remaining)
		time.Sleep(remaining)
	}
}

func placeBet(t *testing.T, router http.Handler, userID int64, colour string, number int, amount string) model.PlaceBetResponse {
	body, _ := json.Marshal(model.PlaceBetRequest{Color: colour, Number: number, Amount: amount})
	req, _ := http.NewRequest("POST", fmt.Sprintf("/api/v1/trades?user_id=%d", userID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, "place bet: %s", w.Body.String())
	var resp model.PlaceBetResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// Test_ConcurrentBets_SameUserSameRound_SingleAccepted verifies:
// - Duplicated concurrent bets from one user in one round
// - Exactly one bet is accepted
// - All other requests receive 409 DUPLICATE_BET
// - The stake is debited exactly once
// - No 500 errors occur
// - All goroutines start simultaneously via barrier channel
func Test_ConcurrentBets_SameUserSameRound_SingleAccepted(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()
	waitForFreshRound(t)

	const numRequests = 10

	reqBody, err := json.Marshal(model.PlaceBetRequest{Color: "red", Number: 7, Amount: "100"})
	require.NoError(t, err)

	// Channel to synchronize goroutine start
	barrier := make(chan struct{})

	type result struct {
		statusCode int
		errResp    model.ErrorResponse
	}
	results := make(chan result, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()

			// Wait for barrier to open
			<-barrier

			req, _ := http.NewRequest("POST", fmt.Sprintf("/api/v1/trades?user_id=%d", testUserA), bytes.NewBuffer(reqBody))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			var errResp model.ErrorResponse
			json.Unmarshal(w.Body.Bytes(), &errResp)

			results <- result{statusCode: w.Code, errResp: errResp}
		}()
	}

	// All goroutines start simultaneously
	close(barrier)

	wg.Wait()
	close(results)

	var acceptedCount, duplicateCount, errorCount int
	for res := range results {
		assert.NotEqual(t, http.StatusInternalServerError, res.statusCode, "No 500 errors")

		switch {
		case res.statusCode == http.StatusCreated:
			acceptedCount++
		case res.statusCode == http.StatusConflict && res.errResp.Code == "DUPLICATE_BET":
			duplicateCount++
		default:
			errorCount++
			t.Logf("Unexpected response: status=%d, body=%+v", res.statusCode, res.errResp)
		}
	}

	assert.Equal(t, 1, acceptedCount, "Exactly one bet should be accepted")
	assert.Equal(t, numRequests-1, duplicateCount, "All other requests should return DUPLICATE_BET")
	assert.Equal(t, 0, errorCount, "No unexpected errors should occur")

	var dbBalance string
	err = testPool.QueryRow(context.Background(), "SELECT balance FROM wallets WHERE user_id = $1", testUserA).Scan(&dbBalance)
	require.NoError(t, err)
	assert.Equal(t, "900.00", dbBalance, "Stake should be debited exactly once")
}

// Test_ConcurrentSettlement_SinglePayout verifies:
// - Concurrent settle requests for one round
// - User A is the minority on both axes, so the house-edge pick pays A
// - Exactly one win transaction per winning bet despite the races
// - Both bets resolve exactly once and balances add up
// - No 500 errors occur
func Test_ConcurrentSettlement_SinglePayout(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()
	waitForFreshRound(t)

	betA := placeBet(t, router, testUserA, "red", 3, "100")
	betB := placeBet(t, router, testUserB, "green", 7, "300")

	const numRequests = 15

	// Channel to synchronize goroutine start
	barrier := make(chan struct{})
	statusCodes := make(chan int, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()

			// Wait for barrier to open
			<-barrier

			req, _ := http.NewRequest("POST", "/api/v1/rounds/settle", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			statusCodes <- w.Code
		}()
	}

	// All goroutines start simultaneously
	close(barrier)

	wg.Wait()
	close(statusCodes)

	for code := range statusCodes {
		assert.Equal(t, http.StatusOK, code, "Every settle request should succeed")
	}

	ctx := context.Background()

	var resultA, resultB string
	require.NoError(t, testPool.QueryRow(ctx, "SELECT result FROM bets WHERE id = $1", betA.BetID).Scan(&resultA))
	require.NoError(t, testPool.QueryRow(ctx, "SELECT result FROM bets WHERE id = $1", betB.BetID).Scan(&resultB))
	assert.Equal(t, "win", resultA, "The minority bet should win")
	assert.Equal(t, "loss", resultB)

	var winCount int
	require.NoError(t, testPool.QueryRow(ctx,
		"SELECT COUNT(*) FROM transactions WHERE bet_id = $1 AND type = 'win'", betA.BetID).Scan(&winCount))
	assert.Equal(t, 1, winCount, "The payout should be credited exactly once")

	var balanceA, balanceB string
	require.NoError(t, testPool.QueryRow(ctx, "SELECT balance FROM wallets WHERE user_id = $1", testUserA).Scan(&balanceA))
	require.NoError(t, testPool.QueryRow(ctx, "SELECT balance FROM wallets WHERE user_id = $1", testUserB).Scan(&balanceB))
	assert.Equal(t, "1100.00", balanceA, "1000 - 100 stake + 200 payout")
	assert.Equal(t, "700.00", balanceB, "1000 - 300 stake")

	var pendingDebits int
	require.NoError(t, testPool.QueryRow(ctx,
		"SELECT COUNT(*) FROM transactions WHERE bet_id IN ($1, $2) AND status = 'pending'",
		betA.BetID, betB.BetID).Scan(&pendingDebits))
	assert.Equal(t, 0, pendingDebits, "Settlement should complete every stake-debit entry")
}

// Test_WalletFlow verifies deposit, bank account and withdrawal basics
func Test_WalletFlow(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	t.Run("First deposit creates the wallet", func(t *testing.T) {
		body, _ := json.Marshal(model.DepositRequest{Amount: "500"})
		req, _ := http.NewRequest("POST", fmt.Sprintf("/api/v1/wallet/deposit?user_id=%d", testUserC), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp model.AmountResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "500", resp.Balance)
	})

	t.Run("Withdrawal without a bank account is rejected", func(t *testing.T) {
		body, _ := json.Marshal(model.WithdrawRequest{Amount: "200"})
		req, _ := http.NewRequest("POST", fmt.Sprintf("/api/v1/wallet/withdraw?user_id=%d", testUserC), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var errResp model.ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &errResp)
		assert.Equal(t, "NO_BANK_ACCOUNT", errResp.Code)
	})

	t.Run("Withdrawal succeeds once a bank account exists", func(t *testing.T) {
		body, _ := json.Marshal(model.BankAccountRequest{
			BankName:      "State Bank",
			AccountNumber: "0012345678",
			AccountHolder: "E2E Trader",
		})
		req, _ := http.NewRequest("POST", fmt.Sprintf("/api/v1/users/%d/bank-account", testUserC), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body, _ = json.Marshal(model.WithdrawRequest{Amount: "200"})
		req, _ = http.NewRequest("POST", fmt.Sprintf("/api/v1/wallet/withdraw?user_id=%d", testUserC), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp model.AmountResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "300", resp.Balance)

		var dbBalance string
		err := testPool.QueryRow(context.Background(), "SELECT balance FROM wallets WHERE user_id = $1", testUserC).Scan(&dbBalance)
		require.NoError(t, err)
		assert.Equal(t, "300.00", dbBalance)
	})
}
