package service

import (
	"context"
	"testing"

	"colour-trade/internal/model"
	mocks "colour-trade/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWalletService(
	t *testing.T,
) (WalletService, *mocks.WalletRepository, *mocks.TransactionRepository, *mocks.BankRepository, *mocks.DBManager) {
	mockWalletRepo := mocks.NewWalletRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockBankRepo := mocks.NewBankRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	svc := NewWalletService(mockWalletRepo, mockTransRepo, mockBankRepo, mockDBManager, testGameConfig, zerolog.Nop())

	return svc, mockWalletRepo, mockTransRepo, mockBankRepo, mockDBManager
}

func TestDeposit_HappyPath(t *testing.T) {
	ctx := context.Background()
	svc, mockWalletRepo, mockTransRepo, _, mockDBManager := newWalletService(t)

	mockDBManager.On("WithTransactionRetry", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      11,
		UserID:  1,
		Balance: decimal.NewFromInt(1000),
	}, nil)
	mockTransRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == 1 &&
			trans.WalletID == 11 &&
			trans.BetID == nil &&
			trans.Type == model.TypeDeposit &&
			trans.Amount.Equal(decimal.NewFromInt(500)) &&
			trans.Status == model.StatusPending
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Transaction).ID = 99
	}).Return(nil)
	mockWalletRepo.On("UpdateBalance", ctx, int64(11), decimal.NewFromInt(1500), mock.Anything).Return(nil)
	mockTransRepo.On("UpdateTransactionStatus", ctx, int64(99), model.StatusCompleted, mock.Anything).Return(nil)

	resp, err := svc.Deposit(ctx, 1, &model.DepositRequest{Amount: "500"})

	require.NoError(t, err)
	assert.Equal(t, "500 deposited successfully", resp.Success)
	assert.Equal(t, "1500", resp.Balance)
}

func TestDeposit_CreatesWalletOnFirstDeposit(t *testing.T) {
	ctx := context.Background()
	svc, mockWalletRepo, mockTransRepo, _, mockDBManager := newWalletService(t)

	mockDBManager.On("WithTransactionRetry", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(5), mock.Anything).Return(nil, model.ErrWalletNotFound)
	mockWalletRepo.On("CreateWallet", ctx, int64(5), mock.Anything).Return(&model.Wallet{
		ID:      55,
		UserID:  5,
		Balance: decimal.Zero,
	}, nil)
	mockTransRepo.On("InsertTransaction", ctx, mock.Anything, mock.Anything).Return(nil)
	mockWalletRepo.On("UpdateBalance", ctx, int64(55), decimal.NewFromInt(100), mock.Anything).Return(nil)
	mockTransRepo.On("UpdateTransactionStatus", ctx, int64(0), model.StatusCompleted, mock.Anything).Return(nil)

	resp, err := svc.Deposit(ctx, 5, &model.DepositRequest{Amount: "100"})

	require.NoError(t, err)
	assert.Equal(t, "100", resp.Balance)
}

func TestDeposit_ExceedsMaximum(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newWalletService(t)

	resp, err := svc.Deposit(ctx, 1, &model.DepositRequest{Amount: "10001"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	assert.Contains(t, err.Error(), "between 0 and 10000")
}

func TestDeposit_WalletBlocked(t *testing.T) {
	ctx := context.Background()
	svc, mockWalletRepo, _, _, mockDBManager := newWalletService(t)

	mockDBManager.On("WithTransactionRetry", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:        11,
		UserID:    1,
		Balance:   decimal.NewFromInt(1000),
		IsBlocked: true,
	}, nil)

	resp, err := svc.Deposit(ctx, 1, &model.DepositRequest{Amount: "500"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrWalletBlocked)
}

func TestWithdraw_HappyPath(t *testing.T) {
	ctx := context.Background()
	svc, mockWalletRepo, mockTransRepo, mockBankRepo, mockDBManager := newWalletService(t)

	mockDBManager.On("WithTransactionRetry", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      11,
		UserID:  1,
		Balance: decimal.NewFromInt(1000),
	}, nil)
	mockBankRepo.On("GetBankAccount", ctx, int64(1), mock.Anything).Return(&model.BankAccount{
		ID:       3,
		UserID:   1,
		BankName: "State Bank",
		IsActive: true,
	}, nil)
	mockBankRepo.On("InsertWithdrawal", ctx, mock.MatchedBy(func(w *model.Withdrawal) bool {
		return w.UserID == 1 &&
			w.BankAccountID == 3 &&
			w.Amount.Equal(decimal.NewFromInt(250)) &&
			w.Status == model.WithdrawalPending
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Withdrawal).ID = 8
	}).Return(nil)
	mockTransRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TypeWithdrawal &&
			trans.Amount.Equal(decimal.NewFromInt(-250)) &&
			trans.Status == model.StatusPending
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Transaction).ID = 99
	}).Return(nil)
	mockWalletRepo.On("UpdateBalance", ctx, int64(11), decimal.NewFromInt(750), mock.Anything).Return(nil)
	mockTransRepo.On("UpdateTransactionStatus", ctx, int64(99), model.StatusCompleted, mock.Anything).Return(nil)
	mockBankRepo.On("UpdateWithdrawalStatus", ctx, int64(8), model.WithdrawalCompleted, mock.Anything).Return(nil)

	resp, err := svc.Withdraw(ctx, 1, &model.WithdrawRequest{Amount: "250"})

	require.NoError(t, err)
	assert.Equal(t, "Withdrawal request submitted successfully", resp.Success)
	assert.Equal(t, "750", resp.Balance)
}

func TestWithdraw_BelowMinimum(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newWalletService(t)

	resp, err := svc.Withdraw(ctx, 1, &model.WithdrawRequest{Amount: "50"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	assert.Contains(t, err.Error(), "minimum withdrawal")
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	svc, mockWalletRepo, _, _, mockDBManager := newWalletService(t)

	mockDBManager.On("WithTransactionRetry", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      11,
		UserID:  1,
		Balance: decimal.NewFromInt(100),
	}, nil)

	resp, err := svc.Withdraw(ctx, 1, &model.WithdrawRequest{Amount: "250"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
}

func TestWithdraw_NoBankAccount(t *testing.T) {
	ctx := context.Background()
	svc, mockWalletRepo, _, mockBankRepo, mockDBManager := newWalletService(t)

	mockDBManager.On("WithTransactionRetry", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      11,
		UserID:  1,
		Balance: decimal.NewFromInt(1000),
	}, nil)
	mockBankRepo.On("GetBankAccount", ctx, int64(1), mock.Anything).Return(nil, model.ErrNoBankAccount)

	resp, err := svc.Withdraw(ctx, 1, &model.WithdrawRequest{Amount: "250"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrNoBankAccount)
}

func TestGetWallet(t *testing.T) {
	ctx := context.Background()
	svc, mockWalletRepo, _, _, _ := newWalletService(t)

	mockWalletRepo.On("GetWallet", ctx, int64(1)).Return(&model.Wallet{
		ID:      11,
		UserID:  1,
		Balance: decimal.NewFromInt(1000),
	}, nil)

	resp, err := svc.GetWallet(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "1000", resp.Balance)
	assert.False(t, resp.IsBlocked)
}

func TestToggleWalletBlock(t *testing.T) {
	ctx := context.Background()
	svc, mockWalletRepo, _, _, _ := newWalletService(t)

	mockWalletRepo.On("ToggleBlocked", ctx, int64(11)).Return(true, nil)

	blocked, err := svc.ToggleWalletBlock(ctx, 11)

	require.NoError(t, err)
	assert.True(t, blocked)
}
