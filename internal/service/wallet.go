package service

import (
	"context"
	"errors"
	"fmt"

	"colour-trade/internal/config"
	"colour-trade/internal/model"
	"colour-trade/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type WalletServiceImpl struct {
	walletRepo      repository.WalletRepository
	transactionRepo repository.TransactionRepository
	bankRepo        repository.BankRepository
	dbManager       repository.DBManager
	game            config.GameConfig
	logger          zerolog.Logger
}

func NewWalletService(
	walletRepo repository.WalletRepository,
	transactionRepo repository.TransactionRepository,
	bankRepo repository.BankRepository,
	dbManager repository.DBManager,
	game config.GameConfig,
	logger zerolog.Logger,
) WalletService {
	return &WalletServiceImpl{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		bankRepo:        bankRepo,
		dbManager:       dbManager,
		game:            game,
		logger:          logger,
	}
}

func (s *WalletServiceImpl) GetWallet(ctx context.Context, userID int64) (*model.WalletResponse, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	return &model.WalletResponse{
		UserID:    wallet.UserID,
		Balance:   wallet.Balance.String(),
		IsBlocked: wallet.IsBlocked,
	}, nil
}

// Deposit credits a wallet. The wallet is created lazily on a user's
// first deposit. The ledger entry is inserted pending and completed
// inside the same transaction as the balance change.
func (s *WalletServiceImpl) Deposit(ctx context.Context, userID int64, req *model.DepositRequest) (*model.AmountResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(decimal.NewFromInt(s.game.MaxDeposit)) {
		return nil, fmt.Errorf("%w: amount must be between 0 and %d", model.ErrInvalidAmount, s.game.MaxDeposit)
	}

	var result *model.AmountResponse
	err = s.dbManager.WithTransactionRetry(ctx, func(tx pgx.Tx) error {
		wallet, err := s.walletRepo.GetWalletForUpdate(ctx, userID, tx)
		if errors.Is(err, model.ErrWalletNotFound) {
			wallet, err = s.walletRepo.CreateWallet(ctx, userID, tx)
		}
		if err != nil {
			return err
		}
		if wallet.IsBlocked {
			return model.ErrWalletBlocked
		}

		trans := &model.Transaction{
			UserID:      userID,
			WalletID:    wallet.ID,
			Type:        model.TypeDeposit,
			Amount:      amount,
			Description: fmt.Sprintf("Deposit of %s", amount.String()),
			Status:      model.StatusPending,
		}
		if err := s.transactionRepo.InsertTransaction(ctx, trans, tx); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		newBalance := wallet.Balance.Add(amount)
		if err := s.walletRepo.UpdateBalance(ctx, wallet.ID, newBalance, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		if err := s.transactionRepo.UpdateTransactionStatus(ctx, trans.ID, model.StatusCompleted, tx); err != nil {
			return fmt.Errorf("complete transaction: %w", err)
		}

		s.logger.Info().
			Int64("user_id", userID).
			Str("amount", amount.String()).
			Str("new_balance", newBalance.String()).
			Msg("deposit completed")

		result = &model.AmountResponse{
			Success: fmt.Sprintf("%s deposited successfully", amount.String()),
			Balance: newBalance.String(),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

// Withdraw debits a wallet toward the user's active bank account. The
// balance change, the ledger entry and the withdrawal record commit as
// one unit.
func (s *WalletServiceImpl) Withdraw(ctx context.Context, userID int64, req *model.WithdrawRequest) (*model.AmountResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if amount.LessThan(decimal.NewFromInt(s.game.MinWithdrawal)) {
		return nil, fmt.Errorf("%w: minimum withdrawal amount is %d", model.ErrInvalidAmount, s.game.MinWithdrawal)
	}

	var result *model.AmountResponse
	err = s.dbManager.WithTransactionRetry(ctx, func(tx pgx.Tx) error {
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

		bankAccount, err := s.bankRepo.GetBankAccount(ctx, userID, tx)
		if err != nil {
			return err
		}
		if !bankAccount.IsActive {
			return model.ErrNoBankAccount
		}

		withdrawal := &model.Withdrawal{
			UserID:        userID,
			BankAccountID: bankAccount.ID,
			Amount:        amount,
			Status:        model.WithdrawalPending,
		}
		if err := s.bankRepo.InsertWithdrawal(ctx, withdrawal, tx); err != nil {
			return fmt.Errorf("insert withdrawal: %w", err)
		}

		trans := &model.Transaction{
			UserID:      userID,
			WalletID:    wallet.ID,
			Type:        model.TypeWithdrawal,
			Amount:      amount.Neg(),
			Description: fmt.Sprintf("Withdrawal to %s", bankAccount.BankName),
			Status:      model.StatusPending,
		}
		if err := s.transactionRepo.InsertTransaction(ctx, trans, tx); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		newBalance := wallet.Balance.Sub(amount)
		if err := s.walletRepo.UpdateBalance(ctx, wallet.ID, newBalance, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		if err := s.transactionRepo.UpdateTransactionStatus(ctx, trans.ID, model.StatusCompleted, tx); err != nil {
			return fmt.Errorf("complete transaction: %w", err)
		}
		if err := s.bankRepo.UpdateWithdrawalStatus(ctx, withdrawal.ID, model.WithdrawalCompleted, tx); err != nil {
			return fmt.Errorf("complete withdrawal: %w", err)
		}

		s.logger.Info().
			Int64("user_id", userID).
			Str("amount", amount.String()).
			Str("bank", bankAccount.BankName).
			Str("new_balance", newBalance.String()).
			Msg("withdrawal completed")

		result = &model.AmountResponse{
			Success: "Withdrawal request submitted successfully",
			Balance: newBalance.String(),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *WalletServiceImpl) GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	transactions, err := s.transactionRepo.GetTransactionsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}
	return transactions, nil
}

func (s *WalletServiceImpl) GetWithdrawalsByUser(ctx context.Context, userID int64, limit int) ([]*model.Withdrawal, error) {
	withdrawals, err := s.bankRepo.GetWithdrawalsByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get user withdrawals: %w", err)
	}
	return withdrawals, nil
}

func (s *WalletServiceImpl) GetBankAccount(ctx context.Context, userID int64) (*model.BankAccount, error) {
	account, err := s.bankRepo.GetBankAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *WalletServiceImpl) UpsertBankAccount(ctx context.Context, userID int64, req *model.BankAccountRequest) (*model.BankAccount, error) {
	account := &model.BankAccount{
		UserID:        userID,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountHolder: req.AccountHolder,
	}
	if err := s.bankRepo.UpsertBankAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *WalletServiceImpl) ListWallets(ctx context.Context) ([]*model.Wallet, error) {
	wallets, err := s.walletRepo.ListWallets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	return wallets, nil
}

// ToggleWalletBlock flips the blocked flag of a wallet and returns the
// new value. A blocked wallet rejects deposits, withdrawals and bets;
// its balance stays readable and settlement still credits wins.
func (s *WalletServiceImpl) ToggleWalletBlock(ctx context.Context, walletID int64) (bool, error) {
	blocked, err := s.walletRepo.ToggleBlocked(ctx, walletID)
	if err != nil {
		return false, err
	}

	s.logger.Info().Int64("wallet_id", walletID).Bool("blocked", blocked).Msg("wallet block toggled")
	return blocked, nil
}
