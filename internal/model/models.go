package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the single balance account of a user. Balance is a whole
// number of the smallest currency unit and never goes negative.
type Wallet struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	IsBlocked bool            `json:"is_blocked"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Bet is one wager on a colour and number. RoundStart identifies the
// round the bet belongs to; it is assigned once at placement and is the
// boundary settlement selects by, so intake and settlement can never
// disagree on round membership.
type Bet struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	Colour     Colour          `json:"color"`
	Number     int             `json:"number"`
	Amount     decimal.Decimal `json:"amount"`
	Result     BetResult       `json:"result"`
	RoundStart time.Time       `json:"round_start"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Transaction is an append-style ledger entry. Amount carries the sign
// of the balance mutation it records. BetID links a stake debit to its
// bet so settlement can complete the matching row; it is nil for
// deposits and withdrawals.
type Transaction struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	WalletID    int64             `json:"wallet_id"`
	BetID       *int64            `json:"bet_id,omitempty"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// BankAccount is the single active payout target of a user.
type BankAccount struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	AccountHolder string    `json:"account_holder"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Withdrawal is a request to move wallet funds to a bank account.
type Withdrawal struct {
	ID            int64            `json:"id"`
	UserID        int64            `json:"user_id"`
	BankAccountID int64            `json:"bank_account_id"`
	Amount        decimal.Decimal  `json:"amount"`
	Status        WithdrawalStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Outcome is the settled colour and number of a round.
type Outcome struct {
	Colour Colour `json:"color"`
	Number int    `json:"number"`
}

type PlaceBetRequest struct {
	Color  string `json:"color" binding:"required,oneof=red violet green" example:"red" enums:"red,violet,green"`
	Number int    `json:"number" binding:"min=0,max=9" example:"7"`
	Amount string `json:"amount" binding:"required" example:"100"`
}

type PlaceBetResponse struct {
	Success string `json:"success" example:"Bet placed successfully"`
	BetID   int64  `json:"bet_id" example:"42"`
	Balance string `json:"balance" example:"900"`
}

// TradeResult is the per-user settlement outcome of one bet.
type TradeResult struct {
	UserID     int64  `json:"userId"`
	IsWinner   bool   `json:"isWinner"`
	WinAmount  string `json:"winAmount"`
	BetAmount  string `json:"betAmount"`
	NewBalance string `json:"newBalance"`
}

type SettleRoundResponse struct {
	Success string        `json:"success" example:"Round settled"`
	Outcome *Outcome      `json:"outcome,omitempty"`
	Trades  []TradeResult `json:"trades,omitempty"`
}

type RoundStateResponse struct {
	RoundStart       time.Time  `json:"round_start"`
	RoundEnd         time.Time  `json:"round_end"`
	Phase            RoundPhase `json:"phase" example:"open" enums:"open,closing"`
	SecondsRemaining int        `json:"seconds_remaining" example:"37"`
}

type WalletResponse struct {
	UserID    int64  `json:"user_id" example:"1"`
	Balance   string `json:"balance" example:"1000"`
	IsBlocked bool   `json:"is_blocked" example:"false"`
}

type DepositRequest struct {
	Amount string `json:"amount" binding:"required" example:"500"`
}

type WithdrawRequest struct {
	Amount string `json:"amount" binding:"required" example:"250"`
}

type AmountResponse struct {
	Success string `json:"success" example:"500 deposited successfully"`
	Balance string `json:"balance" example:"1500"`
}

type BankAccountRequest struct {
	BankName      string `json:"bank_name" binding:"required" example:"State Bank"`
	AccountNumber string `json:"account_number" binding:"required" example:"0012345678"`
	AccountHolder string `json:"account_holder" binding:"required" example:"A. Sharma"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type BetListResponse struct {
	Bets   []*Bet `json:"bets"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type WalletListResponse struct {
	Wallets []*Wallet `json:"wallets"`
	Total   int       `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_BALANCE"`
	Details string `json:"details,omitempty"`
}
