package model

import "errors"

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrWalletBlocked       = errors.New("wallet is blocked")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDuplicateBet        = errors.New("bet already placed for this round")
	ErrBettingClosed       = errors.New("betting is closed for this round")
	ErrInvalidColour       = errors.New("invalid colour")
	ErrInvalidNumber       = errors.New("number must be between 0 and 9")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrBetNotFound         = errors.New("bet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNoBankAccount       = errors.New("no active bank account")
)
