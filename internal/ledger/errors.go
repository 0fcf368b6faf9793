package ledger

import "errors"

// Domain errors. All of them are recoverable: the failed operation leaves
// balance and history untouched and the caller decides what to do next.
var (
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrWithdrawalLimit   = errors.New("amount exceeds the withdrawal limit")
	ErrWithdrawalCount   = errors.New("maximum number of withdrawals reached")

	ErrUnknownKind = errors.New("unknown transaction kind")

	ErrInvalidCPF      = errors.New("cpf must contain exactly 11 digits")
	ErrClientExists    = errors.New("a client with this cpf is already registered")
	ErrClientNotFound  = errors.New("client not found")
	ErrAccountNotFound = errors.New("account not found")
)
