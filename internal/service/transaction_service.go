package service

import (
	"caixa/internal/ledger"
)

type TransactionService struct {
	ledger *ledger.Ledger
}

func NewTransactionService(led *ledger.Ledger) *TransactionService {
	return &TransactionService{ledger: led}
}

// Deposit applies a deposit through the client's apply protocol and returns
// the account for display. The account must belong to the client.
func (ts *TransactionService) Deposit(cpf, number string, amount int64) (*ledger.Account, error) {
	return ts.apply(cpf, number, ledger.NewDeposit(amount))
}

// Withdraw applies a withdrawal; the account's ceiling, withdrawal count and
// funds checks all run inside the domain.
func (ts *TransactionService) Withdraw(cpf, number string, amount int64) (*ledger.Account, error) {
	return ts.apply(cpf, number, ledger.NewWithdrawal(amount))
}

func (ts *TransactionService) apply(cpf, number string, t ledger.Transaction) (*ledger.Account, error) {
	c, err := ts.ledger.Client(cpf)
	if err != nil {
		return nil, err
	}
	a, err := c.Account(number)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(a, t); err != nil {
		return nil, err
	}
	return a, nil
}
