package service

import (
	"errors"

	"caixa/internal/config"
	"caixa/internal/ledger"
	"caixa/internal/money"
)

// ErrAmbiguousAccount means an operation named no account and the client has
// more than one, so there is nothing sensible to pick.
var ErrAmbiguousAccount = errors.New("client has more than one account, specify the account number")

type AccountService struct {
	ledger *ledger.Ledger
	config *config.Config
}

func NewAccountService(led *ledger.Ledger, cfg *config.Config) *AccountService {
	return &AccountService{ledger: led, config: cfg}
}

// Open creates an account for the client with the configured policy. An
// opening balance > 0 is recorded as a regular deposit.
func (as *AccountService) Open(cpf string, openingBalance int64) (*ledger.Account, error) {
	return as.ledger.OpenAccount(cpf, openingBalance, ledger.AccountPolicy{
		Agency:            as.config.Defaults.Agency,
		WithdrawalCeiling: as.config.Defaults.WithdrawalCeiling,
		MaxWithdrawals:    as.config.Defaults.MaxWithdrawals,
	})
}

func (as *AccountService) List() []*ledger.Account {
	return as.ledger.Accounts()
}

// ForClient returns the client's accounts in opening order.
func (as *AccountService) ForClient(cpf string) ([]*ledger.Account, error) {
	c, err := as.ledger.Client(cpf)
	if err != nil {
		return nil, err
	}
	return c.Accounts(), nil
}

// Resolve picks the account number an operation refers to. An explicit number
// wins; with none given the client's single account is used, and a client
// with several accounts has to name one.
func (as *AccountService) Resolve(cpf, number string) (string, error) {
	if number != "" {
		return number, nil
	}
	accounts, err := as.ForClient(cpf)
	if err != nil {
		return "", err
	}
	switch len(accounts) {
	case 0:
		return "", ledger.ErrAccountNotFound
	case 1:
		return accounts[0].Number, nil
	default:
		return "", ErrAmbiguousAccount
	}
}

// Statement resolves an account through its owner, so a number belonging to
// someone else comes back as ErrAccountNotFound.
func (as *AccountService) Statement(cpf, number string) (*ledger.Account, []ledger.Entry, error) {
	c, err := as.ledger.Client(cpf)
	if err != nil {
		return nil, nil, err
	}
	a, err := c.Account(number)
	if err != nil {
		return nil, nil, err
	}
	return a, a.History().Entries(), nil
}

// BalanceFormatted renders the account balance for display.
func (as *AccountService) BalanceFormatted(a *ledger.Account) string {
	return money.FormatBRL(a.Balance())
}
