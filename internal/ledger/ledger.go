// Package ledger holds the core banking model: clients, their checking
// accounts and the transaction history of each account. The Ledger type is
// the aggregate root; it owns the indexed collections and is passed by
// reference to whoever needs them, so there is no package-level state.
package ledger

import (
	"strconv"

	"caixa/internal/constants"
)

type Ledger struct {
	clients    map[string]*Client
	accounts   map[string]*Account
	clientCPFs []string // registration order, for listing and persistence
	accountNos []string // opening order
	nextNumber int64
}

func New() *Ledger {
	return &Ledger{
		clients:    make(map[string]*Client),
		accounts:   make(map[string]*Account),
		nextNumber: 1,
	}
}

// RegisterClient adds a new client. The CPF must be exactly eleven digits and
// unique across the ledger.
func (l *Ledger) RegisterClient(cpf, name, birthDate, address string) (*Client, error) {
	if !validCPF(cpf) {
		return nil, ErrInvalidCPF
	}
	if _, ok := l.clients[cpf]; ok {
		return nil, ErrClientExists
	}
	c := &Client{CPF: cpf, Name: name, BirthDate: birthDate, Address: address}
	l.clients[cpf] = c
	l.clientCPFs = append(l.clientCPFs, cpf)
	return c, nil
}

// AccountPolicy is stamped onto an account when it is opened and never
// changes afterwards.
type AccountPolicy struct {
	Agency            string
	WithdrawalCeiling int64
	MaxWithdrawals    int
}

// OpenAccount creates a checking account for an existing client, assigning
// the next sequential account number. A positive opening balance goes through
// the normal deposit protocol so it shows up in the history like any other
// deposit, keeping the history authoritative for the balance.
func (l *Ledger) OpenAccount(cpf string, openingBalance int64, policy AccountPolicy) (*Account, error) {
	c, err := l.Client(cpf)
	if err != nil {
		return nil, err
	}

	agency := policy.Agency
	if agency == "" {
		agency = constants.DefaultAgency
	}
	a := &Account{
		Number:            strconv.FormatInt(l.nextNumber, 10),
		Agency:            agency,
		ClientCPF:         c.CPF,
		WithdrawalCeiling: policy.WithdrawalCeiling,
		MaxWithdrawals:    policy.MaxWithdrawals,
	}
	if openingBalance > 0 {
		if err := c.Apply(a, NewDeposit(openingBalance)); err != nil {
			return nil, err
		}
	}

	l.nextNumber++
	l.accounts[a.Number] = a
	l.accountNos = append(l.accountNos, a.Number)
	c.addAccount(a)
	return a, nil
}

func (l *Ledger) Client(cpf string) (*Client, error) {
	c, ok := l.clients[cpf]
	if !ok {
		return nil, ErrClientNotFound
	}
	return c, nil
}

func (l *Ledger) Account(number string) (*Account, error) {
	a, ok := l.accounts[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// Clients returns all clients in registration order.
func (l *Ledger) Clients() []*Client {
	out := make([]*Client, 0, len(l.clientCPFs))
	for _, cpf := range l.clientCPFs {
		out = append(out, l.clients[cpf])
	}
	return out
}

// Accounts returns all accounts in opening order.
func (l *Ledger) Accounts() []*Account {
	out := make([]*Account, 0, len(l.accountNos))
	for _, n := range l.accountNos {
		out = append(out, l.accounts[n])
	}
	return out
}

func (l *Ledger) NextAccountNumber() int64 { return l.nextNumber }

// SetNextAccountNumber is used by the store when reloading a persisted
// ledger; the counter itself is persisted rather than derived.
func (l *Ledger) SetNextAccountNumber(n int64) {
	if n < 1 {
		n = 1
	}
	l.nextNumber = n
}

// RestoreAccount reattaches a persisted account to its owning client and
// replays its history entries. The balance is set directly from the persisted
// value: entries are not re-applied, their effect is already in the balance.
// Returns ErrClientNotFound when the owning client is missing, so the caller
// can drop the orphan.
func (l *Ledger) RestoreAccount(clientCPF, number, agency string, balance, withdrawalCeiling int64, maxWithdrawals int, entries []Entry) (*Account, error) {
	c, err := l.Client(clientCPF)
	if err != nil {
		return nil, err
	}

	a := &Account{
		Number:            number,
		Agency:            agency,
		ClientCPF:         c.CPF,
		WithdrawalCeiling: withdrawalCeiling,
		MaxWithdrawals:    maxWithdrawals,
		balance:           balance,
	}
	for _, e := range entries {
		a.history.replay(e)
	}

	l.accounts[a.Number] = a
	l.accountNos = append(l.accountNos, a.Number)
	c.addAccount(a)
	return a, nil
}

func validCPF(cpf string) bool {
	if len(cpf) != constants.CPFLength {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
