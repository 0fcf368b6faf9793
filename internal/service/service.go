// Package service sits between the commands and the core ledger. It resolves
// identifiers coming from the boundary, runs the domain operations and is the
// only layer that triggers persistence.
package service

import (
	"caixa/internal/config"
	"caixa/internal/ledger"
)

// Saver is the persistence port. The whole graph is saved at once; there is
// no partial write.
type Saver interface {
	SaveLedger(l *ledger.Ledger) error
}

type Service struct {
	Client      *ClientService
	Account     *AccountService
	Transaction *TransactionService

	Config *config.Config

	ledger *ledger.Ledger
	saver  Saver
}

func NewService(led *ledger.Ledger, saver Saver, cfg *config.Config) *Service {
	return &Service{
		Client:      NewClientService(led),
		Account:     NewAccountService(led, cfg),
		Transaction: NewTransactionService(led),
		Config:      cfg,
		ledger:      led,
		saver:       saver,
	}
}

// Save persists the current state of the whole ledger.
func (s *Service) Save() error {
	return s.saver.SaveLedger(s.ledger)
}
