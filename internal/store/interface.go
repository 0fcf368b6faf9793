package store

import "caixa/internal/ledger"

type Repository interface {
	LoadLedger() (*ledger.Ledger, error)
	SaveLedger(l *ledger.Ledger) error
	Close() error
}
