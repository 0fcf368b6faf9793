package store

import "errors"

var (
	// ErrPersist wraps any failure while writing the ledger out. The
	// transaction is rolled back, so the previously saved state stays valid.
	ErrPersist = errors.New("could not persist ledger")
)
