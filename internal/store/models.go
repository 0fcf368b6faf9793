package store

// Flat row shapes, one per table. The object graph is rebuilt from these on
// load; they never leave the package.

type clientRow struct {
	CPF       string
	Name      string
	BirthDate string
	Address   string
}

type accountRow struct {
	Number            string
	Agency            string
	Balance           int64
	ClientCPF         string
	WithdrawalCeiling int64
	MaxWithdrawals    int
}

type entryRow struct {
	ID         string
	Kind       string
	Amount     int64
	RecordedAt int64 // unix seconds
}
