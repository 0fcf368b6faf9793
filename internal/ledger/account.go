package ledger

// Account is a checking account. The balance is unexported on purpose:
// nothing outside Deposit and Withdraw may change it, which keeps the
// history a truthful record of every balance change.
type Account struct {
	Number    string
	Agency    string
	ClientCPF string

	// WithdrawalCeiling caps a single withdrawal; MaxWithdrawals caps how
	// many withdrawals the account may ever perform.
	WithdrawalCeiling int64
	MaxWithdrawals    int

	balance int64
	history History
}

// Balance is in cents.
func (a *Account) Balance() int64 { return a.balance }

func (a *Account) History() *History { return &a.history }

// Deposit increases the balance. It does not record a history entry; that is
// the apply protocol's job (see Client.Apply).
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.balance += amount
	return nil
}

// Withdraw decreases the balance after the policy checks pass. Check order is
// fixed: ceiling, then withdrawal count, then funds. The first failing check
// is the one reported.
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > a.WithdrawalCeiling {
		return ErrWithdrawalLimit
	}
	if a.history.Withdrawals() >= a.MaxWithdrawals {
		return ErrWithdrawalCount
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	a.balance -= amount
	return nil
}
