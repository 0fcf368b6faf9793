package ledger

import "time"

// Client is an account holder identified by CPF (the Brazilian national ID,
// eleven digits). Identity fields never change after registration; only the
// accounts collection grows.
type Client struct {
	CPF       string
	Name      string
	BirthDate string
	Address   string

	accounts []*Account
}

// Accounts returns the client's accounts in opening order.
func (c *Client) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Account finds one of the client's own accounts by number.
func (c *Client) Account(number string) (*Account, error) {
	for _, a := range c.accounts {
		if a.Number == number {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound
}

// Apply runs a transaction against one of the client's accounts using the
// validate-then-record protocol: the account operation either succeeds and
// gets a history entry, or fails and leaves no trace. The history is exactly
// the set of operations that changed the balance, in order.
func (c *Client) Apply(a *Account, t Transaction) error {
	var err error
	switch t.Kind() {
	case KindDeposit:
		err = a.Deposit(t.Amount())
	case KindWithdrawal:
		err = a.Withdraw(t.Amount())
	default:
		return ErrUnknownKind
	}
	if err != nil {
		return err
	}
	a.history.record(t, time.Now())
	return nil
}

func (c *Client) addAccount(a *Account) {
	c.accounts = append(c.accounts, a)
}
