package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCPF = "12345678901"

func testPolicy() AccountPolicy {
	return AccountPolicy{
		Agency:            "0001",
		WithdrawalCeiling: 500_00,
		MaxWithdrawals:    3,
	}
}

// newFunded registers a client and opens an account with the given balance.
func newFunded(t *testing.T, opening int64) (*Ledger, *Client, *Account) {
	t.Helper()
	l := New()
	c, err := l.RegisterClient(testCPF, "Maria Silva", "01-02-1990", "Rua A, 10")
	require.NoError(t, err)
	a, err := l.OpenAccount(testCPF, opening, testPolicy())
	require.NoError(t, err)
	return l, c, a
}

func TestRegisterClient_InvalidCPF(t *testing.T) {
	l := New()
	for _, cpf := range []string{"", "123", "123456789012", "1234567890a"} {
		_, err := l.RegisterClient(cpf, "Maria", "01-02-1990", "Rua A")
		assert.ErrorIs(t, err, ErrInvalidCPF, "cpf %q", cpf)
	}
}

func TestRegisterClient_DuplicateCPF(t *testing.T) {
	l := New()
	_, err := l.RegisterClient(testCPF, "Maria", "01-02-1990", "Rua A")
	require.NoError(t, err)

	_, err = l.RegisterClient(testCPF, "Other Maria", "02-03-1991", "Rua B")
	assert.ErrorIs(t, err, ErrClientExists)
	assert.Len(t, l.Clients(), 1)
}

func TestOpenAccount_SequentialNumbers(t *testing.T) {
	l, _, first := newFunded(t, 0)
	second, err := l.OpenAccount(testCPF, 0, testPolicy())
	require.NoError(t, err)

	assert.Equal(t, "1", first.Number)
	assert.Equal(t, "2", second.Number)
	assert.Equal(t, int64(3), l.NextAccountNumber())
}

func TestOpenAccount_UnknownClient(t *testing.T) {
	l := New()
	_, err := l.OpenAccount("99999999999", 0, testPolicy())
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Empty(t, l.Accounts())
}

func TestOpenAccount_OpeningBalanceRecordedAsDeposit(t *testing.T) {
	_, _, a := newFunded(t, 250_00)

	assert.Equal(t, int64(250_00), a.Balance())
	entries := a.History().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, KindDeposit, entries[0].Kind)
	assert.Equal(t, int64(250_00), entries[0].Amount)
}

func TestOpenAccount_ZeroOpeningBalanceHasNoHistory(t *testing.T) {
	_, _, a := newFunded(t, 0)
	assert.Zero(t, a.Balance())
	assert.Zero(t, a.History().Len())
}

func TestApply_Deposit(t *testing.T) {
	_, c, a := newFunded(t, 0)

	require.NoError(t, c.Apply(a, NewDeposit(100_00)))
	assert.Equal(t, int64(100_00), a.Balance())
	assert.Equal(t, 1, a.History().Len())
}

func TestApply_DepositRejectsNonPositive(t *testing.T) {
	_, c, a := newFunded(t, 0)

	assert.ErrorIs(t, c.Apply(a, NewDeposit(0)), ErrInvalidAmount)
	assert.ErrorIs(t, c.Apply(a, NewDeposit(-50)), ErrInvalidAmount)
	assert.Zero(t, a.History().Len())
}

func TestApply_Withdraw(t *testing.T) {
	_, c, a := newFunded(t, 300_00)

	require.NoError(t, c.Apply(a, NewWithdrawal(120_00)))
	assert.Equal(t, int64(180_00), a.Balance())
	assert.Equal(t, 1, a.History().Withdrawals())
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	_, c, a := newFunded(t, 100_00)

	err := c.Apply(a, NewWithdrawal(100_01))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(100_00), a.Balance())
}

func TestWithdraw_CeilingPerWithdrawal(t *testing.T) {
	_, c, a := newFunded(t, 2000_00)

	err := c.Apply(a, NewWithdrawal(500_01))
	assert.ErrorIs(t, err, ErrWithdrawalLimit)

	// Exactly at the ceiling is allowed.
	require.NoError(t, c.Apply(a, NewWithdrawal(500_00)))
	assert.Equal(t, int64(1500_00), a.Balance())
}

func TestWithdraw_CeilingCheckedBeforeFunds(t *testing.T) {
	_, c, a := newFunded(t, 10_00)

	// Over the ceiling and over the balance: the ceiling wins.
	err := c.Apply(a, NewWithdrawal(600_00))
	assert.ErrorIs(t, err, ErrWithdrawalLimit)
}

func TestWithdraw_CountLimit(t *testing.T) {
	_, c, a := newFunded(t, 1000_00)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Apply(a, NewWithdrawal(50_00)))
	}
	err := c.Apply(a, NewWithdrawal(50_00))
	assert.ErrorIs(t, err, ErrWithdrawalCount)
	assert.Equal(t, int64(850_00), a.Balance())
	assert.Equal(t, 3, a.History().Withdrawals())
}

func TestAccount_Lifecycle(t *testing.T) {
	_, c, a := newFunded(t, 0)

	require.NoError(t, c.Apply(a, NewDeposit(500_00)))
	assert.Equal(t, int64(500_00), a.Balance())

	assert.ErrorIs(t, c.Apply(a, NewWithdrawal(600_00)), ErrWithdrawalLimit)
	assert.Equal(t, int64(500_00), a.Balance())

	require.NoError(t, c.Apply(a, NewWithdrawal(300_00)))
	assert.Equal(t, int64(200_00), a.Balance())

	require.NoError(t, c.Apply(a, NewWithdrawal(1)))
	require.NoError(t, c.Apply(a, NewWithdrawal(1)))
	assert.ErrorIs(t, c.Apply(a, NewWithdrawal(1)), ErrWithdrawalCount)
	assert.Equal(t, int64(199_98), a.Balance())
	assert.Equal(t, 3, a.History().Withdrawals())
}

func TestWithdraw_FailedAttemptsDontCountTowardLimit(t *testing.T) {
	_, c, a := newFunded(t, 100_00)

	// Burn several failing attempts first.
	for i := 0; i < 5; i++ {
		assert.Error(t, c.Apply(a, NewWithdrawal(999_99)))
	}
	assert.Zero(t, a.History().Withdrawals())

	require.NoError(t, c.Apply(a, NewWithdrawal(30_00)))
	assert.Equal(t, int64(70_00), a.Balance())
}

func TestApply_UnknownKind(t *testing.T) {
	_, c, a := newFunded(t, 100_00)

	err := c.Apply(a, Transaction{kind: Kind("transfer"), amount: 10_00})
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, 1, a.History().Len())
}

func TestHistory_MatchesBalance(t *testing.T) {
	_, c, a := newFunded(t, 500_00)

	require.NoError(t, c.Apply(a, NewDeposit(200_00)))
	require.NoError(t, c.Apply(a, NewWithdrawal(150_00)))
	assert.Error(t, c.Apply(a, NewWithdrawal(10_000_00)))
	require.NoError(t, c.Apply(a, NewWithdrawal(50_00)))

	var sum int64
	for _, e := range a.History().Entries() {
		switch e.Kind {
		case KindDeposit:
			sum += e.Amount
		case KindWithdrawal:
			sum -= e.Amount
		}
	}
	assert.Equal(t, a.Balance(), sum)
}

func TestHistory_EntriesReturnsCopy(t *testing.T) {
	_, c, a := newFunded(t, 100_00)
	require.NoError(t, c.Apply(a, NewDeposit(10_00)))

	entries := a.History().Entries()
	entries[0].Amount = 999_99

	assert.Equal(t, int64(10_00), a.History().Entries()[0].Amount)
}

func TestClient_AccountOnlyFindsOwn(t *testing.T) {
	l, _, _ := newFunded(t, 0)
	_, err := l.RegisterClient("98765432100", "Joao", "05-06-1985", "Rua B, 20")
	require.NoError(t, err)
	other, err := l.OpenAccount("98765432100", 0, testPolicy())
	require.NoError(t, err)

	first, err := l.Client(testCPF)
	require.NoError(t, err)
	_, err = first.Account(other.Number)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRestoreAccount_OrphanRejected(t *testing.T) {
	l := New()
	_, err := l.RestoreAccount("99999999999", "7", "0001", 100_00, 500_00, 3, nil)
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Empty(t, l.Accounts())
}

func TestRestoreAccount_ReplayDoesNotTouchBalance(t *testing.T) {
	l := New()
	_, err := l.RegisterClient(testCPF, "Maria", "01-02-1990", "Rua A")
	require.NoError(t, err)

	entries := []Entry{
		{ID: uuid.New(), Kind: KindDeposit, Amount: 300_00, Time: time.Unix(1700000000, 0)},
		{ID: uuid.New(), Kind: KindWithdrawal, Amount: 100_00, Time: time.Unix(1700000100, 0)},
	}
	a, err := l.RestoreAccount(testCPF, "4", "0001", 200_00, 500_00, 3, entries)
	require.NoError(t, err)

	assert.Equal(t, int64(200_00), a.Balance())
	assert.Equal(t, 2, a.History().Len())
	assert.Equal(t, 1, a.History().Withdrawals())

	c, err := l.Client(testCPF)
	require.NoError(t, err)
	got, err := c.Account("4")
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestSetNextAccountNumber_ClampsToOne(t *testing.T) {
	l := New()
	l.SetNextAccountNumber(0)
	assert.Equal(t, int64(1), l.NextAccountNumber())
	l.SetNextAccountNumber(42)
	assert.Equal(t, int64(42), l.NextAccountNumber())
}
