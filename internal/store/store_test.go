package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caixa/internal/ledger"
)

func testPolicy() ledger.AccountPolicy {
	return ledger.AccountPolicy{
		Agency:            "0001",
		WithdrawalCeiling: 500_00,
		MaxWithdrawals:    3,
	}
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "caixa.db")
	s, err := NewStore(dbPath, os.DirFS("../.."), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, dbPath
}

// seededLedger builds a ledger with two clients, three accounts and a mix of
// deposits and withdrawals.
func seededLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New()

	maria, err := l.RegisterClient("12345678901", "Maria Silva", "01-02-1990", "Rua A, 10")
	require.NoError(t, err)
	joao, err := l.RegisterClient("98765432100", "Joao Souza", "05-06-1985", "Rua B, 20")
	require.NoError(t, err)

	a1, err := l.OpenAccount(maria.CPF, 300_00, testPolicy())
	require.NoError(t, err)
	require.NoError(t, maria.Apply(a1, ledger.NewWithdrawal(50_00)))
	require.NoError(t, maria.Apply(a1, ledger.NewDeposit(25_00)))

	_, err = l.OpenAccount(maria.CPF, 0, testPolicy())
	require.NoError(t, err)

	a3, err := l.OpenAccount(joao.CPF, 1000_00, testPolicy())
	require.NoError(t, err)
	require.NoError(t, joao.Apply(a3, ledger.NewWithdrawal(500_00)))

	return l
}

func TestLoadLedger_EmptyDatabase(t *testing.T) {
	s, _ := newTestStore(t)

	led, err := s.LoadLedger()
	require.NoError(t, err)
	assert.Empty(t, led.Clients())
	assert.Empty(t, led.Accounts())
	assert.Equal(t, int64(1), led.NextAccountNumber())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	original := seededLedger(t)

	require.NoError(t, s.SaveLedger(original))
	loaded, err := s.LoadLedger()
	require.NoError(t, err)

	require.Len(t, loaded.Clients(), 2)
	require.Len(t, loaded.Accounts(), 3)
	assert.Equal(t, original.NextAccountNumber(), loaded.NextAccountNumber())

	for i, want := range original.Clients() {
		got := loaded.Clients()[i]
		assert.Equal(t, want.CPF, got.CPF)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.BirthDate, got.BirthDate)
		assert.Equal(t, want.Address, got.Address)
		assert.Len(t, got.Accounts(), len(want.Accounts()))
	}

	for i, want := range original.Accounts() {
		got := loaded.Accounts()[i]
		assert.Equal(t, want.Number, got.Number)
		assert.Equal(t, want.Agency, got.Agency)
		assert.Equal(t, want.ClientCPF, got.ClientCPF)
		assert.Equal(t, want.Balance(), got.Balance())
		assert.Equal(t, want.WithdrawalCeiling, got.WithdrawalCeiling)
		assert.Equal(t, want.MaxWithdrawals, got.MaxWithdrawals)

		wantEntries := want.History().Entries()
		gotEntries := got.History().Entries()
		require.Len(t, gotEntries, len(wantEntries))
		for j, we := range wantEntries {
			ge := gotEntries[j]
			assert.Equal(t, we.ID, ge.ID)
			assert.Equal(t, we.Kind, ge.Kind)
			assert.Equal(t, we.Amount, ge.Amount)
			assert.Equal(t, we.Time.Unix(), ge.Time.Unix())
		}
	}
}

func TestSaveLedger_ReplacesPreviousState(t *testing.T) {
	s, _ := newTestStore(t)

	first := ledger.New()
	_, err := first.RegisterClient("11111111111", "Old Client", "01-01-1980", "Rua X")
	require.NoError(t, err)
	require.NoError(t, s.SaveLedger(first))

	second := ledger.New()
	_, err = second.RegisterClient("22222222222", "New Client", "02-02-1982", "Rua Y")
	require.NoError(t, err)
	require.NoError(t, s.SaveLedger(second))

	loaded, err := s.LoadLedger()
	require.NoError(t, err)
	require.Len(t, loaded.Clients(), 1)
	assert.Equal(t, "22222222222", loaded.Clients()[0].CPF)
}

func TestSaveLedger_FailureLeavesPriorStateIntact(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.SaveLedger(seededLedger(t)))

	// Make the final insert of the save blow up mid-transaction.
	_, err := s.db.Exec(`
		CREATE TRIGGER reject_meta BEFORE INSERT ON ledger_meta
		BEGIN SELECT RAISE(ABORT, 'write rejected'); END
	`)
	require.NoError(t, err)

	next := ledger.New()
	_, err = next.RegisterClient("55555555555", "Ana Lima", "03-03-1993", "Rua Z")
	require.NoError(t, err)
	err = s.SaveLedger(next)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersist)

	_, err = s.db.Exec("DROP TRIGGER reject_meta")
	require.NoError(t, err)

	// The rollback must have preserved the previously saved graph in full.
	loaded, err := s.LoadLedger()
	require.NoError(t, err)
	require.Len(t, loaded.Clients(), 2)
	require.Len(t, loaded.Accounts(), 3)
	assert.Equal(t, "12345678901", loaded.Clients()[0].CPF)
	assert.Equal(t, int64(4), loaded.NextAccountNumber())

	a, err := loaded.Account("1")
	require.NoError(t, err)
	assert.Equal(t, int64(275_00), a.Balance())
	assert.Equal(t, 3, a.History().Len())
}

func TestLoadLedger_DropsOrphanedAccount(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.SaveLedger(seededLedger(t)))

	_, err := s.db.Exec("DELETE FROM clients WHERE cpf = '98765432100'")
	require.NoError(t, err)

	loaded, err := s.LoadLedger()
	require.NoError(t, err)
	require.Len(t, loaded.Clients(), 1)
	assert.Len(t, loaded.Accounts(), 2)
	_, err = loaded.Account("3")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestLoadLedger_NextNumberFallback(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.SaveLedger(seededLedger(t)))

	_, err := s.db.Exec("DELETE FROM ledger_meta")
	require.NoError(t, err)

	loaded, err := s.LoadLedger()
	require.NoError(t, err)
	assert.Equal(t, int64(4), loaded.NextAccountNumber())
}

func TestLoadLedger_SkipsUnknownEntryKind(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.SaveLedger(seededLedger(t)))

	_, err := s.db.Exec(`
		INSERT INTO history_entries (id, account_number, kind, amount, recorded_at, position)
		VALUES ('b7f41f82-0000-0000-0000-000000000000', '1', 'transfer', 100, 1700000000, 99)
	`)
	require.NoError(t, err)

	loaded, err := s.LoadLedger()
	require.NoError(t, err)
	a, err := loaded.Account("1")
	require.NoError(t, err)
	assert.Equal(t, 3, a.History().Len())
}

func TestNewStore_CorruptFileMovedAside(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "caixa.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("this is not a sqlite database at all"), 0644))

	s, err := NewStore(dbPath, os.DirFS("../.."), zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(dbPath + ".corrupt")
	assert.NoError(t, err)

	led, err := s.LoadLedger()
	require.NoError(t, err)
	assert.Empty(t, led.Clients())
}
