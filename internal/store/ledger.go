package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"caixa/internal/ledger"
)

// SaveLedger writes the whole graph in a single transaction, replacing
// whatever was persisted before. All-or-nothing: a failure rolls back and the
// previous persisted state remains intact.
func (s *Store) SaveLedger(l *ledger.Ledger) error {
	err := s.ExecTx(func(tx *Store) error {
		for _, table := range []string{"history_entries", "accounts", "clients", "ledger_meta"} {
			if _, err := tx.db.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		if err := tx.insertClients(l.Clients()); err != nil {
			return err
		}
		if err := tx.insertAccounts(l.Accounts()); err != nil {
			return err
		}

		_, err := tx.db.Exec(
			"INSERT INTO ledger_meta (key, value) VALUES ('next_account_number', ?)",
			l.NextAccountNumber(),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func (s *Store) insertClients(clients []*ledger.Client) error {
	stmt, err := s.db.Prepare(`
		INSERT INTO clients (cpf, name, birth_date, address, position)
		VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare client SQL: %w", err)
	}
	defer stmt.Close()

	for i, c := range clients {
		if _, err := stmt.Exec(c.CPF, c.Name, c.BirthDate, c.Address, i); err != nil {
			return fmt.Errorf("failed to insert client %s: %w", c.CPF, err)
		}
	}
	return nil
}

func (s *Store) insertAccounts(accounts []*ledger.Account) error {
	stmtAcc, err := s.db.Prepare(`
		INSERT INTO accounts (number, agency, balance, client_cpf, withdrawal_ceiling, max_withdrawals, position)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare account SQL: %w", err)
	}
	defer stmtAcc.Close()

	stmtEntry, err := s.db.Prepare(`
		INSERT INTO history_entries (id, account_number, kind, amount, recorded_at, position)
		VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare history SQL: %w", err)
	}
	defer stmtEntry.Close()

	for i, a := range accounts {
		_, err := stmtAcc.Exec(
			a.Number, a.Agency, a.Balance(), a.ClientCPF,
			a.WithdrawalCeiling, a.MaxWithdrawals, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert account %s: %w", a.Number, err)
		}

		for j, e := range a.History().Entries() {
			_, err := stmtEntry.Exec(
				e.ID.String(), a.Number, string(e.Kind), e.Amount, e.Time.Unix(), j,
			)
			if err != nil {
				return fmt.Errorf("failed to insert history entry for account %s: %w", a.Number, err)
			}
		}
	}
	return nil
}

// LoadLedger reads the persisted graph back into live objects. Clients are
// indexed first so that each account can resolve its owner; the resolved
// account is linked in both directions. Accounts whose owner is missing are
// dropped with a warning. A persisted state that cannot be read at all yields
// an empty ledger, never a startup failure.
func (s *Store) LoadLedger() (*ledger.Ledger, error) {
	led := ledger.New()

	clients, err := s.listClients()
	if err != nil {
		s.log.Warn().Err(err).Msg("persisted clients unreadable, starting with an empty ledger")
		return ledger.New(), nil
	}
	for _, r := range clients {
		if _, err := led.RegisterClient(r.CPF, r.Name, r.BirthDate, r.Address); err != nil {
			s.log.Warn().Err(err).Str("cpf", r.CPF).Msg("skipping persisted client")
		}
	}

	accounts, err := s.listAccounts()
	if err != nil {
		s.log.Warn().Err(err).Msg("persisted accounts unreadable, starting with an empty ledger")
		return ledger.New(), nil
	}
	for _, r := range accounts {
		entries, err := s.listEntries(r.Number)
		if err != nil {
			s.log.Warn().Err(err).Msg("persisted history unreadable, starting with an empty ledger")
			return ledger.New(), nil
		}

		_, err = led.RestoreAccount(
			r.ClientCPF, r.Number, r.Agency, r.Balance,
			r.WithdrawalCeiling, r.MaxWithdrawals, entries,
		)
		if errors.Is(err, ledger.ErrClientNotFound) {
			s.log.Warn().Str("account", r.Number).Str("cpf", r.ClientCPF).
				Msg("dropping orphaned account, owning client not found")
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	led.SetNextAccountNumber(s.nextAccountNumber(led))
	return led, nil
}

func (s *Store) listClients() ([]clientRow, error) {
	rows, err := s.db.Query(`
		SELECT cpf, name, birth_date, address
		FROM clients
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var out []clientRow
	for rows.Next() {
		var r clientRow
		if err := rows.Scan(&r.CPF, &r.Name, &r.BirthDate, &r.Address); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) listAccounts() ([]accountRow, error) {
	rows, err := s.db.Query(`
		SELECT number, agency, balance, client_cpf, withdrawal_ceiling, max_withdrawals
		FROM accounts
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var out []accountRow
	for rows.Next() {
		var r accountRow
		err := rows.Scan(
			&r.Number, &r.Agency, &r.Balance,
			&r.ClientCPF, &r.WithdrawalCeiling, &r.MaxWithdrawals,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) listEntries(accountNumber string) ([]ledger.Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, amount, recorded_at
		FROM history_entries
		WHERE account_number = ?
		ORDER BY position
	`, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query history entries: %w", err)
	}
	defer rows.Close()

	var out []ledger.Entry
	for rows.Next() {
		var r entryRow
		if err := rows.Scan(&r.ID, &r.Kind, &r.Amount, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		kind := ledger.Kind(r.Kind)
		if kind != ledger.KindDeposit && kind != ledger.KindWithdrawal {
			s.log.Warn().Str("kind", r.Kind).Str("account", accountNumber).
				Msg("skipping history entry of unknown kind")
			continue
		}
		id, err := uuid.Parse(r.ID)
		if err != nil {
			s.log.Warn().Str("id", r.ID).Str("account", accountNumber).
				Msg("skipping history entry with malformed id")
			continue
		}

		out = append(out, ledger.Entry{
			ID:     id,
			Kind:   kind,
			Amount: r.Amount,
			Time:   time.Unix(r.RecordedAt, 0),
		})
	}
	return out, rows.Err()
}

// nextAccountNumber prefers the persisted counter; when the meta row is
// missing it falls back to one past the highest loaded account number so a
// reload can never hand out a duplicate.
func (s *Store) nextAccountNumber(led *ledger.Ledger) int64 {
	var next int64
	err := s.db.QueryRow(
		"SELECT value FROM ledger_meta WHERE key = 'next_account_number'",
	).Scan(&next)
	if err == nil {
		return next
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.log.Warn().Err(err).Msg("ledger meta unreadable, deriving next account number")
	}

	next = 1
	for _, a := range led.Accounts() {
		if n, err := strconv.ParseInt(a.Number, 10, 64); err == nil && n >= next {
			next = n + 1
		}
	}
	return next
}
