package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded ledger event. Timestamps are kept at second
// precision; the ID is stable across save/load.
type Entry struct {
	ID     uuid.UUID
	Kind   Kind
	Amount int64
	Time   time.Time
}

// History is the append-only log of an account's accepted transactions.
// Entries are only ever added after the corresponding operation succeeded,
// so the log can be trusted to recompute the balance.
type History struct {
	entries []Entry
}

// Entries returns a copy of the log in recording order.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int { return len(h.entries) }

// Withdrawals counts the withdrawal entries recorded so far. The count is
// derived from the log on every call instead of a shadow counter, so it can
// never drift from what actually happened.
func (h *History) Withdrawals() int {
	n := 0
	for _, e := range h.entries {
		if e.Kind == KindWithdrawal {
			n++
		}
	}
	return n
}

// record appends a freshly accepted transaction.
func (h *History) record(t Transaction, at time.Time) {
	h.entries = append(h.entries, Entry{
		ID:     uuid.New(),
		Kind:   t.Kind(),
		Amount: t.Amount(),
		Time:   at.Truncate(time.Second),
	})
}

// replay appends an already-recorded entry during reconstruction. It must not
// touch any balance: the persisted balance is authoritative and replaying is
// only about rebuilding the log.
func (h *History) replay(e Entry) {
	h.entries = append(h.entries, e)
}
