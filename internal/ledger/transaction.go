package ledger

// Kind tags a ledger event. The set is closed today but kept as a tag rather
// than subtypes so new kinds only need a new constant and a switch arm.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Transaction is an immutable description of one ledger event. It carries no
// behaviour of its own; applying it to an account is the client's job.
type Transaction struct {
	kind   Kind
	amount int64
}

func NewDeposit(amount int64) Transaction {
	return Transaction{kind: KindDeposit, amount: amount}
}

func NewWithdrawal(amount int64) Transaction {
	return Transaction{kind: KindWithdrawal, amount: amount}
}

func (t Transaction) Kind() Kind { return t.kind }

// Amount is in cents.
func (t Transaction) Amount() int64 { return t.amount }
