package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind classifies an account product.
type AccountKind string

const (
	AccountChecking AccountKind = "checking"
	AccountSavings  AccountKind = "savings"
	AccountCredit   AccountKind = "credit"
)

// TransactionKind classifies a ledger record.
type TransactionKind string

const (
	KindWithdrawal TransactionKind = "withdrawal"
	KindDeposit    TransactionKind = "deposit"
	KindTransfer   TransactionKind = "transfer"
)

// User is a card holder. The PIN is stored in the clear: the demo
// credentials are public and authentication here is not a security boundary.
type User struct {
	ID   string
	Name string
	PIN  string
}

// Account is a stored-value account owned by exactly one user. Balance is
// signed; credit accounts routinely run negative.
type Account struct {
	ID      string
	UserID  string
	Kind    AccountKind
	Number  string
	Balance decimal.Decimal
}

// Transaction is one append-only ledger record. The two legs of a transfer
// share a Reference; every other kind leaves it empty.
type Transaction struct {
	ID          string
	AccountID   string
	Kind        TransactionKind
	Amount      decimal.Decimal
	Description string
	Timestamp   time.Time
	Reference   string
}
