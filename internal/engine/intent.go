package engine

import (
	"github.com/shopspring/decimal"

	"github.com/atm-sim/atm_sim/internal/ledger"
)

// Intent is a tagged request to transition the snapshot. The type set is
// sealed: Apply switches over every variant and treats anything else as a
// no-op.
type Intent interface {
	isIntent()
}

// Authenticate attempts to start a session with the given PIN.
type Authenticate struct {
	PIN string
}

// Logout unconditionally resets to the initial unauthenticated snapshot.
type Logout struct{}

// SelectAccount records the account subsequent transactions act on. The
// engine trusts the caller to pass an account owned by the current user.
type SelectAccount struct {
	Account *ledger.Account
}

// SetAmount stores a pending amount for display. Not load-bearing for
// transaction correctness.
type SetAmount struct {
	Amount decimal.Decimal
}

// Withdraw debits the selected account after a funds check.
type Withdraw struct {
	Amount decimal.Decimal
}

// Deposit credits the selected account. No upper bound.
type Deposit struct {
	Amount decimal.Decimal
}

// Transfer moves funds between two of the current user's accounts. The
// caller-supplied balances are used only for the precondition check;
// mutation targets are re-resolved by id against the snapshot.
type Transfer struct {
	From   ledger.Account
	To     ledger.Account
	Amount decimal.Decimal
}

// SetError sets or clears the transient error text directly.
type SetError struct {
	Message string
}

// SetReceipt overrides the receipt directly. Rarely used; the transactional
// intents set the receipt as a side effect.
type SetReceipt struct {
	Receipt *ledger.Transaction
}

// ClearTransaction resets the pending amount and receipt when leaving the
// receipt screen.
type ClearTransaction struct{}

// SetScreen navigates. It always clears the error text; navigation
// swallowing stale errors is intentional kiosk behavior.
type SetScreen struct {
	Screen Screen
}

func (Authenticate) isIntent()     {}
func (Logout) isIntent()           {}
func (SelectAccount) isIntent()    {}
func (SetAmount) isIntent()        {}
func (Withdraw) isIntent()         {}
func (Deposit) isIntent()          {}
func (Transfer) isIntent()         {}
func (SetError) isIntent()         {}
func (SetReceipt) isIntent()       {}
func (ClearTransaction) isIntent() {}
func (SetScreen) isIntent()        {}
