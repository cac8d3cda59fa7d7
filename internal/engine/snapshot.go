package engine

import (
	"github.com/shopspring/decimal"

	"github.com/atm-sim/atm_sim/internal/ledger"
)

// Screen names one state of the kiosk state machine. Screens flow
// welcome -> pin -> home -> {balance, withdraw, deposit, transfer, history}
// -> receipt -> home, with error reachable from any funds-check failure.
type Screen string

const (
	ScreenWelcome  Screen = "welcome"
	ScreenPIN      Screen = "pin"
	ScreenHome     Screen = "home"
	ScreenBalance  Screen = "balance"
	ScreenWithdraw Screen = "withdraw"
	ScreenDeposit  Screen = "deposit"
	ScreenTransfer Screen = "transfer"
	ScreenHistory  Screen = "history"
	ScreenReceipt  Screen = "receipt"
	ScreenError    Screen = "error"
)

// Snapshot is the complete session state at one version. Apply replaces it
// wholesale per intent; callers never observe a partially applied snapshot.
// When Authenticated is false, User is nil and the account and transaction
// lists are empty.
type Snapshot struct {
	Screen          Screen
	Authenticated   bool
	User            *ledger.User
	SelectedAccount *ledger.Account
	Accounts        []ledger.Account
	Transactions    []ledger.Transaction
	PendingAmount   decimal.Decimal
	Err             string
	Receipt         *ledger.Transaction
}

// NewSnapshot returns the initial unauthenticated snapshot. Logout and the
// inactivity timeout reset to exactly this value.
func NewSnapshot() Snapshot {
	return Snapshot{Screen: ScreenWelcome}
}
