package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atm-sim/atm_sim/internal/ledger"
)

// Engine is the transaction state machine: a pure transition function over
// session snapshots. It holds no session state of its own; the only
// non-determinism is timestamp and id generation, both injectable for tests.
type Engine struct {
	store *ledger.Store
	now   func() time.Time
	newID func() string
}

// New builds an engine over the given store.
func New(store *ledger.Store) *Engine {
	return &Engine{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Apply consumes the current snapshot and one intent and produces the next
// snapshot. Balance mutation and the matching ledger append always happen
// together within a single call; the two can never diverge.
func (e *Engine) Apply(snap Snapshot, intent Intent) Snapshot {
	switch it := intent.(type) {
	case SetScreen:
		snap.Screen = it.Screen
		snap.Err = ""
		return snap

	case Authenticate:
		return e.authenticate(snap, it.PIN)

	case Logout:
		return NewSnapshot()

	case SelectAccount:
		snap.SelectedAccount = cloneAccount(it.Account)
		snap.Err = ""
		return snap

	case SetAmount:
		snap.PendingAmount = it.Amount
		snap.Err = ""
		return snap

	case Withdraw:
		return e.withdraw(snap, it.Amount)

	case Deposit:
		return e.deposit(snap, it.Amount)

	case Transfer:
		return e.transfer(snap, it)

	case SetError:
		snap.Err = it.Message
		return snap

	case SetReceipt:
		snap.Receipt = cloneTransaction(it.Receipt)
		return snap

	case ClearTransaction:
		snap.PendingAmount = decimal.Decimal{}
		snap.Receipt = nil
		return snap
	}

	return snap
}

func (e *Engine) authenticate(snap Snapshot, pin string) Snapshot {
	user, ok := e.store.UserByPIN(pin)
	if !ok {
		snap.Err = MsgInvalidPIN
		snap.Screen = ScreenPIN
		return snap
	}

	accounts := e.store.AccountsByOwner(user.ID)
	ids := make([]string, len(accounts))
	for i, a := range accounts {
		ids[i] = a.ID
	}

	snap.Authenticated = true
	snap.User = &user
	snap.Accounts = accounts
	snap.Transactions = e.store.TransactionsByAccounts(ids)
	snap.Screen = ScreenHome
	snap.Err = ""
	return snap
}

func (e *Engine) withdraw(snap Snapshot, amount decimal.Decimal) Snapshot {
	if snap.SelectedAccount == nil {
		snap.Err = MsgNoAccountSelected
		return snap
	}
	if snap.SelectedAccount.Balance.LessThan(amount) {
		snap.Err = MsgInsufficientFunds
		snap.Screen = ScreenError
		return snap
	}

	accounts, updated := adjustBalance(snap.Accounts, snap.SelectedAccount.ID, amount.Neg())
	tx := ledger.Transaction{
		ID:          e.newID(),
		AccountID:   snap.SelectedAccount.ID,
		Kind:        ledger.KindWithdrawal,
		Amount:      amount,
		Description: "ATM Withdrawal",
		Timestamp:   e.now(),
	}

	snap.Accounts = accounts
	snap.Transactions = prepend(snap.Transactions, tx)
	snap.SelectedAccount = updated
	snap.Receipt = &tx
	snap.Screen = ScreenReceipt
	snap.Err = ""
	return snap
}

func (e *Engine) deposit(snap Snapshot, amount decimal.Decimal) Snapshot {
	if snap.SelectedAccount == nil {
		snap.Err = MsgNoAccountSelected
		return snap
	}

	accounts, updated := adjustBalance(snap.Accounts, snap.SelectedAccount.ID, amount)
	tx := ledger.Transaction{
		ID:          e.newID(),
		AccountID:   snap.SelectedAccount.ID,
		Kind:        ledger.KindDeposit,
		Amount:      amount,
		Description: "ATM Deposit",
		Timestamp:   e.now(),
	}

	snap.Accounts = accounts
	snap.Transactions = prepend(snap.Transactions, tx)
	snap.SelectedAccount = updated
	snap.Receipt = &tx
	snap.Screen = ScreenReceipt
	snap.Err = ""
	return snap
}

func (e *Engine) transfer(snap Snapshot, it Transfer) Snapshot {
	if it.From.Balance.LessThan(it.Amount) {
		snap.Err = MsgTransferInsufficient
		snap.Screen = ScreenError
		return snap
	}

	accounts := make([]ledger.Account, len(snap.Accounts))
	copy(accounts, snap.Accounts)
	var updatedFrom *ledger.Account
	for i := range accounts {
		switch accounts[i].ID {
		case it.From.ID:
			accounts[i].Balance = accounts[i].Balance.Sub(it.Amount)
			from := accounts[i]
			updatedFrom = &from
		case it.To.ID:
			accounts[i].Balance = accounts[i].Balance.Add(it.Amount)
		}
	}

	ref := e.newID()
	now := e.now()
	debit := ledger.Transaction{
		ID:          e.newID(),
		AccountID:   it.From.ID,
		Kind:        ledger.KindTransfer,
		Amount:      it.Amount,
		Description: fmt.Sprintf("Transfer to %s %s", it.To.Kind, it.To.Number),
		Timestamp:   now,
		Reference:   ref,
	}
	credit := ledger.Transaction{
		ID:          e.newID(),
		AccountID:   it.To.ID,
		Kind:        ledger.KindDeposit,
		Amount:      it.Amount,
		Description: fmt.Sprintf("Transfer from %s %s", it.From.Kind, it.From.Number),
		Timestamp:   now,
		Reference:   ref,
	}

	snap.Accounts = accounts
	snap.Transactions = prepend(snap.Transactions, debit, credit)
	snap.SelectedAccount = updatedFrom
	snap.Receipt = &debit
	snap.Screen = ScreenReceipt
	snap.Err = ""
	return snap
}

// adjustBalance copies the account list, applies delta to the account with
// the given id, and returns the new list with a copy of the touched account
// (nil when the id is absent).
func adjustBalance(accounts []ledger.Account, id string, delta decimal.Decimal) ([]ledger.Account, *ledger.Account) {
	out := make([]ledger.Account, len(accounts))
	copy(out, accounts)
	var updated *ledger.Account
	for i := range out {
		if out[i].ID == id {
			out[i].Balance = out[i].Balance.Add(delta)
			acc := out[i]
			updated = &acc
		}
	}
	return out, updated
}

func prepend(txs []ledger.Transaction, newest ...ledger.Transaction) []ledger.Transaction {
	out := make([]ledger.Transaction, 0, len(txs)+len(newest))
	out = append(out, newest...)
	out = append(out, txs...)
	return out
}

func cloneAccount(a *ledger.Account) *ledger.Account {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func cloneTransaction(t *ledger.Transaction) *ledger.Transaction {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
