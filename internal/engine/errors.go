package engine

import "errors"

var (
	// ErrInvalidAmount rejects non-positive or unparsable amounts. The view
	// layer checks this before dispatching a transactional intent.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds occurs when the acting account cannot cover a
	// requested debit.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoAccountSelected occurs when a transactional intent arrives with
	// no account selected.
	ErrNoAccountSelected = errors.New("no account selected")
)

// User-facing error text carried in Snapshot.Err. All failures recover to a
// known screen with one of these set; none is fatal.
const (
	MsgInvalidPIN           = "Invalid PIN. Please try again."
	MsgNoAccountSelected    = "No account selected"
	MsgInsufficientFunds    = "Insufficient funds"
	MsgTransferInsufficient = "Insufficient funds for transfer"
)
