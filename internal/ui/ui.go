// Package ui is the kiosk view layer: it renders one screen per snapshot
// state and translates keypad input into dispatched intents. It never
// mutates accounts or the ledger itself.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atm-sim/atm_sim/internal/engine"
	"github.com/atm-sim/atm_sim/internal/ledger"
	"github.com/atm-sim/atm_sim/internal/session"
)

// maxPINAttempts is view-layer policy only, not enforced by the engine: a
// determined caller could dispatch Authenticate directly as often as it
// likes. After three misses the kiosk pretends to retain the card.
const maxPINAttempts = 3

var errCardRemoved = errors.New("card removed")

var quickAmounts = []int{20, 40, 60, 100, 200}

// UI drives a terminal session against the kiosk.
type UI struct {
	sess      *session.Session
	in        *bufio.Reader
	out       io.Writer
	logger    *slog.Logger
	cardDelay time.Duration
	attempts  int
}

// New builds a terminal UI over the given session.
func New(sess *session.Session, in io.Reader, out io.Writer, logger *slog.Logger, cardDelay time.Duration) *UI {
	return &UI{sess: sess, in: bufio.NewReader(in), out: out, logger: logger, cardDelay: cardDelay}
}

// Run renders screens until the user exits at the welcome screen, input ends,
// or ctx is canceled.
func (ui *UI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		snap := ui.sess.Snapshot()
		var err error
		switch snap.Screen {
		case engine.ScreenWelcome:
			err = ui.welcome(ctx)
		case engine.ScreenPIN:
			err = ui.pinEntry()
		case engine.ScreenHome:
			err = ui.home(snap)
		case engine.ScreenBalance:
			err = ui.balance(snap)
		case engine.ScreenWithdraw:
			err = ui.withdraw()
		case engine.ScreenDeposit:
			err = ui.deposit()
		case engine.ScreenTransfer:
			err = ui.transfer(snap)
		case engine.ScreenHistory:
			err = ui.history(snap)
		case engine.ScreenReceipt:
			err = ui.receipt(snap)
		case engine.ScreenError:
			err = ui.errorScreen(snap)
		default:
			ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenWelcome})
		}

		switch {
		case errors.Is(err, errCardRemoved), errors.Is(err, io.EOF):
			ui.sess.Dispatch(engine.Logout{})
			return nil
		case err != nil:
			return err
		}
	}
}

func (ui *UI) welcome(ctx context.Context) error {
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, "================================")
	fmt.Fprintln(ui.out, "        WELCOME TO ATM")
	fmt.Fprintln(ui.out, "================================")
	fmt.Fprintln(ui.out, "1) Insert card")
	fmt.Fprintln(ui.out, "0) Exit")

	choice, err := ui.prompt("> ")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
	case "0":
		return errCardRemoved
	default:
		return nil
	}

	// Card-read choreography: the screen change arrives as a delayed effect
	// so that navigating away cancels it instead of racing it.
	fmt.Fprintln(ui.out, "Reading card...")
	ui.sess.DispatchAfter(ui.cardDelay, engine.SetScreen{Screen: engine.ScreenPIN})
	return ui.waitForScreenChange(ctx, engine.ScreenWelcome)
}

func (ui *UI) pinEntry() error {
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, "=== ENTER PIN ===")
	pin, err := ui.prompt("PIN (0 to cancel): ")
	if err != nil {
		return err
	}
	if pin == "0" {
		ui.attempts = 0
		ui.sess.Dispatch(engine.Logout{})
		return nil
	}

	ui.sess.Dispatch(engine.Authenticate{PIN: pin})
	snap := ui.sess.Snapshot()
	if snap.Authenticated {
		ui.attempts = 0
		fmt.Fprintf(ui.out, "Welcome, %s!\n", snap.User.Name)
		return nil
	}

	ui.attempts++
	fmt.Fprintln(ui.out, snap.Err)
	if ui.attempts >= maxPINAttempts {
		ui.attempts = 0
		fmt.Fprintln(ui.out, "Too many incorrect attempts. Card retained.")
		ui.logger.Warn("pin attempt limit reached")
		ui.sess.Dispatch(engine.Logout{})
	}
	return nil
}

func (ui *UI) home(snap engine.Snapshot) error {
	fmt.Fprintln(ui.out)
	fmt.Fprintf(ui.out, "=== MAIN MENU: %s ===\n", snap.User.Name)
	for i, acc := range snap.Accounts {
		fmt.Fprintf(ui.out, "%d) %s  %s\n", i+1, accountLabel(string(acc.Kind), acc.Number), formatAmount(acc.Balance))
	}
	fmt.Fprintln(ui.out, "0) End session")

	choice, err := ui.prompt("Select account: ")
	if err != nil {
		return err
	}
	if choice == "0" {
		fmt.Fprintln(ui.out, "Thank you. Please take your card.")
		ui.sess.Dispatch(engine.Logout{})
		return nil
	}

	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(snap.Accounts) {
		fmt.Fprintln(ui.out, "Unknown selection.")
		return nil
	}
	account := snap.Accounts[idx-1]
	ui.sess.Dispatch(engine.SelectAccount{Account: &account})

	fmt.Fprintln(ui.out, "1) Balance")
	fmt.Fprintln(ui.out, "2) Withdraw")
	fmt.Fprintln(ui.out, "3) Deposit")
	fmt.Fprintln(ui.out, "4) Transfer")
	fmt.Fprintln(ui.out, "5) History")
	fmt.Fprintln(ui.out, "0) Back")

	action, err := ui.prompt("> ")
	if err != nil {
		return err
	}
	switch action {
	case "1":
		ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenBalance})
	case "2":
		ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenWithdraw})
	case "3":
		ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenDeposit})
	case "4":
		ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenTransfer})
	case "5":
		ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenHistory})
	}
	return nil
}

func (ui *UI) balance(snap engine.Snapshot) error {
	acc := snap.SelectedAccount
	if acc == nil {
		ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenHome})
		return nil
	}
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, "=== BALANCE ===")
	fmt.Fprintf(ui.out, "%s\n", accountLabel(string(acc.Kind), acc.Number))
	fmt.Fprintf(ui.out, "Available: %s\n", formatAmount(acc.Balance))
	return ui.pressEnterThen(engine.ScreenHome)
}

func (ui *UI) withdraw() error {
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, "=== WITHDRAW ===")
	for i, amt := range quickAmounts {
		fmt.Fprintf(ui.out, "%d) $%d\n", i+1, amt)
	}
	fmt.Fprintf(ui.out, "%d) Other amount\n", len(quickAmounts)+1)
	fmt.Fprintln(ui.out, "0) Back")

	choice, err := ui.prompt("> ")
	if err != nil {
		return err
	}
	if choice == "0" {
		ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenHome})
		return nil
	}

	var amount decimal.Decimal
	if idx, convErr := strconv.Atoi(choice); convErr == nil && idx >= 1 && idx <= len(quickAmounts) {
		amount = decimal.NewFromInt(int64(quickAmounts[idx-1]))
	} else {
		raw, promptErr := ui.prompt("Amount: ")
		if promptErr != nil {
			return promptErr
		}
		amount, err = parseAmount(raw)
		if err != nil {
			ui.rejectAmount()
			return nil
		}
	}

	ui.sess.Dispatch(engine.SetAmount{Amount: amount})
	ui.sess.Dispatch(engine.Withdraw{Amount: amount})
	return nil
}

func (ui *UI) deposit() error {
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, "=== DEPOSIT ===")
	raw, err := ui.prompt("Amount (0 to cancel): ")
	if err != nil {
		return err
	}
	if raw == "0" {
		ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenHome})
		return nil
	}
	amount, err := parseAmount(raw)
	if err != nil {
		ui.rejectAmount()
		return nil
	}
	ui.sess.Dispatch(engine.SetAmount{Amount: amount})
	ui.sess.Dispatch(engine.Deposit{Amount: amount})
	return nil
}

func (ui *UI) transfer(snap engine.Snapshot) error {
	from := snap.SelectedAccount
	if from == nil {
		ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenHome})
		return nil
	}
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, "=== TRANSFER ===")
	fmt.Fprintf(ui.out, "From %s\n", accountLabel(string(from.Kind), from.Number))

	var others []int
	for i, acc := range snap.Accounts {
		if acc.ID == from.ID {
			continue
		}
		others = append(others, i)
		fmt.Fprintf(ui.out, "%d) %s  %s\n", len(others), accountLabel(string(acc.Kind), acc.Number), formatAmount(acc.Balance))
	}
	fmt.Fprintln(ui.out, "0) Back")

	choice, err := ui.prompt("Transfer to: ")
	if err != nil {
		return err
	}
	if choice == "0" {
		ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenHome})
		return nil
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(others) {
		fmt.Fprintln(ui.out, "Unknown selection.")
		return nil
	}
	to := snap.Accounts[others[idx-1]]

	raw, err := ui.prompt("Amount: ")
	if err != nil {
		return err
	}
	amount, err := parseAmount(raw)
	if err != nil {
		ui.rejectAmount()
		return nil
	}

	ui.sess.Dispatch(engine.SetAmount{Amount: amount})
	ui.sess.Dispatch(engine.Transfer{From: *from, To: to, Amount: amount})
	return nil
}

func (ui *UI) history(snap engine.Snapshot) error {
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, "=== HISTORY ===")
	shown := 0
	for _, tx := range snap.Transactions {
		if snap.SelectedAccount != nil && tx.AccountID != snap.SelectedAccount.ID {
			continue
		}
		sign := "-"
		if tx.Kind == ledger.KindDeposit {
			sign = "+"
		}
		fmt.Fprintf(ui.out, "%-20s %-30s %s%s\n", formatTimestamp(tx.Timestamp), tx.Description, sign, formatAmount(tx.Amount))
		shown++
		if shown == 10 {
			break
		}
	}
	if shown == 0 {
		fmt.Fprintln(ui.out, "No transactions.")
	}
	return ui.pressEnterThen(engine.ScreenHome)
}

func (ui *UI) receipt(snap engine.Snapshot) error {
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, "--------- RECEIPT ---------")
	if tx := snap.Receipt; tx != nil {
		fmt.Fprintf(ui.out, "%s\n", strings.ToUpper(string(tx.Kind)))
		fmt.Fprintf(ui.out, "%s\n", tx.Description)
		fmt.Fprintf(ui.out, "Amount:  %s\n", formatAmount(tx.Amount))
		if tx.Reference != "" {
			fmt.Fprintf(ui.out, "Ref:     %s\n", tx.Reference)
		}
		fmt.Fprintf(ui.out, "Date:    %s\n", formatTimestamp(tx.Timestamp))
	}
	if acc := snap.SelectedAccount; acc != nil {
		fmt.Fprintf(ui.out, "Balance: %s\n", formatAmount(acc.Balance))
	}
	fmt.Fprintln(ui.out, "---------------------------")

	if _, err := ui.prompt("Press Enter to continue"); err != nil {
		return err
	}
	ui.sess.Dispatch(engine.ClearTransaction{})
	ui.sess.Dispatch(engine.SetScreen{Screen: engine.ScreenHome})
	return nil
}

func (ui *UI) errorScreen(snap engine.Snapshot) error {
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, "=== TRANSACTION DECLINED ===")
	fmt.Fprintln(ui.out, snap.Err)
	return ui.pressEnterThen(engine.ScreenHome)
}

func (ui *UI) pressEnterThen(next engine.Screen) error {
	if _, err := ui.prompt("Press Enter to continue"); err != nil {
		return err
	}
	ui.sess.Dispatch(engine.SetScreen{Screen: next})
	return nil
}

func (ui *UI) rejectAmount() {
	ui.sess.Dispatch(engine.SetError{Message: "Please enter a valid amount"})
	fmt.Fprintln(ui.out, "Please enter a valid amount.")
}

func (ui *UI) prompt(label string) (string, error) {
	fmt.Fprint(ui.out, label)
	line, err := ui.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// waitForScreenChange polls the snapshot until a delayed effect moves it off
// the given screen. Bounded so a canceled effect cannot hang the loop.
func (ui *UI) waitForScreenChange(ctx context.Context, from engine.Screen) error {
	deadline := time.Now().Add(ui.cardDelay + 2*time.Second)
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ui.sess.Snapshot().Screen != from {
			return nil
		}
		time.Sleep(25 * time.Millisecond)
	}
	return nil
}

// parseAmount turns keypad input into a positive decimal amount.
func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, engine.ErrInvalidAmount
	}
	return d, nil
}
