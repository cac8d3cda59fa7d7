package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atm-sim/atm_sim/internal/engine"
	"github.com/atm-sim/atm_sim/internal/ledger"
	"github.com/atm-sim/atm_sim/internal/logging"
	"github.com/atm-sim/atm_sim/internal/session"
)

func runScript(t *testing.T, lines ...string) (*session.Session, string) {
	t.Helper()
	store := ledger.NewDemoStore()
	sess := session.New(engine.New(store), store, session.Config{
		HistoryDepth: 1,
		Logger:       logging.Discard(),
	})
	t.Cleanup(sess.Close)

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	term := New(sess, in, &out, logging.Discard(), time.Millisecond)

	require.NoError(t, term.Run(context.Background()))
	return sess, out.String()
}

func TestScriptedWithdrawal(t *testing.T) {
	sess, out := runScript(t,
		"1",    // insert card
		"1234", // PIN
		"1",    // select checking
		"2",    // withdraw
		"5",    // quick amount $200
		"",     // receipt: continue
		"0",    // end session
		// input ends, card removed
	)

	assert.Contains(t, out, "Welcome, Shrestha Behera!")
	assert.Contains(t, out, "RECEIPT")
	assert.Contains(t, out, "WITHDRAWAL")
	assert.Contains(t, out, "Balance: $5,080.42")

	snap := sess.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.Equal(t, engine.ScreenWelcome, snap.Screen)
}

func TestScriptedTransfer(t *testing.T) {
	_, out := runScript(t,
		"1",    // insert card
		"1234", // PIN
		"1",    // select checking
		"4",    // transfer
		"1",    // to savings
		"100",  // amount
		"",     // receipt: continue
		"0",    // end session
	)

	assert.Contains(t, out, "TRANSFER")
	assert.Contains(t, out, "Ref:")
	assert.Contains(t, out, "Balance: $5,180.42")
}

func TestScriptedOverdraftShowsErrorScreen(t *testing.T) {
	sess, out := runScript(t,
		"1",     // insert card
		"1234",  // PIN
		"1",     // select checking
		"2",     // withdraw
		"6",     // other amount
		"10000", // more than the balance
		"",      // error screen: continue
		"0",     // end session
	)

	assert.Contains(t, out, "TRANSACTION DECLINED")
	assert.Contains(t, out, "Insufficient funds")

	// Balance untouched after the declined withdrawal.
	snap := sess.Snapshot()
	assert.False(t, snap.Authenticated)
}

func TestScriptedPINLockout(t *testing.T) {
	sess, out := runScript(t,
		"1",    // insert card
		"9999", // wrong
		"9998", // wrong
		"9997", // wrong, third strike
		// back at welcome; input ends
	)

	assert.Contains(t, out, "Invalid PIN. Please try again.")
	assert.Contains(t, out, "Card retained")
	assert.False(t, sess.Snapshot().Authenticated)
}

func TestScriptedInvalidAmountRejectedBeforeDispatch(t *testing.T) {
	sess, out := runScript(t,
		"1",    // insert card
		"1234", // PIN
		"1",    // select checking
		"3",    // deposit
		"-50",  // invalid
		"0",    // deposit screen again: cancel
		"0",    // end session
	)

	assert.Contains(t, out, "Please enter a valid amount")

	// Nothing was dispatched to the engine, so no receipt exists.
	snap := sess.Snapshot()
	assert.Nil(t, snap.Receipt)
	assert.False(t, snap.Authenticated)
}
