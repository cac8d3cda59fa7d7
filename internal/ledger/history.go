package ledger

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var historyMerchants = []string{
	"Grocery Store",
	"Gas Station",
	"Restaurant",
	"Online Purchase",
	"Utility Bill",
	"Subscription",
	"ATM Withdrawal",
	"Direct Deposit",
	"Transfer",
	"Refund",
}

var historyKinds = []TransactionKind{KindWithdrawal, KindDeposit, KindTransfer}

// EnsureDemoHistory appends perAccount pseudo-random historical transactions
// to each account owned by userID, at most once per user. Demo realism only:
// amounts and dates are random, never replayed into balances.
func (s *Store) EnsureDemoHistory(userID string, perAccount int) {
	if perAccount <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seededUsers[userID] {
		return
	}
	s.seededUsers[userID] = true

	for _, acc := range s.accounts {
		if acc.UserID != userID {
			continue
		}
		for i := 0; i < perAccount; i++ {
			s.transactions = append(s.transactions, randomTransaction(acc.ID))
		}
	}
}

func randomTransaction(accountID string) Transaction {
	kind := historyKinds[rand.Intn(len(historyKinds))]
	merchant := historyMerchants[rand.Intn(len(historyMerchants))]

	// 5.00 to 205.00, two decimal places
	cents := rand.Intn(20_000) + 500
	amount := decimal.New(int64(cents), -2)

	var prefix string
	switch kind {
	case KindDeposit:
		prefix = "Deposit - "
	case KindWithdrawal:
		prefix = "Payment - "
	default:
		prefix = "Transfer - "
	}

	daysAgo := rand.Intn(30)
	return Transaction{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Kind:        kind,
		Amount:      amount,
		Description: fmt.Sprintf("%s%s", prefix, merchant),
		Timestamp:   time.Now().UTC().AddDate(0, 0, -daysAgo),
	}
}
