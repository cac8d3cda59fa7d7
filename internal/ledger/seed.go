package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

func mustTime(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}

// NewDemoStore builds the store with the fixed demo data set. PIN 1234
// authenticates the primary user.
func NewDemoStore() *Store {
	s := NewStore()
	s.users = []User{
		{ID: "user1", Name: "Shrestha Behera", PIN: "1234"},
		{ID: "user2", Name: "Jane Smith", PIN: "5678"},
	}
	s.accounts = []Account{
		{ID: "acc1", UserID: "user1", Kind: AccountChecking, Number: "****1234", Balance: decimal.RequireFromString("5280.42")},
		{ID: "acc2", UserID: "user1", Kind: AccountSavings, Number: "****5678", Balance: decimal.RequireFromString("12750.89")},
		{ID: "acc3", UserID: "user1", Kind: AccountCredit, Number: "****9012", Balance: decimal.RequireFromString("-450.30")},
		{ID: "acc4", UserID: "user2", Kind: AccountChecking, Number: "****3456", Balance: decimal.RequireFromString("3500.00")},
		{ID: "acc5", UserID: "user2", Kind: AccountSavings, Number: "****7890", Balance: decimal.RequireFromString("8900.25")},
	}
	s.transactions = []Transaction{
		{ID: "tx1", AccountID: "acc1", Kind: KindWithdrawal, Amount: decimal.NewFromInt(200), Description: "ATM Withdrawal", Timestamp: mustTime("2025-05-01T10:30:00")},
		{ID: "tx2", AccountID: "acc1", Kind: KindDeposit, Amount: decimal.NewFromInt(500), Description: "Direct Deposit - Payroll", Timestamp: mustTime("2025-04-28T09:15:00")},
		{ID: "tx3", AccountID: "acc1", Kind: KindWithdrawal, Amount: decimal.RequireFromString("65.99"), Description: "Purchase - Grocery Store", Timestamp: mustTime("2025-04-25T14:22:00")},
		{ID: "tx4", AccountID: "acc2", Kind: KindDeposit, Amount: decimal.NewFromInt(1000), Description: "Savings Deposit", Timestamp: mustTime("2025-04-20T16:45:00")},
		{ID: "tx5", AccountID: "acc2", Kind: KindWithdrawal, Amount: decimal.NewFromInt(50), Description: "Transfer to Checking", Timestamp: mustTime("2025-04-15T11:30:00")},
		{ID: "tx6", AccountID: "acc1", Kind: KindDeposit, Amount: decimal.NewFromInt(50), Description: "Transfer from Savings", Timestamp: mustTime("2025-04-15T11:30:00")},
	}
	return s
}
