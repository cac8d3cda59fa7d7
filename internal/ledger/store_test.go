package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserByPIN(t *testing.T) {
	s := NewDemoStore()

	user, ok := s.UserByPIN("1234")
	require.True(t, ok)
	assert.Equal(t, "user1", user.ID)
	assert.Equal(t, "Shrestha Behera", user.Name)

	_, ok = s.UserByPIN("0000")
	assert.False(t, ok)

	_, ok = s.UserByPIN("")
	assert.False(t, ok)
}

func TestAccountsByOwnerIsScoped(t *testing.T) {
	s := NewDemoStore()

	accounts := s.AccountsByOwner("user1")
	require.Len(t, accounts, 3)
	for _, acc := range accounts {
		assert.Equal(t, "user1", acc.UserID)
	}

	assert.Len(t, s.AccountsByOwner("user2"), 2)
	assert.Empty(t, s.AccountsByOwner("nobody"))
}

func TestAccountsByOwnerReturnsCopies(t *testing.T) {
	s := NewDemoStore()

	accounts := s.AccountsByOwner("user1")
	accounts[0].Balance = decimal.NewFromInt(1)

	again := s.AccountsByOwner("user1")
	assert.True(t, again[0].Balance.Equal(decimal.RequireFromString("5280.42")),
		"mutating a lookup result must not touch the store")
}

func TestTransactionsByAccountsFilters(t *testing.T) {
	s := NewDemoStore()

	txs := s.TransactionsByAccounts([]string{"acc1"})
	require.Len(t, txs, 4)
	for _, tx := range txs {
		assert.Equal(t, "acc1", tx.AccountID)
	}

	assert.Len(t, s.TransactionsByAccounts([]string{"acc1", "acc2"}), 6)
	assert.Empty(t, s.TransactionsByAccounts(nil))
}

func TestEnsureDemoHistory(t *testing.T) {
	s := NewDemoStore()
	before := len(s.TransactionsByAccounts([]string{"acc1", "acc2", "acc3"}))

	s.EnsureDemoHistory("user1", 5)

	txs := s.TransactionsByAccounts([]string{"acc1", "acc2", "acc3"})
	require.Len(t, txs, before+3*5)
	for _, tx := range txs {
		assert.True(t, tx.Amount.IsPositive(), "amounts are always positive")
		assert.NotEmpty(t, tx.Description)
		assert.NotEmpty(t, tx.ID)
	}
}

func TestEnsureDemoHistoryIsIdempotentPerUser(t *testing.T) {
	s := NewDemoStore()

	s.EnsureDemoHistory("user1", 5)
	count := len(s.TransactionsByAccounts([]string{"acc1", "acc2", "acc3"}))

	s.EnsureDemoHistory("user1", 5)
	assert.Len(t, s.TransactionsByAccounts([]string{"acc1", "acc2", "acc3"}), count)

	// Other users get their own seeding.
	s.EnsureDemoHistory("user2", 5)
	assert.Len(t, s.TransactionsByAccounts([]string{"acc4", "acc5"}), 2*5)
}

func TestEnsureDemoHistoryNeverTouchesBalances(t *testing.T) {
	s := NewDemoStore()

	s.EnsureDemoHistory("user1", 20)

	for _, acc := range s.AccountsByOwner("user1") {
		switch acc.ID {
		case "acc1":
			assert.True(t, acc.Balance.Equal(decimal.RequireFromString("5280.42")))
		case "acc2":
			assert.True(t, acc.Balance.Equal(decimal.RequireFromString("12750.89")))
		case "acc3":
			assert.True(t, acc.Balance.Equal(decimal.RequireFromString("-450.30")))
		}
	}
}

func TestSeedHelpers(t *testing.T) {
	s := NewStore()
	SeedUser(s, User{ID: "u9", Name: "Test", PIN: "9999"},
		Account{ID: "a9", UserID: "u9", Kind: AccountChecking, Number: "****0009"})

	user, ok := s.UserByPIN("9999")
	require.True(t, ok)
	assert.Equal(t, "u9", user.ID)

	SeedBalance(s, "a9", decimal.NewFromInt(300))
	accounts := s.AccountsByOwner("u9")
	require.Len(t, accounts, 1)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(300)))
}
