package ledger

import "github.com/shopspring/decimal"

// SeedBalance is a test helper that overwrites the stored balance of one
// account.
func SeedBalance(s *Store, accountID string, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == accountID {
			s.accounts[i].Balance = balance
			return
		}
	}
}

// SeedUser is a test helper that appends a user and their accounts.
func SeedUser(s *Store, user User, accounts ...Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	s.accounts = append(s.accounts, accounts...)
}
