package ledger

import "sync"

// Store holds the seed users, accounts and transaction history and answers
// pure lookups. It never mutates balances; all balance movement happens in
// the transaction engine against its own snapshot.
type Store struct {
	mu           sync.RWMutex
	users        []User
	accounts     []Account
	transactions []Transaction
	seededUsers  map[string]bool
}

// NewStore builds an empty store. Most callers want NewDemoStore.
func NewStore() *Store {
	return &Store{seededUsers: make(map[string]bool)}
}

// UserByPIN scans the user table for an exact PIN match. This linear scan is
// the whole authentication mechanism.
func (s *Store) UserByPIN(pin string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.PIN == pin {
			return u, true
		}
	}
	return User{}, false
}

// AccountsByOwner returns copies of the accounts owned by userID.
func (s *Store) AccountsByOwner(userID string) []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Account
	for _, a := range s.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

// TransactionsByAccounts returns copies of every transaction posted against
// any of the given account ids, preserving stored order (newest first).
func (s *Store) TransactionsByAccounts(accountIDs []string) []Transaction {
	ids := make(map[string]bool, len(accountIDs))
	for _, id := range accountIDs {
		ids[id] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Transaction
	for _, tx := range s.transactions {
		if ids[tx.AccountID] {
			out = append(out, tx)
		}
	}
	return out
}
