package memstore

import (
	"sync"

	"github.com/endopredict/api/internal/domain"
)

// AccountStore is the in-memory user directory, keyed by email.
// Accounts live for the lifetime of the process; there is no persistence.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]domain.Account)}
}

// Put inserts or overwrites the account for its email.
func (s *AccountStore) Put(a *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.Email] = *a
}

// Get returns the account for email, or domain.ErrAccountNotFound.
func (s *AccountStore) Get(email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}
