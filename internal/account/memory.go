package account

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a map-backed Store used when no database is configured
// and by the handler tests. Lookups returns how many find calls were made,
// which the tests use to assert that validation failures never touch the
// store.
type MemoryStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*Account
	lookups  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: map[uuid.UUID]*Account{}}
}

// Add seeds an account, assigning an ID if it has none.
func (s *MemoryStore) Add(a *Account) *Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.accounts[a.ID] = a
	return a
}

func (s *MemoryStore) Lookups() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookups
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookups++
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindByUsername(ctx context.Context, username string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookups++
	for _, a := range s.accounts {
		if strings.EqualFold(a.Username, username) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) SetVerified(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return ErrNotFound
	}
	a.Verified = true
	return nil
}
