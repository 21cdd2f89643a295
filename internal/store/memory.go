package store

import (
	"context"
	"sync"
	"time"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

// MemoryStore is a process-local LedgerCache. A zero ttl keeps the ledger for
// the life of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	rows     []models.Transaction
	filled   bool
	loadedAt time.Time
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now}
}

func (s *MemoryStore) Load(_ context.Context) ([]models.Transaction, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.filled {
		return nil, false, nil
	}
	if s.ttl > 0 && s.now().Sub(s.loadedAt) >= s.ttl {
		return nil, false, nil
	}
	return s.rows, true, nil
}

func (s *MemoryStore) Save(_ context.Context, rows []models.Transaction) error {
	cp := make([]models.Transaction, len(rows))
	copy(cp, rows)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = cp
	s.filled = true
	s.loadedAt = s.now()
	return nil
}

func (s *MemoryStore) Invalidate(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	s.filled = false
	return nil
}
