package memstore

import (
	"sync"

	"github.com/endopredict/api/internal/domain"
	"github.com/endopredict/api/internal/pkg/id"
)

// HistoryStore is the in-memory risk-assessment ledger, one append-only
// sequence per email.
type HistoryStore struct {
	mu      sync.RWMutex
	records map[string][]domain.HistoryRecord
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{records: make(map[string][]domain.HistoryRecord)}
}

// Append adds a record for email, creating the sequence if absent.
// Inputs are stored as submitted.
func (s *HistoryStore) Append(email string, riskPercentage float64, date string) domain.HistoryRecord {
	rec := domain.HistoryRecord{
		RecordID:       id.New(),
		RiskPercentage: riskPercentage,
		Date:           date,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[email] = append(s.records[email], rec)
	return rec
}

// List returns the records for email, most recent first. An unknown email
// yields an empty slice, not an error.
func (s *HistoryStore) List(email string) []domain.HistoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.records[email]
	out := make([]domain.HistoryRecord, len(stored))
	for i, rec := range stored {
		out[len(stored)-1-i] = rec
	}
	return out
}
