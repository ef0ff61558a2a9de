package history

import (
	"context"

	"github.com/endopredict/api/internal/domain"
)

type SaveRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	RiskPercentage float64 `json:"risk_percentage"` // trusted; range not validated
	Date           string  `json:"date"`            // trusted; format not validated
}

// Store is the minimal interface the service requires from the history ledger.
type Store interface {
	Append(email string, riskPercentage float64, date string) domain.HistoryRecord
	List(email string) []domain.HistoryRecord
}

type Service interface {
	Save(ctx context.Context, req SaveRequest) domain.HistoryRecord
	List(ctx context.Context, email string) []domain.HistoryRecord
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) Save(ctx context.Context, req SaveRequest) domain.HistoryRecord {
	return s.store.Append(req.Email, req.RiskPercentage, req.Date)
}

// List returns the records most recent first; unknown emails list empty.
func (s *service) List(ctx context.Context, email string) []domain.HistoryRecord {
	return s.store.List(email)
}
