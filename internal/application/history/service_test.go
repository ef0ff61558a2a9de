package history

import (
	"context"
	"testing"

	"github.com/endopredict/api/internal/domain"
	"github.com/endopredict/api/internal/infrastructure/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The service is a thin pass-through; test it against the real store.

func TestSaveThenList_NewestFirst(t *testing.T) {
	svc := NewService(memstore.NewHistoryStore())
	ctx := context.Background()

	svc.Save(ctx, SaveRequest{Email: "a@b.com", RiskPercentage: 11.5, Date: "2026-01-01"})
	svc.Save(ctx, SaveRequest{Email: "a@b.com", RiskPercentage: 22.5, Date: "2026-01-02"})

	got := svc.List(ctx, "a@b.com")
	require.Len(t, got, 2)
	assert.Equal(t, 22.5, got[0].RiskPercentage)
	assert.Equal(t, "2026-01-01", got[1].Date)
}

func TestList_UnknownEmailIsEmptyNotNilError(t *testing.T) {
	svc := NewService(memstore.NewHistoryStore())
	got := svc.List(context.Background(), "nobody@b.com")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSave_ReturnsStoredRecord(t *testing.T) {
	svc := NewService(memstore.NewHistoryStore())
	rec := svc.Save(context.Background(), SaveRequest{Email: "a@b.com", RiskPercentage: 50, Date: "2026-01-01"})
	assert.NotEmpty(t, rec.RecordID)
	assert.Equal(t, domain.HistoryRecord{RecordID: rec.RecordID, RiskPercentage: 50, Date: "2026-01-01"}, rec)
}
