package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/endopredict/api/internal/application/history"
	"github.com/endopredict/api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHistorySvc struct{ mock.Mock }

func (m *mockHistorySvc) Save(ctx context.Context, req history.SaveRequest) domain.HistoryRecord {
	return m.Called(ctx, req).Get(0).(domain.HistoryRecord)
}

func (m *mockHistorySvc) List(ctx context.Context, email string) []domain.HistoryRecord {
	return m.Called(ctx, email).Get(0).([]domain.HistoryRecord)
}

// withChiEmail injects a chi URL param "email" into the request context.
func withChiEmail(r *http.Request, email string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("email", email)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSaveHistory_InvalidBody(t *testing.T) {
	h := NewHistoryHandler(&mockHistorySvc{})
	r := httptest.NewRequest(http.MethodPost, "/history", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	h.Save(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSaveHistory_MissingEmail(t *testing.T) {
	h := NewHistoryHandler(&mockHistorySvc{})
	r := postJSON(t, "/history", history.SaveRequest{RiskPercentage: 42, Date: "2026-01-01"})
	rr := httptest.NewRecorder()
	h.Save(rr, r)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestSaveHistory_TrustsRiskAndDate(t *testing.T) {
	svc := &mockHistorySvc{}
	// Out-of-range risk and an odd date string are accepted verbatim.
	req := history.SaveRequest{Email: "a@b.com", RiskPercentage: 250.5, Date: "someday"}
	svc.On("Save", mock.Anything, req).Return(domain.HistoryRecord{RecordID: "01HX", RiskPercentage: 250.5, Date: "someday"})
	h := NewHistoryHandler(svc)

	r := postJSON(t, "/history", req)
	rr := httptest.NewRecorder()
	h.Save(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp StatusEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "History saved", resp.Message)
	svc.AssertExpectations(t)
}

func TestListHistory_ReturnsRecords(t *testing.T) {
	svc := &mockHistorySvc{}
	svc.On("List", mock.Anything, "a@b.com").Return([]domain.HistoryRecord{
		{RecordID: "02", RiskPercentage: 20, Date: "2026-01-02"},
		{RecordID: "01", RiskPercentage: 10, Date: "2026-01-01"},
	})
	h := NewHistoryHandler(svc)

	r := withChiEmail(httptest.NewRequest(http.MethodGet, "/history/a@b.com", nil), "a@b.com")
	rr := httptest.NewRecorder()
	h.List(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp HistoryEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.History, 2)
	assert.Equal(t, 20.0, resp.History[0].RiskPercentage)
}

func TestListHistory_UnknownEmailIsEmptyArray(t *testing.T) {
	svc := &mockHistorySvc{}
	svc.On("List", mock.Anything, "nobody@b.com").Return([]domain.HistoryRecord{})
	h := NewHistoryHandler(svc)

	r := withChiEmail(httptest.NewRequest(http.MethodGet, "/history/nobody@b.com", nil), "nobody@b.com")
	rr := httptest.NewRecorder()
	h.List(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	// The JSON must carry [], not null.
	assert.Contains(t, rr.Body.String(), `"history":[]`)
}
