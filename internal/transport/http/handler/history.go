package handler

import (
	"encoding/json"
	"net/http"

	"github.com/endopredict/api/internal/application/history"
	"github.com/endopredict/api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// HistoryHandler handles the risk-assessment history endpoints.
type HistoryHandler struct {
	svc history.Service
}

func NewHistoryHandler(svc history.Service) *HistoryHandler { return &HistoryHandler{svc: svc} }

func (h *HistoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req history.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.svc.Save(r.Context(), req)
	writeJSON(w, http.StatusOK, StatusEnvelope{Status: "success", Message: "History saved"})
}

// List returns the email's records most recent first. An unknown email is
// an empty history, not a 404.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	records := h.svc.List(r.Context(), email)
	writeJSON(w, http.StatusOK, HistoryEnvelope{Status: "success", History: records})
}
