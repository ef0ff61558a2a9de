package handler

import (
	"encoding/json"
	"net/http"

	"github.com/endopredict/api/internal/application/prediction"
	"github.com/endopredict/api/internal/pkg/validate"
)

type PredictRequest struct {
	Features []float64 `json:"features" validate:"required"`
}

// PredictHandler handles the risk-prediction endpoint.
type PredictHandler struct {
	svc prediction.Service
}

func NewPredictHandler(svc prediction.Service) *PredictHandler { return &PredictHandler{svc: svc} }

func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	risk, err := h.svc.Predict(r.Context(), req.Features)
	if err != nil {
		// Classifier/scaler errors are surfaced untranslated.
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, PredictionEnvelope{RiskPercentage: risk})
}
