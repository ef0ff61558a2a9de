package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/endopredict/api/internal/domain"
)

// StatusEnvelope is the generic success wrapper.
type StatusEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// AuthEnvelope wraps verify/login responses.
type AuthEnvelope struct {
	Status string          `json:"status"`
	Token  string          `json:"token"`
	User   *domain.Account `json:"user"`
}

// HistoryEnvelope wraps history list responses.
type HistoryEnvelope struct {
	Status  string                 `json:"status"`
	History []domain.HistoryRecord `json:"history"`
}

// PredictionEnvelope wraps /predict responses.
type PredictionEnvelope struct {
	RiskPercentage float64 `json:"risk_percentage"`
}

// ErrorEnvelope is the failure wrapper.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorEnvelope{Error: msg})
}

// httpError maps domain sentinel errors to HTTP statuses. OTP and credential
// failures are client errors; only delivery failure is a server error.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotificationFailed):
		writeError(w, http.StatusInternalServerError, domain.ErrNotificationFailed.Error())
	case errors.Is(err, domain.ErrOTPNotFound),
		errors.Is(err, domain.ErrOTPExpired),
		errors.Is(err, domain.ErrOTPMismatch),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrIncorrectPassword):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
