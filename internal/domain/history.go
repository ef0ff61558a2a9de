package domain

// HistoryRecord is one saved risk assessment for an account's email.
// RiskPercentage and Date are stored as submitted; the backend does not
// validate the range or the date format.
type HistoryRecord struct {
	RecordID       string  `json:"id"`
	RiskPercentage float64 `json:"risk_percentage"`
	Date           string  `json:"date"`
}
