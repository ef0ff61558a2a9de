package http

import (
	"github.com/endopredict/api/internal/application/auth"
	"github.com/endopredict/api/internal/application/history"
	"github.com/endopredict/api/internal/application/prediction"
	"github.com/endopredict/api/internal/infrastructure/mailer"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	OTPStore     auth.OTPStore
	AccountStore auth.AccountStore
	HistoryStore history.Store
	Notifier     mailer.Notifier

	// Scaler/Classifier may be nil when the model artifacts are missing;
	// /predict then serves mock values.
	Scaler     prediction.Scaler
	Classifier prediction.Classifier
}
