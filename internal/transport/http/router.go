package http

import (
	"net/http"

	"github.com/endopredict/api/internal/application/auth"
	"github.com/endopredict/api/internal/application/history"
	"github.com/endopredict/api/internal/application/prediction"
	"github.com/endopredict/api/internal/config"
	"github.com/endopredict/api/internal/transport/http/handler"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authSvc := auth.NewService(deps.OTPStore, deps.AccountStore, deps.Notifier)
	historySvc := history.NewService(deps.HistoryStore)
	predictSvc := prediction.NewService(deps.Scaler, deps.Classifier)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	historyH := handler.NewHistoryHandler(historySvc)
	predictH := handler.NewPredictHandler(predictSvc)

	r.Get("/health", healthH.Check)
	r.Post("/predict", predictH.Predict)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/send-otp", authH.SendOTP)
		r.Post("/verify-otp", authH.VerifyOTP)
		r.Post("/login", authH.Login)
		r.Post("/google", authH.GoogleLogin)
	})

	r.Post("/history", historyH.Save)
	r.Get("/history/{email}", historyH.List)

	return r
}
