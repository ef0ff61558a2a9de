package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/endopredict/api/internal/application/prediction"
	"github.com/endopredict/api/internal/config"
	"github.com/endopredict/api/internal/infrastructure/mailer"
	"github.com/endopredict/api/internal/infrastructure/memstore"
	"github.com/endopredict/api/internal/infrastructure/model"
	s3infra "github.com/endopredict/api/internal/infrastructure/s3"
	"github.com/endopredict/api/internal/pkg/clock"
	transporthttp "github.com/endopredict/api/internal/transport/http"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment")
	}

	cfg := config.Load()
	setupLogger(cfg.AppEnv)

	// Notifier: Resend HTTP API by default, SES when configured.
	var notifier mailer.Notifier
	switch cfg.MailProvider {
	case "ses":
		sesMailer, err := mailer.NewSESMailer(cfg)
		if err != nil {
			slog.Error("SES mailer unavailable", "err", err)
			os.Exit(1)
		}
		notifier = sesMailer
	default:
		notifier = mailer.NewResendMailer(cfg)
	}

	// Model artifacts are optional; /predict serves mock values without them.
	scaler, classifier := loadArtifacts(cfg)

	deps := &transporthttp.Deps{
		OTPStore:     memstore.NewOTPStore(clock.System(), cfg.OTPTTL),
		AccountStore: memstore.NewAccountStore(),
		HistoryStore: memstore.NewHistoryStore(),
		Notifier:     notifier,
		Scaler:       scaler,
		Classifier:   classifier,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func setupLogger(env string) {
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

// loadArtifacts loads the scaler and classifier from S3 when configured,
// otherwise from local paths. Missing artifacts are a warning, not a fatal
// error, so the service stays usable before a model is trained.
func loadArtifacts(cfg *config.Config) (prediction.Scaler, prediction.Classifier) {
	var scalerData, modelData []byte

	if cfg.ModelS3Bucket != "" && cfg.ModelS3Key != "" {
		client, err := s3infra.NewClient(cfg)
		if err != nil {
			slog.Warn("S3 client unavailable, predictions will return mock data", "err", err)
			return nil, nil
		}
		store := s3infra.NewArtifactStore(client, cfg.ModelS3Bucket)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if modelData, err = store.Fetch(ctx, cfg.ModelS3Key); err != nil {
			slog.Warn("model artifact not fetched, predictions will return mock data", "err", err)
			return nil, nil
		}
		if scalerData, err = store.Fetch(ctx, cfg.ScalerS3Key); err != nil {
			slog.Warn("scaler artifact not fetched, predictions will return mock data", "err", err)
			return nil, nil
		}
	} else {
		var err error
		if modelData, err = os.ReadFile(cfg.ModelPath); err != nil {
			slog.Warn("model artifact not found, predictions will return mock data", "path", cfg.ModelPath)
			return nil, nil
		}
		if scalerData, err = os.ReadFile(cfg.ScalerPath); err != nil {
			slog.Warn("scaler artifact not found, predictions will return mock data", "path", cfg.ScalerPath)
			return nil, nil
		}
	}

	classifier, err := model.LoadClassifier(modelData)
	if err != nil {
		slog.Warn("model artifact unreadable, predictions will return mock data", "err", err)
		return nil, nil
	}
	scaler, err := model.LoadScaler(scalerData)
	if err != nil {
		slog.Warn("scaler artifact unreadable, predictions will return mock data", "err", err)
		return nil, nil
	}
	return scaler, classifier
}
