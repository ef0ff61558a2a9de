package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	OTPTTL time.Duration

	// Mail delivery. Provider is "resend" (default, HTTP API) or "ses".
	MailProvider  string
	MailFrom      string
	MailTimeout   time.Duration
	ResendAPIKey  string
	ResendBaseURL string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	// Model artifacts. Local paths are tried first; when the S3 keys are set
	// the artifacts are fetched from ModelS3Bucket at startup instead.
	ModelPath     string
	ScalerPath    string
	ModelS3Bucket string
	ModelS3Key    string
	ScalerS3Key   string

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "8000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		OTPTTL: time.Duration(getEnvInt("OTP_TTL_SECONDS", 300)) * time.Second,

		MailProvider:  getEnv("MAIL_PROVIDER", "resend"),
		MailFrom:      getEnv("MAIL_FROM", "onboarding@resend.dev"),
		MailTimeout:   time.Duration(getEnvInt("MAIL_TIMEOUT_SECONDS", 10)) * time.Second,
		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		ResendBaseURL: getEnv("RESEND_BASE_URL", "https://api.resend.com"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		ModelPath:     getEnv("MODEL_PATH", "./pcos_model.json"),
		ScalerPath:    getEnv("SCALER_PATH", "./scaler.json"),
		ModelS3Bucket: getEnv("MODEL_S3_BUCKET", ""),
		ModelS3Key:    getEnv("MODEL_S3_KEY", ""),
		ScalerS3Key:   getEnv("SCALER_S3_KEY", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
