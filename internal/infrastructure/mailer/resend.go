package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/endopredict/api/internal/config"
	"github.com/endopredict/api/internal/domain"
)

// ResendMailer delivers OTP emails through the Resend HTTP API
// (POST /emails with a bearer key). Resend ships no Go SDK worth carrying,
// so this is a plain JSON client with a request timeout.
type ResendMailer struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

func NewResendMailer(cfg *config.Config) *ResendMailer {
	return &ResendMailer{
		apiKey:  cfg.ResendAPIKey,
		from:    cfg.MailFrom,
		baseURL: cfg.ResendBaseURL,
		client:  &http.Client{Timeout: cfg.MailTimeout},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *ResendMailer) SendOTP(ctx context.Context, to, name, code string) error {
	payload := resendRequest{
		From:    m.from,
		To:      []string{to},
		Subject: otpSubject,
		HTML:    otpHTMLBody(name, code),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend returned %d: %s: %w", resp.StatusCode, detail, domain.ErrNotificationFailed)
	}
	return nil
}

func otpHTMLBody(name, code string) string {
	return fmt.Sprintf(`
        <h2>Hello %s,</h2>
        <p>Your OTP is:</p>
        <h1>%s</h1>
        <p>This code expires in 5 minutes.</p>
    `, name, code)
}
