package mailer

import "context"

// Notifier delivers a one-time password to its recipient.
type Notifier interface {
	SendOTP(ctx context.Context, to, name, code string) error
}

const otpSubject = "Your Secure Access Code - EndoPredict AI"
