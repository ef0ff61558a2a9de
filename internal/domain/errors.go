package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrOTPNotFound        = errors.New("OTP not found or expired")
	ErrOTPExpired         = errors.New("OTP expired")
	ErrOTPMismatch        = errors.New("invalid OTP")
	ErrAccountNotFound    = errors.New("account not found")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrNotificationFailed = errors.New("email sending failed")
)
