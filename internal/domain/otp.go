package domain

import "time"

// PendingOTP is a not-yet-redeemed one-time password, keyed by email.
// At most one exists per email; issuing a new code replaces any prior one.
type PendingOTP struct {
	Email     string
	Code      string // 6-digit numeric
	Name      string
	ExpiresAt time.Time
}
