package domain

import "time"

// Account is a registered user, keyed by email. Accounts are only created
// (or overwritten) by a successful OTP verification.
//
// Password is stored in plaintext to stay wire-compatible with existing
// clients; see DESIGN.md before changing it.
type Account struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Session is the authenticated result returned to callers. Token is a mock
// bearer string derived from the email; it is not independently verifiable.
type Session struct {
	Token   string
	Account *Account
}
