package token

// Mock session tokens, derived deterministically from the email. They are
// placeholders for a signed credential scheme; the frontend treats them as
// opaque, so this package is the single seam to swap in real tokens later.

const (
	passwordPrefix = "mock-jwt-token-"
	googlePrefix   = "mock-jwt-google-"
)

// Session returns the bearer token minted after OTP verification or login.
func Session(email string) string { return passwordPrefix + email }

// GoogleSession returns the bearer token minted for a Google sign-in.
func GoogleSession(email string) string { return googlePrefix + email }
