package memstore

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/endopredict/api/internal/domain"
	"github.com/endopredict/api/internal/pkg/clock"
)

// OTPStore holds pending one-time passwords keyed by email. net/http serves
// requests concurrently, so all access is serialized by the mutex.
type OTPStore struct {
	mu      sync.Mutex
	pending map[string]domain.PendingOTP
	clock   clock.Clock
	ttl     time.Duration
}

func NewOTPStore(clk clock.Clock, ttl time.Duration) *OTPStore {
	return &OTPStore{
		pending: make(map[string]domain.PendingOTP),
		clock:   clk,
		ttl:     ttl,
	}
}

// Issue generates a fresh 6-digit code for email, replacing any pending one.
// The returned code is handed to the notifier by the caller; it is never
// logged here.
func (s *OTPStore) Issue(email, name string) (string, error) {
	code, err := newCode()
	if err != nil {
		return "", fmt.Errorf("generate OTP: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[email] = domain.PendingOTP{
		Email:     email,
		Code:      code,
		Name:      name,
		ExpiresAt: s.clock.Now().Add(s.ttl),
	}
	return code, nil
}

// Verify redeems the pending code for email and returns the display name
// captured at issue time.
//
// Expiry and success both consume the record; a mismatch does not, so the
// caller may retry with the correct code until the TTL runs out.
func (s *OTPStore) Verify(email, code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[email]
	if !ok {
		return "", domain.ErrOTPNotFound
	}
	if s.clock.Now().After(p.ExpiresAt) {
		delete(s.pending, email) // stale codes must not be retried
		return "", domain.ErrOTPExpired
	}
	if p.Code != code {
		return "", domain.ErrOTPMismatch
	}
	delete(s.pending, email)
	return p.Name, nil
}

// newCode draws a uniform code in [100000, 999999] from crypto/rand.
func newCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
