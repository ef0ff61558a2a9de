package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/endopredict/api/internal/domain"
	"github.com/endopredict/api/internal/infrastructure/mailer"
	pkgtoken "github.com/endopredict/api/internal/pkg/token"
)

type SendOTPRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password"` // accepted but unused until verification
}

type VerifyOTPRequest struct {
	Email    string `json:"email" validate:"required,email"`
	OTP      string `json:"otp" validate:"required,len=6,numeric"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries a caller-supplied identity assertion. Token is
// NOT verified; see GoogleLogin.
type GoogleLoginRequest struct {
	Token string `json:"token" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// OTPStore is the minimal interface the service requires from the pending-OTP store.
type OTPStore interface {
	Issue(email, name string) (string, error)
	Verify(email, code string) (name string, err error)
}

// AccountStore is the minimal interface the service requires from the user directory.
type AccountStore interface {
	Put(a *domain.Account)
	Get(email string) (*domain.Account, error)
}

type Service interface {
	RequestOTP(ctx context.Context, req SendOTPRequest) error
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*domain.Session, error)
	Login(ctx context.Context, req LoginRequest) (*domain.Session, error)
	GoogleLogin(ctx context.Context, req GoogleLoginRequest) *domain.Session
}

type service struct {
	otpStore OTPStore
	accounts AccountStore
	notifier mailer.Notifier
}

func NewService(otpStore OTPStore, accounts AccountStore, notifier mailer.Notifier) Service {
	return &service{otpStore: otpStore, accounts: accounts, notifier: notifier}
}

// RequestOTP issues a code and emails it to the caller. Issuance is not
// rolled back when delivery fails: the stored code stays redeemable until
// its TTL even though the caller sees an error.
func (s *service) RequestOTP(ctx context.Context, req SendOTPRequest) error {
	code, err := s.otpStore.Issue(req.Email, req.Name)
	if err != nil {
		return err
	}
	if err := s.notifier.SendOTP(ctx, req.Email, req.Name, code); err != nil {
		slog.Error("OTP delivery failed", "email", req.Email, "err", err)
		return fmt.Errorf("deliver OTP: %w", domain.ErrNotificationFailed)
	}
	return nil
}

// VerifyOTP redeems the pending code. Success materializes the account in
// the user directory, overwriting any prior account for that email, and
// mints the mock session.
func (s *service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*domain.Session, error) {
	name, err := s.otpStore.Verify(req.Email, req.OTP)
	if err != nil {
		return nil, err
	}

	acc := &domain.Account{
		Email:     req.Email,
		Name:      name,
		Password:  req.Password,
		CreatedAt: time.Now().UTC(),
	}
	s.accounts.Put(acc)
	slog.Info("account verified", "email", req.Email)

	return &domain.Session{Token: pkgtoken.Session(req.Email), Account: acc}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*domain.Session, error) {
	acc, err := s.accounts.Get(req.Email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", domain.ErrAccountNotFound)
	}
	if acc.Password != req.Password {
		return nil, fmt.Errorf("login: %w", domain.ErrIncorrectPassword)
	}
	return &domain.Session{Token: pkgtoken.Session(req.Email), Account: acc}, nil
}

// GoogleLogin mints a session for the caller-supplied email and name without
// validating the assertion token. Existing clients depend on this behavior;
// verification belongs to the work that replaces the mock token scheme
// (see DESIGN.md). No account is created.
func (s *service) GoogleLogin(ctx context.Context, req GoogleLoginRequest) *domain.Session {
	return &domain.Session{
		Token:   pkgtoken.GoogleSession(req.Email),
		Account: &domain.Account{Email: req.Email, Name: req.Name},
	}
}
