package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"icoltex-hub/core/config"
	mwauth "icoltex-hub/core/middleware/auth"
	"icoltex-hub/feature/catalog/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// maxOTPAttempts is how many wrong codes burn a pending OTP.
const maxOTPAttempts = 5

// Expected failures, mapped to HTTP statuses by the handler.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnknownEmail       = errors.New("no account for this email")
	ErrInvalidCode        = errors.New("invalid or expired code")
	ErrTooManyAttempts    = errors.New("too many failed attempts, request a new code")
	ErrResendTooSoon      = errors.New("a code was sent recently, wait before requesting another")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Session is an issued login: the signed token plus its expiry, for the
// handler to mirror into a cookie.
type Session struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service implements OTP registration and login for users and password login
// for admins.
type Service struct {
	store  *Store
	mailer Mailer
	cfg    config.AuthConfig
	logger *zap.Logger
}

// NewService creates an auth service.
func NewService(db *gorm.DB, mailer Mailer, cfg config.AuthConfig, logger *zap.Logger) *Service {
	return &Service{store: NewStore(db), mailer: mailer, cfg: cfg, logger: logger}
}

// RequestRegister starts a registration: a one-time code is mailed to the
// address. Fails when the email already has an account or a recent code is
// still within the resend window.
func (s *Service) RequestRegister(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrInvalidCredentials
	}

	existing, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	return s.issueOTP(ctx, email, models.OTPPurposeRegister)
}

// VerifyRegister completes a registration: on a valid code the account is
// created and a session issued.
func (s *Service) VerifyRegister(ctx context.Context, email, code, name, password string) (*Session, error) {
	email = normalizeEmail(email)

	if err := s.consumeOTP(ctx, email, models.OTPPurposeRegister, code); err != nil {
		return nil, err
	}

	// Re-check under the consumed code: the email may have registered
	// between request and verify.
	existing, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{Email: email, PasswordHash: string(hash), Name: name, Active: true}
	if err := s.store.InsertUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("email", email))
	return s.newSession(email, mwauth.RoleUser)
}

// RequestLogin mails a one-time login code to an existing account.
func (s *Service) RequestLogin(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || !user.Active {
		return ErrUnknownEmail
	}

	return s.issueOTP(ctx, email, models.OTPPurposeLogin)
}

// VerifyLogin completes an OTP login.
func (s *Service) VerifyLogin(ctx context.Context, email, code string) (*Session, error) {
	email = normalizeEmail(email)

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrUnknownEmail
	}

	if err := s.consumeOTP(ctx, email, models.OTPPurposeLogin, code); err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("email", email))
	return s.newSession(email, mwauth.RoleUser)
}

// AdminLogin authenticates an administrator by password.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)

	admin, err := s.store.FindAdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.Active {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Admin logged in", zap.String("email", email))
	return s.newSession(email, mwauth.RoleAdmin)
}

// issueOTP generates, stores, and mails a fresh code, honoring the resend
// throttle against the latest pending code.
func (s *Service) issueOTP(ctx context.Context, email, purpose string) error {
	latest, err := s.store.LatestOTP(ctx, email, purpose)
	if err != nil {
		return err
	}
	if latest != nil && latest.UsedAt == nil {
		window := time.Duration(s.cfg.OTPResendSeconds) * time.Second
		if time.Since(latest.CreatedAt) < window {
			return ErrResendTooSoon
		}
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generating otp: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing otp: %w", err)
	}

	otp := &models.AuthOTP{
		Email:     email,
		CodeHash:  string(hash),
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.OTPTTLMinutes) * time.Minute),
	}
	if err := s.store.InsertOTP(ctx, otp); err != nil {
		return err
	}

	if err := s.mailer.SendOTP(email, code, purpose); err != nil {
		return err
	}

	s.logger.Info("OTP issued", zap.String("email", email), zap.String("purpose", purpose))
	return nil
}

// consumeOTP validates a submitted code against the latest pending one and
// marks it used. Wrong codes count toward the attempt limit; expiry, prior
// use, and the limit itself all surface as the same ErrInvalidCode so a
// caller cannot probe which condition failed.
func (s *Service) consumeOTP(ctx context.Context, email, purpose, code string) error {
	otp, err := s.store.LatestOTP(ctx, email, purpose)
	if err != nil {
		return err
	}
	if otp == nil || otp.UsedAt != nil || time.Now().After(otp.ExpiresAt) {
		return ErrInvalidCode
	}
	if otp.Attempts >= maxOTPAttempts {
		return ErrTooManyAttempts
	}

	if bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code)) != nil {
		if err := s.store.BumpOTPAttempts(ctx, otp.ID); err != nil {
			return err
		}
		return ErrInvalidCode
	}

	return s.store.MarkOTPUsed(ctx, otp.ID)
}

func (s *Service) newSession(subject, role string) (*Session, error) {
	ttl := time.Duration(s.cfg.TokenTTLHours) * time.Hour
	token, err := mwauth.NewToken(s.cfg.JWTSecret, subject, role, ttl)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &Session{Token: token, Role: role, ExpiresAt: time.Now().Add(ttl)}, nil
}

// generateCode returns a 6-digit code from crypto/rand, zero-padded.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
