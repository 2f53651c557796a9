package auth

import (
	"context"
	"testing"
	"time"

	"icoltex-hub/core/config"
	"icoltex-hub/core/database"
	mwauth "icoltex-hub/core/middleware/auth"
	"icoltex-hub/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeMailer captures issued codes instead of sending them.
type fakeMailer struct {
	lastTo      string
	lastCode    string
	lastPurpose string
	err         error
}

func (m *fakeMailer) SendOTP(to, code, purpose string) error {
	if m.err != nil {
		return m.err
	}
	m.lastTo = to
	m.lastCode = code
	m.lastPurpose = purpose
	return nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:        "test-secret",
		TokenTTLHours:    1,
		OTPTTLMinutes:    10,
		OTPResendSeconds: 0,
	}
}

func setupAuthService(t *testing.T, cfg config.AuthConfig) (*Service, *fakeMailer, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Admin{}, &models.AuthOTP{}))

	mailer := &fakeMailer{}
	return NewService(db, mailer, cfg, zap.NewNop()), mailer, db
}

func TestRegisterFlow(t *testing.T) {
	ctx := context.Background()
	service, mailer, db := setupAuthService(t, testAuthConfig())

	require.NoError(t, service.RequestRegister(ctx, "Ana@Example.com"))
	assert.Equal(t, "ana@example.com", mailer.lastTo, "emails are normalized")
	assert.Equal(t, models.OTPPurposeRegister, mailer.lastPurpose)
	require.Len(t, mailer.lastCode, 6)

	session, err := service.VerifyRegister(ctx, "ana@example.com", mailer.lastCode, "Ana", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, mwauth.RoleUser, session.Role)

	claims, err := mwauth.ParseToken("test-secret", session.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Subject)
	assert.Equal(t, mwauth.RoleUser, claims.Role)

	var user models.User
	require.NoError(t, db.Where("email = ?", "ana@example.com").First(&user).Error)
	assert.True(t, user.Active)
	assert.NotEqual(t, "hunter22", user.PasswordHash, "passwords are stored hashed")

	t.Run("Email Now Taken", func(t *testing.T) {
		assert.ErrorIs(t, service.RequestRegister(ctx, "ana@example.com"), ErrEmailTaken)
	})

	t.Run("Code Is Single Use", func(t *testing.T) {
		_, err := service.VerifyRegister(ctx, "ana@example.com", mailer.lastCode, "Ana", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidCode)
	})
}

func TestLoginFlow(t *testing.T) {
	ctx := context.Background()
	service, mailer, _ := setupAuthService(t, testAuthConfig())

	require.NoError(t, service.RequestRegister(ctx, "ana@example.com"))
	_, err := service.VerifyRegister(ctx, "ana@example.com", mailer.lastCode, "Ana", "hunter22")
	require.NoError(t, err)

	t.Run("Request And Verify", func(t *testing.T) {
		require.NoError(t, service.RequestLogin(ctx, "ana@example.com"))
		assert.Equal(t, models.OTPPurposeLogin, mailer.lastPurpose)

		session, err := service.VerifyLogin(ctx, "ana@example.com", mailer.lastCode)
		require.NoError(t, err)
		assert.Equal(t, mwauth.RoleUser, session.Role)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		assert.ErrorIs(t, service.RequestLogin(ctx, "nadie@example.com"), ErrUnknownEmail)

		_, err := service.VerifyLogin(ctx, "nadie@example.com", "123456")
		assert.ErrorIs(t, err, ErrUnknownEmail)
	})

	t.Run("Wrong Code Counts Attempts", func(t *testing.T) {
		require.NoError(t, service.RequestLogin(ctx, "ana@example.com"))

		for i := 0; i < maxOTPAttempts; i++ {
			_, err := service.VerifyLogin(ctx, "ana@example.com", "000000")
			assert.ErrorIs(t, err, ErrInvalidCode)
		}

		// The burned code is dead even when guessed right afterwards.
		_, err := service.VerifyLogin(ctx, "ana@example.com", mailer.lastCode)
		assert.ErrorIs(t, err, ErrTooManyAttempts)
	})
}

func TestOTPLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Resend Throttle", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.OTPResendSeconds = 60
		service, _, _ := setupAuthService(t, cfg)

		require.NoError(t, service.RequestRegister(ctx, "ana@example.com"))
		assert.ErrorIs(t, service.RequestRegister(ctx, "ana@example.com"), ErrResendTooSoon)
	})

	t.Run("Expired Code", func(t *testing.T) {
		service, _, db := setupAuthService(t, testAuthConfig())

		hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
		require.NoError(t, err)
		require.NoError(t, db.Create(&models.AuthOTP{
			Email:     "ana@example.com",
			CodeHash:  string(hash),
			Purpose:   models.OTPPurposeRegister,
			ExpiresAt: time.Now().Add(-time.Minute),
		}).Error)

		_, err = service.VerifyRegister(ctx, "ana@example.com", "123456", "Ana", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("No Pending Code", func(t *testing.T) {
		service, _, _ := setupAuthService(t, testAuthConfig())

		_, err := service.VerifyLogin(ctx, "ana@example.com", "123456")
		assert.ErrorIs(t, err, ErrUnknownEmail)
	})

	t.Run("Mailer Failure Surfaces", func(t *testing.T) {
		service, mailer, _ := setupAuthService(t, testAuthConfig())
		mailer.err = ErrMailNotConfigured

		assert.ErrorIs(t, service.RequestRegister(ctx, "ana@example.com"), ErrMailNotConfigured)
	})
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	service, _, db := setupAuthService(t, testAuthConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		Email:        "admin@icoltex.com",
		PasswordHash: string(hash),
		Name:         "Admin",
		Active:       true,
	}).Error)

	t.Run("Valid Credentials", func(t *testing.T) {
		session, err := service.AdminLogin(ctx, "admin@icoltex.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, mwauth.RoleAdmin, session.Role)

		claims, err := mwauth.ParseToken("test-secret", session.Token)
		require.NoError(t, err)
		assert.Equal(t, mwauth.RoleAdmin, claims.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := service.AdminLogin(ctx, "admin@icoltex.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Admin", func(t *testing.T) {
		_, err := service.AdminLogin(ctx, "ghost@icoltex.com", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Inactive Admin", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Admin{}).
			Where("email = ?", "admin@icoltex.com").
			Update("active", false).Error)

		_, err := service.AdminLogin(ctx, "admin@icoltex.com", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
