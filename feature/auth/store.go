package auth

import (
	"context"
	"errors"
	"time"

	"icoltex-hub/feature/catalog/models"

	"gorm.io/gorm"
)

// Store persists accounts and pending one-time codes.
type Store struct {
	db *gorm.DB
}

// NewStore creates an auth store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindUserByEmail returns the user with the given email, or (nil, nil) when
// no such user exists.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// InsertUser creates a new user account.
func (s *Store) InsertUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// FindAdminByEmail returns the admin with the given email, or (nil, nil)
// when no such admin exists.
func (s *Store) FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// InsertAdmin creates a new admin account.
func (s *Store) InsertAdmin(ctx context.Context, admin *models.Admin) error {
	return s.db.WithContext(ctx).Create(admin).Error
}

// LatestOTP returns the most recent pending code for the email and purpose,
// used or not, or (nil, nil) when none exists.
func (s *Store) LatestOTP(ctx context.Context, email, purpose string) (*models.AuthOTP, error) {
	var otp models.AuthOTP
	err := s.db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, purpose).
		Order("id DESC").
		First(&otp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

// InsertOTP stores a new pending code.
func (s *Store) InsertOTP(ctx context.Context, otp *models.AuthOTP) error {
	return s.db.WithContext(ctx).Create(otp).Error
}

// MarkOTPUsed consumes a code so it can never verify again.
func (s *Store) MarkOTPUsed(ctx context.Context, id uint) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&models.AuthOTP{}).
		Where("id = ?", id).
		Update("used_at", &now).Error
}

// BumpOTPAttempts records one failed verification attempt.
func (s *Store) BumpOTPAttempts(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&models.AuthOTP{}).
		Where("id = ?", id).
		Update("attempts", gorm.Expr("attempts + 1")).Error
}
