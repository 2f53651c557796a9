package models

import "time"

// Admin is a back-office administrator account.
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:255" json:"name,omitempty"`
	Active       bool      `gorm:"index" json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// User is a customer account authenticated via email one-time codes.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:255" json:"name,omitempty"`
	Active       bool      `gorm:"index" json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OTP purposes.
const (
	OTPPurposeRegister = "register"
	OTPPurposeLogin    = "login"
)

// AuthOTP is a pending one-time verification code. The code itself is never
// stored, only its bcrypt hash.
type AuthOTP struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"size:255;index;not null" json:"email"`
	CodeHash  string     `gorm:"size:255;not null" json:"-"`
	Purpose   string     `gorm:"size:16;not null" json:"purpose"`
	Attempts  int        `json:"attempts"`
	ExpiresAt time.Time  `gorm:"index" json:"expiresAt"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
