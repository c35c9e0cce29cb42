package domain

import "time"

type User struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"` // Never return password hash in JSON
	FullName     string `json:"full_name,omitempty"`
	IsVerified   bool   `json:"is_verified" gorm:"default:false"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`

	// Last issued single-use tokens. A decoded token is only accepted while
	// it matches the stored value; cleared on successful consumption.
	VerificationToken string `json:"-"`
	ResetToken        string `json:"-"`

	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
