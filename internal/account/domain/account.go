package domain

import "time"

// Supported provider tags.
const (
	ProviderGmail   = "gmail"
	ProviderOutlook = "outlook"
)

// UserEmailAccount is a connected external mailbox with its stored OAuth
// credentials. Tokens never leave the backend.
type UserEmailAccount struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"-" gorm:"index;not null"`
	Provider     string     `json:"provider" gorm:"not null"`
	Email        string     `json:"email" gorm:"not null"`
	DisplayName  string     `json:"display_name,omitempty"`
	AccessToken  string     `json:"-" gorm:"type:text;not null"`
	RefreshToken string     `json:"-" gorm:"type:text"`
	TokenExpiry  *time.Time `json:"-"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	IsPrimary    bool       `json:"is_primary" gorm:"default:false"`
	SyncEnabled  bool       `json:"sync_enabled" gorm:"default:true"`
	LastSync     *time.Time `json:"last_sync,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
