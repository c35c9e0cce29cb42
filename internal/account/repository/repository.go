package repository

import "mailagent-backend/internal/account/domain"

// AccountRepository defines the interface for email account data access
type AccountRepository interface {
	Create(account *domain.UserEmailAccount) error
	FindByID(id string) (*domain.UserEmailAccount, error)

	// FindByUserID lists a user's accounts, primary first, newest next.
	FindByUserID(userID string) ([]*domain.UserEmailAccount, error)

	Update(account *domain.UserEmailAccount) error
	Delete(id string) error
}
