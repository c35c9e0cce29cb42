package repository

import "mailagent-backend/internal/email/domain"

// Sort orders the client may select.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortSender = "sender"
)

// ListOptions narrows and orders an email listing. UserID empty means
// unscoped; Search matches subject, sender and body case-insensitively.
type ListOptions struct {
	UserID string
	Search string
	SortBy string
	Limit  int
	Offset int
}

// EmailRepository defines the interface for email and draft data access
type EmailRepository interface {
	Create(email *domain.Email) error
	FindByID(id, userID string) (*domain.Email, error)
	List(opts ListOptions) ([]*domain.Email, error)
	CountByUser(userID string) (int64, error)
	Update(email *domain.Email) error
	Delete(id string) error

	CreateDraft(draft *domain.EmailDraft) error
	FindDraftByID(id string) (*domain.EmailDraft, error)
	ListDraftsByUser(userID string) ([]*domain.EmailDraft, error)
	UpdateDraft(draft *domain.EmailDraft) error
	DeleteDraft(id string) error
}
