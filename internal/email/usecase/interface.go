package usecase

import (
	emaildomain "mailagent-backend/internal/email/domain"
	emaildto "mailagent-backend/internal/email/dto"
)

// ListQuery carries the client-selectable inbox filters. Category is an
// exact-match post-filter: empty or "all" disables it.
type ListQuery struct {
	Category string
	Search   string
	SortBy   string
	Limit    int
	Offset   int
}

// EmailUsecase defines the interface for email and draft use cases
type EmailUsecase interface {
	ListEmails(userID string, query ListQuery) ([]*emaildomain.Email, error)
	GetEmailByID(userID, id string) (*emaildomain.Email, error)
	CreateEmail(email *emaildomain.Email) error
	UpdateEmail(email *emaildomain.Email) error
	UpdateCategory(userID, id, category string) error
	MarkRead(userID, id string, read bool) error
	ToggleStar(userID, id string) error
	Archive(userID, id string) error
	DeleteEmail(userID, id string) error

	// LoadMockInbox seeds the canned starter inbox for the user, skipped
	// when they already have emails. Returns the user's resulting inbox.
	LoadMockInbox(userID string) ([]*emaildomain.Email, error)

	CreateDraft(userID string, req *emaildto.CreateDraftRequest) (*emaildomain.EmailDraft, error)
	GetDrafts(userID string) ([]*emaildomain.EmailDraft, error)
	UpdateDraft(userID, id string, req *emaildto.UpdateDraftRequest) (*emaildomain.EmailDraft, error)
	DeleteDraft(userID, id string) error
}
