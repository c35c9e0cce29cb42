package usecase

import (
	"fmt"

	emaildomain "mailagent-backend/internal/email/domain"
	emaildto "mailagent-backend/internal/email/dto"
	"mailagent-backend/internal/email/repository"
	"mailagent-backend/internal/shared"

	"go.uber.org/zap"
)

// emailUsecase implements EmailUsecase interface
type emailUsecase struct {
	emailRepo repository.EmailRepository
	logger    *zap.Logger
}

// NewEmailUsecase creates a new instance of emailUsecase
func NewEmailUsecase(emailRepo repository.EmailRepository, logger *zap.Logger) EmailUsecase {
	return &emailUsecase{
		emailRepo: emailRepo,
		logger:    logger,
	}
}

func (u *emailUsecase) ListEmails(userID string, query ListQuery) ([]*emaildomain.Email, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}

	emails, err := u.emailRepo.List(repository.ListOptions{
		UserID: userID,
		Search: query.Search,
		SortBy: query.SortBy,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}

	// Category degrades gracefully when absent or "all", so it is applied
	// here rather than in the store predicate.
	if query.Category == "" || query.Category == "all" {
		return emails, nil
	}
	filtered := make([]*emaildomain.Email, 0, len(emails))
	for _, email := range emails {
		if email.Category == query.Category {
			filtered = append(filtered, email)
		}
	}
	return filtered, nil
}

func (u *emailUsecase) GetEmailByID(userID, id string) (*emaildomain.Email, error) {
	email, err := u.emailRepo.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	if email == nil {
		return nil, fmt.Errorf("%w: email", shared.ErrNotFound)
	}
	return email, nil
}

func (u *emailUsecase) CreateEmail(email *emaildomain.Email) error {
	return u.emailRepo.Create(email)
}

func (u *emailUsecase) UpdateEmail(email *emaildomain.Email) error {
	return u.emailRepo.Update(email)
}

func (u *emailUsecase) UpdateCategory(userID, id, category string) error {
	email, err := u.GetEmailByID(userID, id)
	if err != nil {
		return err
	}
	email.Category = category
	return u.emailRepo.Update(email)
}

func (u *emailUsecase) MarkRead(userID, id string, read bool) error {
	email, err := u.GetEmailByID(userID, id)
	if err != nil {
		return err
	}
	email.IsRead = read
	return u.emailRepo.Update(email)
}

func (u *emailUsecase) ToggleStar(userID, id string) error {
	email, err := u.GetEmailByID(userID, id)
	if err != nil {
		return err
	}
	email.IsStarred = !email.IsStarred
	return u.emailRepo.Update(email)
}

func (u *emailUsecase) Archive(userID, id string) error {
	email, err := u.GetEmailByID(userID, id)
	if err != nil {
		return err
	}
	email.IsArchived = true
	return u.emailRepo.Update(email)
}

func (u *emailUsecase) DeleteEmail(userID, id string) error {
	if _, err := u.GetEmailByID(userID, id); err != nil {
		return err
	}
	return u.emailRepo.Delete(id)
}

func (u *emailUsecase) LoadMockInbox(userID string) ([]*emaildomain.Email, error) {
	count, err := u.emailRepo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("count emails: %w", err)
	}
	if count > 0 {
		u.logger.Info("user already has emails, skipping mock load",
			zap.String("user_id", userID), zap.Int64("count", count))
		return u.emailRepo.List(repository.ListOptions{UserID: userID, Limit: 50})
	}

	for _, seed := range mockInbox {
		email := seed
		email.UserID = userID
		if err := u.emailRepo.Create(&email); err != nil {
			return nil, fmt.Errorf("load mock email %q: %w", seed.Subject, err)
		}
	}

	u.logger.Info("loaded mock inbox",
		zap.String("user_id", userID), zap.Int("count", len(mockInbox)))
	return u.emailRepo.List(repository.ListOptions{UserID: userID, Limit: 50})
}

func (u *emailUsecase) CreateDraft(userID string, req *emaildto.CreateDraftRequest) (*emaildomain.EmailDraft, error) {
	draft := &emaildomain.EmailDraft{
		UserID:   userID,
		To:       req.To,
		Subject:  req.Subject,
		Body:     req.Body,
		Metadata: req.Metadata,
	}
	if err := u.emailRepo.CreateDraft(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (u *emailUsecase) GetDrafts(userID string) ([]*emaildomain.EmailDraft, error) {
	return u.emailRepo.ListDraftsByUser(userID)
}

func (u *emailUsecase) UpdateDraft(userID, id string, req *emaildto.UpdateDraftRequest) (*emaildomain.EmailDraft, error) {
	draft, err := u.emailRepo.FindDraftByID(id)
	if err != nil {
		return nil, err
	}
	if draft == nil || draft.UserID != userID {
		return nil, fmt.Errorf("%w: draft", shared.ErrNotFound)
	}

	if req.To != nil {
		draft.To = *req.To
	}
	if req.Subject != nil {
		draft.Subject = *req.Subject
	}
	if req.Body != nil {
		draft.Body = *req.Body
	}
	if req.Metadata != nil {
		draft.Metadata = req.Metadata
	}

	if err := u.emailRepo.UpdateDraft(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (u *emailUsecase) DeleteDraft(userID, id string) error {
	draft, err := u.emailRepo.FindDraftByID(id)
	if err != nil {
		return err
	}
	if draft == nil || draft.UserID != userID {
		return fmt.Errorf("%w: draft", shared.ErrNotFound)
	}
	return u.emailRepo.DeleteDraft(id)
}
