package repository

import (
	"errors"
	"time"

	"mailagent-backend/internal/email/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormEmailRepository implements EmailRepository using GORM
type gormEmailRepository struct {
	db *gorm.DB
}

// NewGormEmailRepository creates a new GORM-based EmailRepository
func NewGormEmailRepository(db *gorm.DB) EmailRepository {
	return &gormEmailRepository{db: db}
}

func (r *gormEmailRepository) Create(email *domain.Email) error {
	if email.ID == "" {
		email.ID = uuid.New().String()
	}
	if email.Timestamp.IsZero() {
		email.Timestamp = time.Now()
	}
	email.CreatedAt = time.Now()
	email.UpdatedAt = time.Now()
	return r.db.Create(email).Error
}

func (r *gormEmailRepository) FindByID(id, userID string) (*domain.Email, error) {
	query := r.db.Where("id = ?", id)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var email domain.Email
	err := query.First(&email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &email, nil
}

func (r *gormEmailRepository) List(opts ListOptions) ([]*domain.Email, error) {
	query := r.db.Model(&domain.Email{})

	if opts.UserID != "" {
		query = query.Where("user_id = ?", opts.UserID)
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where("subject ILIKE ? OR sender ILIKE ? OR body ILIKE ?", pattern, pattern, pattern)
	}

	switch opts.SortBy {
	case SortOldest:
		query = query.Order("timestamp ASC")
	case SortSender:
		query = query.Order("sender ASC")
	default:
		query = query.Order("timestamp DESC")
	}

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var emails []*domain.Email
	err := query.Find(&emails).Error
	return emails, err
}

func (r *gormEmailRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Email{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *gormEmailRepository) Update(email *domain.Email) error {
	email.UpdatedAt = time.Now()
	return r.db.Save(email).Error
}

func (r *gormEmailRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Email{}).Error
}

func (r *gormEmailRepository) CreateDraft(draft *domain.EmailDraft) error {
	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}
	draft.CreatedAt = time.Now()
	draft.UpdatedAt = time.Now()
	return r.db.Create(draft).Error
}

func (r *gormEmailRepository) FindDraftByID(id string) (*domain.EmailDraft, error) {
	var draft domain.EmailDraft
	err := r.db.Where("id = ?", id).First(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &draft, nil
}

func (r *gormEmailRepository) ListDraftsByUser(userID string) ([]*domain.EmailDraft, error) {
	var drafts []*domain.EmailDraft
	err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&drafts).Error
	return drafts, err
}

func (r *gormEmailRepository) UpdateDraft(draft *domain.EmailDraft) error {
	draft.UpdatedAt = time.Now()
	return r.db.Save(draft).Error
}

func (r *gormEmailRepository) DeleteDraft(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.EmailDraft{}).Error
}
