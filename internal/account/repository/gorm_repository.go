package repository

import (
	"errors"
	"time"

	"mailagent-backend/internal/account/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormAccountRepository implements AccountRepository using GORM
type gormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM-based AccountRepository
func NewGormAccountRepository(db *gorm.DB) AccountRepository {
	return &gormAccountRepository{db: db}
}

func (r *gormAccountRepository) Create(account *domain.UserEmailAccount) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	return r.db.Create(account).Error
}

func (r *gormAccountRepository) FindByID(id string) (*domain.UserEmailAccount, error) {
	var account domain.UserEmailAccount
	err := r.db.Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *gormAccountRepository) FindByUserID(userID string) ([]*domain.UserEmailAccount, error) {
	var accounts []*domain.UserEmailAccount
	err := r.db.Where("user_id = ?", userID).
		Order("is_primary DESC, created_at DESC").
		Find(&accounts).Error
	return accounts, err
}

func (r *gormAccountRepository) Update(account *domain.UserEmailAccount) error {
	account.UpdatedAt = time.Now()
	return r.db.Save(account).Error
}

func (r *gormAccountRepository) Delete(id string) error {
	return r.db.Delete(&domain.UserEmailAccount{}, "id = ?", id).Error
}
