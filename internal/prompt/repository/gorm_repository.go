package repository

import (
	"errors"
	"time"

	"mailagent-backend/internal/prompt/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormPromptRepository implements PromptRepository using GORM
type gormPromptRepository struct {
	db *gorm.DB
}

// NewGormPromptRepository creates a new GORM-based PromptRepository
func NewGormPromptRepository(db *gorm.DB) PromptRepository {
	return &gormPromptRepository{db: db}
}

func (r *gormPromptRepository) Create(template *domain.PromptTemplate) error {
	prepare(template)
	return r.db.Create(template).Error
}

func (r *gormPromptRepository) CreateActivating(template *domain.PromptTemplate) error {
	prepare(template)
	template.IsActive = true
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deactivatePeers(tx, template.Category, template.ID); err != nil {
			return err
		}
		return tx.Create(template).Error
	})
}

func (r *gormPromptRepository) FindByID(id string) (*domain.PromptTemplate, error) {
	var template domain.PromptTemplate
	err := r.db.Where("id = ?", id).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *gormPromptRepository) FindByName(name string) (*domain.PromptTemplate, error) {
	var template domain.PromptTemplate
	err := r.db.Where("name = ?", name).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *gormPromptRepository) FindAll() ([]*domain.PromptTemplate, error) {
	var templates []*domain.PromptTemplate
	err := r.db.Order("category, name").Find(&templates).Error
	return templates, err
}

func (r *gormPromptRepository) FindActiveByCategory(category string) (*domain.PromptTemplate, error) {
	var template domain.PromptTemplate
	err := r.db.Where("category = ? AND is_active = ?", category, true).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *gormPromptRepository) Update(template *domain.PromptTemplate) error {
	template.UpdatedAt = time.Now()
	return r.db.Save(template).Error
}

func (r *gormPromptRepository) SaveActivating(template *domain.PromptTemplate) error {
	template.IsActive = true
	template.UpdatedAt = time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deactivatePeers(tx, template.Category, template.ID); err != nil {
			return err
		}
		return tx.Save(template).Error
	})
}

func (r *gormPromptRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.PromptTemplate{}).Error
}

func deactivatePeers(tx *gorm.DB, category, excludeID string) error {
	return tx.Model(&domain.PromptTemplate{}).
		Where("category = ? AND is_active = ? AND id <> ?", category, true, excludeID).
		Update("is_active", false).Error
}

func prepare(template *domain.PromptTemplate) {
	if template.ID == "" {
		template.ID = uuid.New().String()
	}
	if template.Version == 0 {
		template.Version = 1
	}
	template.CreatedAt = time.Now()
	template.UpdatedAt = time.Now()
}
