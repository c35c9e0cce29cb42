package usecase

import (
	"mailagent-backend/internal/prompt/domain"
	promptdto "mailagent-backend/internal/prompt/dto"
)

// PromptUsecase defines the interface for prompt template use cases
type PromptUsecase interface {
	// SeedDefaults idempotently installs the default template for each of
	// the four built-in categories, matched by exact name.
	SeedDefaults() error

	GetAll() ([]*domain.PromptTemplate, error)
	GetByID(id string) (*domain.PromptTemplate, error)
	GetActive(category string) (*domain.PromptTemplate, error)
	Create(req *promptdto.CreatePromptRequest) (*domain.PromptTemplate, error)
	Update(id string, req *promptdto.UpdatePromptRequest) (*domain.PromptTemplate, error)
	SetActive(id string) (*domain.PromptTemplate, error)
	Delete(id string) error
}
