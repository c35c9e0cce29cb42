package repository

import "mailagent-backend/internal/prompt/domain"

// PromptRepository defines the interface for prompt template data access.
//
// CreateActivating and SaveActivating carry the at-most-one-active-per-
// category invariant: both deactivate every other template in the category
// and persist the given template as active inside a single transaction, so a
// crash mid-way can never leave two templates simultaneously active.
type PromptRepository interface {
	Create(template *domain.PromptTemplate) error
	CreateActivating(template *domain.PromptTemplate) error
	FindByID(id string) (*domain.PromptTemplate, error)
	FindByName(name string) (*domain.PromptTemplate, error)
	FindAll() ([]*domain.PromptTemplate, error)
	FindActiveByCategory(category string) (*domain.PromptTemplate, error)
	Update(template *domain.PromptTemplate) error
	SaveActivating(template *domain.PromptTemplate) error
	Delete(id string) error
}
