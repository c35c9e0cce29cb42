package usecase

import (
	"fmt"

	"mailagent-backend/internal/prompt/domain"
	promptdto "mailagent-backend/internal/prompt/dto"
	"mailagent-backend/internal/prompt/repository"
	"mailagent-backend/internal/shared"

	"go.uber.org/zap"
)

// promptUsecase implements PromptUsecase interface
type promptUsecase struct {
	promptRepo repository.PromptRepository
	logger     *zap.Logger
}

// NewPromptUsecase creates a new instance of promptUsecase
func NewPromptUsecase(promptRepo repository.PromptRepository, logger *zap.Logger) PromptUsecase {
	return &promptUsecase{
		promptRepo: promptRepo,
		logger:     logger,
	}
}

var defaultTemplates = []domain.PromptTemplate{
	{
		Name:        "Default Categorization",
		Description: "Categorize emails into Important, Newsletter, Spam, or To-Do",
		Category:    domain.CategoryCategorization,
		Template:    "Categorize this email into one of: Important, Newsletter, Spam, To-Do. Important emails are from key contacts or contain urgent matters. Newsletter are mass distributions. Spam is unsolicited commercial email. To-Do emails require specific action from the recipient. Respond with only the category name.",
	},
	{
		Name:        "Action Item Extraction",
		Description: "Extract tasks and deadlines from emails",
		Category:    domain.CategoryActionExtraction,
		Template:    `Extract actionable tasks from this email. Respond in JSON format: { "tasks": [ { "task": "description", "deadline": "date or null", "priority": "high/medium/low" } ] }. If no clear tasks, return empty array.`,
	},
	{
		Name:        "Smart Summary",
		Description: "Create concise email summaries",
		Category:    domain.CategorySummary,
		Template:    "Summarize this email in 2-3 sentences. Focus on key points, requests, and required actions. Be concise but informative.",
	},
	{
		Name:        "Professional Reply",
		Description: "Draft professional email responses",
		Category:    domain.CategoryReplyDraft,
		Template:    "Draft a professional email reply. Be polite, address all points in the original email, and maintain a professional tone. If it's a meeting request, ask for an agenda. If it's a task request, acknowledge receipt and provide a tentative timeline.",
	},
}

func (u *promptUsecase) SeedDefaults() error {
	for _, seed := range defaultTemplates {
		// Idempotence is keyed on the exact name: renaming a seed in the DB
		// makes it get recreated on next boot.
		existing, err := u.promptRepo.FindByName(seed.Name)
		if err != nil {
			return fmt.Errorf("check seed %q: %w", seed.Name, err)
		}
		if existing != nil {
			continue
		}

		template := seed
		if err := u.promptRepo.CreateActivating(&template); err != nil {
			return fmt.Errorf("seed %q: %w", seed.Name, err)
		}
		u.logger.Info("seeded default prompt",
			zap.String("name", template.Name),
			zap.String("category", template.Category))
	}
	return nil
}

func (u *promptUsecase) GetAll() ([]*domain.PromptTemplate, error) {
	return u.promptRepo.FindAll()
}

func (u *promptUsecase) GetByID(id string) (*domain.PromptTemplate, error) {
	template, err := u.promptRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, fmt.Errorf("%w: prompt template", shared.ErrNotFound)
	}
	return template, nil
}

func (u *promptUsecase) GetActive(category string) (*domain.PromptTemplate, error) {
	return u.promptRepo.FindActiveByCategory(category)
}

func (u *promptUsecase) Create(req *promptdto.CreatePromptRequest) (*domain.PromptTemplate, error) {
	existing, err := u.promptRepo.FindByName(req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: prompt name already in use", shared.ErrConflict)
	}

	template := &domain.PromptTemplate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Template:    req.Template,
		IsSystem:    req.IsSystem,
	}

	if req.IsActive {
		err = u.promptRepo.CreateActivating(template)
	} else {
		err = u.promptRepo.Create(template)
	}
	if err != nil {
		return nil, err
	}
	return template, nil
}

func (u *promptUsecase) Update(id string, req *promptdto.UpdatePromptRequest) (*domain.PromptTemplate, error) {
	template, err := u.promptRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, fmt.Errorf("%w: prompt template", shared.ErrNotFound)
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.Category != nil {
		template.Category = *req.Category
	}
	if req.Template != nil {
		template.Template = *req.Template
	}
	if req.IsSystem != nil {
		template.IsSystem = *req.IsSystem
	}
	template.Version++

	// Any request that sets active=true takes the exclusive path, whatever
	// the previous state was, so the one-active-per-category invariant holds
	// uniformly.
	if req.IsActive != nil && *req.IsActive {
		if err := u.promptRepo.SaveActivating(template); err != nil {
			return nil, err
		}
		return template, nil
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	if err := u.promptRepo.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (u *promptUsecase) SetActive(id string) (*domain.PromptTemplate, error) {
	template, err := u.promptRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, fmt.Errorf("%w: prompt template", shared.ErrNotFound)
	}

	if err := u.promptRepo.SaveActivating(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (u *promptUsecase) Delete(id string) error {
	template, err := u.promptRepo.FindByID(id)
	if err != nil {
		return err
	}
	if template == nil {
		return fmt.Errorf("%w: prompt template", shared.ErrNotFound)
	}
	// Unconditional: the category may be left without an active template.
	return u.promptRepo.Delete(id)
}
