package domain

import "time"

// Categories a template can belong to. Within one category at most one
// template is active at a time.
const (
	CategoryCategorization   = "categorization"
	CategoryActionExtraction = "action_extraction"
	CategorySummary          = "summary"
	CategoryReplyDraft       = "reply_draft"
)

type PromptTemplate struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category" gorm:"index;not null"`
	Template    string    `json:"template" gorm:"type:text;not null"`
	IsActive    bool      `json:"is_active" gorm:"default:false"`
	IsSystem    bool      `json:"is_system" gorm:"default:false"`
	Version     int       `json:"version" gorm:"default:1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
