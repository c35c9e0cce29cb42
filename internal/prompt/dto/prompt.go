package dto

type CreatePromptRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Template    string `json:"template" binding:"required"`
	IsActive    bool   `json:"is_active"`
	IsSystem    bool   `json:"is_system"`
}

// UpdatePromptRequest uses pointers so absent fields are left untouched.
type UpdatePromptRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Template    *string `json:"template"`
	IsActive    *bool   `json:"is_active"`
	IsSystem    *bool   `json:"is_system"`
}
