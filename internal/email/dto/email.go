package dto

import emaildomain "mailagent-backend/internal/email/domain"

// EmailsResponse wraps one page of emails. Count is the size of this page,
// after any category filtering, not the store total.
type EmailsResponse struct {
	Emails []*emaildomain.Email `json:"emails"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
	Count  int                  `json:"count"`
}

type UpdateCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type CreateDraftRequest struct {
	To       string               `json:"to"`
	Subject  string               `json:"subject"`
	Body     string               `json:"body"`
	Metadata emaildomain.Metadata `json:"metadata"`
}

// UpdateDraftRequest uses pointers so absent fields are left untouched.
type UpdateDraftRequest struct {
	To       *string              `json:"to"`
	Subject  *string              `json:"subject"`
	Body     *string              `json:"body"`
	Metadata emaildomain.Metadata `json:"metadata"`
}
