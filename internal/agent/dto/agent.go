package dto

import (
	emaildomain "mailagent-backend/internal/email/domain"
	"mailagent-backend/pkg/llm"
)

// ProcessRequest runs a single prompt category against one email. A custom
// prompt overrides the active template for the category.
type ProcessRequest struct {
	EmailID      string `json:"email_id" binding:"required"`
	PromptType   string `json:"prompt_type"`
	CustomPrompt string `json:"custom_prompt"`
}

type ProcessResponse struct {
	EmailID          string                  `json:"email_id"`
	PromptType       string                  `json:"prompt_type"`
	Result           string                  `json:"result"`
	ActionItems      emaildomain.ActionItems `json:"action_items,omitempty"`
	UsedCustomPrompt bool                    `json:"used_custom_prompt"`
}

// ProcessEmailRequest runs the full categorize/extract/summarize pipeline.
type ProcessEmailRequest struct {
	EmailID string `json:"email_id" binding:"required"`
}

type ChatRequest struct {
	Message string        `json:"message" binding:"required"`
	EmailID string        `json:"email_id"`
	History []llm.Message `json:"history"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

type ReplyRequest struct {
	Tone string `json:"tone"`
}
