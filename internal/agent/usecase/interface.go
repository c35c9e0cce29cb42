package usecase

import (
	"context"

	agentdto "mailagent-backend/internal/agent/dto"
	emaildomain "mailagent-backend/internal/email/domain"
	"mailagent-backend/pkg/llm"
)

// AgentUsecase defines the interface for AI email processing
type AgentUsecase interface {
	// Process runs one prompt category (or a caller-supplied prompt)
	// against an email and returns the raw model output. Results for the
	// built-in categories are persisted onto the email record.
	Process(ctx context.Context, userID string, req *agentdto.ProcessRequest) (*agentdto.ProcessResponse, error)

	// ProcessEmail runs categorization, action extraction and summary
	// concurrently. Each branch degrades on failure without failing the
	// pipeline as a whole.
	ProcessEmail(ctx context.Context, userID, emailID string) (*emaildomain.Email, error)

	// Chat answers a free-form assistant message, optionally grounded in
	// one of the user's emails.
	Chat(ctx context.Context, userID string, req *agentdto.ChatRequest) (*agentdto.ChatResponse, error)

	// GenerateReply drafts a reply to an email, falling back to a canned
	// draft when the provider is unavailable.
	GenerateReply(ctx context.Context, userID, emailID, tone string) (*llm.Reply, error)

	// Health reports provider reachability.
	Health(ctx context.Context) *llm.Health
}
