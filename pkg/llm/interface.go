package llm

import "context"

// Message is a single turn in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is a generated email response.
type Reply struct {
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Tone        string `json:"tone"`
	AIGenerated bool   `json:"ai_generated"`
}

// Health reports provider reachability.
type Health struct {
	Status   string   `json:"status"`
	Provider string   `json:"provider"`
	Model    string   `json:"model"`
	Details  []string `json:"details"`
}

// Client is the language-model boundary. Implement this interface to add a
// new provider (OpenAI, mock, ...).
type Client interface {
	// ProcessPrompt submits an instruction plus rendered email content and
	// returns the raw completion text.
	ProcessPrompt(ctx context.Context, prompt, emailContent, systemMessage string) (string, error)

	// Chat runs a free-form conversation with optional email context.
	Chat(ctx context.Context, messages []Message, emailContext string) (string, error)

	// GenerateReply drafts a reply to the given email in the requested tone.
	GenerateReply(ctx context.Context, sender, subject, body, tone string) (*Reply, error)

	HealthCheck(ctx context.Context) *Health
}

// ProviderType identifies which backing client is in use.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderMock   ProviderType = "mock"
)
