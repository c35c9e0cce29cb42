package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Temperatures are fixed per call shape: low for structured extraction and
// categorization, higher for conversational text.
const (
	structuredTemperature   = 0.3
	conversationTemperature = 0.7

	processMaxTokens = 1000
	chatMaxTokens    = 500
	replyMaxTokens   = 500
)

// OpenAIClient implements Client using the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIClient(apiKey, model string, logger *zap.Logger) *OpenAIClient {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

func (c *OpenAIClient) ProcessPrompt(ctx context.Context, prompt, emailContent, systemMessage string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemMessage != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemMessage,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: fmt.Sprintf("Email Content:\n%s\n\nInstruction: %s", emailContent, prompt),
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   processMaxTokens,
		Temperature: structuredTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion: empty response")
	}

	result := resp.Choices[0].Message.Content
	c.logger.Debug("openai completion received", zap.Int("chars", len(result)))
	return result, nil
}

func (c *OpenAIClient) Chat(ctx context.Context, messages []Message, emailContext string) (string, error) {
	systemMessage := "You are an intelligent email productivity assistant. Help users manage their inbox, summarize emails, extract tasks, and draft responses."
	if emailContext != "" {
		systemMessage += "\n\nCurrent email context:\n" + emailContext
	}

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemMessage,
	})
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    chatMessages,
		MaxTokens:   chatMaxTokens,
		Temperature: conversationTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) GenerateReply(ctx context.Context, sender, subject, body, tone string) (*Reply, error) {
	prompt := fmt.Sprintf(`Generate a %s email reply to this email:

From: %s
Subject: %s
Body: %s

Please create a thoughtful, %s response that addresses the key points.
Return your response in JSON format with 'subject' and 'body' fields.
Make sure the subject line is appropriate for a reply.`, tone, sender, subject, body, tone)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a professional email assistant. Generate appropriate email replies in JSON format with 'subject' and 'body' fields.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:      replyMaxTokens,
		Temperature:    conversationTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	})
	if err != nil {
		return nil, fmt.Errorf("openai reply: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai reply: empty response")
	}

	var replyData struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &replyData); err != nil {
		return nil, fmt.Errorf("openai reply: parse response: %w", err)
	}

	if replyData.Subject == "" {
		replyData.Subject = "Re: " + subject
	}

	return &Reply{
		Subject:     replyData.Subject,
		Body:        replyData.Body,
		Tone:        tone,
		AIGenerated: true,
	}, nil
}

func (c *OpenAIClient) HealthCheck(ctx context.Context) *Health {
	health := &Health{
		Status:   "healthy",
		Provider: string(ProviderOpenAI),
		Model:    c.model,
	}

	_, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "Say 'OK'"},
		},
		MaxTokens: 5,
	})
	if err != nil {
		health.Status = "unhealthy"
		health.Details = append(health.Details, "OpenAI API: "+sanitizeError(err))
		return health
	}

	health.Details = append(health.Details, "OpenAI API: Connected")
	return health
}

// sanitizeError keeps the first line of a provider error to avoid leaking
// request payloads into health output.
func sanitizeError(err error) string {
	msg := err.Error()
	if idx := strings.IndexByte(msg, '\n'); idx > 0 {
		msg = msg[:idx]
	}
	return msg
}
