package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	agentdto "mailagent-backend/internal/agent/dto"
	emaildomain "mailagent-backend/internal/email/domain"
	emailusecase "mailagent-backend/internal/email/usecase"
	promptdomain "mailagent-backend/internal/prompt/domain"
	promptusecase "mailagent-backend/internal/prompt/usecase"
	"mailagent-backend/internal/shared"
	taskusecase "mailagent-backend/internal/task/usecase"
	"mailagent-backend/pkg/llm"

	"go.uber.org/zap"
)

const fallbackCategory = "Uncategorized"

// agentUsecase implements AgentUsecase interface
type agentUsecase struct {
	client        llm.Client
	emailUsecase  emailusecase.EmailUsecase
	promptUsecase promptusecase.PromptUsecase
	taskUsecase   taskusecase.TaskUsecase
	logger        *zap.Logger
}

// NewAgentUsecase creates a new instance of agentUsecase
func NewAgentUsecase(
	client llm.Client,
	emailUC emailusecase.EmailUsecase,
	promptUC promptusecase.PromptUsecase,
	taskUC taskusecase.TaskUsecase,
	logger *zap.Logger,
) AgentUsecase {
	return &agentUsecase{
		client:        client,
		emailUsecase:  emailUC,
		promptUsecase: promptUC,
		taskUsecase:   taskUC,
		logger:        logger,
	}
}

func (u *agentUsecase) Process(ctx context.Context, userID string, req *agentdto.ProcessRequest) (*agentdto.ProcessResponse, error) {
	email, err := u.emailUsecase.GetEmailByID(userID, req.EmailID)
	if err != nil {
		return nil, err
	}

	promptText := req.CustomPrompt
	if promptText == "" {
		if req.PromptType == "" {
			return nil, fmt.Errorf("%w: prompt_type or custom_prompt is required", shared.ErrValidation)
		}
		template, err := u.promptUsecase.GetActive(req.PromptType)
		if err != nil {
			return nil, err
		}
		if template == nil {
			return nil, fmt.Errorf("%w: no active prompt for %s", shared.ErrNotFound, req.PromptType)
		}
		promptText = template.Template
	}

	result, err := u.client.ProcessPrompt(ctx, promptText, renderEmail(email), "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProvider, err)
	}

	resp := &agentdto.ProcessResponse{
		EmailID:          req.EmailID,
		PromptType:       req.PromptType,
		Result:           result,
		UsedCustomPrompt: req.CustomPrompt != "",
	}

	// Built-in categories also persist their result onto the email.
	switch req.PromptType {
	case promptdomain.CategoryCategorization:
		email.Category = cleanCategory(result)
		err = u.emailUsecase.UpdateEmail(email)
	case promptdomain.CategoryActionExtraction:
		items := ParseActionItems(result)
		email.ActionItems = items
		if err = u.emailUsecase.UpdateEmail(email); err == nil {
			_, err = u.taskUsecase.ImportActionItems(userID, email.ID, items)
		}
		resp.ActionItems = items
	case promptdomain.CategorySummary:
		email.Summary = strings.TrimSpace(result)
		err = u.emailUsecase.UpdateEmail(email)
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (u *agentUsecase) ProcessEmail(ctx context.Context, userID, emailID string) (*emaildomain.Email, error) {
	email, err := u.emailUsecase.GetEmailByID(userID, emailID)
	if err != nil {
		return nil, err
	}

	content := renderEmail(email)

	var (
		wg       sync.WaitGroup
		category string
		items    emaildomain.ActionItems
		summary  string
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		raw, err := u.runCategory(ctx, promptdomain.CategoryCategorization, content)
		if err != nil {
			u.logger.Warn("categorization degraded", zap.String("email_id", emailID), zap.Error(err))
			category = fallbackCategory
			return
		}
		category = cleanCategory(raw)
	}()
	go func() {
		defer wg.Done()
		raw, err := u.runCategory(ctx, promptdomain.CategoryActionExtraction, content)
		if err != nil {
			u.logger.Warn("action extraction degraded", zap.String("email_id", emailID), zap.Error(err))
			items = emaildomain.ActionItems{}
			return
		}
		items = ParseActionItems(raw)
	}()
	go func() {
		defer wg.Done()
		raw, err := u.runCategory(ctx, promptdomain.CategorySummary, content)
		if err != nil {
			u.logger.Warn("summary degraded", zap.String("email_id", emailID), zap.Error(err))
			return
		}
		summary = strings.TrimSpace(raw)
	}()
	wg.Wait()

	email.Category = category
	email.ActionItems = items
	email.Summary = summary
	if err := u.emailUsecase.UpdateEmail(email); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if _, err := u.taskUsecase.ImportActionItems(userID, email.ID, items); err != nil {
			u.logger.Warn("task import failed", zap.String("email_id", emailID), zap.Error(err))
		}
	}

	return email, nil
}

// runCategory resolves the active template for a category and submits it.
func (u *agentUsecase) runCategory(ctx context.Context, category, content string) (string, error) {
	template, err := u.promptUsecase.GetActive(category)
	if err != nil {
		return "", err
	}
	if template == nil {
		return "", fmt.Errorf("%w: no active prompt for %s", shared.ErrNotFound, category)
	}
	result, err := u.client.ProcessPrompt(ctx, template.Template, content, "")
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrProvider, err)
	}
	return result, nil
}

func (u *agentUsecase) Chat(ctx context.Context, userID string, req *agentdto.ChatRequest) (*agentdto.ChatResponse, error) {
	var emailContext string
	if req.EmailID != "" {
		email, err := u.emailUsecase.GetEmailByID(userID, req.EmailID)
		if err != nil {
			return nil, err
		}
		emailContext = renderEmail(email)
	}

	messages := append([]llm.Message{}, req.History...)
	messages = append(messages, llm.Message{Role: "user", Content: req.Message})

	response, err := u.client.Chat(ctx, messages, emailContext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProvider, err)
	}

	return &agentdto.ChatResponse{
		Response:  response,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (u *agentUsecase) GenerateReply(ctx context.Context, userID, emailID, tone string) (*llm.Reply, error) {
	email, err := u.emailUsecase.GetEmailByID(userID, emailID)
	if err != nil {
		return nil, err
	}
	if tone == "" {
		tone = "professional"
	}

	reply, err := u.client.GenerateReply(ctx, email.Sender, email.Subject, email.Body, tone)
	if err != nil {
		u.logger.Warn("reply generation degraded", zap.String("email_id", emailID), zap.Error(err))
		return fallbackReply(email, tone), nil
	}
	return reply, nil
}

func (u *agentUsecase) Health(ctx context.Context) *llm.Health {
	return u.client.HealthCheck(ctx)
}

// renderEmail flattens an email into the From/Subject/Body form prompts
// are written against.
func renderEmail(email *emaildomain.Email) string {
	return fmt.Sprintf("From: %s\nSubject: %s\nBody: %s", email.Sender, email.Subject, email.Body)
}

// cleanCategory normalizes a model categorization answer to a bare label.
// Models prompted for JSON answer with a {"category": ...} object; bare-label
// answers pass through the trimming path.
func cleanCategory(raw string) string {
	category := strings.TrimSpace(raw)
	if strings.HasPrefix(category, "{") {
		var parsed struct {
			Category string `json:"category"`
		}
		if err := json.Unmarshal([]byte(category), &parsed); err != nil || parsed.Category == "" {
			return fallbackCategory
		}
		category = parsed.Category
	}
	category = strings.Trim(category, `"'.`)
	if idx := strings.IndexByte(category, '\n'); idx >= 0 {
		category = strings.TrimSpace(category[:idx])
	}
	if category == "" {
		return fallbackCategory
	}
	return category
}

// fallbackReply is the canned draft used when no provider answer is
// available.
func fallbackReply(email *emaildomain.Email, tone string) *llm.Reply {
	name := email.Sender
	if idx := strings.IndexByte(name, '@'); idx > 0 {
		name = name[:idx]
	}
	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for your email regarding %q.\n\n"+
			"I have received your message and will review it carefully. "+
			"Please expect a response within 24-48 hours.\n\nBest regards,\nUser",
		name, email.Subject)

	return &llm.Reply{
		Subject:     "Re: " + email.Subject,
		Body:        body,
		Tone:        tone,
		AIGenerated: false,
	}
}
