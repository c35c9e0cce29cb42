package provider

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// TokenUpdateFunc persists a rotated token back to storage.
type TokenUpdateFunc func(token *oauth2.Token) error

// RemoteMessage is a provider-neutral view of a fetched message.
type RemoteMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// GmailService fetches messages from Gmail on behalf of a connected account.
type GmailService struct {
	oauth *OAuthService
}

func NewGmailService(oauth *OAuthService) *GmailService {
	return &GmailService{oauth: oauth}
}

// notifyTokenSource wraps an oauth2.TokenSource and invokes the callback
// whenever the access token rotates, so the stored account stays current.
type notifyTokenSource struct {
	src      oauth2.TokenSource
	current  *oauth2.Token
	callback TokenUpdateFunc
}

func (s *notifyTokenSource) Token() (*oauth2.Token, error) {
	t, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if s.callback != nil && s.current.AccessToken != t.AccessToken {
		s.current = t
		if err := s.callback(t); err != nil {
			return nil, fmt.Errorf("persist refreshed token: %w", err)
		}
	}
	return t, nil
}

func (g *GmailService) service(ctx context.Context, accessToken, refreshToken string, onRefresh TokenUpdateFunc) (*gmail.Service, error) {
	token := &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}

	// Only force refresh if we have a refresh token
	if refreshToken != "" {
		token.Expiry = time.Now()
	}

	wrapped := &notifyTokenSource{
		src:      g.oauth.Config().TokenSource(ctx, token),
		current:  token,
		callback: onRefresh,
	}

	client := oauth2.NewClient(ctx, wrapped)
	srv, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return srv, nil
}

// VerifyToken checks the stored credentials by fetching the account profile.
func (g *GmailService) VerifyToken(ctx context.Context, accessToken, refreshToken string) error {
	srv, err := g.service(ctx, accessToken, refreshToken, nil)
	if err != nil {
		return err
	}
	if _, err := srv.Users.GetProfile("me").Do(); err != nil {
		return fmt.Errorf("gmail profile fetch: %w", err)
	}
	return nil
}

// FetchMessages lists the most recent inbox messages for the account.
func (g *GmailService) FetchMessages(ctx context.Context, accessToken, refreshToken string, maxResults int64, onRefresh TokenUpdateFunc) ([]*RemoteMessage, error) {
	srv, err := g.service(ctx, accessToken, refreshToken, onRefresh)
	if err != nil {
		return nil, err
	}

	listResp, err := srv.Users.Messages.List("me").LabelIds("INBOX").MaxResults(maxResults).Do()
	if err != nil {
		return nil, fmt.Errorf("list gmail messages: %w", err)
	}

	messages := make([]*RemoteMessage, 0, len(listResp.Messages))
	for _, ref := range listResp.Messages {
		msg, err := srv.Users.Messages.Get("me", ref.Id).Format("full").Do()
		if err != nil {
			return nil, fmt.Errorf("fetch gmail message %s: %w", ref.Id, err)
		}
		messages = append(messages, toRemoteMessage(msg))
	}
	return messages, nil
}

func toRemoteMessage(msg *gmail.Message) *RemoteMessage {
	remote := &RemoteMessage{
		ID:        msg.Id,
		Body:      msg.Snippet,
		Timestamp: time.UnixMilli(msg.InternalDate).UTC(),
	}

	if msg.Payload != nil {
		for _, header := range msg.Payload.Headers {
			switch header.Name {
			case "From":
				remote.Sender = header.Value
			case "Subject":
				remote.Subject = header.Value
			}
		}
		if body := extractPlainText(msg.Payload); body != "" {
			remote.Body = body
		}
	}
	return remote
}

// extractPlainText walks the MIME tree for the first text/plain part.
func extractPlainText(part *gmail.MessagePart) string {
	if part.MimeType == "text/plain" && part.Body != nil && part.Body.Data != "" {
		if decoded, err := base64.URLEncoding.DecodeString(part.Body.Data); err == nil {
			return string(decoded)
		}
	}
	for _, child := range part.Parts {
		if text := extractPlainText(child); text != "" {
			return text
		}
	}
	return ""
}
