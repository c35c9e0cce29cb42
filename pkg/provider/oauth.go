package provider

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuthService exchanges authorization codes and refresh tokens with the
// email provider's OAuth endpoint. The rest of the system treats it purely
// as an opaque token source.
type OAuthService struct {
	config *oauth2.Config
}

func NewOAuthService(clientID, clientSecret, redirectURI string) *OAuthService {
	return &OAuthService{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Endpoint:     google.Endpoint,
			Scopes: []string{
				"https://www.googleapis.com/auth/gmail.readonly",
				"https://www.googleapis.com/auth/userinfo.email",
			},
		},
	}
}

// AuthURL returns the consent page URL for the authorization-code flow.
func (s *OAuthService) AuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// ExchangeCode trades an authorization code for an access/refresh token pair.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth code exchange: %w", err)
	}
	return token, nil
}

// Refresh obtains a fresh access token from a stored refresh token.
func (s *OAuthService) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	src := s.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("oauth token refresh: %w", err)
	}
	return token, nil
}

// Config exposes the underlying oauth2.Config for building token sources.
func (s *OAuthService) Config() *oauth2.Config {
	return s.config
}
