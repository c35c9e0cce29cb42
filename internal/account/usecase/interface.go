package usecase

import (
	"context"

	"mailagent-backend/internal/account/domain"
	accountdto "mailagent-backend/internal/account/dto"
)

// AccountUsecase defines the interface for connected mailbox use cases
type AccountUsecase interface {
	// ConnectGmailWithToken stores a Gmail account from client-supplied
	// tokens after verifying them against the provider.
	ConnectGmailWithToken(ctx context.Context, userID string, req *accountdto.ConnectTokenRequest) (*domain.UserEmailAccount, error)

	// ConnectGmailWithCode exchanges an OAuth authorization code and
	// stores the resulting account.
	ConnectGmailWithCode(ctx context.Context, userID string, req *accountdto.ConnectCodeRequest) (*domain.UserEmailAccount, error)

	// AuthURL returns the consent page URL for the code flow.
	AuthURL(state string) string

	// GetAccounts lists the user's connected accounts, primary first.
	GetAccounts(userID string) ([]*domain.UserEmailAccount, error)

	// Disconnect removes a connected account.
	Disconnect(userID, accountID string) error

	// Sync pulls recent messages from the provider into the user's email
	// store and stamps the account's last sync time. Returns the number
	// of imported messages.
	Sync(ctx context.Context, userID, accountID string) (int, error)
}
