package usecase

import (
	"context"
	"fmt"
	"time"

	"mailagent-backend/internal/account/domain"
	accountdto "mailagent-backend/internal/account/dto"
	"mailagent-backend/internal/account/repository"
	emaildomain "mailagent-backend/internal/email/domain"
	emailusecase "mailagent-backend/internal/email/usecase"
	"mailagent-backend/internal/shared"
	"mailagent-backend/pkg/provider"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const syncBatchSize = 50

// accountUsecase implements AccountUsecase interface
type accountUsecase struct {
	accountRepo  repository.AccountRepository
	emailUsecase emailusecase.EmailUsecase
	oauth        *provider.OAuthService
	gmail        *provider.GmailService
	logger       *zap.Logger
}

// NewAccountUsecase creates a new instance of accountUsecase
func NewAccountUsecase(
	accountRepo repository.AccountRepository,
	emailUC emailusecase.EmailUsecase,
	oauth *provider.OAuthService,
	gmail *provider.GmailService,
	logger *zap.Logger,
) AccountUsecase {
	return &accountUsecase{
		accountRepo:  accountRepo,
		emailUsecase: emailUC,
		oauth:        oauth,
		gmail:        gmail,
		logger:       logger,
	}
}

func (u *accountUsecase) ConnectGmailWithToken(ctx context.Context, userID string, req *accountdto.ConnectTokenRequest) (*domain.UserEmailAccount, error) {
	if err := u.gmail.VerifyToken(ctx, req.AccessToken, req.RefreshToken); err != nil {
		return nil, fmt.Errorf("%w: gmail authentication failed: %v", shared.ErrProvider, err)
	}

	account := &domain.UserEmailAccount{
		UserID:       userID,
		Provider:     domain.ProviderGmail,
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		IsActive:     true,
		IsPrimary:    true,
		SyncEnabled:  true,
	}
	if err := u.accountRepo.Create(account); err != nil {
		return nil, err
	}

	u.logger.Info("gmail account connected",
		zap.String("user_id", userID), zap.String("email", req.Email))
	return account, nil
}

func (u *accountUsecase) ConnectGmailWithCode(ctx context.Context, userID string, req *accountdto.ConnectCodeRequest) (*domain.UserEmailAccount, error) {
	token, err := u.oauth.ExchangeCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProvider, err)
	}

	account := &domain.UserEmailAccount{
		UserID:       userID,
		Provider:     domain.ProviderGmail,
		Email:        req.Email,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		IsActive:     true,
		IsPrimary:    true,
		SyncEnabled:  true,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		account.TokenExpiry = &expiry
	}
	if err := u.accountRepo.Create(account); err != nil {
		return nil, err
	}

	u.logger.Info("gmail account connected via code",
		zap.String("user_id", userID), zap.String("email", req.Email))
	return account, nil
}

func (u *accountUsecase) AuthURL(state string) string {
	return u.oauth.AuthURL(state)
}

func (u *accountUsecase) GetAccounts(userID string) ([]*domain.UserEmailAccount, error) {
	return u.accountRepo.FindByUserID(userID)
}

func (u *accountUsecase) Disconnect(userID, accountID string) error {
	account, err := u.findOwned(userID, accountID)
	if err != nil {
		return err
	}
	return u.accountRepo.Delete(account.ID)
}

func (u *accountUsecase) Sync(ctx context.Context, userID, accountID string) (int, error) {
	account, err := u.findOwned(userID, accountID)
	if err != nil {
		return 0, err
	}
	if account.Provider != domain.ProviderGmail {
		return 0, fmt.Errorf("%w: sync not supported for provider %s", shared.ErrValidation, account.Provider)
	}

	// Rotated tokens are written back immediately so a crash mid-sync
	// does not strand the account with stale credentials.
	onRefresh := func(token *oauth2.Token) error {
		account.AccessToken = token.AccessToken
		if token.RefreshToken != "" {
			account.RefreshToken = token.RefreshToken
		}
		if !token.Expiry.IsZero() {
			expiry := token.Expiry
			account.TokenExpiry = &expiry
		}
		return u.accountRepo.Update(account)
	}

	messages, err := u.gmail.FetchMessages(ctx, account.AccessToken, account.RefreshToken, syncBatchSize, onRefresh)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", shared.ErrProvider, err)
	}

	imported := 0
	for _, msg := range messages {
		email := &emaildomain.Email{
			UserID:    userID,
			Sender:    msg.Sender,
			Subject:   msg.Subject,
			Body:      msg.Body,
			Timestamp: msg.Timestamp,
			Category:  "Uncategorized",
			Metadata:  emaildomain.Metadata{"provider": account.Provider, "remote_id": msg.ID},
		}
		if err := u.emailUsecase.CreateEmail(email); err != nil {
			return imported, err
		}
		imported++
	}

	now := time.Now()
	account.LastSync = &now
	if err := u.accountRepo.Update(account); err != nil {
		return imported, err
	}

	u.logger.Info("account synced",
		zap.String("account_id", account.ID), zap.Int("imported", imported))
	return imported, nil
}

func (u *accountUsecase) findOwned(userID, accountID string) (*domain.UserEmailAccount, error) {
	account, err := u.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.UserID != userID {
		return nil, fmt.Errorf("%w: email account", shared.ErrNotFound)
	}
	return account, nil
}
