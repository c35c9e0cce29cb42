package usecase

import (
	"fmt"
	"strings"
	"time"

	authdomain "mailagent-backend/internal/auth/domain"
	authdto "mailagent-backend/internal/auth/dto"
	"mailagent-backend/internal/auth/repository"
	"mailagent-backend/internal/auth/session"
	"mailagent-backend/internal/shared"
	"mailagent-backend/pkg/config"

	"go.uber.org/zap"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	sessions *session.Registry
	config   *config.Config
	logger   *zap.Logger
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, sessions *session.Registry, cfg *config.Config, logger *zap.Logger) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		sessions: sessions,
		config:   cfg,
		logger:   logger,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", shared.ErrConflict)
	}

	hash, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		IsActive:     true,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Signed after create so the token embeds the assigned user id.
	verificationToken, err := signToken([]byte(u.config.JWTSecret), user.ID, PurposeVerify, u.config.VerifyTokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign verification token: %w", err)
	}
	user.VerificationToken = verificationToken
	if err := u.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("store verification token: %w", err)
	}

	// Mail delivery is an external collaborator; log where the message
	// would have gone.
	u.logger.Info("verification email queued",
		zap.String("email", user.Email),
		zap.String("url", "http://localhost:3000/verify-email?token="+verificationToken))

	return u.newSession(user), nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid email or password", shared.ErrAuthentication)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", shared.ErrAuthentication)
	}

	now := time.Now()
	user.LastLogin = &now
	if err := u.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}

	return u.newSession(user), nil
}

func (u *authUsecase) Authenticate(authorizationHeader string) (*authdomain.User, error) {
	token, err := bearerToken(authorizationHeader)
	if err != nil {
		return nil, err
	}

	s := u.sessions.Lookup(token)
	if s == nil {
		return nil, fmt.Errorf("%w: invalid or expired token", shared.ErrAuthentication)
	}

	user, err := u.userRepo.FindByID(s.UserID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("%w: user not found or inactive", shared.ErrAuthentication)
	}
	return user, nil
}

func (u *authUsecase) Logout(authorizationHeader string) {
	token, err := bearerToken(authorizationHeader)
	if err != nil {
		return
	}
	u.sessions.Revoke(token)
}

func (u *authUsecase) Refresh(authorizationHeader string) (*authdto.TokenResponse, error) {
	user, err := u.Authenticate(authorizationHeader)
	if err != nil {
		return nil, err
	}
	return u.newSession(user), nil
}

func (u *authUsecase) VerifyEmail(tokenString string) error {
	claims, err := decodeToken([]byte(u.config.JWTSecret), tokenString)
	if err != nil {
		return err
	}
	if claims.Purpose != PurposeVerify {
		return fmt.Errorf("%w: wrong token purpose", shared.ErrTokenInvalid)
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user", shared.ErrNotFound)
	}

	// Single-use: the presented token must be the last one issued.
	if user.VerificationToken == "" || user.VerificationToken != tokenString {
		return fmt.Errorf("%w: verification token already used", shared.ErrTokenInvalid)
	}

	user.IsVerified = true
	user.VerificationToken = ""
	if err := u.userRepo.Update(user); err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	return nil
}

func (u *authUsecase) ForgotPassword(email string) error {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		// Do not reveal whether the address exists.
		return nil
	}

	resetToken, err := signToken([]byte(u.config.JWTSecret), user.ID, PurposeReset, u.config.ResetTokenExpiry)
	if err != nil {
		return fmt.Errorf("sign reset token: %w", err)
	}

	user.ResetToken = resetToken
	if err := u.userRepo.Update(user); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	u.logger.Info("password reset email queued",
		zap.String("email", user.Email),
		zap.String("url", "http://localhost:3000/reset-password?token="+resetToken))
	return nil
}

func (u *authUsecase) ResetPassword(tokenString, newPassword string) error {
	claims, err := decodeToken([]byte(u.config.JWTSecret), tokenString)
	if err != nil {
		return err
	}
	if claims.Purpose != PurposeReset {
		return fmt.Errorf("%w: wrong token purpose", shared.ErrTokenInvalid)
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || user.ResetToken == "" || user.ResetToken != tokenString {
		return fmt.Errorf("%w: reset token already used", shared.ErrTokenInvalid)
	}

	hash, err := repository.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	if err := u.userRepo.Update(user); err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	return nil
}

func (u *authUsecase) newSession(user *authdomain.User) *authdto.TokenResponse {
	return &authdto.TokenResponse{
		AccessToken: u.sessions.Create(user.ID),
		TokenType:   "bearer",
		User:        user,
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("%w: authorization header required", shared.ErrAuthentication)
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", fmt.Errorf("%w: empty bearer token", shared.ErrAuthentication)
	}
	return token, nil
}
