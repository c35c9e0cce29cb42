package usecase

import (
	authdomain "mailagent-backend/internal/auth/domain"
	authdto "mailagent-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication use cases
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Authenticate is the single entry point every protected route goes
	// through: it strips the Bearer prefix, resolves the session and loads
	// the user.
	Authenticate(authorizationHeader string) (*authdomain.User, error)

	Logout(authorizationHeader string)
	Refresh(authorizationHeader string) (*authdto.TokenResponse, error)

	VerifyEmail(token string) error
	ForgotPassword(email string) error
	ResetPassword(token, newPassword string) error
}
