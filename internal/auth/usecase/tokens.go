package usecase

import (
	"errors"
	"time"

	"mailagent-backend/internal/shared"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose scopes a signed token to the single flow it was issued for.
type TokenPurpose string

const (
	PurposeVerify TokenPurpose = "verify"
	PurposeReset  TokenPurpose = "reset"
)

// TokenClaims embeds the registered claims plus the user and purpose.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID  string       `json:"user_id"`
	Purpose TokenPurpose `json:"purpose"`
}

func signToken(secret []byte, userID string, purpose TokenPurpose, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:  userID,
		Purpose: purpose,
	})
	return token.SignedString(secret)
}

// decodeToken distinguishes expiry from every other failure so callers can
// give differentiated user feedback.
func decodeToken(secret []byte, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, shared.ErrTokenExpired
		}
		return nil, shared.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, shared.ErrTokenInvalid
	}
	return claims, nil
}
