package usecase

import (
	"errors"
	"testing"
	"time"

	"mailagent-backend/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := signToken(testSecret, "user-1", PurposeVerify, time.Hour)
	require.NoError(t, err)

	claims, err := decodeToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, PurposeVerify, claims.Purpose)
}

func TestTokenExpired(t *testing.T) {
	token, err := signToken(testSecret, "user-1", PurposeReset, -time.Minute)
	require.NoError(t, err)

	_, err = decodeToken(testSecret, token)
	assert.True(t, errors.Is(err, shared.ErrTokenExpired))
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := signToken(testSecret, "user-1", PurposeVerify, time.Hour)
	require.NoError(t, err)

	_, err = decodeToken([]byte("other-secret"), token)
	assert.True(t, errors.Is(err, shared.ErrTokenInvalid))
}

func TestTokenMalformed(t *testing.T) {
	for _, garbage := range []string{"", "abc", "a.b.c"} {
		_, err := decodeToken(testSecret, garbage)
		assert.True(t, errors.Is(err, shared.ErrTokenInvalid), "token %q", garbage)
	}
}
