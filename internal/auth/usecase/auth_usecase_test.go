package usecase

import (
	"errors"
	"testing"
	"time"

	authdomain "mailagent-backend/internal/auth/domain"
	authdto "mailagent-backend/internal/auth/dto"
	"mailagent-backend/internal/auth/session"
	"mailagent-backend/internal/shared"
	"mailagent-backend/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]*authdomain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*authdomain.User)}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		VerifyTokenExpiry: 24 * time.Hour,
		ResetTokenExpiry:  time.Hour,
		SessionTTL:        24 * time.Hour,
	}
}

func newTestAuth(t *testing.T) (AuthUsecase, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, session.NewRegistry(24*time.Hour), testConfig(), zap.NewNop())
	return uc, repo
}

func TestRegisterThenLogin(t *testing.T) {
	uc, _ := newTestAuth(t)

	registered, err := uc.Register(&authdto.RegisterRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "bearer", registered.TokenType)
	assert.NotEmpty(t, registered.User.ID)

	loggedIn, err := uc.Login(&authdto.LoginRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.AccessToken)
	assert.NotEqual(t, registered.AccessToken, loggedIn.AccessToken)
	assert.NotNil(t, loggedIn.User.LastLogin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "other99"})
	assert.True(t, errors.Is(err, shared.ErrConflict))
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.True(t, errors.Is(err, shared.ErrAuthentication))

	_, err = uc.Login(&authdto.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	assert.True(t, errors.Is(err, shared.ErrAuthentication))
}

func TestPasswordHashNeverStoredPlain(t *testing.T) {
	uc, repo := newTestAuth(t)

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	stored := repo.users[resp.User.ID]
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "secret1")
}

func TestAuthenticateSessionLifecycle(t *testing.T) {
	uc, _ := newTestAuth(t)

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	header := "Bearer " + resp.AccessToken
	user, err := uc.Authenticate(header)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	uc.Logout(header)
	_, err = uc.Authenticate(header)
	assert.True(t, errors.Is(err, shared.ErrAuthentication))
}

func TestAuthenticateRejectsGarbageHeaders(t *testing.T) {
	uc, _ := newTestAuth(t)

	for _, header := range []string{"", "Bearer ", "Bearer not-a-session"} {
		_, err := uc.Authenticate(header)
		assert.True(t, errors.Is(err, shared.ErrAuthentication), "header %q", header)
	}
}

func TestRefreshIssuesNewToken(t *testing.T) {
	uc, _ := newTestAuth(t)

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	refreshed, err := uc.Refresh("Bearer " + resp.AccessToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.AccessToken, refreshed.AccessToken)

	// The old token stays valid until it is revoked or expires.
	_, err = uc.Authenticate("Bearer " + resp.AccessToken)
	assert.NoError(t, err)
}

func TestVerifyEmailSingleUse(t *testing.T) {
	uc, repo := newTestAuth(t)

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	token := repo.users[resp.User.ID].VerificationToken
	require.NotEmpty(t, token)

	require.NoError(t, uc.VerifyEmail(token))
	assert.True(t, repo.users[resp.User.ID].IsVerified)

	// Replaying the consumed token fails.
	err = uc.VerifyEmail(token)
	assert.True(t, errors.Is(err, shared.ErrTokenInvalid))
}

func TestVerifyEmailTamperedToken(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	err = uc.VerifyEmail("not.a.jwt")
	assert.True(t, errors.Is(err, shared.ErrTokenInvalid))
}

func TestResetPasswordFlow(t *testing.T) {
	uc, repo := newTestAuth(t)

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, uc.ForgotPassword("a@x.com"))
	token := repo.users[resp.User.ID].ResetToken
	require.NotEmpty(t, token)

	require.NoError(t, uc.ResetPassword(token, "newpass7"))

	_, err = uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.Error(t, err)
	_, err = uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "newpass7"})
	assert.NoError(t, err)

	// Token was cleared on use.
	err = uc.ResetPassword(token, "again123")
	assert.True(t, errors.Is(err, shared.ErrTokenInvalid))
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	uc, _ := newTestAuth(t)
	assert.NoError(t, uc.ForgotPassword("ghost@x.com"))
}

func TestResetTokenCannotVerifyEmail(t *testing.T) {
	uc, repo := newTestAuth(t)

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, uc.ForgotPassword("a@x.com"))
	resetToken := repo.users[resp.User.ID].ResetToken

	err = uc.VerifyEmail(resetToken)
	assert.True(t, errors.Is(err, shared.ErrTokenInvalid))
}
