package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

func newAuthTestEnv(t *testing.T) (*fakeUserRepo, AuthService) {
	t.Helper()

	// Pin the config so token generation never reads config.yaml.
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.JWT.RefreshTTL = 24
	config.AppConfig = cfg

	userRepo := newFakeUserRepo()
	return userRepo, NewAuthService(userRepo, email.NewLogProvider())
}

func TestRegisterCreatesPendingUser(t *testing.T) {
	userRepo, svc := newAuthTestEnv(t)

	user, err := svc.Register(dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
		Role:     "student",
	})
	require.NoError(t, err)
	assert.False(t, user.IsVerified)
	assert.Equal(t, "pending", string(user.Status))

	stored, err := userRepo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.VerificationToken)
	assert.NotEqual(t, "supersecret", stored.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	_, svc := newAuthTestEnv(t)

	req := dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
		Role:     "mentor",
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	_, svc := newAuthTestEnv(t)

	_, err := svc.Register(dto.RegisterRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "supersecret",
		Role:     "admin",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestVerifyThenLogin(t *testing.T) {
	userRepo, svc := newAuthTestEnv(t)

	_, err := svc.Register(dto.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "supersecret",
		Role:     "student",
	})
	require.NoError(t, err)

	// Login before verification must fail.
	_, err = svc.Login(dto.LoginRequest{Email: "bob@example.com", Password: "supersecret"})
	require.Error(t, err)

	stored, err := userRepo.FindByEmail("bob@example.com")
	require.NoError(t, err)

	resp, err := svc.VerifyEmail(stored.VerificationToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.True(t, resp.User.IsVerified)

	resp, err = svc.Login(dto.LoginRequest{Email: "bob@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	userRepo, svc := newAuthTestEnv(t)

	_, err := svc.Register(dto.RegisterRequest{
		Name:     "Carol",
		Email:    "carol@example.com",
		Password: "supersecret",
		Role:     "student",
	})
	require.NoError(t, err)

	stored, _ := userRepo.FindByEmail("carol@example.com")
	_, err = svc.VerifyEmail(stored.VerificationToken)
	require.NoError(t, err)

	_, err = svc.Login(dto.LoginRequest{Email: "carol@example.com", Password: "wrong-password"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
}

func TestRefreshRotatesToken(t *testing.T) {
	userRepo, svc := newAuthTestEnv(t)

	_, err := svc.Register(dto.RegisterRequest{
		Name:     "Dan",
		Email:    "dan@example.com",
		Password: "supersecret",
		Role:     "mentor",
	})
	require.NoError(t, err)

	stored, _ := userRepo.FindByEmail("dan@example.com")
	first, err := svc.VerifyEmail(stored.VerificationToken)
	require.NoError(t, err)

	second, err := svc.Refresh(first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The first refresh token is single use.
	_, err = svc.Refresh(first.RefreshToken)
	require.Error(t, err)
}
