package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mentorhub_backend/internal/models"
)

// CreateUser inserts a verified, active user with a hashed password.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User, rawPassword string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	require.NoError(t, err)
	user.PasswordHash = string(hash)

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	user.IsVerified = true

	require.NoError(t, db.Create(user).Error)
}

// CreateAndLoginUser inserts a user and logs them in through the API,
// returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Name:  name,
		Email: email,
		Role:  role,
	}
	CreateUser(t, ts.DB, user, password)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: %s", body)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginMentor creates a mentor with a unique email.
func CreateAndLoginMentor(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("mentor_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Mentor", email, "password123", models.UserRoleMentor)
}

// CreateAndLoginMentee creates a student with a unique email.
func CreateAndLoginMentee(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("mentee_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Mentee", email, "password123", models.UserRoleStudent)
}
