package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/handler"
	"marketplace/internal/model"
)

func TestRegisterDuplicateConflicts(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"email":    "alice@example.com",
		"username": "alice",
		"password": "password123",
	}
	rec := env.do(http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.User
	env.decode(rec, &created)
	require.Equal(t, "alice@example.com", created.Email)
	require.False(t, created.IsAdmin)
	require.NotContains(t, rec.Body.String(), "password") // hash never serialized

	// Same email again.
	rec = env.do(http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusConflict, rec.Code)

	// Same username, different email.
	payload["email"] = "alice2@example.com"
	rec = env.do(http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusConflict, rec.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestLoginAndMeRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"username": "alice",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var token handler.TokenResponse
	env.decode(rec, &token)
	require.NotEmpty(t, token.AccessToken)
	require.Equal(t, "bearer", token.TokenType)

	rec = env.do(http.MethodGet, "/auth/me", token.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me model.User
	env.decode(rec, &me)
	require.Equal(t, "alice@example.com", me.Email)
	require.Equal(t, "alice", me.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("alice@example.com", "alice", false)

	rec := env.do(http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "not-the-password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRouteRejectsBadTokens(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code) // missing Authorization header

	rec = env.do(http.MethodGet, "/auth/me", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser("alice@example.com", "alice", false)

	rec := env.do(http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInactiveUserForbidden(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUser("alice@example.com", "alice", false)

	require.NoError(t, env.db.Model(user).Update("is_active", false).Error)

	rec := env.do(http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}
