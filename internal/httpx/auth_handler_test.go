package httpx_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordshop/vinylstore/internal/identity"
)

func TestRegisterEndpoint(t *testing.T) {
	app := newTestApp(t)

	t.Run("created", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"username": "ana", "email": "ana@example.com", "phone": "555-0100", "password": "hunter22",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody[map[string]any](t, rec)
		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ana@example.com", user["email"])
		assert.NotContains(t, user, "passwordHash")
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"username": "other", "email": "ana@example.com", "phone": "555-0101", "password": "x",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"username": "bob",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/auth/register", "not an object")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "ana", "ana@example.com")

	t.Run("ok", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email": "ana@example.com", "password": "hunter22",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var sawCookie bool
		for _, c := range rec.Result().Cookies() {
			if c.Name == "auth_token" && c.Value != "" {
				sawCookie = true
				assert.True(t, c.HttpOnly)
			}
		}
		assert.True(t, sawCookie, "login must set the session cookie")
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email": "ana@example.com", "password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email": "ghost@example.com", "password": "hunter22",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMeEndpoint(t *testing.T) {
	app := newTestApp(t)
	userID, cookie := app.register(t, "ana", "ana@example.com")

	t.Run("with session", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/auth/me", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		profile := decodeBody[identity.Profile](t, rec)
		assert.Equal(t, userID, profile.ID)
		assert.Equal(t, "ana@example.com", profile.Email)
	})

	t.Run("no cookie", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/auth/me", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/auth/me", nil,
			&http.Cookie{Name: "auth_token", Value: "garbage"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	app := newTestApp(t)
	_, cookie := app.register(t, "ana", "ana@example.com")

	rec := app.do(t, http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "auth_token" {
			cleared = c.Value == "" && c.MaxAge < 0
		}
	}
	assert.True(t, cleared, "logout must instruct the client to discard the token")
}
