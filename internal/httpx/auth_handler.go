package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/recordshop/vinylstore/internal/identity"
)

// sessionCookie carries the signed session token; httpOnly so the browser
// UI never reads it directly.
const sessionCookie = "auth_token"

type AuthHandler struct {
	Identity      *identity.Service
	TokenTTL      time.Duration
	SecureCookies bool
	Log           zerolog.Logger
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(r *chi.Mux) {
	r.Post("/api/auth/register", h.register)
	r.Post("/api/auth/login", h.login)
	r.Post("/api/auth/logout", h.logout)
	r.Get("/api/auth/me", h.me)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	profile, token, err := h.Identity.Register(r.Context(), req.Username, req.Email, req.Phone, req.Password)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}

	h.setSession(w, token)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "registration successful",
		"user":    profile,
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	profile, token, err := h.Identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// An unknown email is a 401 here, not a 404: login reveals only
		// that the pair did not match.
		if errors.Is(err, identity.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeServiceError(w, h.Log, err)
		return
	}

	h.setSession(w, token)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "login successful",
		"user":    profile,
	})
}

// logout only instructs the client to discard the token; the server keeps
// no session state.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "logout successful"})
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	profile, err := h.Identity.CurrentUser(r.Context(), cookie.Value)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *AuthHandler) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.TokenTTL / time.Second),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
