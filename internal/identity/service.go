package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/recordshop/vinylstore/internal/store"
)

var (
	ErrInvalidInput       = errors.New("missing required fields")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

type Service struct {
	store  store.Store
	tokens *TokenIssuer
}

func NewService(s store.Store, tokens *TokenIssuer) *Service {
	return &Service{store: s, tokens: tokens}
}

// Register creates a user with a bcrypt password hash and logs them in by
// issuing a session token.
func (s *Service) Register(ctx context.Context, username, email, phone, password string) (Profile, string, error) {
	if username == "" || email == "" || phone == "" || password == "" {
		return Profile{}, "", ErrInvalidInput
	}

	users, err := store.Load[User](ctx, s.store, store.Users)
	if err != nil {
		return Profile{}, "", err
	}
	for _, u := range users {
		if u.Email == email {
			return Profile{}, "", ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Profile{}, "", fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		Cart:         []CartLine{},
		Orders:       []string{},
	}
	users = append(users, u)
	if err := store.Replace(ctx, s.store, store.Users, users); err != nil {
		return Profile{}, "", err
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return Profile{}, "", err
	}
	return u.Profile(), token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (Profile, string, error) {
	if email == "" || password == "" {
		return Profile{}, "", ErrInvalidInput
	}

	users, err := store.Load[User](ctx, s.store, store.Users)
	if err != nil {
		return Profile{}, "", err
	}
	var user *User
	for i := range users {
		if users[i].Email == email {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return Profile{}, "", ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Profile{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return Profile{}, "", err
	}
	return user.Profile(), token, nil
}

// CurrentUser resolves a session token to the public profile of its user.
func (s *Service) CurrentUser(ctx context.Context, token string) (Profile, error) {
	if token == "" {
		return Profile{}, ErrUnauthenticated
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return Profile{}, err
	}

	users, err := store.Load[User](ctx, s.store, store.Users)
	if err != nil {
		return Profile{}, err
	}
	for _, u := range users {
		if u.ID == claims.UserID {
			return u.Profile(), nil
		}
	}
	return Profile{}, ErrUserNotFound
}
