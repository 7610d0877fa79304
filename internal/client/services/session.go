// Package services contains the application services of the CLI. This file
// defines the session service: registration, login, logout and the
// token-gated directory queries, with the token persisted locally so a
// session survives restarts.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authkeeper/internal/client/client"
	"github.com/dmitrijs2005/authkeeper/internal/client/models"
	"github.com/dmitrijs2005/authkeeper/internal/client/repositories/metadata"
)

// tokenKey is the fixed key the session token is stored under.
const tokenKey = "token"

// ErrNotLoggedIn is returned by protected calls when no token is held.
var ErrNotLoggedIn = errors.New("no token found, please login first")

// SessionService drives the client session lifecycle.
//
// Contract:
//   - Register: create an account; never logs the user in.
//   - Login: authenticate and persist the received token.
//   - Logout: discard the stored token (client-side only).
//   - LoggedIn: report whether a token is currently held.
//   - Users / User: protected queries; a 401/403 response drops the stored
//     token so the next call starts from the anonymous state.
//   - Ping: check server liveness.
type SessionService interface {
	Register(ctx context.Context, data client.SignUpData) (string, error)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) bool
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id string) (*models.User, error)
	Ping(ctx context.Context) error
}

type sessionService struct {
	client client.Client
	store  metadata.Repository
}

// NewSessionService constructs a SessionService bound to the given API
// client and local store.
func NewSessionService(c client.Client, store metadata.Repository) SessionService {
	return &sessionService{client: c, store: store}
}

func (s *sessionService) Register(ctx context.Context, data client.SignUpData) (string, error) {
	return s.client.SignUp(ctx, data)
}

func (s *sessionService) Login(ctx context.Context, email, password string) error {
	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	return s.store.Set(ctx, tokenKey, []byte(token))
}

func (s *sessionService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, tokenKey)
}

func (s *sessionService) LoggedIn(ctx context.Context) bool {
	token, err := s.store.Get(ctx, tokenKey)
	return err == nil && len(token) > 0
}

func (s *sessionService) Users(ctx context.Context) ([]models.User, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.client.Users(ctx, token)
	if err != nil {
		return nil, s.dropTokenIfRejected(ctx, err)
	}
	return users, nil
}

func (s *sessionService) User(ctx context.Context, id string) (*models.User, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.client.User(ctx, token, id)
	if err != nil {
		return nil, s.dropTokenIfRejected(ctx, err)
	}
	return user, nil
}

func (s *sessionService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *sessionService) token(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	if len(token) == 0 {
		return "", ErrNotLoggedIn
	}
	return string(token), nil
}

// dropTokenIfRejected clears the stored token when the server rejected it,
// mirroring the anonymous transition on expiry. The original error is
// returned either way so the caller can surface the server's message.
func (s *sessionService) dropTokenIfRejected(ctx context.Context, err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		_ = s.store.Delete(ctx, tokenKey)
	}
	return err
}
