// Package users implements the authentication service: signup, login,
// token verification and the protected directory queries.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
)

type Service struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo users.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// SignUp validates the submitted fields, hashes the password and persists a
// new user. It never returns a token; the caller has to log in separately.
//
// The pre-insert existence check is advisory only: two concurrent signups
// with the same email can both pass it, and then the store's unique
// constraint rejects the loser. Both paths surface common.ErrUserAlreadyExists.
func (s *Service) SignUp(ctx context.Context, name, lastName, email, password, phoneNumber string) (*models.User, error) {

	if name == "" || lastName == "" || email == "" || password == "" || phoneNumber == "" {
		return nil, common.ErrValidation
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrUserAlreadyExists
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		Name:         name,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  phoneNumber,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrUserAlreadyExists) {
			return nil, common.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and mints a session token with the user id as
// subject. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	if email == "" || password == "" {
		return "", common.ErrValidation
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrInternal
	}

	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrInternal
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}

	return token, nil
}

// Authorize verifies a presented token and returns its subject id.
// Pure computation, no store access.
func (s *Service) Authorize(ctx context.Context, token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// List returns all users in store order.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, common.ErrInternal
	}
	return result, nil
}

// Get returns a single user by id, common.ErrNotFound on a miss.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}
