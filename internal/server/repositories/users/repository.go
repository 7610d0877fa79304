// Package users contains the credential store: the Repository contract and
// its Postgres and in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// Repository is the credential store contract.
//
// Create must fail with common.ErrUserAlreadyExists when a record with the
// same email is already present; the store's unique-key constraint, not any
// prior existence check, is the race-safe enforcement point. List returns
// records in insertion order.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}
