// Package client contains the transport layer of the CLI: the Client
// contract for talking to the authkeeper server and the local session
// database initialization.
package client

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/client/models"
)

// SignUpData carries the five registration fields.
type SignUpData struct {
	Name        string `json:"name"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// Client is the API surface the session service needs from the server.
//
// SignUp returns the server's acknowledgment message. Login returns the
// minted session token. Users and User take the bearer token explicitly; the
// caller owns token storage.
type Client interface {
	SignUp(ctx context.Context, data SignUpData) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Users(ctx context.Context, token string) ([]models.User, error)
	User(ctx context.Context, token, id string) (*models.User, error)
	Ping(ctx context.Context) error
}
