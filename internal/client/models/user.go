// Package models holds the client-side view of server records.
package models

// User is the wire form of a user record as returned by the server. The
// server never sends password material, so there is no field for it.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
