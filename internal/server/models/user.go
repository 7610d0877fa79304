// Package models holds the server-side domain records.
package models

import "time"

// User is a registered account. PasswordHash holds the bcrypt hash of the
// password; the plaintext never reaches storage or logs. Email is unique
// (byte-exact) across the collection, enforced by the store.
type User struct {
	ID           string
	Name         string
	LastName     string
	Email        string
	PasswordHash string
	PhoneNumber  string
	CreatedAt    time.Time
}
