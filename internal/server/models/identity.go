// Package models defines server-side data models persisted in the database.
package models

import "time"

// WrappedKey is the password-wrapped private key as produced by the
// client. The server stores it opaquely and hands it back on login.
type WrappedKey struct {
	Salt       []byte
	IV         []byte
	Ciphertext []byte
}

// Identity is a registered user.
type Identity struct {
	ID           string
	Username     string
	PasswordHash []byte
	PublicKey    []byte
	WrappedKey   WrappedKey
	DisplayName  string
	About        string
	CreatedAt    time.Time
}

// Profile is the public view of an identity.
type Profile struct {
	ID          string
	Username    string
	DisplayName string
	About       string
	PublicKey   []byte
}

// Profile strips credentials from i.
func (i *Identity) Profile() *Profile {
	return &Profile{
		ID:          i.ID,
		Username:    i.Username,
		DisplayName: i.DisplayName,
		About:       i.About,
		PublicKey:   i.PublicKey,
	}
}
