// Package metadata caches the local account so that a later login can
// unlock the identity key without reaching the server.
package metadata

import "context"

// Keys of the metadata table.
const (
	KeyUsername   = "username"
	KeyPublicKey  = "public_key"
	KeyWrappedKey = "wrapped_key"
)

// Account is the cached identity of the last online login. WrappedKey is
// the marshaled password-wrapped private key; the plaintext key is never
// stored.
type Account struct {
	Username   string
	PublicKey  []byte
	WrappedKey []byte
}

type Repository interface {
	// Account returns nil when no complete account is cached.
	Account(ctx context.Context) (*Account, error)
	SaveAccount(ctx context.Context, a *Account) error
	// Value returns nil for an unset key.
	Value(ctx context.Context, key string) ([]byte, error)
	Clear(ctx context.Context) error
}
