// Package peerkeys caches the public keys of conversation partners so that
// messages can be encrypted without a server round trip.
package peerkeys

import (
	"context"
	"time"
)

// PeerKey is a cached public key.
type PeerKey struct {
	Username  string
	PublicKey []byte
	FetchedAt time.Time
}

// Repository returns (nil, nil) from Get for an unknown peer.
type Repository interface {
	Get(ctx context.Context, username string) (*PeerKey, error)
	Put(ctx context.Context, username string, publicKey []byte) error
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]*PeerKey, error)
	Clear(ctx context.Context) error
}
