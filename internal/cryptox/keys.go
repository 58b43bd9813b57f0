package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

// KeySize is the length of X25519 public and private keys.
const KeySize = 32

// GenerateIdentityKeypair creates a long-lived X25519 identity keypair.
// The public half is published through the server; the private half must
// only ever leave the client wrapped under a password (see WrapPrivateKey).
func GenerateIdentityKeypair() (publicKey, privateKey []byte, err error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return pub[:], priv[:], nil
}

// PublicKeyFromPrivate recomputes the public half of an identity key.
func PublicKeyFromPrivate(privateKey []byte) ([]byte, error) {
	if len(privateKey) != KeySize {
		return nil, ErrInvalidKey
	}
	return curve25519.X25519(privateKey, curve25519.Basepoint)
}

// ExportKey encodes key material for transport or display.
func ExportKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// ImportPublicKey decodes an exported public key and checks its size.
func ImportPublicKey(encoded string) ([]byte, error) {
	return importKey(encoded)
}

// ImportPrivateKey decodes an exported private key and checks its size.
func ImportPrivateKey(encoded string) ([]byte, error) {
	return importKey(encoded)
}

func importKey(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, KeySize, len(raw))
	}
	return raw, nil
}

func toArray(key []byte) (*[KeySize]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}
	var out [KeySize]byte
	copy(out[:], key)
	return &out, nil
}
