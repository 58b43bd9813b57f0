package cryptox

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/privachat/internal/common"
)

// WrappedBundle is a private key encrypted under a password-derived key.
// It is what the server stores in place of the private key. Byte fields
// marshal to base64 in JSON.
type WrappedBundle struct {
	Salt       []byte `json:"salt"`
	IV         []byte `json:"iv"`
	Ciphertext []byte `json:"ciphertext"`
}

// WrapPrivateKey derives a key from password with argon2id over a random
// salt and encrypts privateKey with AES-256-GCM under a random IV.
func WrapPrivateKey(privateKey, password []byte) (*WrappedBundle, error) {
	if len(privateKey) == 0 {
		return nil, ErrInvalidKey
	}

	salt := common.GenerateRandByteArray(SaltSize)
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)

	ciphertext, iv, err := seal(key, privateKey)
	if err != nil {
		return nil, fmt.Errorf("wrap private key: %w", err)
	}

	return &WrappedBundle{Salt: salt, IV: iv, Ciphertext: ciphertext}, nil
}

// UnwrapPrivateKey reverses WrapPrivateKey. A wrong password and a
// tampered bundle are indistinguishable and both yield ErrAuthentication.
func UnwrapPrivateKey(b *WrappedBundle, password []byte) ([]byte, error) {
	if b == nil || len(b.Salt) == 0 {
		return nil, ErrAuthentication
	}

	key := DeriveKey(password, b.Salt)
	defer common.WipeByteArray(key)

	return open(key, b.IV, b.Ciphertext, ErrAuthentication)
}

// Marshal renders the bundle in its storage form.
func (b *WrappedBundle) Marshal() ([]byte, error) {
	return json.Marshal(b)
}

// ParseWrappedBundle reads a bundle produced by Marshal.
func ParseWrappedBundle(data []byte) (*WrappedBundle, error) {
	b := &WrappedBundle{}
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("parse wrapped key: %w", err)
	}
	if len(b.Salt) == 0 || len(b.IV) == 0 || len(b.Ciphertext) == 0 {
		return nil, fmt.Errorf("parse wrapped key: %w", ErrAuthentication)
	}
	return b, nil
}
