// Package cryptox implements the client-side cryptography of PrivaChat:
// identity keys, password wrapping of the private key and the hybrid
// envelope codec. Nothing here keeps state between calls, so every
// function is safe for concurrent use.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// SymmetricKeySize is the AES-256 key length used for message and
	// wrapping keys.
	SymmetricKeySize = 32
	// NonceSize is the AES-GCM IV length.
	NonceSize = 12
	// SaltSize is the argon2id salt length for password wrapping.
	SaltSize = 16
)

// argon2id cost parameters.
const (
	kdfTime    = 1
	kdfMemory  = 64 * 1024
	kdfThreads = 4
)

var (
	// ErrAuthentication is returned when a wrapped private key cannot be
	// opened: wrong password or a corrupted bundle.
	ErrAuthentication = errors.New("invalid password or corrupted key data")
	// ErrDecryption is returned when an envelope fails authentication:
	// tampering, the wrong private key, or corrupted storage.
	ErrDecryption = errors.New("message decryption failed")
	// ErrInvalidKey reports key material of the wrong shape.
	ErrInvalidKey = errors.New("invalid key")
)

// DeriveKey stretches password with argon2id into a 32-byte AES key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, kdfTime, kdfMemory, kdfThreads, SymmetricKeySize)
}

// newGCM builds AES-GCM for key.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return cipher.NewGCM(block)
}

// seal encrypts plaintext under key with a fresh random IV.
// The returned ciphertext carries the GCM tag.
func seal(key, plaintext []byte) (ciphertext, iv []byte, err error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	iv = make([]byte, aead.NonceSize())
	if _, err := rand.Read(iv); err != nil {
		return nil, nil, err
	}

	return aead.Seal(nil, iv, plaintext, nil), iv, nil
}

// open is the inverse of seal. Any failure, including a malformed IV,
// is reported as the caller-supplied sentinel.
func open(key, iv, ciphertext []byte, failure error) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, failure
	}
	if len(iv) != aead.NonceSize() {
		return nil, failure
	}
	plaintext, err := aead.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, failure
	}
	return plaintext, nil
}
