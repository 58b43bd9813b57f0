package cryptox

import (
	"crypto/rand"
	"fmt"

	"github.com/dmitrijs2005/privachat/internal/common"
	"golang.org/x/crypto/nacl/box"
)

// Payload is the encrypted part of an envelope. The same symmetric key is
// wrapped twice so that both participants can read the message later.
type Payload struct {
	Ciphertext         []byte
	IV                 []byte
	EncryptedKey       []byte // for the recipient
	SenderEncryptedKey []byte // for the sender's own history
}

// Encode encrypts plaintext for recipientPublicKey and senderPublicKey.
//
// A fresh symmetric key is drawn for every call and wiped once both
// wrapped copies exist; it is never returned.
func Encode(plaintext, recipientPublicKey, senderPublicKey []byte) (*Payload, error) {
	recipient, err := toArray(recipientPublicKey)
	if err != nil {
		return nil, fmt.Errorf("recipient public key: %w", err)
	}
	sender, err := toArray(senderPublicKey)
	if err != nil {
		return nil, fmt.Errorf("sender public key: %w", err)
	}

	key := common.GenerateRandByteArray(SymmetricKeySize)
	defer common.WipeByteArray(key)

	ciphertext, iv, err := seal(key, plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt message: %w", err)
	}

	forRecipient, err := box.SealAnonymous(nil, key, recipient, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("wrap key for recipient: %w", err)
	}
	forSender, err := box.SealAnonymous(nil, key, sender, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("wrap key for sender: %w", err)
	}

	return &Payload{
		Ciphertext:         ciphertext,
		IV:                 iv,
		EncryptedKey:       forRecipient,
		SenderEncryptedKey: forSender,
	}, nil
}

// Decode opens p with myPrivateKey. isSelfSent selects the sender's copy of
// the wrapped key. Every authentication failure is reported as
// ErrDecryption; garbage is never returned as plaintext.
func Decode(p *Payload, myPrivateKey []byte, isSelfSent bool) ([]byte, error) {
	if p == nil {
		return nil, ErrDecryption
	}

	priv, err := toArray(myPrivateKey)
	if err != nil {
		return nil, ErrDecryption
	}
	pubRaw, err := PublicKeyFromPrivate(myPrivateKey)
	if err != nil {
		return nil, ErrDecryption
	}
	pub, _ := toArray(pubRaw)

	wrapped := p.EncryptedKey
	if isSelfSent {
		wrapped = p.SenderEncryptedKey
	}

	key, ok := box.OpenAnonymous(nil, wrapped, pub, priv)
	if !ok {
		return nil, ErrDecryption
	}
	defer common.WipeByteArray(key)

	return open(key, p.IV, p.Ciphertext, ErrDecryption)
}
