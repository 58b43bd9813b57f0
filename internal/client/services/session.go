package services

import "github.com/dmitrijs2005/privachat/internal/common"

// Session is the unlocked identity of the logged-in user. The private key
// lives only in memory and is wiped on logout.
type Session struct {
	Username   string
	PublicKey  []byte
	PrivateKey []byte
	Offline    bool
}

// Wipe zeroes the private key.
func (s *Session) Wipe() {
	if s == nil {
		return
	}
	common.WipeByteArray(s.PrivateKey)
	s.PrivateKey = nil
}
