package models

import "time"

// RefreshToken is a server-side refresh token. It is single use: a
// refresh deletes it and issues a new one.
type RefreshToken struct {
	UserID  string
	Token   string
	Expires time.Time
}
