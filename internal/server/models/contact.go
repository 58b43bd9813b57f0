package models

import "time"

// Contact is one side of an accepted friendship as seen by its owner.
type Contact struct {
	UserID      string
	Username    string
	DisplayName string
	About       string
	Since       time.Time
}
