package models

import (
	"strings"
	"time"
)

// FriendRequestStatus is the lifecycle state of a FriendRequest.
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestRejected FriendRequestStatus = "rejected"
)

// Terminal reports whether no further transition is allowed.
func (s FriendRequestStatus) Terminal() bool {
	return s == FriendRequestAccepted || s == FriendRequestRejected
}

// ParseDecision maps a recipient's answer onto a terminal status.
// It accepts "accept"/"accepted" and "reject"/"rejected", case-insensitively.
func ParseDecision(s string) (FriendRequestStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accept", "accepted":
		return FriendRequestAccepted, true
	case "reject", "rejected":
		return FriendRequestRejected, true
	}
	return "", false
}

// FriendRequest asks RecipientID to become a contact of SenderID.
type FriendRequest struct {
	ID                string
	SenderID          string
	SenderUsername    string
	RecipientID       string
	RecipientUsername string
	Status            FriendRequestStatus
	CreatedAt         time.Time
	RespondedAt       *time.Time
}
