package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/remedy/pkg/domain/types"
)

// Message is a single conversation turn
type Message struct {
	Role      types.Role `json:"role"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at,omitempty"`
}

// History is an ordered sequence of conversation turns. The pipeline treats
// it as read-only input; the caller owns storage and truncation.
type History []Message

// Recent returns the last n turns, or the whole history when shorter
func (h History) Recent(n int) History {
	if n <= 0 || len(h) <= n {
		return h
	}
	return h[len(h)-n:]
}

// SessionID identifies a conversation session
type SessionID string

// NewSessionID generates a new UUID v4 SessionID
func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

// String returns the string representation of SessionID
func (s SessionID) String() string {
	return string(s)
}
