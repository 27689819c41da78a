package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is an immutable note authored by a user. UserID is a
// back-reference checked once at creation time; messages are never
// updated afterwards.
type Message struct {
	ID        string
	Content   string
	UserID    string
	CreatedAt time.Time
}

// NewMessage builds a message with a generated id and the current UTC
// time as creation timestamp.
func NewMessage(content, userID string) Message {
	return Message{
		ID:        uuid.New().String(),
		Content:   content,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}
