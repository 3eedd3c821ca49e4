package notification

import (
	"time"

	"github.com/google/uuid"
)

// Message is the envelope every sink delivers.
type Message struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	Template   string         `json:"template"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

func newMessage(userID, template string, payload map[string]any) Message {
	return Message{
		ID:         uuid.NewString(),
		UserID:     userID,
		Template:   template,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}
