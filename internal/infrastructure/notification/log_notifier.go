package notification

import (
	"context"
	"log"

	"cartas_marketplace/internal/usecase/interfaces"
)

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func NewLogNotifier() LogNotifier {
	return LogNotifier{}
}

func (LogNotifier) Notify(_ context.Context, userID string, template string, payload map[string]any) error {
	log.Printf("[notification][log] user_id=%s template=%s payload=%v", userID, template, payload)
	return nil
}
