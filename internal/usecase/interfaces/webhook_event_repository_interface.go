package interfaces

import (
	"context"

	"cartas_marketplace/internal/domain/entities"
)

// IWebhookEventRepository journals provider deliveries.
//
// Append stores the event and reports whether it was seen for the first time;
// a redelivery (same ID) returns false and leaves the stored record untouched.
type IWebhookEventRepository interface {
	Append(ctx context.Context, e entities.WebhookEvent) (bool, error)
	UpdateOutcome(ctx context.Context, id string, outcome entities.WebhookOutcome, detail string) error
}
