package interfaces

import (
	"context"
	"errors"
	"net/http"

	"cartas_marketplace/internal/domain/entities"
)

var ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

type CreateIntentRequest struct {
	TransactionID    string
	AmountMinorUnits int64
	Split            entities.Split
	Metadata         map[string]any
}

type CreateIntentResult struct {
	ProviderIntentID string
	Status           entities.EscrowStatus
}

// WebhookRequest is the raw inbound delivery as received by the HTTP layer.
type WebhookRequest struct {
	Headers http.Header
	Query   map[string]string
	Body    []byte
}

// WebhookNotification is what a provider extracted from a delivery.
// Status is empty when the provider reported a state the escrow flow does not track.
type WebhookNotification struct {
	ProviderEventID  string
	ProviderIntentID string
	ProviderStatus   string
	Status           entities.EscrowStatus
}

// IEscrowProvider abstracts external escrow/payment providers (e.g. Mercado Pago).
//
// Retries and timeouts belong to the implementation. Any returned error means the
// provider did not perform the operation.
type IEscrowProvider interface {
	Name() string
	CreateIntent(ctx context.Context, req CreateIntentRequest) (CreateIntentResult, error)
	ParseWebhook(ctx context.Context, req WebhookRequest) (WebhookNotification, error)
	Release(ctx context.Context, providerIntentID string, split entities.Split) error
	Refund(ctx context.Context, providerIntentID string, reason string) error
}
