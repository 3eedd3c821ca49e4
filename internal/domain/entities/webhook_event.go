package entities

import "time"

type WebhookOutcome string

const (
	WebhookOutcomeReceived  WebhookOutcome = "received"
	WebhookOutcomeMatched   WebhookOutcome = "matched"
	WebhookOutcomeDuplicate WebhookOutcome = "duplicate"
	WebhookOutcomeUnmatched WebhookOutcome = "unmatched"
	WebhookOutcomeIgnored   WebhookOutcome = "ignored"
	WebhookOutcomeRejected  WebhookOutcome = "rejected"
	WebhookOutcomeFailed    WebhookOutcome = "failed"
)

// WebhookEvent is the journal record of one provider delivery.
//
// ID is derived from the provider and its event id so redeliveries collide.
type WebhookEvent struct {
	ID               string         `json:"id"`
	Provider         string         `json:"provider"`
	ProviderEventID  string         `json:"provider_event_id"`
	ProviderIntentID string         `json:"provider_intent_id,omitempty"`
	ProviderStatus   string         `json:"provider_status,omitempty"`
	Payload          []byte         `json:"payload,omitempty"`
	Outcome          WebhookOutcome `json:"outcome"`
	Detail           string         `json:"detail,omitempty"`
	ReceivedAt       time.Time      `json:"received_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
