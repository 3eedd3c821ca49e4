package response

import (
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase"
)

type EscrowResponse struct {
	EscrowID         string     `json:"escrowId"`
	TransactionID    string     `json:"transactionId"`
	Status           string     `json:"status"`
	Provider         string     `json:"provider"`
	ProviderIntentID string     `json:"providerIntentId,omitempty"`
	AmountMinorUnits int64      `json:"amountMinorUnits"`
	FeeMinorUnits    int64      `json:"feeMinorUnits"`
	AuthorizedAt     *time.Time `json:"authorizedAt,omitempty"`
	ReleasedAt       *time.Time `json:"releasedAt,omitempty"`
	RefundedAt       *time.Time `json:"refundedAt,omitempty"`
	RefundReason     *string    `json:"refundReason,omitempty"`
}

func FromEscrow(e entities.Escrow) EscrowResponse {
	return EscrowResponse{
		EscrowID:         e.ID,
		TransactionID:    e.TransactionID,
		Status:           string(e.Status),
		Provider:         e.Provider,
		ProviderIntentID: e.ProviderIntentID,
		AmountMinorUnits: e.AmountMinorUnits,
		FeeMinorUnits:    e.FeeMinorUnits,
		AuthorizedAt:     e.AuthorizedAt,
		ReleasedAt:       e.ReleasedAt,
		RefundedAt:       e.RefundedAt,
		RefundReason:     e.RefundReason,
	}
}

// WebhookAckResponse is returned to the provider for every delivery.
type WebhookAckResponse struct {
	Received bool   `json:"received"`
	EventID  string `json:"eventId,omitempty"`
	Outcome  string `json:"outcome"`
}

func FromWebhookResult(r usecase.WebhookResult) WebhookAckResponse {
	return WebhookAckResponse{Received: true, EventID: r.EventID, Outcome: string(r.Outcome)}
}
