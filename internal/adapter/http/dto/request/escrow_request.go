package request

import (
	"strings"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase"
)

type SplitRequest struct {
	PlatformFeeMinorUnits int64  `json:"platformFeeMinorUnits"`
	SellerAccountRef      string `json:"sellerAccountRef"`
}

type CreateEscrowIntentRequest struct {
	TransactionID    string         `json:"transactionId" binding:"required"`
	AmountMinorUnits int64          `json:"amountMinorUnits" binding:"required"`
	Split            SplitRequest   `json:"split"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

func (r CreateEscrowIntentRequest) ToInput() usecase.CreateIntentInput {
	return usecase.CreateIntentInput{
		TransactionID:    strings.TrimSpace(r.TransactionID),
		AmountMinorUnits: r.AmountMinorUnits,
		Split: entities.Split{
			PlatformFeeMinorUnits: r.Split.PlatformFeeMinorUnits,
			SellerAccountRef:      strings.TrimSpace(r.Split.SellerAccountRef),
		},
		Metadata: r.Metadata,
	}
}

type ReleaseEscrowRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
}

type RefundEscrowRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
	Reason        string `json:"reason"`
}
