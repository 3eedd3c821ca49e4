package response

import (
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase"
)

type EscrowTotalsResponse struct {
	EscrowID         string `json:"escrowId"`
	AmountMinorUnits int64  `json:"amountMinorUnits"`
	FeeMinorUnits    int64  `json:"feeMinorUnits"`
	Status           string `json:"status"`
}

// TransactionResponse exposes status and currentStep separately; they are always equal.
type TransactionResponse struct {
	ID           string                `json:"id"`
	QuotaID      string                `json:"quotaId"`
	ProposalID   string                `json:"proposalId"`
	BuyerID      string                `json:"buyerId"`
	SellerID     string                `json:"sellerId"`
	Status       string                `json:"status"`
	CurrentStep  string                `json:"currentStep"`
	StartedAt    time.Time             `json:"startedAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	EscrowTotals *EscrowTotalsResponse `json:"escrowTotals,omitempty"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		QuotaID:     t.QuotaID,
		ProposalID:  t.ProposalID,
		BuyerID:     t.BuyerID,
		SellerID:    t.SellerID,
		Status:      string(t.Status),
		CurrentStep: string(t.CurrentStep()),
		StartedAt:   t.StartedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTransactionView(v usecase.TransactionView) TransactionResponse {
	res := FromTransaction(v.Transaction)
	if v.Escrow != nil {
		res.EscrowTotals = &EscrowTotalsResponse{
			EscrowID:         v.Escrow.EscrowID,
			AmountMinorUnits: v.Escrow.AmountMinorUnits,
			FeeMinorUnits:    v.Escrow.FeeMinorUnits,
			Status:           string(v.Escrow.Status),
		}
	}
	return res
}
