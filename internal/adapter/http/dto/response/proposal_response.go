package response

import (
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase"

	"github.com/shopspring/decimal"
)

type ProposalResponse struct {
	ID           string          `json:"id"`
	QuotaID      string          `json:"quotaId"`
	BuyerID      string          `json:"buyerId"`
	Premium      decimal.Decimal `json:"premium"`
	TermMonths   *int            `json:"termMonths,omitempty"`
	Status       string          `json:"status"`
	CancelReason *string         `json:"cancelReason,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	CancelledAt  *time.Time      `json:"cancelledAt,omitempty"`
	AcceptedAt   *time.Time      `json:"acceptedAt,omitempty"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:           p.ID,
		QuotaID:      p.QuotaID,
		BuyerID:      p.BuyerID,
		Premium:      p.Premium,
		TermMonths:   p.TermMonths,
		Status:       string(p.Status),
		CancelReason: p.CancelReason,
		CreatedAt:    p.CreatedAt,
		CancelledAt:  p.CancelledAt,
		AcceptedAt:   p.AcceptedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

type AcceptProposalResponse struct {
	Proposal    ProposalResponse    `json:"proposal"`
	Transaction TransactionResponse `json:"transaction"`
}

func FromAcceptProposal(r usecase.AcceptProposalResult) AcceptProposalResponse {
	return AcceptProposalResponse{
		Proposal:    FromProposal(r.Proposal),
		Transaction: FromTransaction(r.Transaction),
	}
}
