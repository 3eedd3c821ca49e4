package request

import (
	"strings"

	"cartas_marketplace/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateProposalRequest accepts premium as a JSON number or a decimal string.
type CreateProposalRequest struct {
	QuotaID    string          `json:"quotaId" binding:"required"`
	Premium    decimal.Decimal `json:"premium"`
	TermMonths *int            `json:"termMonths,omitempty"`
}

func (r CreateProposalRequest) ToInput() usecase.CreateProposalInput {
	return usecase.CreateProposalInput{
		QuotaID:    strings.TrimSpace(r.QuotaID),
		Premium:    r.Premium,
		TermMonths: r.TermMonths,
	}
}

type CancelProposalRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type AcceptProposalRequest struct {
	SaleValue decimal.Decimal `json:"saleValue"`
}
