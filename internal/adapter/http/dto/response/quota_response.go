package response

import (
	"time"

	"cartas_marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type QuotaResponse struct {
	ID                string           `json:"id"`
	SellerID          string           `json:"sellerId"`
	Administrator     string           `json:"administrator"`
	GroupNumber       string           `json:"groupNumber"`
	QuotaNumber       string           `json:"quotaNumber"`
	CreditValue       decimal.Decimal  `json:"creditValue"`
	AssetType         string           `json:"assetType,omitempty"`
	InstallmentsPaid  int              `json:"installmentsPaid"`
	InstallmentsTotal int              `json:"installmentsTotal"`
	Status            string           `json:"status"`
	BuyerID           *string          `json:"buyerId,omitempty"`
	SaleValue         *decimal.Decimal `json:"saleValue,omitempty"`
	SoldAt            *time.Time       `json:"soldAt,omitempty"`
	WinningProposalID *string          `json:"winningProposalId,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

func FromQuota(q entities.Quota) QuotaResponse {
	return QuotaResponse{
		ID:                q.ID,
		SellerID:          q.SellerID,
		Administrator:     q.Administrator,
		GroupNumber:       q.GroupNumber,
		QuotaNumber:       q.QuotaNumber,
		CreditValue:       q.CreditValue,
		AssetType:         q.AssetType,
		InstallmentsPaid:  q.InstallmentsPaid,
		InstallmentsTotal: q.InstallmentsTotal,
		Status:            string(q.Status),
		BuyerID:           q.BuyerID,
		SaleValue:         q.SaleValue,
		SoldAt:            q.SoldAt,
		WinningProposalID: q.WinningProposalID,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func FromQuotas(qs []entities.Quota) []QuotaResponse {
	out := make([]QuotaResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuota(q))
	}
	return out
}
