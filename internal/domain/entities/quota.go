package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// QuotaStatus is the sale status of a contemplated consortium quota (carta).
//
// available -> negotiating -> sold, or available -> sold directly. sold is terminal.
type QuotaStatus string

const (
	QuotaStatusAvailable   QuotaStatus = "available"
	QuotaStatusNegotiating QuotaStatus = "negotiating"
	QuotaStatusSold        QuotaStatus = "sold"
)

// Quota is a listed carta.
//
// Once sold, BuyerID, SaleValue, SoldAt and WinningProposalID are set and never change.
// Version is incremented on every persisted write and is the compare-and-set token
// used to serialize concurrent acceptances.
type Quota struct {
	ID            string          `json:"id"`
	SellerID      string          `json:"seller_id"`
	Administrator string          `json:"administrator"`
	GroupNumber   string          `json:"group_number"`
	QuotaNumber   string          `json:"quota_number"`
	CreditValue   decimal.Decimal `json:"credit_value"`
	Status        QuotaStatus     `json:"status"`

	// AssetType is what the credit buys (imovel, automovel, ...).
	AssetType         string `json:"asset_type,omitempty"`
	InstallmentsPaid  int    `json:"installments_paid"`
	InstallmentsTotal int    `json:"installments_total"`

	BuyerID           *string          `json:"buyer_id,omitempty"`
	SaleValue         *decimal.Decimal `json:"sale_value,omitempty"`
	SoldAt            *time.Time       `json:"sold_at,omitempty"`
	WinningProposalID *string          `json:"winning_proposal_id,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActionable reports whether proposals on this quota may still be cancelled or accepted.
func (q Quota) IsActionable() bool {
	return q.Status != QuotaStatusSold
}

func (q *Quota) MarkNegotiating(now time.Time) error {
	if q.Status != QuotaStatusAvailable {
		return fmt.Errorf("%w: quota %s is %s", ErrInvalidTransition, q.ID, q.Status)
	}
	q.Status = QuotaStatusNegotiating
	q.UpdatedAt = now
	return nil
}

func (q *Quota) MarkSold(buyerID string, saleValue decimal.Decimal, proposalID string, now time.Time) error {
	if q.Status != QuotaStatusAvailable && q.Status != QuotaStatusNegotiating {
		return fmt.Errorf("%w: quota %s is %s", ErrInvalidTransition, q.ID, q.Status)
	}
	q.Status = QuotaStatusSold
	q.BuyerID = &buyerID
	q.SaleValue = &saleValue
	q.SoldAt = &now
	q.WinningProposalID = &proposalID
	q.UpdatedAt = now
	return nil
}
