package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ProposalStatus string

const (
	ProposalStatusOpen      ProposalStatus = "open"
	ProposalStatusCancelled ProposalStatus = "cancelled"
	ProposalStatusAccepted  ProposalStatus = "accepted"
)

// Proposal is a buyer's offer on a quota. Premium is the ágio offered over the
// quota's paid-in value.
type Proposal struct {
	ID         string          `json:"id"`
	QuotaID    string          `json:"quota_id"`
	BuyerID    string          `json:"buyer_id"`
	Premium    decimal.Decimal `json:"premium"`
	TermMonths *int            `json:"term_months,omitempty"`
	Status     ProposalStatus  `json:"status"`

	CancelReason *string    `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`

	Version int64 `json:"version"`
}

func (p *Proposal) Cancel(reason *string, now time.Time) error {
	switch p.Status {
	case ProposalStatusAccepted:
		return fmt.Errorf("%w: proposal %s already accepted", ErrInvalidTransition, p.ID)
	case ProposalStatusCancelled:
		return fmt.Errorf("%w: proposal %s already cancelled", ErrInvalidTransition, p.ID)
	}
	p.Status = ProposalStatusCancelled
	p.CancelReason = reason
	p.CancelledAt = &now
	p.UpdatedAt = now
	return nil
}

func (p *Proposal) Accept(now time.Time) error {
	switch p.Status {
	case ProposalStatusAccepted:
		return fmt.Errorf("%w: proposal %s already accepted", ErrInvalidTransition, p.ID)
	case ProposalStatusCancelled:
		return fmt.Errorf("%w: proposal %s is cancelled", ErrInvalidTransition, p.ID)
	}
	p.Status = ProposalStatusAccepted
	p.AcceptedAt = &now
	p.UpdatedAt = now
	return nil
}
