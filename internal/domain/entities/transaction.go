package entities

import (
	"fmt"
	"time"
)

// TransactionStatus doubles as the transaction's current step.
//
//	proposta_aceita -> contrato_assinado -> escrow_bloqueado -> transferencia_confirmada -> escrow_liberado
//	contrato_assinado | escrow_bloqueado -> cancelada
//
// escrow_liberado and cancelada are terminal.
type TransactionStatus string

const (
	TransactionStatusProposalAccepted  TransactionStatus = "proposta_aceita"
	TransactionStatusContractSigned    TransactionStatus = "contrato_assinado"
	TransactionStatusEscrowLocked      TransactionStatus = "escrow_bloqueado"
	TransactionStatusTransferConfirmed TransactionStatus = "transferencia_confirmada"
	TransactionStatusEscrowReleased    TransactionStatus = "escrow_liberado"
	TransactionStatusCancelled         TransactionStatus = "cancelada"
)

var transactionTransitions = map[TransactionStatus][]TransactionStatus{
	TransactionStatusProposalAccepted:  {TransactionStatusContractSigned},
	TransactionStatusContractSigned:    {TransactionStatusEscrowLocked, TransactionStatusCancelled},
	TransactionStatusEscrowLocked:      {TransactionStatusTransferConfirmed, TransactionStatusCancelled},
	TransactionStatusTransferConfirmed: {TransactionStatusEscrowReleased},
}

var transactionPath = map[TransactionStatus]int{
	TransactionStatusProposalAccepted:  0,
	TransactionStatusContractSigned:    1,
	TransactionStatusEscrowLocked:      2,
	TransactionStatusTransferConfirmed: 3,
	TransactionStatusEscrowReleased:    4,
}

func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusEscrowReleased || s == TransactionStatusCancelled
}

// IsAtOrPast reports whether s is step or a later step on the main path.
// A cancelled transaction is never at or past any step.
func (s TransactionStatus) IsAtOrPast(step TransactionStatus) bool {
	cur, ok := transactionPath[s]
	if !ok {
		return false
	}
	want, ok := transactionPath[step]
	if !ok {
		return false
	}
	return cur >= want
}

func (s TransactionStatus) Valid() bool {
	if s == TransactionStatusCancelled {
		return true
	}
	_, ok := transactionPath[s]
	return ok
}

// Transaction tracks an accepted proposal through contract and escrow.
type Transaction struct {
	ID         string            `json:"id"`
	QuotaID    string            `json:"quota_id"`
	ProposalID string            `json:"proposal_id"`
	BuyerID    string            `json:"buyer_id"`
	SellerID   string            `json:"seller_id"`
	Status     TransactionStatus `json:"status"`
	StartedAt  time.Time         `json:"started_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Version    int64             `json:"version"`
}

func NewTransaction(id string, quota Quota, proposal Proposal, now time.Time) Transaction {
	return Transaction{
		ID:         id,
		QuotaID:    quota.ID,
		ProposalID: proposal.ID,
		BuyerID:    proposal.BuyerID,
		SellerID:   quota.SellerID,
		Status:     TransactionStatusProposalAccepted,
		StartedAt:  now,
		UpdatedAt:  now,
	}
}

func (t Transaction) CurrentStep() TransactionStatus {
	return t.Status
}

func (t Transaction) IsParticipant(userID string) bool {
	return userID != "" && (t.BuyerID == userID || t.SellerID == userID)
}

func (t Transaction) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range transactionTransitions[t.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (t *Transaction) TransitionTo(next TransactionStatus, now time.Time) error {
	if !t.CanTransitionTo(next) {
		return fmt.Errorf("%w: transaction %s cannot move from %s to %s", ErrStateTransitionDenied, t.ID, t.Status, next)
	}
	t.Status = next
	t.UpdatedAt = now
	return nil
}
