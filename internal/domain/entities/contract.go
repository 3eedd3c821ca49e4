package entities

import "time"

type ContractStatus string

const (
	ContractStatusPending ContractStatus = "pending"
	ContractStatusSigned  ContractStatus = "assinado"
)

// Contract holds the signature evidence of a transaction. There is at most one per transaction.
type Contract struct {
	ID            string         `json:"id"`
	TransactionID string         `json:"transaction_id"`
	Status        ContractStatus `json:"status"`
	DocumentURL   string         `json:"document_url"`
	DocumentRef   *string        `json:"document_ref,omitempty"`
	EvidenceHash  string         `json:"evidence_hash"`
	SignedAt      *time.Time     `json:"signed_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (c *Contract) Sign(documentURL, evidenceHash string, documentRef *string, now time.Time) {
	c.Status = ContractStatusSigned
	c.DocumentURL = documentURL
	c.EvidenceHash = evidenceHash
	c.DocumentRef = documentRef
	c.SignedAt = &now
	c.UpdatedAt = now
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
}
