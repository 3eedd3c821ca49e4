package response

import (
	"time"

	"cartas_marketplace/internal/domain/entities"
)

type ContractResponse struct {
	ID            string     `json:"id"`
	TransactionID string     `json:"transactionId"`
	Status        string     `json:"status"`
	URL           string     `json:"url"`
	DocumentRef   *string    `json:"documentRef,omitempty"`
	EvidenceHash  string     `json:"evidenceHash"`
	SignedAt      *time.Time `json:"signedAt,omitempty"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:            c.ID,
		TransactionID: c.TransactionID,
		Status:        string(c.Status),
		URL:           c.DocumentURL,
		DocumentRef:   c.DocumentRef,
		EvidenceHash:  c.EvidenceHash,
		SignedAt:      c.SignedAt,
	}
}
