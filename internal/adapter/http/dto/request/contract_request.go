package request

import (
	"strings"

	"cartas_marketplace/internal/usecase"
)

type UploadContractRequest struct {
	URL          string  `json:"url" binding:"required"`
	EvidenceHash string  `json:"evidenceHash" binding:"required"`
	DocumentRef  *string `json:"documentRef,omitempty"`
}

func (r UploadContractRequest) ToInput(transactionID string) usecase.RecordSignatureInput {
	in := usecase.RecordSignatureInput{
		TransactionID: strings.TrimSpace(transactionID),
		DocumentURL:   strings.TrimSpace(r.URL),
		EvidenceHash:  strings.TrimSpace(r.EvidenceHash),
	}
	if r.DocumentRef != nil {
		if ref := strings.TrimSpace(*r.DocumentRef); ref != "" {
			in.DocumentRef = &ref
		}
	}
	return in
}
