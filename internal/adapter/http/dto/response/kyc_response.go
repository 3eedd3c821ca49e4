package response

import (
	"time"

	"cartas_marketplace/internal/domain/entities"
)

type KycCaseResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	LevelRequested int        `json:"levelRequested"`
	Status         string     `json:"status"`
	ReasonCode     string     `json:"reasonCode,omitempty"`
	ReasonMessage  string     `json:"reasonMessage,omitempty"`
	Severity       string     `json:"severity,omitempty"`
	DueAt          *time.Time `json:"dueAt,omitempty"`
	Blocks         []string   `json:"blocks,omitempty"`
	ReviewedBy     *string    `json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func FromKycCase(k entities.KycCase) KycCaseResponse {
	return KycCaseResponse{
		ID:             k.ID,
		UserID:         k.UserID,
		LevelRequested: k.LevelRequested,
		Status:         string(k.Status),
		ReasonCode:     k.ReasonCode,
		ReasonMessage:  k.ReasonMessage,
		Severity:       k.Severity,
		DueAt:          k.DueAt,
		Blocks:         k.Blocks,
		ReviewedBy:     k.ReviewedBy,
		ReviewedAt:     k.ReviewedAt,
		CreatedAt:      k.CreatedAt,
	}
}

func FromKycCases(ks []entities.KycCase) []KycCaseResponse {
	out := make([]KycCaseResponse, 0, len(ks))
	for _, k := range ks {
		out = append(out, FromKycCase(k))
	}
	return out
}

type UserTrustResponse struct {
	UserID   string `json:"userId"`
	KycLevel int    `json:"kycLevel"`
}

type KycApprovalResponse struct {
	Case  KycCaseResponse   `json:"case"`
	Trust UserTrustResponse `json:"trust"`
}

func FromKycApproval(k entities.KycCase, t entities.UserTrust) KycApprovalResponse {
	return KycApprovalResponse{
		Case:  FromKycCase(k),
		Trust: UserTrustResponse{UserID: t.UserID, KycLevel: t.KycLevel},
	}
}
