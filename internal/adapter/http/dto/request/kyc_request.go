package request

import (
	"strings"
	"time"

	"cartas_marketplace/internal/domain/entities"
)

type StartKycRequest struct {
	LevelRequested int `json:"levelRequested" binding:"required"`
}

type RejectKycRequest struct {
	ReasonCode    string     `json:"reasonCode" binding:"required"`
	ReasonMessage string     `json:"reasonMessage"`
	Severity      string     `json:"severity"`
	DueAt         *time.Time `json:"dueAt,omitempty"`
	Blocks        []string   `json:"blocks,omitempty"`
}

func (r RejectKycRequest) ToRejection() entities.KycRejection {
	blocks := make([]string, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		if v := strings.TrimSpace(b); v != "" {
			blocks = append(blocks, v)
		}
	}
	return entities.KycRejection{
		ReasonCode:    strings.TrimSpace(r.ReasonCode),
		ReasonMessage: strings.TrimSpace(r.ReasonMessage),
		Severity:      strings.TrimSpace(r.Severity),
		DueAt:         r.DueAt,
		Blocks:        blocks,
	}
}
