package postgres

import (
	"encoding/json"
	"time"

	"cartas_marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type quotaModel struct {
	ID                string           `gorm:"column:id;primaryKey"`
	SellerID          string           `gorm:"column:seller_id"`
	Administrator     string           `gorm:"column:administrator"`
	GroupNumber       string           `gorm:"column:group_number"`
	QuotaNumber       string           `gorm:"column:quota_number"`
	CreditValue       decimal.Decimal  `gorm:"column:credit_value;type:numeric"`
	Status            string           `gorm:"column:status"`
	AssetType         string           `gorm:"column:asset_type"`
	InstallmentsPaid  int              `gorm:"column:installments_paid"`
	InstallmentsTotal int              `gorm:"column:installments_total"`
	BuyerID           *string          `gorm:"column:buyer_id"`
	SaleValue         *decimal.Decimal `gorm:"column:sale_value;type:numeric"`
	SoldAt            *time.Time       `gorm:"column:sold_at"`
	WinningProposalID *string          `gorm:"column:winning_proposal_id"`
	Version           int64            `gorm:"column:version"`
	CreatedAt         time.Time        `gorm:"column:created_at"`
	UpdatedAt         time.Time        `gorm:"column:updated_at"`
}

func (quotaModel) TableName() string { return "quotas" }

func (m quotaModel) changes() map[string]any {
	return map[string]any{
		"administrator":       m.Administrator,
		"group_number":        m.GroupNumber,
		"quota_number":        m.QuotaNumber,
		"credit_value":        m.CreditValue,
		"status":              m.Status,
		"asset_type":          m.AssetType,
		"installments_paid":   m.InstallmentsPaid,
		"installments_total":  m.InstallmentsTotal,
		"buyer_id":            m.BuyerID,
		"sale_value":          m.SaleValue,
		"sold_at":             m.SoldAt,
		"winning_proposal_id": m.WinningProposalID,
		"version":             m.Version,
		"updated_at":          m.UpdatedAt,
	}
}

type proposalModel struct {
	ID           string          `gorm:"column:id;primaryKey"`
	QuotaID      string          `gorm:"column:quota_id"`
	BuyerID      string          `gorm:"column:buyer_id"`
	Premium      decimal.Decimal `gorm:"column:premium;type:numeric"`
	TermMonths   *int            `gorm:"column:term_months"`
	Status       string          `gorm:"column:status"`
	CancelReason *string         `gorm:"column:cancel_reason"`
	CancelledAt  *time.Time      `gorm:"column:cancelled_at"`
	AcceptedAt   *time.Time      `gorm:"column:accepted_at"`
	Version      int64           `gorm:"column:version"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (proposalModel) TableName() string { return "proposals" }

func (m proposalModel) changes() map[string]any {
	return map[string]any{
		"premium":       m.Premium,
		"term_months":   m.TermMonths,
		"status":        m.Status,
		"cancel_reason": m.CancelReason,
		"cancelled_at":  m.CancelledAt,
		"accepted_at":   m.AcceptedAt,
		"version":       m.Version,
		"updated_at":    m.UpdatedAt,
	}
}

type transactionModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	QuotaID    string    `gorm:"column:quota_id"`
	ProposalID string    `gorm:"column:proposal_id"`
	BuyerID    string    `gorm:"column:buyer_id"`
	SellerID   string    `gorm:"column:seller_id"`
	Status     string    `gorm:"column:status"`
	Version    int64     `gorm:"column:version"`
	StartedAt  time.Time `gorm:"column:started_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (transactionModel) TableName() string { return "transactions" }

type contractModel struct {
	ID            string     `gorm:"column:id;primaryKey"`
	TransactionID string     `gorm:"column:transaction_id"`
	Status        string     `gorm:"column:status"`
	DocumentURL   string     `gorm:"column:document_url"`
	DocumentRef   *string    `gorm:"column:document_ref"`
	EvidenceHash  string     `gorm:"column:evidence_hash"`
	SignedAt      *time.Time `gorm:"column:signed_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (contractModel) TableName() string { return "contracts" }

type escrowModel struct {
	ID                    string     `gorm:"column:id;primaryKey"`
	TransactionID         string     `gorm:"column:transaction_id"`
	Provider              string     `gorm:"column:provider"`
	ProviderIntentID      string     `gorm:"column:provider_intent_id"`
	AmountMinorUnits      int64      `gorm:"column:amount_minor_units"`
	FeeMinorUnits         int64      `gorm:"column:fee_minor_units"`
	SplitPlatformFee      int64      `gorm:"column:split_platform_fee"`
	SplitSellerAccountRef string     `gorm:"column:split_seller_account_ref"`
	Metadata              *string    `gorm:"column:metadata;type:jsonb"`
	Status                string     `gorm:"column:status"`
	RefundReason          *string    `gorm:"column:refund_reason"`
	PendingAction         string     `gorm:"column:pending_action"`
	PendingSince          *time.Time `gorm:"column:pending_since"`
	AuthorizedAt          *time.Time `gorm:"column:authorized_at"`
	ReleasedAt            *time.Time `gorm:"column:released_at"`
	RefundedAt            *time.Time `gorm:"column:refunded_at"`
	Version               int64      `gorm:"column:version"`
	CreatedAt             time.Time  `gorm:"column:created_at"`
	UpdatedAt             time.Time  `gorm:"column:updated_at"`
}

func (escrowModel) TableName() string { return "escrows" }

func (m escrowModel) changes() map[string]any {
	return map[string]any{
		"status":         m.Status,
		"refund_reason":  m.RefundReason,
		"pending_action": m.PendingAction,
		"pending_since":  m.PendingSince,
		"authorized_at":  m.AuthorizedAt,
		"released_at":    m.ReleasedAt,
		"refunded_at":    m.RefundedAt,
		"metadata":       m.Metadata,
		"version":        m.Version,
		"updated_at":     m.UpdatedAt,
	}
}

type kycCaseModel struct {
	ID             string     `gorm:"column:id;primaryKey"`
	UserID         string     `gorm:"column:user_id"`
	LevelRequested int        `gorm:"column:level_requested"`
	Status         string     `gorm:"column:status"`
	ReasonCode     string     `gorm:"column:reason_code"`
	ReasonMessage  string     `gorm:"column:reason_message"`
	Severity       string     `gorm:"column:severity"`
	DueAt          *time.Time `gorm:"column:due_at"`
	Blocks         *string    `gorm:"column:blocks;type:jsonb"`
	ReviewedBy     *string    `gorm:"column:reviewed_by"`
	ReviewedAt     *time.Time `gorm:"column:reviewed_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (kycCaseModel) TableName() string { return "kyc_cases" }

type userTrustModel struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	KycLevel  int       `gorm:"column:kyc_level"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userTrustModel) TableName() string { return "user_trust" }

func toQuotaModel(q entities.Quota) quotaModel {
	return quotaModel{
		ID:                q.ID,
		SellerID:          q.SellerID,
		Administrator:     q.Administrator,
		GroupNumber:       q.GroupNumber,
		QuotaNumber:       q.QuotaNumber,
		CreditValue:       q.CreditValue,
		Status:            string(q.Status),
		AssetType:         q.AssetType,
		InstallmentsPaid:  q.InstallmentsPaid,
		InstallmentsTotal: q.InstallmentsTotal,
		BuyerID:           q.BuyerID,
		SaleValue:         q.SaleValue,
		SoldAt:            q.SoldAt,
		WinningProposalID: q.WinningProposalID,
		Version:           q.Version,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func toQuota(m quotaModel) entities.Quota {
	return entities.Quota{
		ID:                m.ID,
		SellerID:          m.SellerID,
		Administrator:     m.Administrator,
		GroupNumber:       m.GroupNumber,
		QuotaNumber:       m.QuotaNumber,
		CreditValue:       m.CreditValue,
		Status:            entities.QuotaStatus(m.Status),
		AssetType:         m.AssetType,
		InstallmentsPaid:  m.InstallmentsPaid,
		InstallmentsTotal: m.InstallmentsTotal,
		BuyerID:           m.BuyerID,
		SaleValue:         m.SaleValue,
		SoldAt:            utcPtr(m.SoldAt),
		WinningProposalID: m.WinningProposalID,
		Version:           m.Version,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

func toProposalModel(p entities.Proposal) proposalModel {
	return proposalModel{
		ID:           p.ID,
		QuotaID:      p.QuotaID,
		BuyerID:      p.BuyerID,
		Premium:      p.Premium,
		TermMonths:   p.TermMonths,
		Status:       string(p.Status),
		CancelReason: p.CancelReason,
		CancelledAt:  p.CancelledAt,
		AcceptedAt:   p.AcceptedAt,
		Version:      p.Version,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProposal(m proposalModel) entities.Proposal {
	return entities.Proposal{
		ID:           m.ID,
		QuotaID:      m.QuotaID,
		BuyerID:      m.BuyerID,
		Premium:      m.Premium,
		TermMonths:   m.TermMonths,
		Status:       entities.ProposalStatus(m.Status),
		CancelReason: m.CancelReason,
		CancelledAt:  utcPtr(m.CancelledAt),
		AcceptedAt:   utcPtr(m.AcceptedAt),
		Version:      m.Version,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func toTransactionModel(t entities.Transaction) transactionModel {
	return transactionModel{
		ID:         t.ID,
		QuotaID:    t.QuotaID,
		ProposalID: t.ProposalID,
		BuyerID:    t.BuyerID,
		SellerID:   t.SellerID,
		Status:     string(t.Status),
		Version:    t.Version,
		StartedAt:  t.StartedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func toTransaction(m transactionModel) entities.Transaction {
	return entities.Transaction{
		ID:         m.ID,
		QuotaID:    m.QuotaID,
		ProposalID: m.ProposalID,
		BuyerID:    m.BuyerID,
		SellerID:   m.SellerID,
		Status:     entities.TransactionStatus(m.Status),
		Version:    m.Version,
		StartedAt:  m.StartedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

func toContractModel(c entities.Contract) contractModel {
	return contractModel{
		ID:            c.ID,
		TransactionID: c.TransactionID,
		Status:        string(c.Status),
		DocumentURL:   c.DocumentURL,
		DocumentRef:   c.DocumentRef,
		EvidenceHash:  c.EvidenceHash,
		SignedAt:      c.SignedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toContract(m contractModel) entities.Contract {
	return entities.Contract{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		Status:        entities.ContractStatus(m.Status),
		DocumentURL:   m.DocumentURL,
		DocumentRef:   m.DocumentRef,
		EvidenceHash:  m.EvidenceHash,
		SignedAt:      utcPtr(m.SignedAt),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

func toEscrowModel(e entities.Escrow) (escrowModel, error) {
	metadata, err := jsonPtr(e.Metadata, len(e.Metadata) == 0)
	if err != nil {
		return escrowModel{}, err
	}
	return escrowModel{
		ID:                    e.ID,
		TransactionID:         e.TransactionID,
		Provider:              e.Provider,
		ProviderIntentID:      e.ProviderIntentID,
		AmountMinorUnits:      e.AmountMinorUnits,
		FeeMinorUnits:         e.FeeMinorUnits,
		SplitPlatformFee:      e.Split.PlatformFeeMinorUnits,
		SplitSellerAccountRef: e.Split.SellerAccountRef,
		Metadata:              metadata,
		Status:                string(e.Status),
		RefundReason:          e.RefundReason,
		PendingAction:         string(e.PendingAction),
		PendingSince:          e.PendingSince,
		AuthorizedAt:          e.AuthorizedAt,
		ReleasedAt:            e.ReleasedAt,
		RefundedAt:            e.RefundedAt,
		Version:               e.Version,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}, nil
}

func toEscrow(m escrowModel) (entities.Escrow, error) {
	var metadata map[string]any
	if m.Metadata != nil && *m.Metadata != "" {
		if err := json.Unmarshal([]byte(*m.Metadata), &metadata); err != nil {
			return entities.Escrow{}, err
		}
	}
	return entities.Escrow{
		ID:               m.ID,
		TransactionID:    m.TransactionID,
		Provider:         m.Provider,
		ProviderIntentID: m.ProviderIntentID,
		AmountMinorUnits: m.AmountMinorUnits,
		FeeMinorUnits:    m.FeeMinorUnits,
		Split: entities.Split{
			PlatformFeeMinorUnits: m.SplitPlatformFee,
			SellerAccountRef:      m.SplitSellerAccountRef,
		},
		Metadata:      metadata,
		Status:        entities.EscrowStatus(m.Status),
		RefundReason:  m.RefundReason,
		PendingAction: entities.EscrowAction(m.PendingAction),
		PendingSince:  utcPtr(m.PendingSince),
		AuthorizedAt:  utcPtr(m.AuthorizedAt),
		ReleasedAt:    utcPtr(m.ReleasedAt),
		RefundedAt:    utcPtr(m.RefundedAt),
		Version:       m.Version,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}, nil
}

func toKycCaseModel(k entities.KycCase) (kycCaseModel, error) {
	blocks, err := jsonPtr(k.Blocks, len(k.Blocks) == 0)
	if err != nil {
		return kycCaseModel{}, err
	}
	return kycCaseModel{
		ID:             k.ID,
		UserID:         k.UserID,
		LevelRequested: k.LevelRequested,
		Status:         string(k.Status),
		ReasonCode:     k.ReasonCode,
		ReasonMessage:  k.ReasonMessage,
		Severity:       k.Severity,
		DueAt:          k.DueAt,
		Blocks:         blocks,
		ReviewedBy:     k.ReviewedBy,
		ReviewedAt:     k.ReviewedAt,
		CreatedAt:      k.CreatedAt,
		UpdatedAt:      k.UpdatedAt,
	}, nil
}

func toKycCase(m kycCaseModel) (entities.KycCase, error) {
	var blocks []string
	if m.Blocks != nil && *m.Blocks != "" {
		if err := json.Unmarshal([]byte(*m.Blocks), &blocks); err != nil {
			return entities.KycCase{}, err
		}
	}
	return entities.KycCase{
		ID:             m.ID,
		UserID:         m.UserID,
		LevelRequested: m.LevelRequested,
		Status:         entities.KycStatus(m.Status),
		ReasonCode:     m.ReasonCode,
		ReasonMessage:  m.ReasonMessage,
		Severity:       m.Severity,
		DueAt:          utcPtr(m.DueAt),
		Blocks:         blocks,
		ReviewedBy:     m.ReviewedBy,
		ReviewedAt:     utcPtr(m.ReviewedAt),
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}, nil
}

func jsonPtr(v any, empty bool) (*string, error) {
	if empty {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(raw)
	return &s, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
