package postgres

import (
	"context"
	"errors"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewRepositories binds every repository to db, which is usually a *gorm.DB
// inside a transaction.
func NewRepositories(db *gorm.DB) interfaces.Repositories {
	return interfaces.Repositories{
		Quotas:       &quotaRepository{db: db},
		Proposals:    &proposalRepository{db: db},
		Transactions: &transactionRepository{db: db},
		Contracts:    &contractRepository{db: db},
		Escrows:      &escrowRepository{db: db},
		KycCases:     &kycCaseRepository{db: db},
		UserTrust:    &userTrustRepository{db: db},
	}
}

type quotaRepository struct {
	db *gorm.DB
}

func (r *quotaRepository) Create(ctx context.Context, q entities.Quota) (entities.Quota, error) {
	q.Version = 1
	rec := toQuotaModel(q)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Quota{}, translateCreateError(err)
	}
	return toQuota(rec), nil
}

func (r *quotaRepository) GetByID(ctx context.Context, id string) (entities.Quota, error) {
	var rec quotaModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Quota{}, nil
		}
		return entities.Quota{}, err
	}
	return toQuota(rec), nil
}

func (r *quotaRepository) Update(ctx context.Context, q entities.Quota) (entities.Quota, error) {
	rec := toQuotaModel(q)
	rec.Version = q.Version + 1
	if err := casUpdate(ctx, r.db, &quotaModel{}, q.ID, q.Version, rec.changes()); err != nil {
		return entities.Quota{}, err
	}
	return toQuota(rec), nil
}

func (r *quotaRepository) ListAvailable(ctx context.Context, f interfaces.QuotaFilter) ([]entities.Quota, error) {
	q := r.db.WithContext(ctx).Model(&quotaModel{}).Where("status <> ?", string(entities.QuotaStatusSold))
	if f.AssetType != "" {
		q = q.Where("asset_type = ?", f.AssetType)
	}
	if f.MinCreditValue != nil {
		q = q.Where("credit_value >= ?", *f.MinCreditValue)
	}
	if f.MaxCreditValue != nil {
		q = q.Where("credit_value <= ?", *f.MaxCreditValue)
	}
	if f.MinInstallmentsPaid != nil {
		q = q.Where("installments_paid >= ?", *f.MinInstallmentsPaid)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var recs []quotaModel
	if err := q.Order("created_at DESC").Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Quota, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toQuota(rec))
	}
	return out, nil
}

type proposalRepository struct {
	db *gorm.DB
}

func (r *proposalRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	p.Version = 1
	rec := toProposalModel(p)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Proposal{}, translateCreateError(err)
	}
	return toProposal(rec), nil
}

func (r *proposalRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	var rec proposalModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	return toProposal(rec), nil
}

func (r *proposalRepository) ListByQuotaID(ctx context.Context, quotaID string) ([]entities.Proposal, error) {
	var recs []proposalModel
	if err := r.db.WithContext(ctx).Where("quota_id = ?", quotaID).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Proposal, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toProposal(rec))
	}
	return out, nil
}

func (r *proposalRepository) Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	rec := toProposalModel(p)
	rec.Version = p.Version + 1
	if err := casUpdate(ctx, r.db, &proposalModel{}, p.ID, p.Version, rec.changes()); err != nil {
		return entities.Proposal{}, err
	}
	return toProposal(rec), nil
}

type transactionRepository struct {
	db *gorm.DB
}

func (r *transactionRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	t.Version = 1
	rec := toTransactionModel(t)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Transaction{}, translateCreateError(err)
	}
	return toTransaction(rec), nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	var rec transactionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Transaction{}, nil
		}
		return entities.Transaction{}, err
	}
	return toTransaction(rec), nil
}

func (r *transactionRepository) Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	rec := toTransactionModel(t)
	rec.Version = t.Version + 1
	err := casUpdate(ctx, r.db, &transactionModel{}, t.ID, t.Version, map[string]any{
		"status":     rec.Status,
		"version":    rec.Version,
		"updated_at": rec.UpdatedAt,
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return toTransaction(rec), nil
}

type contractRepository struct {
	db *gorm.DB
}

func (r *contractRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.Contract, error) {
	var rec contractModel
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	return toContract(rec), nil
}

// Upsert keeps the stored id and created_at when the transaction already has a contract.
func (r *contractRepository) Upsert(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	rec := toContractModel(c)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "transaction_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"status":        rec.Status,
			"document_url":  rec.DocumentURL,
			"document_ref":  rec.DocumentRef,
			"evidence_hash": rec.EvidenceHash,
			"signed_at":     rec.SignedAt,
			"updated_at":    rec.UpdatedAt,
		}),
	}).Create(&rec).Error
	if err != nil {
		return entities.Contract{}, err
	}
	return r.GetByTransactionID(ctx, c.TransactionID)
}

type escrowRepository struct {
	db *gorm.DB
}

func (r *escrowRepository) Create(ctx context.Context, e entities.Escrow) (entities.Escrow, error) {
	e.Version = 1
	rec, err := toEscrowModel(e)
	if err != nil {
		return entities.Escrow{}, err
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Escrow{}, translateCreateError(err)
	}
	return toEscrow(rec)
}

func (r *escrowRepository) GetByID(ctx context.Context, id string) (entities.Escrow, error) {
	return r.takeWhere(ctx, "id = ?", id)
}

func (r *escrowRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.Escrow, error) {
	return r.takeWhere(ctx, "transaction_id = ?", transactionID)
}

func (r *escrowRepository) GetByProviderIntentID(ctx context.Context, providerIntentID string) (entities.Escrow, error) {
	if providerIntentID == "" {
		return entities.Escrow{}, nil
	}
	return r.takeWhere(ctx, "provider_intent_id = ?", providerIntentID)
}

func (r *escrowRepository) takeWhere(ctx context.Context, query string, arg any) (entities.Escrow, error) {
	var rec escrowModel
	if err := r.db.WithContext(ctx).Where(query, arg).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Escrow{}, nil
		}
		return entities.Escrow{}, err
	}
	return toEscrow(rec)
}

func (r *escrowRepository) Update(ctx context.Context, e entities.Escrow) (entities.Escrow, error) {
	rec, err := toEscrowModel(e)
	if err != nil {
		return entities.Escrow{}, err
	}
	rec.Version = e.Version + 1
	if err := casUpdate(ctx, r.db, &escrowModel{}, e.ID, e.Version, rec.changes()); err != nil {
		return entities.Escrow{}, err
	}
	return toEscrow(rec)
}

type kycCaseRepository struct {
	db *gorm.DB
}

func (r *kycCaseRepository) Create(ctx context.Context, k entities.KycCase) (entities.KycCase, error) {
	rec, err := toKycCaseModel(k)
	if err != nil {
		return entities.KycCase{}, err
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.KycCase{}, translateCreateError(err)
	}
	return toKycCase(rec)
}

func (r *kycCaseRepository) GetByID(ctx context.Context, id string) (entities.KycCase, error) {
	var rec kycCaseModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.KycCase{}, nil
		}
		return entities.KycCase{}, err
	}
	return toKycCase(rec)
}

func (r *kycCaseRepository) ListByStatus(ctx context.Context, status entities.KycStatus) ([]entities.KycCase, error) {
	var recs []kycCaseModel
	if err := r.db.WithContext(ctx).Where("status = ?", string(status)).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.KycCase, 0, len(recs))
	for _, rec := range recs {
		k, err := toKycCase(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// Update only touches pending cases, so two reviewers cannot both decide one case.
func (r *kycCaseRepository) Update(ctx context.Context, k entities.KycCase) (entities.KycCase, error) {
	rec, err := toKycCaseModel(k)
	if err != nil {
		return entities.KycCase{}, err
	}
	res := r.db.WithContext(ctx).Model(&kycCaseModel{}).
		Where("id = ?", k.ID).
		Where("status = ?", string(entities.KycStatusPending)).
		Updates(map[string]any{
			"status":         rec.Status,
			"reason_code":    rec.ReasonCode,
			"reason_message": rec.ReasonMessage,
			"severity":       rec.Severity,
			"due_at":         rec.DueAt,
			"blocks":         rec.Blocks,
			"reviewed_by":    rec.ReviewedBy,
			"reviewed_at":    rec.ReviewedAt,
			"updated_at":     rec.UpdatedAt,
		})
	if res.Error != nil {
		return entities.KycCase{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.KycCase{}, interfaces.ErrVersionConflict
	}
	return toKycCase(rec)
}

type userTrustRepository struct {
	db *gorm.DB
}

func (r *userTrustRepository) Get(ctx context.Context, userID string) (entities.UserTrust, error) {
	var rec userTrustModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.UserTrust{}, nil
		}
		return entities.UserTrust{}, err
	}
	return entities.UserTrust{UserID: rec.UserID, KycLevel: rec.KycLevel, UpdatedAt: rec.UpdatedAt.UTC()}, nil
}

// Upsert never lowers a stored level.
func (r *userTrustRepository) Upsert(ctx context.Context, u entities.UserTrust) (entities.UserTrust, error) {
	rec := userTrustModel{UserID: u.UserID, KycLevel: u.KycLevel, UpdatedAt: u.UpdatedAt}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"kyc_level":  gorm.Expr("GREATEST(user_trust.kyc_level, EXCLUDED.kyc_level)"),
			"updated_at": rec.UpdatedAt,
		}),
	}).Create(&rec).Error
	if err != nil {
		return entities.UserTrust{}, err
	}
	return r.Get(ctx, u.UserID)
}

// casUpdate writes changes only when the row still carries expectedVersion.
func casUpdate(ctx context.Context, db *gorm.DB, model any, id string, expectedVersion int64, changes map[string]any) error {
	res := db.WithContext(ctx).Model(model).
		Where("id = ?", id).
		Where("version = ?", expectedVersion).
		Updates(changes)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return interfaces.ErrVersionConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrVersionConflict
	}
	return nil
}

func translateCreateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return interfaces.ErrDuplicate
	}
	return err
}
