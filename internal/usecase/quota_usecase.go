package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultQuotaSearchLimit = 50
	MaxQuotaSearchLimit     = 200
)

type CreateQuotaInput struct {
	Administrator     string
	GroupNumber       string
	QuotaNumber       string
	CreditValue       decimal.Decimal
	AssetType         string
	InstallmentsPaid  int
	InstallmentsTotal int
}

type SearchQuotasInput struct {
	AssetType           string
	MinCreditValue      *decimal.Decimal
	MaxCreditValue      *decimal.Decimal
	MinInstallmentsPaid *int
	Limit               int
	Offset              int
}

// IQuotaUseCase lists quotas for sale, searches them and reads them back.
// Sale status is never set here; see QuotaRegistry.
type IQuotaUseCase interface {
	Create(ctx context.Context, actor entities.Principal, in CreateQuotaInput) (entities.Quota, error)
	GetByID(ctx context.Context, id string) (entities.Quota, error)
	Search(ctx context.Context, in SearchQuotasInput) ([]entities.Quota, error)
}

type QuotaUseCase struct {
	uow  interfaces.IUnitOfWork
	gate policy.Gate
}

var _ IQuotaUseCase = (*QuotaUseCase)(nil)

func NewQuotaUseCase(uow interfaces.IUnitOfWork, gate policy.Gate) *QuotaUseCase {
	return &QuotaUseCase{uow: uow, gate: gate}
}

func (u *QuotaUseCase) Create(ctx context.Context, actor entities.Principal, in CreateQuotaInput) (entities.Quota, error) {
	if err := u.gate.Authorize(actor, policy.ActionCreateQuota, policy.Subject{SellerID: actor.UserID}); err != nil {
		return entities.Quota{}, err
	}
	if !in.CreditValue.IsPositive() {
		return entities.Quota{}, ErrInvalidCreditValue
	}
	if in.InstallmentsPaid < 0 || in.InstallmentsTotal < 0 || (in.InstallmentsTotal > 0 && in.InstallmentsPaid > in.InstallmentsTotal) {
		return entities.Quota{}, ErrInvalidInstallments
	}

	now := time.Now().UTC()
	q := entities.Quota{
		ID:                uuid.NewString(),
		SellerID:          actor.UserID,
		Administrator:     strings.TrimSpace(in.Administrator),
		GroupNumber:       strings.TrimSpace(in.GroupNumber),
		QuotaNumber:       strings.TrimSpace(in.QuotaNumber),
		CreditValue:       in.CreditValue,
		AssetType:         strings.ToLower(strings.TrimSpace(in.AssetType)),
		InstallmentsPaid:  in.InstallmentsPaid,
		InstallmentsTotal: in.InstallmentsTotal,
		Status:            entities.QuotaStatusAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	var created entities.Quota
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		var err error
		created, err = repos.Quotas.Create(ctx, q)
		return err
	})
	if err != nil {
		log.Printf("[quota][usecase] create failed seller_id=%s err=%v", actor.UserID, err)
		return entities.Quota{}, err
	}
	log.Printf("[quota][usecase] created quota_id=%s seller_id=%s", created.ID, created.SellerID)
	return created, nil
}

func (u *QuotaUseCase) GetByID(ctx context.Context, id string) (entities.Quota, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quota{}, ErrInvalidQuotaID
	}

	var q entities.Quota
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		var err error
		q, err = NewQuotaRegistry(repos.Quotas).Get(ctx, id)
		return err
	})
	if err != nil {
		return entities.Quota{}, err
	}
	return q, nil
}

// Search returns quotas still open to proposals.
func (u *QuotaUseCase) Search(ctx context.Context, in SearchQuotasInput) ([]entities.Quota, error) {
	f, err := in.filter()
	if err != nil {
		return nil, err
	}

	var quotas []entities.Quota
	err = u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		var err error
		quotas, err = repos.Quotas.ListAvailable(ctx, f)
		return err
	})
	if err != nil {
		log.Printf("[quota][usecase] search failed asset_type=%s err=%v", f.AssetType, err)
		return nil, err
	}
	if quotas == nil {
		quotas = []entities.Quota{}
	}
	return quotas, nil
}

func (in SearchQuotasInput) filter() (interfaces.QuotaFilter, error) {
	if in.MinCreditValue != nil && in.MinCreditValue.IsNegative() {
		return interfaces.QuotaFilter{}, ErrInvalidSearchFilter
	}
	if in.MaxCreditValue != nil && in.MaxCreditValue.IsNegative() {
		return interfaces.QuotaFilter{}, ErrInvalidSearchFilter
	}
	if in.MinCreditValue != nil && in.MaxCreditValue != nil && in.MinCreditValue.GreaterThan(*in.MaxCreditValue) {
		return interfaces.QuotaFilter{}, ErrInvalidSearchFilter
	}
	if in.MinInstallmentsPaid != nil && *in.MinInstallmentsPaid < 0 {
		return interfaces.QuotaFilter{}, ErrInvalidSearchFilter
	}
	if in.Limit < 0 || in.Offset < 0 {
		return interfaces.QuotaFilter{}, ErrInvalidSearchFilter
	}

	limit := in.Limit
	switch {
	case limit == 0:
		limit = DefaultQuotaSearchLimit
	case limit > MaxQuotaSearchLimit:
		limit = MaxQuotaSearchLimit
	}
	return interfaces.QuotaFilter{
		AssetType:           strings.ToLower(strings.TrimSpace(in.AssetType)),
		MinCreditValue:      in.MinCreditValue,
		MaxCreditValue:      in.MaxCreditValue,
		MinInstallmentsPaid: in.MinInstallmentsPaid,
		Limit:               limit,
		Offset:              in.Offset,
	}, nil
}
