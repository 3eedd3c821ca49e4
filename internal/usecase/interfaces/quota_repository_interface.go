package interfaces

import (
	"context"

	"cartas_marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// QuotaFilter narrows a quota search. Zero fields do not filter.
type QuotaFilter struct {
	AssetType           string
	MinCreditValue      *decimal.Decimal
	MaxCreditValue      *decimal.Decimal
	MinInstallmentsPaid *int
	Limit               int
	Offset              int
}

// IQuotaRepository persists quotas.
//
// GetByID returns a zero Quota (ID == "") when absent.
// Update writes only when the stored version equals q.Version and returns the
// entity with its new version, or ErrVersionConflict.
// ListAvailable returns quotas that are not sold, newest first.
type IQuotaRepository interface {
	Create(ctx context.Context, q entities.Quota) (entities.Quota, error)
	GetByID(ctx context.Context, id string) (entities.Quota, error)
	Update(ctx context.Context, q entities.Quota) (entities.Quota, error)
	ListAvailable(ctx context.Context, f QuotaFilter) ([]entities.Quota, error)
}
