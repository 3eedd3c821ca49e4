package usecase

import (
	"context"
	"fmt"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// QuotaRegistry applies quota sale-status changes through repositories bound to
// the caller's persistence transaction. Only the proposal flows use it, so quota
// status always moves in the same transaction as the proposal change behind it.
type QuotaRegistry struct {
	quotas interfaces.IQuotaRepository
}

func NewQuotaRegistry(quotas interfaces.IQuotaRepository) QuotaRegistry {
	return QuotaRegistry{quotas: quotas}
}

func (r QuotaRegistry) Get(ctx context.Context, quotaID string) (entities.Quota, error) {
	q, err := r.quotas.GetByID(ctx, quotaID)
	if err != nil {
		return entities.Quota{}, err
	}
	if q.ID == "" {
		return entities.Quota{}, ErrQuotaNotFound
	}
	return q, nil
}

func (r QuotaRegistry) IsActionable(ctx context.Context, quotaID string) (bool, error) {
	q, err := r.Get(ctx, quotaID)
	if err != nil {
		return false, err
	}
	return q.IsActionable(), nil
}

// MarkNegotiating moves q from available to negotiating. The write is conditional
// on q.Version, so q must be the copy read in the current transaction.
func (r QuotaRegistry) MarkNegotiating(ctx context.Context, q entities.Quota) (entities.Quota, error) {
	if err := q.MarkNegotiating(time.Now().UTC()); err != nil {
		return entities.Quota{}, err
	}
	return r.quotas.Update(ctx, q)
}

// MarkSold records the sale. A concurrent writer surfaces as interfaces.ErrVersionConflict;
// a quota already sold surfaces as ErrQuotaSold.
func (r QuotaRegistry) MarkSold(ctx context.Context, q entities.Quota, buyerID string, saleValue decimal.Decimal, proposalID string) (entities.Quota, error) {
	if !q.IsActionable() {
		return entities.Quota{}, ErrQuotaSold
	}
	if err := q.MarkSold(buyerID, saleValue, proposalID, time.Now().UTC()); err != nil {
		return entities.Quota{}, fmt.Errorf("%w: %v", ErrQuotaSold, err)
	}
	return r.quotas.Update(ctx, q)
}
