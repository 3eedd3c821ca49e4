package interfaces

import (
	"context"

	"cartas_marketplace/internal/domain/entities"
)

// IEscrowRepository persists escrow holds.
//
// Create returns ErrDuplicate when an escrow already exists for the transaction.
type IEscrowRepository interface {
	Create(ctx context.Context, e entities.Escrow) (entities.Escrow, error)
	GetByID(ctx context.Context, id string) (entities.Escrow, error)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.Escrow, error)
	GetByProviderIntentID(ctx context.Context, providerIntentID string) (entities.Escrow, error)
	Update(ctx context.Context, e entities.Escrow) (entities.Escrow, error)
}
