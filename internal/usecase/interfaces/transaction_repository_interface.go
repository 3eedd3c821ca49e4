package interfaces

import (
	"context"

	"cartas_marketplace/internal/domain/entities"
)

// ITransactionRepository persists transactions. Create returns ErrDuplicate when a
// transaction already exists for the proposal.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
}
