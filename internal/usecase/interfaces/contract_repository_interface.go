package interfaces

import (
	"context"

	"cartas_marketplace/internal/domain/entities"
)

// IContractRepository persists the single contract of a transaction.
// Upsert inserts or overwrites the row keyed by TransactionID.
type IContractRepository interface {
	GetByTransactionID(ctx context.Context, transactionID string) (entities.Contract, error)
	Upsert(ctx context.Context, c entities.Contract) (entities.Contract, error)
}
