package interfaces

import (
	"context"

	"cartas_marketplace/internal/domain/entities"
)

// IProposalRepository persists proposals. Same zero-value and version contract as IQuotaRepository.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByQuotaID(ctx context.Context, quotaID string) ([]entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
}
