package interfaces

import (
	"context"

	"cartas_marketplace/internal/domain/entities"
)

type IKycCaseRepository interface {
	Create(ctx context.Context, k entities.KycCase) (entities.KycCase, error)
	GetByID(ctx context.Context, id string) (entities.KycCase, error)
	ListByStatus(ctx context.Context, status entities.KycStatus) ([]entities.KycCase, error)
	Update(ctx context.Context, k entities.KycCase) (entities.KycCase, error)
}

// IUserTrustRepository stores the trust level granted by approved KYC cases.
// Get returns a zero UserTrust (UserID == "") when the user was never reviewed.
type IUserTrustRepository interface {
	Get(ctx context.Context, userID string) (entities.UserTrust, error)
	Upsert(ctx context.Context, u entities.UserTrust) (entities.UserTrust, error)
}
