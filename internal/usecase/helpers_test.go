package usecase

import (
	"context"
	"errors"
	"testing"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase/interfaces"
	mock_interfaces "cartas_marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	buyer  = entities.Principal{UserID: "buyer-1", Role: entities.RoleBuyer, KycLevel: 1}
	buyer2 = entities.Principal{UserID: "buyer-2", Role: entities.RoleBuyer, KycLevel: 1}
	seller = entities.Principal{UserID: "seller-1", Role: entities.RoleSeller, KycLevel: 1}
	admin  = entities.Principal{UserID: "admin-1", Role: entities.RoleAdmin}
	other  = entities.Principal{UserID: "stranger", Role: entities.RoleBuyer, KycLevel: 3}
)

// mockRepos bundles gomock repositories behind a unit of work that runs fn inline.
type mockRepos struct {
	uow          *mock_interfaces.MockIUnitOfWork
	quotas       *mock_interfaces.MockIQuotaRepository
	proposals    *mock_interfaces.MockIProposalRepository
	transactions *mock_interfaces.MockITransactionRepository
	contracts    *mock_interfaces.MockIContractRepository
	escrows      *mock_interfaces.MockIEscrowRepository
	kycCases     *mock_interfaces.MockIKycCaseRepository
	userTrust    *mock_interfaces.MockIUserTrustRepository
}

func newMockRepos(ctrl *gomock.Controller) mockRepos {
	m := mockRepos{
		uow:          mock_interfaces.NewMockIUnitOfWork(ctrl),
		quotas:       mock_interfaces.NewMockIQuotaRepository(ctrl),
		proposals:    mock_interfaces.NewMockIProposalRepository(ctrl),
		transactions: mock_interfaces.NewMockITransactionRepository(ctrl),
		contracts:    mock_interfaces.NewMockIContractRepository(ctrl),
		escrows:      mock_interfaces.NewMockIEscrowRepository(ctrl),
		kycCases:     mock_interfaces.NewMockIKycCaseRepository(ctrl),
		userTrust:    mock_interfaces.NewMockIUserTrustRepository(ctrl),
	}
	repos := interfaces.Repositories{
		Quotas:       m.quotas,
		Proposals:    m.proposals,
		Transactions: m.transactions,
		Contracts:    m.contracts,
		Escrows:      m.escrows,
		KycCases:     m.kycCases,
		UserTrust:    m.userTrust,
	}
	m.uow.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, interfaces.Repositories) error) error {
			return fn(ctx, repos)
		}).AnyTimes()
	return m
}

func assertErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}
