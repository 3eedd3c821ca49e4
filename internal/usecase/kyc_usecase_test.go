package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/usecase/interfaces"
	mock_interfaces "cartas_marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingCase() entities.KycCase {
	return entities.KycCase{ID: "k-1", UserID: buyer.UserID, LevelRequested: 2, Status: entities.KycStatusPending}
}

func TestKycUseCase_Start(t *testing.T) {
	t.Run("level out of range", func(t *testing.T) {
		uc := NewKycUseCase(nil, policy.NewGate(policy.DefaultRules()), nil, 0, nil)
		_, err := uc.Start(context.Background(), buyer, 4)
		assertErrorIs(t, err, ErrInvalidKycLevel)
	})

	t.Run("opens a pending case for the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewKycUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil, 0, nil)
		m.kycCases.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, k entities.KycCase) (entities.KycCase, error) {
			return k, nil
		})

		k, err := uc.Start(context.Background(), buyer, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if k.UserID != buyer.UserID || k.Status != entities.KycStatusPending || k.LevelRequested != 2 {
			t.Fatalf("unexpected case: %+v", k)
		}
	})
}

func TestKycUseCase_Review(t *testing.T) {
	t.Run("non-admin cannot review", func(t *testing.T) {
		uc := NewKycUseCase(nil, policy.NewGate(policy.DefaultRules()), nil, 0, nil)
		_, _, err := uc.Approve(context.Background(), seller, "k-1")
		assertErrorIs(t, err, ErrForbidden)
		_, err = uc.List(context.Background(), buyer, "")
		assertErrorIs(t, err, ErrForbidden)
	})

	t.Run("list defaults to pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewKycUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil, 0, nil)
		m.kycCases.EXPECT().ListByStatus(gomock.Any(), entities.KycStatusPending).Return([]entities.KycCase{pendingCase()}, nil)

		got, err := uc.List(context.Background(), admin, "")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected list: %v err=%v", got, err)
		}
	})

	t.Run("approve raises trust and invalidates the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		cache := mock_interfaces.NewMockITrustLevelCache(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewKycUseCase(m.uow, policy.NewGate(policy.DefaultRules()), cache, time.Minute, notifier)

		m.kycCases.EXPECT().GetByID(gomock.Any(), "k-1").Return(pendingCase(), nil)
		m.kycCases.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, k entities.KycCase) (entities.KycCase, error) {
			return k, nil
		})
		m.userTrust.EXPECT().Get(gomock.Any(), buyer.UserID).Return(entities.UserTrust{UserID: buyer.UserID, KycLevel: 1}, nil)
		m.userTrust.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.UserTrust) (entities.UserTrust, error) {
			return u, nil
		})
		cache.EXPECT().Invalidate(gomock.Any(), buyer.UserID).Return(nil)
		notifier.EXPECT().Notify(gomock.Any(), buyer.UserID, interfaces.TemplateKycReviewed, gomock.Any()).Return(nil)

		k, trust, err := uc.Approve(context.Background(), admin, "k-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if k.Status != entities.KycStatusApproved || trust.KycLevel != 2 {
			t.Fatalf("unexpected result: %+v %+v", k, trust)
		}
	})

	t.Run("approve never lowers trust", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewKycUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil, 0, nil)

		m.kycCases.EXPECT().GetByID(gomock.Any(), "k-1").Return(pendingCase(), nil)
		m.kycCases.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, k entities.KycCase) (entities.KycCase, error) {
			return k, nil
		})
		m.userTrust.EXPECT().Get(gomock.Any(), buyer.UserID).Return(entities.UserTrust{UserID: buyer.UserID, KycLevel: 3}, nil)
		m.userTrust.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

		_, trust, err := uc.Approve(context.Background(), admin, "k-1")
		if err != nil || trust.KycLevel != 3 {
			t.Fatalf("expected level 3 kept, got %+v err=%v", trust, err)
		}
	})

	t.Run("reject requires a reason code", func(t *testing.T) {
		uc := NewKycUseCase(nil, policy.NewGate(policy.DefaultRules()), nil, 0, nil)
		_, err := uc.Reject(context.Background(), admin, "k-1", entities.KycRejection{ReasonCode: " "})
		assertErrorIs(t, err, ErrInvalidReasonCode)
	})

	t.Run("reject reviewed case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewKycUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil, 0, nil)

		k := pendingCase()
		k.Status = entities.KycStatusApproved
		m.kycCases.EXPECT().GetByID(gomock.Any(), "k-1").Return(k, nil)

		_, err := uc.Reject(context.Background(), admin, "k-1", entities.KycRejection{ReasonCode: "DOC_ILLEGIBLE"})
		assertErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("missing case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewKycUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil, 0, nil)
		m.kycCases.EXPECT().GetByID(gomock.Any(), "k-9").Return(entities.KycCase{}, nil)

		_, _, err := uc.Approve(context.Background(), admin, "k-9")
		assertErrorIs(t, err, ErrKycCaseNotFound)
	})
}

func TestKycUseCase_EffectiveKycLevel(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockITrustLevelCache(ctrl)
		uc := NewKycUseCase(nil, policy.NewGate(policy.DefaultRules()), cache, time.Minute, nil)
		cache.EXPECT().Get(gomock.Any(), "u-1").Return(2, true, nil)

		if got := uc.EffectiveKycLevel(context.Background(), "u-1", 1); got != 2 {
			t.Fatalf("expected 2, got %d", got)
		}
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		cache := mock_interfaces.NewMockITrustLevelCache(ctrl)
		uc := NewKycUseCase(m.uow, policy.NewGate(policy.DefaultRules()), cache, time.Minute, nil)
		cache.EXPECT().Get(gomock.Any(), "u-1").Return(0, false, nil)
		m.userTrust.EXPECT().Get(gomock.Any(), "u-1").Return(entities.UserTrust{UserID: "u-1", KycLevel: 1}, nil)
		cache.EXPECT().Set(gomock.Any(), "u-1", 1, time.Minute).Return(nil)

		if got := uc.EffectiveKycLevel(context.Background(), "u-1", 3); got != 3 {
			t.Fatalf("claim above stored level should win, got %d", got)
		}
	})

	t.Run("lookup failure falls back to the claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		cache := mock_interfaces.NewMockITrustLevelCache(ctrl)
		uc := NewKycUseCase(m.uow, policy.NewGate(policy.DefaultRules()), cache, time.Minute, nil)
		cache.EXPECT().Get(gomock.Any(), "u-1").Return(0, false, errors.New("redis down"))
		m.userTrust.EXPECT().Get(gomock.Any(), "u-1").Return(entities.UserTrust{}, errors.New("db down"))

		if got := uc.EffectiveKycLevel(context.Background(), "u-1", 1); got != 1 {
			t.Fatalf("expected claimed level, got %d", got)
		}
	})
}
