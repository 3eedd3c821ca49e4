package usecase

import (
	"context"
	"errors"
	"testing"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestQuotaUseCase_Create(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewQuotaUseCase(nil, policy.NewGate(policy.DefaultRules()))

		_, err := uc.Create(context.Background(), buyer, CreateQuotaInput{CreditValue: decimal.NewFromInt(1)})
		assertErrorIs(t, err, ErrForbidden)
		_, err = uc.Create(context.Background(), seller, CreateQuotaInput{})
		assertErrorIs(t, err, ErrInvalidCreditValue)
		_, err = uc.Create(context.Background(), seller, CreateQuotaInput{CreditValue: decimal.NewFromInt(1), InstallmentsPaid: 12, InstallmentsTotal: 10})
		assertErrorIs(t, err, ErrInvalidInstallments)
		_, err = uc.Create(context.Background(), seller, CreateQuotaInput{CreditValue: decimal.NewFromInt(1), InstallmentsPaid: -1})
		assertErrorIs(t, err, ErrInvalidInstallments)
	})

	t.Run("stores search attributes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newMockRepos(ctrl)
		m.quotas.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quota) (entities.Quota, error) {
			q.Version = 1
			return q, nil
		})

		uc := NewQuotaUseCase(m.uow, policy.NewGate(policy.DefaultRules()))
		q, err := uc.Create(context.Background(), seller, CreateQuotaInput{
			Administrator:     " Porto Seguro ",
			CreditValue:       decimal.NewFromInt(100000),
			AssetType:         " Imovel ",
			InstallmentsPaid:  20,
			InstallmentsTotal: 180,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.SellerID != seller.UserID || q.Status != entities.QuotaStatusAvailable {
			t.Fatalf("unexpected quota %+v", q)
		}
		if q.AssetType != "imovel" || q.InstallmentsPaid != 20 || q.InstallmentsTotal != 180 || q.Administrator != "Porto Seguro" {
			t.Fatalf("search attributes not stored: %+v", q)
		}
	})
}

func TestQuotaUseCase_Search(t *testing.T) {
	dec := func(v int64) *decimal.Decimal { d := decimal.NewFromInt(v); return &d }
	intp := func(v int) *int { return &v }

	t.Run("rejects bad filters", func(t *testing.T) {
		uc := NewQuotaUseCase(nil, policy.NewGate(policy.DefaultRules()))
		bad := []SearchQuotasInput{
			{MinCreditValue: dec(-1)},
			{MaxCreditValue: dec(-1)},
			{MinCreditValue: dec(200), MaxCreditValue: dec(100)},
			{MinInstallmentsPaid: intp(-3)},
			{Limit: -1},
			{Offset: -1},
		}
		for _, in := range bad {
			_, err := uc.Search(context.Background(), in)
			assertErrorIs(t, err, ErrInvalidSearchFilter)
		}
	})

	t.Run("normalizes the filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newMockRepos(ctrl)
		m.quotas.EXPECT().ListAvailable(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f interfaces.QuotaFilter) ([]entities.Quota, error) {
			if f.AssetType != "automovel" {
				t.Fatalf("asset type not normalized: %q", f.AssetType)
			}
			if f.Limit != DefaultQuotaSearchLimit || f.Offset != 10 {
				t.Fatalf("unexpected page limit=%d offset=%d", f.Limit, f.Offset)
			}
			if f.MinCreditValue == nil || !f.MinCreditValue.Equal(decimal.NewFromInt(50000)) {
				t.Fatalf("min credit value lost: %v", f.MinCreditValue)
			}
			if f.MinInstallmentsPaid == nil || *f.MinInstallmentsPaid != 12 {
				t.Fatalf("min installments lost: %v", f.MinInstallmentsPaid)
			}
			return []entities.Quota{{ID: "q-1", Status: entities.QuotaStatusAvailable}}, nil
		})

		uc := NewQuotaUseCase(m.uow, policy.NewGate(policy.DefaultRules()))
		got, err := uc.Search(context.Background(), SearchQuotasInput{
			AssetType:           " Automovel",
			MinCreditValue:      dec(50000),
			MinInstallmentsPaid: intp(12),
			Offset:              10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "q-1" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("caps the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newMockRepos(ctrl)
		m.quotas.EXPECT().ListAvailable(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f interfaces.QuotaFilter) ([]entities.Quota, error) {
			if f.Limit != MaxQuotaSearchLimit {
				t.Fatalf("expected limit %d, got %d", MaxQuotaSearchLimit, f.Limit)
			}
			return nil, nil
		})

		uc := NewQuotaUseCase(m.uow, policy.NewGate(policy.DefaultRules()))
		got, err := uc.Search(context.Background(), SearchQuotasInput{Limit: 5000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", got)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newMockRepos(ctrl)
		boom := errors.New("db down")
		m.quotas.EXPECT().ListAvailable(gomock.Any(), gomock.Any()).Return(nil, boom)

		uc := NewQuotaUseCase(m.uow, policy.NewGate(policy.DefaultRules()))
		_, err := uc.Search(context.Background(), SearchQuotasInput{})
		assertErrorIs(t, err, boom)
	})
}

func TestScenario_SearchSkipsSoldQuotas(t *testing.T) {
	mk := newMarketplace()
	ctx := context.Background()
	open := mk.listQuota(t)
	sold := mk.acceptedTransaction(t).QuotaID

	got, err := mk.quotas.Search(ctx, SearchQuotasInput{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, q := range got {
		if q.ID == sold {
			t.Fatalf("sold quota %s listed", sold)
		}
	}
	found := false
	for _, q := range got {
		found = found || q.ID == open.ID
	}
	if !found {
		t.Fatalf("open quota %s missing from %+v", open.ID, got)
	}
}
