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

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func openProposal() entities.Proposal {
	return entities.Proposal{ID: "p-1", QuotaID: "q-1", BuyerID: buyer.UserID, Premium: decimal.NewFromInt(5000), Status: entities.ProposalStatusOpen, Version: 1}
}

func negotiatingQuota() entities.Quota {
	return entities.Quota{ID: "q-1", SellerID: seller.UserID, CreditValue: decimal.NewFromInt(100000), Status: entities.QuotaStatusNegotiating, Version: 2}
}

func TestProposalUseCase_Create(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewProposalUseCase(nil, policy.NewGate(policy.DefaultRules()), nil)
		months := 0

		_, err := uc.Create(context.Background(), buyer, CreateProposalInput{QuotaID: " "})
		assertErrorIs(t, err, ErrInvalidQuotaID)
		_, err = uc.Create(context.Background(), buyer, CreateProposalInput{QuotaID: "q-1", Premium: decimal.NewFromInt(-1)})
		assertErrorIs(t, err, ErrInvalidPremium)
		_, err = uc.Create(context.Background(), buyer, CreateProposalInput{QuotaID: "q-1", TermMonths: &months})
		assertErrorIs(t, err, ErrInvalidTermMonths)
		_, err = uc.Create(context.Background(), seller, CreateProposalInput{QuotaID: "q-1"})
		assertErrorIs(t, err, ErrForbidden)
	})

	t.Run("first proposal marks quota negotiating and notifies seller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), notifier)

		q := negotiatingQuota()
		q.Status = entities.QuotaStatusAvailable
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.quotas.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got entities.Quota) (entities.Quota, error) {
			if got.Status != entities.QuotaStatusNegotiating {
				t.Fatalf("expected negotiating, got %s", got.Status)
			}
			return got, nil
		})
		m.proposals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
			p.Version = 1
			return p, nil
		})
		notifier.EXPECT().Notify(gomock.Any(), seller.UserID, interfaces.TemplateProposalCreated, gomock.Any()).Return(nil)

		p, err := uc.Create(context.Background(), buyer, CreateProposalInput{QuotaID: "q-1", Premium: decimal.NewFromInt(5000)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProposalStatusOpen || p.BuyerID != buyer.UserID || p.ID == "" {
			t.Fatalf("unexpected proposal: %+v", p)
		}
	})

	t.Run("sold quota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		q := negotiatingQuota()
		q.Status = entities.QuotaStatusSold
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Create(context.Background(), buyer, CreateProposalInput{QuotaID: "q-1"})
		assertErrorIs(t, err, ErrQuotaSold)
	})

	t.Run("seller cannot bid on own quota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		q := negotiatingQuota()
		q.SellerID = buyer.UserID
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Create(context.Background(), buyer, CreateProposalInput{QuotaID: "q-1"})
		assertErrorIs(t, err, policy.ErrSelfDealing)
	})
}

func TestProposalUseCase_Cancel(t *testing.T) {
	t.Run("proposal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{}, nil)

		_, err := uc.Cancel(context.Background(), buyer, "p-1", nil)
		assertErrorIs(t, err, ErrProposalNotFound)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(openProposal(), nil)
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(negotiatingQuota(), nil)

		_, err := uc.Cancel(context.Background(), other, "p-1", nil)
		assertErrorIs(t, err, ErrForbidden)
	})

	t.Run("already accepted is an invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		p := openProposal()
		p.Status = entities.ProposalStatusAccepted
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(negotiatingQuota(), nil)

		_, err := uc.Cancel(context.Background(), buyer, "p-1", nil)
		assertErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("open proposal on sold quota conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		q := negotiatingQuota()
		q.Status = entities.QuotaStatusSold
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(openProposal(), nil)
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Cancel(context.Background(), buyer, "p-1", nil)
		assertErrorIs(t, err, ErrQuotaSold)
	})

	t.Run("seller cancels and buyer is notified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), notifier)

		reason := "  preço baixo "
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(openProposal(), nil)
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(negotiatingQuota(), nil)
		m.proposals.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
			return p, nil
		})
		notifier.EXPECT().Notify(gomock.Any(), buyer.UserID, interfaces.TemplateProposalCancelled, gomock.Any()).Return(errors.New("smtp down"))

		p, err := uc.Cancel(context.Background(), seller, "p-1", &reason)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProposalStatusCancelled || p.CancelReason == nil || *p.CancelReason != "preço baixo" || p.CancelledAt == nil {
			t.Fatalf("unexpected proposal: %+v", p)
		}
	})

	t.Run("buyer cancels and seller is notified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), notifier)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(openProposal(), nil)
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(negotiatingQuota(), nil)
		m.proposals.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
			return p, nil
		})
		notifier.EXPECT().Notify(gomock.Any(), seller.UserID, interfaces.TemplateProposalCancelled, gomock.Any()).Return(nil)

		if _, err := uc.Cancel(context.Background(), buyer, "p-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("admin cancels and both parties are notified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), notifier)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(openProposal(), nil)
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(negotiatingQuota(), nil)
		m.proposals.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
			return p, nil
		})
		notifier.EXPECT().Notify(gomock.Any(), buyer.UserID, interfaces.TemplateProposalCancelled, gomock.Any()).Return(nil)
		notifier.EXPECT().Notify(gomock.Any(), seller.UserID, interfaces.TemplateProposalCancelled, gomock.Any()).Return(nil)

		if _, err := uc.Cancel(context.Background(), admin, "p-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_Accept(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewProposalUseCase(nil, policy.NewGate(policy.DefaultRules()), nil)
		_, err := uc.Accept(context.Background(), seller, "", decimal.NewFromInt(1))
		assertErrorIs(t, err, ErrInvalidProposalID)
		_, err = uc.Accept(context.Background(), seller, "p-1", decimal.Zero)
		assertErrorIs(t, err, ErrInvalidSaleValue)
	})

	t.Run("only the seller accepts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(openProposal(), nil)
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(negotiatingQuota(), nil)

		_, err := uc.Accept(context.Background(), buyer, "p-1", decimal.NewFromInt(90000))
		assertErrorIs(t, err, policy.ErrNotParticipant)
	})

	t.Run("sells quota and opens transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), notifier)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(openProposal(), nil)
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(negotiatingQuota(), nil)
		m.quotas.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quota) (entities.Quota, error) {
			if q.Status != entities.QuotaStatusSold || *q.BuyerID != buyer.UserID || *q.WinningProposalID != "p-1" || !q.SaleValue.Equal(decimal.NewFromInt(90000)) {
				t.Fatalf("unexpected quota write: %+v", q)
			}
			q.Version++
			return q, nil
		})
		m.proposals.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
			return p, nil
		})
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
			return tx, nil
		})
		notifier.EXPECT().Notify(gomock.Any(), buyer.UserID, interfaces.TemplateProposalAccepted, gomock.Any()).Return(nil)

		res, err := uc.Accept(context.Background(), seller, "p-1", decimal.NewFromInt(90000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Proposal.Status != entities.ProposalStatusAccepted {
			t.Fatalf("expected accepted proposal, got %s", res.Proposal.Status)
		}
		tx := res.Transaction
		if tx.Status != entities.TransactionStatusProposalAccepted || tx.BuyerID != buyer.UserID || tx.SellerID != seller.UserID || tx.ProposalID != "p-1" || tx.QuotaID != "q-1" {
			t.Fatalf("unexpected transaction: %+v", tx)
		}
	})

	t.Run("losing a race re-reads and reports the quota sold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		sold := negotiatingQuota()
		sold.Status = entities.QuotaStatusSold
		sold.Version = 3

		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(openProposal(), nil).Times(2)
		gomock.InOrder(
			m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(negotiatingQuota(), nil),
			m.quotas.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Quota{}, interfaces.ErrVersionConflict),
			m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(sold, nil),
		)

		_, err := uc.Accept(context.Background(), seller, "p-1", decimal.NewFromInt(90000))
		assertErrorIs(t, err, ErrQuotaSold)
		assertErrorIs(t, err, ErrConflict)
	})

	t.Run("persistent conflicts give up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(openProposal(), nil).Times(maxVersionAttempts)
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(negotiatingQuota(), nil).Times(maxVersionAttempts)
		m.quotas.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Quota{}, interfaces.ErrVersionConflict).Times(maxVersionAttempts)

		_, err := uc.Accept(context.Background(), seller, "p-1", decimal.NewFromInt(90000))
		assertErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("cancelled proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		p := openProposal()
		p.Status = entities.ProposalStatusCancelled
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(negotiatingQuota(), nil)

		_, err := uc.Accept(context.Background(), seller, "p-1", decimal.NewFromInt(90000))
		assertErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestProposalUseCase_ListByQuota(t *testing.T) {
	now := time.Now().UTC()
	mine := openProposal()
	mine.CreatedAt = now.Add(-time.Hour)
	theirs := openProposal()
	theirs.ID, theirs.BuyerID, theirs.CreatedAt = "p-2", buyer2.UserID, now

	cases := []struct {
		name  string
		actor entities.Principal
		want  []string
	}{
		{name: "seller sees all newest first", actor: seller, want: []string{"p-2", "p-1"}},
		{name: "admin sees all", actor: admin, want: []string{"p-2", "p-1"}},
		{name: "buyer sees own", actor: buyer, want: []string{"p-1"}},
		{name: "stranger sees none", actor: other, want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMockRepos(ctrl)
			uc := NewProposalUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

			m.quotas.EXPECT().GetByID(gomock.Any(), "q-1").Return(negotiatingQuota(), nil)
			m.proposals.EXPECT().ListByQuotaID(gomock.Any(), "q-1").Return([]entities.Proposal{mine, theirs}, nil)

			got, err := uc.ListByQuota(context.Background(), tc.actor, "q-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d proposals, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}

	t.Run("anonymous", func(t *testing.T) {
		uc := NewProposalUseCase(nil, policy.NewGate(policy.DefaultRules()), nil)
		_, err := uc.ListByQuota(context.Background(), entities.Principal{}, "q-1")
		assertErrorIs(t, err, policy.ErrUnauthenticated)
	})
}
