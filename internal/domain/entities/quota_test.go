package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestQuota_Transitions(t *testing.T) {
	now := time.Now().UTC()

	t.Run("negotiating only from available", func(t *testing.T) {
		q := Quota{ID: "q1", Status: QuotaStatusAvailable}
		if err := q.MarkNegotiating(now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := q.MarkNegotiating(now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("sold is terminal", func(t *testing.T) {
		q := Quota{ID: "q1", Status: QuotaStatusNegotiating}
		if err := q.MarkSold("buyer", decimal.NewFromInt(500), "p1", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.IsActionable() {
			t.Fatalf("sold quota must not be actionable")
		}
		if q.BuyerID == nil || *q.BuyerID != "buyer" || q.WinningProposalID == nil || *q.WinningProposalID != "p1" {
			t.Fatalf("sale fields not set: %+v", q)
		}
		if !q.SaleValue.Equal(decimal.NewFromInt(500)) || q.SoldAt == nil {
			t.Fatalf("sale value not set: %+v", q)
		}
		if err := q.MarkSold("other", decimal.NewFromInt(1), "p2", now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if err := q.MarkNegotiating(now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if *q.BuyerID != "buyer" {
			t.Fatalf("buyer changed after sale")
		}
	})
}

func TestProposal_Transitions(t *testing.T) {
	now := time.Now().UTC()

	t.Run("cancel twice", func(t *testing.T) {
		p := Proposal{ID: "p1", Status: ProposalStatusOpen}
		reason := "changed my mind"
		if err := p.Cancel(&reason, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.CancelledAt == nil || p.CancelReason == nil || *p.CancelReason != reason {
			t.Fatalf("cancel fields not set: %+v", p)
		}
		if err := p.Cancel(nil, now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if err := p.Accept(now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("accepted cannot be cancelled", func(t *testing.T) {
		p := Proposal{ID: "p1", Status: ProposalStatusOpen}
		if err := p.Accept(now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := p.Cancel(nil, now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if p.Status != ProposalStatusAccepted {
			t.Fatalf("status changed: %s", p.Status)
		}
	})
}

func TestEscrow_Transitions(t *testing.T) {
	now := time.Now().UTC()

	e := Escrow{ID: "e1", Status: EscrowStatusIntentCreated}
	if err := e.Release(now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("release before authorization must fail, got %v", err)
	}
	if err := e.Authorize(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Authorize(now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := e.Release(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Refund("late", now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("refund after release must fail, got %v", err)
	}
	if e.ReleasedAt == nil || e.RefundedAt != nil {
		t.Fatalf("unexpected timestamps: %+v", e)
	}
}

func TestUserTrust_Raise(t *testing.T) {
	u := UserTrust{UserID: "u1", KycLevel: 2}
	if u.Raise(1, time.Now()) {
		t.Fatalf("trust level must not decrease")
	}
	if !u.Raise(3, time.Now()) || u.KycLevel != 3 {
		t.Fatalf("expected level 3, got %d", u.KycLevel)
	}
}
