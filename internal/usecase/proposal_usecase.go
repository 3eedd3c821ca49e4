package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProposalInput struct {
	QuotaID    string
	Premium    decimal.Decimal
	TermMonths *int
}

type AcceptProposalResult struct {
	Proposal    entities.Proposal
	Transaction entities.Transaction
}

// IProposalUseCase is the negotiation manager.
//
// Accept is the only path that sells a quota: proposal accepted, quota sold and
// transaction opened commit together. Concurrent accepts on one quota race on the
// quota version; the loser re-reads, finds the quota sold and fails with ErrQuotaSold.
type IProposalUseCase interface {
	Create(ctx context.Context, actor entities.Principal, in CreateProposalInput) (entities.Proposal, error)
	Cancel(ctx context.Context, actor entities.Principal, proposalID string, reason *string) (entities.Proposal, error)
	Accept(ctx context.Context, actor entities.Principal, proposalID string, saleValue decimal.Decimal) (AcceptProposalResult, error)
	ListByQuota(ctx context.Context, actor entities.Principal, quotaID string) ([]entities.Proposal, error)
}

type ProposalUseCase struct {
	uow      interfaces.IUnitOfWork
	gate     policy.Gate
	notifier interfaces.INotifier
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(uow interfaces.IUnitOfWork, gate policy.Gate, notifier interfaces.INotifier) *ProposalUseCase {
	return &ProposalUseCase{uow: uow, gate: gate, notifier: notifier}
}

func (u *ProposalUseCase) Create(ctx context.Context, actor entities.Principal, in CreateProposalInput) (entities.Proposal, error) {
	quotaID := strings.TrimSpace(in.QuotaID)
	if quotaID == "" {
		return entities.Proposal{}, ErrInvalidQuotaID
	}
	if in.Premium.IsNegative() {
		return entities.Proposal{}, ErrInvalidPremium
	}
	if in.TermMonths != nil && *in.TermMonths < 1 {
		return entities.Proposal{}, ErrInvalidTermMonths
	}
	if err := u.gate.Authorize(actor, policy.ActionCreateProposal, policy.Subject{BuyerID: actor.UserID}); err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] create start quota_id=%s buyer_id=%s premium=%s", quotaID, actor.UserID, in.Premium)

	var created entities.Proposal
	var sellerID string
	err := retryOnVersionConflict(ctx, "proposal.create", func() error {
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			registry := NewQuotaRegistry(repos.Quotas)
			q, err := registry.Get(ctx, quotaID)
			if err != nil {
				return err
			}
			if !q.IsActionable() {
				return ErrQuotaSold
			}
			if err := u.gate.Authorize(actor, policy.ActionCreateProposal, policy.Subject{BuyerID: actor.UserID, SellerID: q.SellerID}); err != nil {
				return err
			}

			now := time.Now().UTC()
			p := entities.Proposal{
				ID:         uuid.NewString(),
				QuotaID:    q.ID,
				BuyerID:    actor.UserID,
				Premium:    in.Premium,
				TermMonths: in.TermMonths,
				Status:     entities.ProposalStatusOpen,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if q.Status == entities.QuotaStatusAvailable {
				if _, err := registry.MarkNegotiating(ctx, q); err != nil {
					return err
				}
			}
			created, err = repos.Proposals.Create(ctx, p)
			sellerID = q.SellerID
			return err
		})
	})
	if err != nil {
		log.Printf("[proposal][usecase] create failed quota_id=%s buyer_id=%s err=%v", quotaID, actor.UserID, err)
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] create success proposal_id=%s quota_id=%s", created.ID, created.QuotaID)

	notify(ctx, u.notifier, interfaces.TemplateProposalCreated, map[string]any{
		"proposalId": created.ID,
		"quotaId":    created.QuotaID,
		"premium":    created.Premium.String(),
	}, sellerID)
	return created, nil
}

func (u *ProposalUseCase) Cancel(ctx context.Context, actor entities.Principal, proposalID string, reason *string) (entities.Proposal, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	reason = trimmedOrNil(reason)

	var cancelled entities.Proposal
	var sellerID string
	err := retryOnVersionConflict(ctx, "proposal.cancel", func() error {
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			p, q, err := loadProposalAndQuota(ctx, repos, proposalID)
			if err != nil {
				return err
			}
			if err := u.gate.Authorize(actor, policy.ActionCancelProposal, policy.Subject{BuyerID: p.BuyerID, SellerID: q.SellerID}); err != nil {
				return err
			}
			if p.Status != entities.ProposalStatusOpen {
				return p.Cancel(reason, time.Now().UTC())
			}
			if !q.IsActionable() {
				return ErrQuotaSold
			}
			if err := p.Cancel(reason, time.Now().UTC()); err != nil {
				return err
			}
			cancelled, err = repos.Proposals.Update(ctx, p)
			sellerID = q.SellerID
			return err
		})
	})
	if err != nil {
		log.Printf("[proposal][usecase] cancel failed proposal_id=%s actor_id=%s err=%v", proposalID, actor.UserID, err)
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] cancel success proposal_id=%s actor_id=%s", cancelled.ID, actor.UserID)

	notify(ctx, u.notifier, interfaces.TemplateProposalCancelled, map[string]any{
		"proposalId": cancelled.ID,
		"quotaId":    cancelled.QuotaID,
	}, cancelRecipients(actor.UserID, cancelled.BuyerID, sellerID)...)
	return cancelled, nil
}

// cancelRecipients returns the parties other than the actor. An admin
// cancelling on nobody's behalf notifies both.
func cancelRecipients(actorID, buyerID, sellerID string) []string {
	switch actorID {
	case buyerID:
		return []string{sellerID}
	case sellerID:
		return []string{buyerID}
	default:
		return []string{buyerID, sellerID}
	}
}

func (u *ProposalUseCase) Accept(ctx context.Context, actor entities.Principal, proposalID string, saleValue decimal.Decimal) (AcceptProposalResult, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return AcceptProposalResult{}, ErrInvalidProposalID
	}
	if !saleValue.IsPositive() {
		return AcceptProposalResult{}, ErrInvalidSaleValue
	}
	log.Printf("[proposal][usecase] accept start proposal_id=%s actor_id=%s sale_value=%s", proposalID, actor.UserID, saleValue)

	var res AcceptProposalResult
	err := retryOnVersionConflict(ctx, "proposal.accept", func() error {
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			p, q, err := loadProposalAndQuota(ctx, repos, proposalID)
			if err != nil {
				return err
			}
			if err := u.gate.Authorize(actor, policy.ActionAcceptProposal, policy.Subject{BuyerID: p.BuyerID, SellerID: q.SellerID}); err != nil {
				return err
			}
			if p.Status != entities.ProposalStatusOpen {
				return p.Accept(time.Now().UTC())
			}
			if !q.IsActionable() {
				return ErrQuotaSold
			}

			now := time.Now().UTC()
			if err := p.Accept(now); err != nil {
				return err
			}
			sold, err := NewQuotaRegistry(repos.Quotas).MarkSold(ctx, q, p.BuyerID, saleValue, p.ID)
			if err != nil {
				return err
			}
			accepted, err := repos.Proposals.Update(ctx, p)
			if err != nil {
				return err
			}
			tx, err := repos.Transactions.Create(ctx, entities.NewTransaction(uuid.NewString(), sold, accepted, now))
			if err != nil {
				return err
			}
			res = AcceptProposalResult{Proposal: accepted, Transaction: tx}
			return nil
		})
	})
	if err != nil {
		log.Printf("[proposal][usecase] accept failed proposal_id=%s actor_id=%s err=%v", proposalID, actor.UserID, err)
		return AcceptProposalResult{}, err
	}
	log.Printf("[proposal][usecase] accept success proposal_id=%s quota_id=%s transaction_id=%s", res.Proposal.ID, res.Proposal.QuotaID, res.Transaction.ID)

	notify(ctx, u.notifier, interfaces.TemplateProposalAccepted, map[string]any{
		"proposalId":    res.Proposal.ID,
		"quotaId":       res.Proposal.QuotaID,
		"transactionId": res.Transaction.ID,
		"saleValue":     saleValue.String(),
	}, res.Transaction.BuyerID)
	return res, nil
}

// ListByQuota returns the quota's proposals, newest first. The quota seller and
// admins see every proposal; anyone else sees only their own.
func (u *ProposalUseCase) ListByQuota(ctx context.Context, actor entities.Principal, quotaID string) ([]entities.Proposal, error) {
	quotaID = strings.TrimSpace(quotaID)
	if quotaID == "" {
		return nil, ErrInvalidQuotaID
	}
	if actor.UserID == "" {
		return nil, policy.ErrUnauthenticated
	}

	var out []entities.Proposal
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		q, err := NewQuotaRegistry(repos.Quotas).Get(ctx, quotaID)
		if err != nil {
			return err
		}
		all, err := repos.Proposals.ListByQuotaID(ctx, q.ID)
		if err != nil {
			return err
		}
		seeAll := actor.IsAdmin() || actor.UserID == q.SellerID
		out = make([]entities.Proposal, 0, len(all))
		for _, p := range all {
			if seeAll || p.BuyerID == actor.UserID {
				out = append(out, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func loadProposalAndQuota(ctx context.Context, repos interfaces.Repositories, proposalID string) (entities.Proposal, entities.Quota, error) {
	p, err := repos.Proposals.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, entities.Quota{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, entities.Quota{}, ErrProposalNotFound
	}
	q, err := NewQuotaRegistry(repos.Quotas).Get(ctx, p.QuotaID)
	if err != nil {
		return entities.Proposal{}, entities.Quota{}, err
	}
	return p, q, nil
}
