package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type CreateIntentInput struct {
	TransactionID    string
	AmountMinorUnits int64
	Split            entities.Split
	Metadata         map[string]any
}

// WebhookResult reports what a provider delivery did. It is informational only:
// deliveries are acknowledged whatever the outcome.
type WebhookResult struct {
	EventID       string
	Outcome       entities.WebhookOutcome
	EscrowID      string
	TransactionID string
	Detail        string
}

// IEscrowUseCase wraps the escrow provider.
//
// Provider calls are never made while a persistence transaction is open. A provider
// failure returns ErrProvider and leaves stored state untouched.
type IEscrowUseCase interface {
	CreateIntent(ctx context.Context, actor entities.Principal, in CreateIntentInput) (entities.Escrow, error)
	HandleWebhook(ctx context.Context, req interfaces.WebhookRequest) WebhookResult
	Release(ctx context.Context, actor entities.Principal, transactionID string) (entities.Escrow, error)
	Refund(ctx context.Context, actor entities.Principal, transactionID string, reason string) (entities.Escrow, error)
}

type EscrowUseCase struct {
	uow          interfaces.IUnitOfWork
	provider     interfaces.IEscrowProvider
	journal      interfaces.IWebhookEventRepository
	gate         policy.Gate
	notifier     interfaces.INotifier
	orchestrator TransactionOrchestrator
}

var _ IEscrowUseCase = (*EscrowUseCase)(nil)

func NewEscrowUseCase(uow interfaces.IUnitOfWork, provider interfaces.IEscrowProvider, journal interfaces.IWebhookEventRepository, gate policy.Gate, notifier interfaces.INotifier) *EscrowUseCase {
	return &EscrowUseCase{uow: uow, provider: provider, journal: journal, gate: gate, notifier: notifier}
}

// CreateIntent opens the provider hold for a transaction at contrato_assinado.
// A second call for the same transaction returns the stored escrow without
// calling the provider again.
func (u *EscrowUseCase) CreateIntent(ctx context.Context, actor entities.Principal, in CreateIntentInput) (entities.Escrow, error) {
	txID := strings.TrimSpace(in.TransactionID)
	if txID == "" {
		return entities.Escrow{}, ErrInvalidTransactionID
	}
	if in.AmountMinorUnits <= 0 {
		return entities.Escrow{}, ErrInvalidAmount
	}
	if in.Split.PlatformFeeMinorUnits < 0 || in.Split.PlatformFeeMinorUnits > in.AmountMinorUnits {
		return entities.Escrow{}, ErrInvalidSplit
	}
	log.Printf("[escrow][usecase] create-intent start transaction_id=%s amount=%d fee=%d", txID, in.AmountMinorUnits, in.Split.PlatformFeeMinorUnits)

	existing, err := u.checkIntentPreconditions(ctx, actor, txID)
	if err != nil {
		log.Printf("[escrow][usecase] create-intent rejected transaction_id=%s err=%v", txID, err)
		return entities.Escrow{}, err
	}
	if existing.ID != "" {
		log.Printf("[escrow][usecase] create-intent idempotent hit transaction_id=%s escrow_id=%s", txID, existing.ID)
		return existing, nil
	}

	res, err := u.provider.CreateIntent(ctx, interfaces.CreateIntentRequest{
		TransactionID:    txID,
		AmountMinorUnits: in.AmountMinorUnits,
		Split:            in.Split,
		Metadata:         in.Metadata,
	})
	if err != nil {
		log.Printf("[escrow][usecase] provider create-intent failed transaction_id=%s provider=%s err=%v", txID, u.provider.Name(), err)
		return entities.Escrow{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	now := time.Now().UTC()
	status := res.Status
	if status == "" {
		status = entities.EscrowStatusIntentCreated
	}
	e := entities.Escrow{
		ID:               uuid.NewString(),
		TransactionID:    txID,
		Provider:         u.provider.Name(),
		ProviderIntentID: res.ProviderIntentID,
		AmountMinorUnits: in.AmountMinorUnits,
		FeeMinorUnits:    in.Split.PlatformFeeMinorUnits,
		Split:            in.Split,
		Metadata:         in.Metadata,
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	var created entities.Escrow
	err = u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		t, err := u.orchestrator.Get(ctx, repos, txID)
		if err != nil {
			return err
		}
		if t.Status != entities.TransactionStatusContractSigned {
			return stepDenied(t, string(entities.TransactionStatusContractSigned))
		}
		created, err = repos.Escrows.Create(ctx, e)
		return err
	})
	if errors.Is(err, interfaces.ErrDuplicate) {
		// A concurrent call stored its escrow first; ours is an orphan at the provider.
		log.Printf("[escrow][usecase] create-intent lost race transaction_id=%s orphan_intent_id=%s", txID, res.ProviderIntentID)
		u.voidOrphanIntent(ctx, res.ProviderIntentID)
		return u.escrowOf(ctx, txID)
	}
	if err != nil {
		log.Printf("[escrow][usecase] create-intent persist failed transaction_id=%s err=%v", txID, err)
		u.voidOrphanIntent(ctx, res.ProviderIntentID)
		return entities.Escrow{}, err
	}
	log.Printf("[escrow][usecase] create-intent success transaction_id=%s escrow_id=%s intent_id=%s", txID, created.ID, created.ProviderIntentID)
	return created, nil
}

func (u *EscrowUseCase) checkIntentPreconditions(ctx context.Context, actor entities.Principal, txID string) (entities.Escrow, error) {
	var existing entities.Escrow
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		t, err := u.orchestrator.Get(ctx, repos, txID)
		if err != nil {
			return err
		}
		if err := u.gate.Authorize(actor, policy.ActionCreateEscrowIntent, subjectOf(t)); err != nil {
			return err
		}
		existing, err = repos.Escrows.GetByTransactionID(ctx, t.ID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			return nil
		}
		if t.Status != entities.TransactionStatusContractSigned {
			return stepDenied(t, string(entities.TransactionStatusContractSigned))
		}
		return nil
	})
	return existing, err
}

func (u *EscrowUseCase) voidOrphanIntent(ctx context.Context, providerIntentID string) {
	if providerIntentID == "" {
		return
	}
	if err := u.provider.Refund(ctx, providerIntentID, "orphan intent"); err != nil {
		log.Printf("[escrow][usecase] orphan intent void failed intent_id=%s err=%v", providerIntentID, err)
	}
}

func (u *EscrowUseCase) escrowOf(ctx context.Context, txID string) (entities.Escrow, error) {
	var e entities.Escrow
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		var err error
		e, err = repos.Escrows.GetByTransactionID(ctx, txID)
		if err != nil {
			return err
		}
		if e.ID == "" {
			return ErrEscrowNotFound
		}
		return nil
	})
	return e, err
}

// HandleWebhook reconciles a provider delivery. Only the intent id taken from the
// provider's own parsing is trusted; repeated, late or unknown deliveries change nothing.
func (u *EscrowUseCase) HandleWebhook(ctx context.Context, req interfaces.WebhookRequest) WebhookResult {
	n, parseErr := u.provider.ParseWebhook(ctx, req)

	eventID := strings.TrimSpace(n.ProviderEventID)
	if eventID == "" {
		sum := sha256.Sum256(req.Body)
		eventID = hex.EncodeToString(sum[:])
	}
	now := time.Now().UTC()
	ev := entities.WebhookEvent{
		ID:               u.provider.Name() + ":" + eventID,
		Provider:         u.provider.Name(),
		ProviderEventID:  eventID,
		ProviderIntentID: n.ProviderIntentID,
		ProviderStatus:   n.ProviderStatus,
		Payload:          req.Body,
		Outcome:          entities.WebhookOutcomeReceived,
		ReceivedAt:       now,
		UpdatedAt:        now,
	}
	result := WebhookResult{EventID: ev.ID}

	firstSeen := true
	if u.journal != nil {
		var err error
		firstSeen, err = u.journal.Append(ctx, ev)
		if err != nil {
			log.Printf("[escrow][webhook] journal append failed event_id=%s err=%v", ev.ID, err)
			firstSeen = true
		}
	}

	switch {
	case parseErr != nil:
		result.Outcome = entities.WebhookOutcomeRejected
		result.Detail = parseErr.Error()
	case n.ProviderIntentID == "":
		result.Outcome = entities.WebhookOutcomeIgnored
		result.Detail = "no intent id"
	case n.Status != entities.EscrowStatusAuthorized:
		result.Outcome = entities.WebhookOutcomeIgnored
		result.Detail = "provider status " + n.ProviderStatus
	default:
		result = u.applyAuthorization(ctx, n.ProviderIntentID, result)
	}
	if !firstSeen && result.Outcome == entities.WebhookOutcomeMatched {
		result.Outcome = entities.WebhookOutcomeDuplicate
	}

	log.Printf("[escrow][webhook] handled event_id=%s intent_id=%s outcome=%s first_seen=%t detail=%q", ev.ID, n.ProviderIntentID, result.Outcome, firstSeen, result.Detail)
	if u.journal != nil {
		if err := u.journal.UpdateOutcome(ctx, ev.ID, result.Outcome, result.Detail); err != nil {
			log.Printf("[escrow][webhook] journal update failed event_id=%s err=%v", ev.ID, err)
		}
	}
	return result
}

func (u *EscrowUseCase) applyAuthorization(ctx context.Context, providerIntentID string, result WebhookResult) WebhookResult {
	var tx entities.Transaction
	var moved bool
	err := retryOnVersionConflict(ctx, "escrow.webhook", func() error {
		moved = false
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			e, err := repos.Escrows.GetByProviderIntentID(ctx, providerIntentID)
			if err != nil {
				return err
			}
			if e.ID == "" {
				result.Outcome = entities.WebhookOutcomeUnmatched
				return nil
			}
			result.EscrowID = e.ID
			result.TransactionID = e.TransactionID

			switch e.Status {
			case entities.EscrowStatusReleased, entities.EscrowStatusRefunded:
				result.Outcome = entities.WebhookOutcomeDuplicate
				result.Detail = "escrow already " + string(e.Status)
				return nil
			case entities.EscrowStatusIntentCreated:
				if err := e.Authorize(time.Now().UTC()); err != nil {
					return err
				}
				if _, err := repos.Escrows.Update(ctx, e); err != nil {
					return err
				}
				result.Outcome = entities.WebhookOutcomeMatched
			default:
				result.Outcome = entities.WebhookOutcomeDuplicate
			}

			t, err := u.orchestrator.Get(ctx, repos, e.TransactionID)
			if err != nil {
				return err
			}
			if t.Status == entities.TransactionStatusCancelled {
				result.Detail = "transaction cancelled; hold must be refunded"
				return nil
			}
			tx, moved, err = u.orchestrator.AdvanceOnEscrowAuthorized(ctx, repos, t.ID)
			if err == nil && moved {
				result.Outcome = entities.WebhookOutcomeMatched
			}
			return err
		})
	})
	if err != nil {
		log.Printf("[escrow][webhook] apply authorization failed intent_id=%s err=%v", providerIntentID, err)
		result.Outcome = entities.WebhookOutcomeFailed
		result.Detail = err.Error()
		return result
	}
	if moved {
		notify(ctx, u.notifier, interfaces.TemplateEscrowAuthorized, map[string]any{
			"transactionId": tx.ID,
			"escrowId":      result.EscrowID,
		}, tx.BuyerID, tx.SellerID)
	}
	return result
}

// Release pays out the hold. The transaction must be transferencia_confirmada.
//
// The escrow is claimed with a version-checked write before the provider is
// called, so a concurrent refund is refused instead of racing the capture.
func (u *EscrowUseCase) Release(ctx context.Context, actor entities.Principal, transactionID string) (entities.Escrow, error) {
	txID := strings.TrimSpace(transactionID)
	if txID == "" {
		return entities.Escrow{}, ErrInvalidTransactionID
	}
	log.Printf("[escrow][usecase] release start transaction_id=%s actor_id=%s", txID, actor.UserID)

	var e entities.Escrow
	err := retryOnVersionConflict(ctx, "escrow.release.claim", func() error {
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			t, err := u.orchestrator.Get(ctx, repos, txID)
			if err != nil {
				return err
			}
			if err := u.gate.Authorize(actor, policy.ActionReleaseEscrow, subjectOf(t)); err != nil {
				return err
			}
			cur, err := releasable(ctx, repos, t)
			if err != nil {
				return err
			}
			if err := cur.Claim(entities.EscrowActionRelease, time.Now().UTC()); err != nil {
				return err
			}
			e, err = repos.Escrows.Update(ctx, cur)
			return err
		})
	})
	if err != nil {
		log.Printf("[escrow][usecase] release rejected transaction_id=%s err=%v", txID, err)
		return entities.Escrow{}, err
	}

	if err := u.provider.Release(ctx, e.ProviderIntentID, e.Split); err != nil {
		log.Printf("[escrow][usecase] provider release failed transaction_id=%s intent_id=%s err=%v", txID, e.ProviderIntentID, err)
		u.dropClaim(ctx, txID, entities.EscrowActionRelease)
		return entities.Escrow{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	var released entities.Escrow
	var tx entities.Transaction
	err = retryOnVersionConflict(ctx, "escrow.release", func() error {
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			t, err := u.orchestrator.Get(ctx, repos, txID)
			if err != nil {
				return err
			}
			cur, err := releasable(ctx, repos, t)
			if err != nil {
				return err
			}
			if !cur.HoldsClaim(entities.EscrowActionRelease) {
				return claimLost(cur, entities.EscrowActionRelease)
			}
			if err := cur.Release(time.Now().UTC()); err != nil {
				return err
			}
			if released, err = repos.Escrows.Update(ctx, cur); err != nil {
				return err
			}
			tx, _, err = u.orchestrator.AdvanceOnEscrowReleased(ctx, repos, t.ID)
			return err
		})
	})
	if err != nil {
		log.Printf("[escrow][usecase] release persist failed transaction_id=%s err=%v", txID, err)
		return entities.Escrow{}, err
	}
	log.Printf("[escrow][usecase] release success transaction_id=%s escrow_id=%s", txID, released.ID)

	notify(ctx, u.notifier, interfaces.TemplateEscrowReleased, map[string]any{
		"transactionId":    tx.ID,
		"escrowId":         released.ID,
		"amountMinorUnits": released.AmountMinorUnits,
	}, tx.BuyerID, tx.SellerID)
	return released, nil
}

func releasable(ctx context.Context, repos interfaces.Repositories, t entities.Transaction) (entities.Escrow, error) {
	if t.Status != entities.TransactionStatusTransferConfirmed {
		return entities.Escrow{}, stepDenied(t, string(entities.TransactionStatusTransferConfirmed))
	}
	e, err := repos.Escrows.GetByTransactionID(ctx, t.ID)
	if err != nil {
		return entities.Escrow{}, err
	}
	if e.ID == "" {
		return entities.Escrow{}, ErrEscrowNotFound
	}
	if e.Status != entities.EscrowStatusAuthorized {
		return entities.Escrow{}, fmt.Errorf("%w: escrow %s is %s", ErrStateTransitionDenied, e.ID, e.Status)
	}
	return e, nil
}

// Refund returns the hold to the buyer. It is refused once released and is a no-op
// when already refunded. A transaction that can still be cancelled is cancelled in
// the same persistence transaction.
func (u *EscrowUseCase) Refund(ctx context.Context, actor entities.Principal, transactionID string, reason string) (entities.Escrow, error) {
	txID := strings.TrimSpace(transactionID)
	if txID == "" {
		return entities.Escrow{}, ErrInvalidTransactionID
	}
	reason = strings.TrimSpace(reason)
	log.Printf("[escrow][usecase] refund start transaction_id=%s actor_id=%s", txID, actor.UserID)

	var e entities.Escrow
	err := retryOnVersionConflict(ctx, "escrow.refund.claim", func() error {
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			t, err := u.orchestrator.Get(ctx, repos, txID)
			if err != nil {
				return err
			}
			if err := u.gate.Authorize(actor, policy.ActionRefundEscrow, subjectOf(t)); err != nil {
				return err
			}
			cur, err := refundable(ctx, repos, t.ID)
			if err != nil {
				return err
			}
			if cur.Status == entities.EscrowStatusRefunded {
				e = cur
				return nil
			}
			if err := cur.Claim(entities.EscrowActionRefund, time.Now().UTC()); err != nil {
				return err
			}
			e, err = repos.Escrows.Update(ctx, cur)
			return err
		})
	})
	if err != nil {
		log.Printf("[escrow][usecase] refund rejected transaction_id=%s err=%v", txID, err)
		return entities.Escrow{}, err
	}
	if e.Status == entities.EscrowStatusRefunded {
		log.Printf("[escrow][usecase] refund idempotent hit transaction_id=%s escrow_id=%s", txID, e.ID)
		return e, nil
	}

	if err := u.provider.Refund(ctx, e.ProviderIntentID, reason); err != nil {
		log.Printf("[escrow][usecase] provider refund failed transaction_id=%s intent_id=%s err=%v", txID, e.ProviderIntentID, err)
		u.dropClaim(ctx, txID, entities.EscrowActionRefund)
		return entities.Escrow{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	var refunded entities.Escrow
	var tx entities.Transaction
	err = retryOnVersionConflict(ctx, "escrow.refund", func() error {
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			cur, err := refundable(ctx, repos, txID)
			if err != nil {
				return err
			}
			if cur.Status == entities.EscrowStatusRefunded {
				refunded = cur
				return nil
			}
			if !cur.HoldsClaim(entities.EscrowActionRefund) {
				return claimLost(cur, entities.EscrowActionRefund)
			}
			if err := cur.Refund(reason, time.Now().UTC()); err != nil {
				return err
			}
			if refunded, err = repos.Escrows.Update(ctx, cur); err != nil {
				return err
			}
			t, err := u.orchestrator.Get(ctx, repos, txID)
			if err != nil {
				return err
			}
			tx = t
			if t.CanTransitionTo(entities.TransactionStatusCancelled) {
				tx, err = u.orchestrator.Cancel(ctx, repos, t.ID)
			}
			return err
		})
	})
	if err != nil {
		log.Printf("[escrow][usecase] refund persist failed transaction_id=%s err=%v", txID, err)
		return entities.Escrow{}, err
	}
	log.Printf("[escrow][usecase] refund success transaction_id=%s escrow_id=%s transaction_status=%s", txID, refunded.ID, tx.Status)

	notify(ctx, u.notifier, interfaces.TemplateEscrowRefunded, map[string]any{
		"transactionId": txID,
		"escrowId":      refunded.ID,
		"reason":        reason,
	}, tx.BuyerID, tx.SellerID)
	return refunded, nil
}

func refundable(ctx context.Context, repos interfaces.Repositories, txID string) (entities.Escrow, error) {
	e, err := repos.Escrows.GetByTransactionID(ctx, txID)
	if err != nil {
		return entities.Escrow{}, err
	}
	if e.ID == "" {
		return entities.Escrow{}, ErrEscrowNotFound
	}
	if e.Status == entities.EscrowStatusReleased {
		return entities.Escrow{}, ErrEscrowAlreadyReleased
	}
	return e, nil
}

func claimLost(e entities.Escrow, action entities.EscrowAction) error {
	return fmt.Errorf("%w: escrow %s %s claim was taken over", ErrStateTransitionDenied, e.ID, action)
}

// dropClaim releases the escrow after a failed provider call. Failures are logged;
// the claim then expires after entities.EscrowClaimTTL.
func (u *EscrowUseCase) dropClaim(ctx context.Context, txID string, action entities.EscrowAction) {
	err := retryOnVersionConflict(ctx, "escrow.drop_claim", func() error {
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			cur, err := repos.Escrows.GetByTransactionID(ctx, txID)
			if err != nil || cur.ID == "" {
				return err
			}
			if !cur.DropClaim(action, time.Now().UTC()) {
				return nil
			}
			_, err = repos.Escrows.Update(ctx, cur)
			return err
		})
	})
	if err != nil {
		log.Printf("[escrow][usecase] drop claim failed transaction_id=%s action=%s err=%v", txID, action, err)
	}
}
