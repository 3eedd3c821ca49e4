package usecase

import (
	"context"
	"log"
	"strings"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/usecase/interfaces"
)

// EscrowTotals is the escrow part of a transaction view.
type EscrowTotals struct {
	EscrowID         string
	AmountMinorUnits int64
	FeeMinorUnits    int64
	Status           entities.EscrowStatus
}

// TransactionView joins a transaction with its escrow, if one was created.
type TransactionView struct {
	Transaction entities.Transaction
	Escrow      *EscrowTotals
}

type ITransactionUseCase interface {
	Get(ctx context.Context, actor entities.Principal, id string) (TransactionView, error)
	Cancel(ctx context.Context, actor entities.Principal, id string) (entities.Transaction, error)
	ConfirmTransfer(ctx context.Context, actor entities.Principal, id string) (entities.Transaction, error)
}

type TransactionUseCase struct {
	uow          interfaces.IUnitOfWork
	gate         policy.Gate
	notifier     interfaces.INotifier
	orchestrator TransactionOrchestrator
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(uow interfaces.IUnitOfWork, gate policy.Gate, notifier interfaces.INotifier) *TransactionUseCase {
	return &TransactionUseCase{uow: uow, gate: gate, notifier: notifier}
}

func (u *TransactionUseCase) Get(ctx context.Context, actor entities.Principal, id string) (TransactionView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return TransactionView{}, ErrInvalidTransactionID
	}

	var view TransactionView
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		t, err := u.orchestrator.Get(ctx, repos, id)
		if err != nil {
			return err
		}
		if err := u.gate.Authorize(actor, policy.ActionViewTransaction, subjectOf(t)); err != nil {
			return err
		}
		e, err := repos.Escrows.GetByTransactionID(ctx, t.ID)
		if err != nil {
			return err
		}
		view = TransactionView{Transaction: t}
		if e.ID != "" {
			view.Escrow = &EscrowTotals{
				EscrowID:         e.ID,
				AmountMinorUnits: e.AmountMinorUnits,
				FeeMinorUnits:    e.FeeMinorUnits,
				Status:           e.Status,
			}
		}
		return nil
	})
	if err != nil {
		return TransactionView{}, err
	}
	return view, nil
}

func (u *TransactionUseCase) Cancel(ctx context.Context, actor entities.Principal, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	var cancelled entities.Transaction
	err := retryOnVersionConflict(ctx, "transaction.cancel", func() error {
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			t, err := u.orchestrator.Get(ctx, repos, id)
			if err != nil {
				return err
			}
			if err := u.gate.Authorize(actor, policy.ActionCancelTransaction, subjectOf(t)); err != nil {
				return err
			}
			cancelled, err = u.orchestrator.Cancel(ctx, repos, id)
			return err
		})
	})
	if err != nil {
		log.Printf("[transaction][usecase] cancel failed transaction_id=%s actor_id=%s err=%v", id, actor.UserID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[transaction][usecase] cancelled transaction_id=%s actor_id=%s", id, actor.UserID)

	notify(ctx, u.notifier, interfaces.TemplateTransactionCancelled, map[string]any{
		"transactionId": cancelled.ID,
		"quotaId":       cancelled.QuotaID,
	}, cancelled.BuyerID, cancelled.SellerID)
	return cancelled, nil
}

func (u *TransactionUseCase) ConfirmTransfer(ctx context.Context, actor entities.Principal, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	var confirmed entities.Transaction
	var moved bool
	err := retryOnVersionConflict(ctx, "transaction.confirm_transfer", func() error {
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			t, err := u.orchestrator.Get(ctx, repos, id)
			if err != nil {
				return err
			}
			if err := u.gate.Authorize(actor, policy.ActionConfirmTransfer, subjectOf(t)); err != nil {
				return err
			}
			confirmed, moved, err = u.orchestrator.ConfirmTransfer(ctx, repos, id)
			return err
		})
	})
	if err != nil {
		log.Printf("[transaction][usecase] confirm-transfer failed transaction_id=%s actor_id=%s err=%v", id, actor.UserID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[transaction][usecase] confirm-transfer transaction_id=%s moved=%t", id, moved)

	if moved {
		notify(ctx, u.notifier, interfaces.TemplateTransferConfirmed, map[string]any{
			"transactionId": confirmed.ID,
		}, confirmed.BuyerID, confirmed.SellerID)
	}
	return confirmed, nil
}

func subjectOf(t entities.Transaction) policy.Subject {
	return policy.Subject{BuyerID: t.BuyerID, SellerID: t.SellerID}
}
