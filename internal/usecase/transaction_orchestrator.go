package usecase

import (
	"context"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase/interfaces"
)

// TransactionOrchestrator owns the transaction status machine. Every method runs
// against repositories bound to the caller's persistence transaction, so a step
// commits together with the contract or escrow change that triggered it.
//
// Advance methods return the (possibly unchanged) transaction and whether it moved.
// Preconditions are checked before any write; a failed check writes nothing.
type TransactionOrchestrator struct{}

func (TransactionOrchestrator) Get(ctx context.Context, repos interfaces.Repositories, id string) (entities.Transaction, error) {
	t, err := repos.Transactions.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

// AdvanceOnContractSigned: proposta_aceita -> contrato_assinado. No-op when already contrato_assinado.
func (o TransactionOrchestrator) AdvanceOnContractSigned(ctx context.Context, repos interfaces.Repositories, id string) (entities.Transaction, bool, error) {
	t, err := o.Get(ctx, repos, id)
	if err != nil {
		return entities.Transaction{}, false, err
	}
	switch t.Status {
	case entities.TransactionStatusContractSigned:
		return t, false, nil
	case entities.TransactionStatusProposalAccepted:
		return o.move(ctx, repos, t, entities.TransactionStatusContractSigned)
	}
	return entities.Transaction{}, false, stepDenied(t, string(entities.TransactionStatusProposalAccepted))
}

// AdvanceOnEscrowAuthorized: contrato_assinado -> escrow_bloqueado. No-op when the
// transaction is already at or past escrow_bloqueado, so late or repeated
// authorizations are harmless.
func (o TransactionOrchestrator) AdvanceOnEscrowAuthorized(ctx context.Context, repos interfaces.Repositories, id string) (entities.Transaction, bool, error) {
	t, err := o.Get(ctx, repos, id)
	if err != nil {
		return entities.Transaction{}, false, err
	}
	if t.Status.IsAtOrPast(entities.TransactionStatusEscrowLocked) {
		return t, false, nil
	}
	if t.Status != entities.TransactionStatusContractSigned {
		return entities.Transaction{}, false, stepDenied(t, string(entities.TransactionStatusContractSigned))
	}
	return o.move(ctx, repos, t, entities.TransactionStatusEscrowLocked)
}

// ConfirmTransfer: escrow_bloqueado -> transferencia_confirmada. No-op when already confirmed.
func (o TransactionOrchestrator) ConfirmTransfer(ctx context.Context, repos interfaces.Repositories, id string) (entities.Transaction, bool, error) {
	t, err := o.Get(ctx, repos, id)
	if err != nil {
		return entities.Transaction{}, false, err
	}
	switch t.Status {
	case entities.TransactionStatusTransferConfirmed:
		return t, false, nil
	case entities.TransactionStatusEscrowLocked:
		return o.move(ctx, repos, t, entities.TransactionStatusTransferConfirmed)
	}
	return entities.Transaction{}, false, stepDenied(t, string(entities.TransactionStatusEscrowLocked))
}

// AdvanceOnEscrowReleased: transferencia_confirmada -> escrow_liberado, nothing else.
func (o TransactionOrchestrator) AdvanceOnEscrowReleased(ctx context.Context, repos interfaces.Repositories, id string) (entities.Transaction, bool, error) {
	t, err := o.Get(ctx, repos, id)
	if err != nil {
		return entities.Transaction{}, false, err
	}
	if t.Status != entities.TransactionStatusTransferConfirmed {
		return entities.Transaction{}, false, stepDenied(t, string(entities.TransactionStatusTransferConfirmed))
	}
	return o.move(ctx, repos, t, entities.TransactionStatusEscrowReleased)
}

// Cancel: contrato_assinado | escrow_bloqueado -> cancelada. Escrow is left untouched.
func (o TransactionOrchestrator) Cancel(ctx context.Context, repos interfaces.Repositories, id string) (entities.Transaction, error) {
	t, err := o.Get(ctx, repos, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if !t.CanTransitionTo(entities.TransactionStatusCancelled) {
		return entities.Transaction{}, stepDenied(t, "contrato_assinado or escrow_bloqueado")
	}
	t, _, err = o.move(ctx, repos, t, entities.TransactionStatusCancelled)
	return t, err
}

func (TransactionOrchestrator) move(ctx context.Context, repos interfaces.Repositories, t entities.Transaction, next entities.TransactionStatus) (entities.Transaction, bool, error) {
	if err := t.TransitionTo(next, time.Now().UTC()); err != nil {
		return entities.Transaction{}, false, err
	}
	updated, err := repos.Transactions.Update(ctx, t)
	if err != nil {
		return entities.Transaction{}, false, err
	}
	return updated, true, nil
}
