package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type RecordSignatureInput struct {
	TransactionID string
	DocumentURL   string
	EvidenceHash  string
	DocumentRef   *string
}

// IContractUseCase records signature evidence. RecordSignature may be retried:
// a second call overwrites the evidence and leaves the transaction at contrato_assinado.
type IContractUseCase interface {
	RecordSignature(ctx context.Context, actor entities.Principal, in RecordSignatureInput) (entities.Contract, error)
	Get(ctx context.Context, actor entities.Principal, transactionID string) (entities.Contract, error)
}

type ContractUseCase struct {
	uow          interfaces.IUnitOfWork
	gate         policy.Gate
	notifier     interfaces.INotifier
	orchestrator TransactionOrchestrator
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(uow interfaces.IUnitOfWork, gate policy.Gate, notifier interfaces.INotifier) *ContractUseCase {
	return &ContractUseCase{uow: uow, gate: gate, notifier: notifier}
}

func (u *ContractUseCase) RecordSignature(ctx context.Context, actor entities.Principal, in RecordSignatureInput) (entities.Contract, error) {
	txID := strings.TrimSpace(in.TransactionID)
	if txID == "" {
		return entities.Contract{}, ErrInvalidTransactionID
	}
	url := strings.TrimSpace(in.DocumentURL)
	if url == "" {
		return entities.Contract{}, ErrInvalidDocumentURL
	}
	hash := strings.TrimSpace(in.EvidenceHash)
	if hash == "" {
		return entities.Contract{}, ErrInvalidEvidenceHash
	}
	log.Printf("[contract][usecase] record-signature start transaction_id=%s actor_id=%s", txID, actor.UserID)

	var saved entities.Contract
	var tx entities.Transaction
	var moved bool
	err := retryOnVersionConflict(ctx, "contract.sign", func() error {
		return u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
			t, err := u.orchestrator.Get(ctx, repos, txID)
			if err != nil {
				return err
			}
			if err := u.gate.Authorize(actor, policy.ActionSignContract, subjectOf(t)); err != nil {
				return err
			}
			if t.Status != entities.TransactionStatusProposalAccepted && t.Status != entities.TransactionStatusContractSigned {
				return stepDenied(t, "proposta_aceita")
			}

			c, err := repos.Contracts.GetByTransactionID(ctx, t.ID)
			if err != nil {
				return err
			}
			if c.ID == "" {
				c = entities.Contract{ID: uuid.NewString(), TransactionID: t.ID}
			}
			c.Sign(url, hash, trimmedOrNil(in.DocumentRef), time.Now().UTC())
			if saved, err = repos.Contracts.Upsert(ctx, c); err != nil {
				return err
			}
			tx, moved, err = u.orchestrator.AdvanceOnContractSigned(ctx, repos, t.ID)
			return err
		})
	})
	if err != nil {
		log.Printf("[contract][usecase] record-signature failed transaction_id=%s err=%v", txID, err)
		return entities.Contract{}, err
	}
	log.Printf("[contract][usecase] record-signature success transaction_id=%s contract_id=%s advanced=%t", txID, saved.ID, moved)

	if moved {
		notify(ctx, u.notifier, interfaces.TemplateContractSigned, map[string]any{
			"transactionId": tx.ID,
			"contractId":    saved.ID,
		}, tx.BuyerID, tx.SellerID)
	}
	return saved, nil
}

func (u *ContractUseCase) Get(ctx context.Context, actor entities.Principal, transactionID string) (entities.Contract, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.Contract{}, ErrInvalidTransactionID
	}

	var c entities.Contract
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		t, err := u.orchestrator.Get(ctx, repos, transactionID)
		if err != nil {
			return err
		}
		if err := u.gate.Authorize(actor, policy.ActionViewContract, subjectOf(t)); err != nil {
			return err
		}
		c, err = repos.Contracts.GetByTransactionID(ctx, t.ID)
		if err != nil {
			return err
		}
		if c.ID == "" {
			return ErrContractNotFound
		}
		return nil
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}
