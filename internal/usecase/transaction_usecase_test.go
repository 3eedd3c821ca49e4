package usecase

import (
	"context"
	"testing"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"

	"go.uber.org/mock/gomock"
)

func TestTransactionUseCase_Get(t *testing.T) {
	t.Run("joins escrow totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewTransactionUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		m.transactions.EXPECT().GetByID(gomock.Any(), "t-1").Return(txAt(entities.TransactionStatusEscrowLocked), nil)
		m.escrows.EXPECT().GetByTransactionID(gomock.Any(), "t-1").Return(escrowAt(entities.EscrowStatusAuthorized), nil)

		v, err := uc.Get(context.Background(), buyer, "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Escrow == nil || v.Escrow.AmountMinorUnits != 1_000_000 || v.Escrow.FeeMinorUnits != 20_000 {
			t.Fatalf("unexpected view: %+v", v)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewTransactionUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)
		m.transactions.EXPECT().GetByID(gomock.Any(), "t-9").Return(entities.Transaction{}, nil)

		_, err := uc.Get(context.Background(), buyer, "t-9")
		assertErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("stranger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewTransactionUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)
		m.transactions.EXPECT().GetByID(gomock.Any(), "t-1").Return(txAt(entities.TransactionStatusEscrowLocked), nil)

		_, err := uc.Get(context.Background(), other, "t-1")
		assertErrorIs(t, err, ErrForbidden)
	})
}

func TestTransactionUseCase_Cancel(t *testing.T) {
	cases := []struct {
		name   string
		status entities.TransactionStatus
		ok     bool
	}{
		{name: "proposta_aceita", status: entities.TransactionStatusProposalAccepted},
		{name: "contrato_assinado", status: entities.TransactionStatusContractSigned, ok: true},
		{name: "escrow_bloqueado", status: entities.TransactionStatusEscrowLocked, ok: true},
		{name: "transferencia_confirmada", status: entities.TransactionStatusTransferConfirmed},
		{name: "escrow_liberado", status: entities.TransactionStatusEscrowReleased},
		{name: "cancelada", status: entities.TransactionStatusCancelled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMockRepos(ctrl)
			uc := NewTransactionUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

			m.transactions.EXPECT().GetByID(gomock.Any(), "t-1").Return(txAt(tc.status), nil).Times(2)
			if tc.ok {
				m.transactions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
					return tx, nil
				})
			}

			got, err := uc.Cancel(context.Background(), seller, "t-1")
			if !tc.ok {
				assertErrorIs(t, err, ErrStateTransitionDenied)
				return
			}
			if err != nil || got.Status != entities.TransactionStatusCancelled {
				t.Fatalf("expected cancelada, got %+v err=%v", got, err)
			}
		})
	}
}

func TestTransactionUseCase_ConfirmTransfer(t *testing.T) {
	t.Run("from escrow_bloqueado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewTransactionUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)

		m.transactions.EXPECT().GetByID(gomock.Any(), "t-1").Return(txAt(entities.TransactionStatusEscrowLocked), nil).Times(2)
		m.transactions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
			return tx, nil
		})

		got, err := uc.ConfirmTransfer(context.Background(), seller, "t-1")
		if err != nil || got.Status != entities.TransactionStatusTransferConfirmed {
			t.Fatalf("expected transferencia_confirmada, got %+v err=%v", got, err)
		}
	})

	t.Run("before escrow is locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMockRepos(ctrl)
		uc := NewTransactionUseCase(m.uow, policy.NewGate(policy.DefaultRules()), nil)
		m.transactions.EXPECT().GetByID(gomock.Any(), "t-1").Return(txAt(entities.TransactionStatusContractSigned), nil).Times(2)

		_, err := uc.ConfirmTransfer(context.Background(), seller, "t-1")
		assertErrorIs(t, err, ErrStateTransitionDenied)
	})
}
