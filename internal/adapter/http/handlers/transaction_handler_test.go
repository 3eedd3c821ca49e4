package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	response "cartas_marketplace/internal/adapter/http/dto/response"
	"cartas_marketplace/internal/adapter/http/handlers/mocks"
	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestTransactionHandler_Get(t *testing.T) {
	t.Run("with escrow totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := newRouter(testBuyer)
		r.GET("/v1/transactions/:id", h.Get)

		uc.EXPECT().Get(gomock.Any(), testBuyer, "tx-1").Return(usecase.TransactionView{
			Transaction: entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusEscrowLocked},
			Escrow:      &usecase.EscrowTotals{EscrowID: "e-1", AmountMinorUnits: 1_000_000, FeeMinorUnits: 20_000, Status: entities.EscrowStatusAuthorized},
		}, nil)

		w := perform(r, http.MethodGet, "/v1/transactions/tx-1", "")
		expectStatus(t, w, http.StatusOK)

		var res response.TransactionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.Status != "escrow_bloqueado" || res.CurrentStep != "escrow_bloqueado" {
			t.Fatalf("unexpected status %+v", res)
		}
		if res.EscrowTotals == nil || res.EscrowTotals.AmountMinorUnits != 1_000_000 || res.EscrowTotals.FeeMinorUnits != 20_000 {
			t.Fatalf("unexpected escrow totals %+v", res.EscrowTotals)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := newRouter(testBuyer)
		r.GET("/v1/transactions/:id", h.Get)

		uc.EXPECT().Get(gomock.Any(), testBuyer, "nope").Return(usecase.TransactionView{}, usecase.ErrTransactionNotFound)
		expectError(t, perform(r, http.MethodGet, "/v1/transactions/nope", ""), http.StatusNotFound, "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_Cancel(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := newRouter(testSeller)
		r.POST("/v1/transactions/:id/cancel", h.Cancel)

		uc.EXPECT().Cancel(gomock.Any(), testSeller, "tx-1").Return(entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusCancelled}, nil)

		w := perform(r, http.MethodPost, "/v1/transactions/tx-1/cancel", "")
		expectStatus(t, w, http.StatusNoContent)
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %s", w.Body.String())
		}
	})

	t.Run("denied from current step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := newRouter(testSeller)
		r.POST("/v1/transactions/:id/cancel", h.Cancel)

		uc.EXPECT().Cancel(gomock.Any(), testSeller, "tx-1").
			Return(entities.Transaction{}, fmt.Errorf("%w: transaction tx-1 is proposta_aceita", entities.ErrStateTransitionDenied))

		expectError(t, perform(r, http.MethodPost, "/v1/transactions/tx-1/cancel", ""), http.StatusConflict, "STATE_TRANSITION_DENIED")
	})

	t.Run("stranger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := newRouter(testBuyer)
		r.POST("/v1/transactions/:id/cancel", h.Cancel)

		uc.EXPECT().Cancel(gomock.Any(), testBuyer, "tx-9").Return(entities.Transaction{}, usecase.ErrForbidden)
		expectError(t, perform(r, http.MethodPost, "/v1/transactions/tx-9/cancel", ""), http.StatusForbidden, "FORBIDDEN")
	})
}

func TestTransactionHandler_ConfirmTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITransactionUseCase(ctrl)
	h := NewTransactionHandler(uc)

	r := newRouter(testAdmin)
	r.POST("/v1/transactions/:id/confirm-transfer", h.ConfirmTransfer)

	uc.EXPECT().ConfirmTransfer(gomock.Any(), testAdmin, "tx-1").
		Return(entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusTransferConfirmed}, nil)
	w := perform(r, http.MethodPost, "/v1/transactions/tx-1/confirm-transfer", "")
	expectStatus(t, w, http.StatusOK)

	uc.EXPECT().ConfirmTransfer(gomock.Any(), testAdmin, "tx-2").Return(entities.Transaction{}, errors.New("timeout"))
	expectError(t, perform(r, http.MethodPost, "/v1/transactions/tx-2/confirm-transfer", ""), http.StatusInternalServerError, "INTERNAL_ERROR")
}
