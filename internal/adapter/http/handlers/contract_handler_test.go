package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	response "cartas_marketplace/internal/adapter/http/dto/response"
	"cartas_marketplace/internal/adapter/http/handlers/mocks"
	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestContractHandler_Upload(t *testing.T) {
	t.Run("recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := newRouter(testSeller)
		r.POST("/v1/contracts/:transactionId/upload", h.Upload)

		uc.EXPECT().RecordSignature(gomock.Any(), testSeller, usecase.RecordSignatureInput{
			TransactionID: "tx-1",
			DocumentURL:   "https://docs/contract.pdf",
			EvidenceHash:  "sha256:abc",
		}).Return(entities.Contract{ID: "c-1", TransactionID: "tx-1", Status: entities.ContractStatusSigned}, nil)

		w := perform(r, http.MethodPost, "/v1/contracts/tx-1/upload", `{"url":"https://docs/contract.pdf","evidenceHash":"sha256:abc"}`)
		expectStatus(t, w, http.StatusNoContent)
	})

	t.Run("missing evidence hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewContractHandler(mocks.NewMockIContractUseCase(ctrl))

		r := newRouter(testSeller)
		r.POST("/v1/contracts/:transactionId/upload", h.Upload)

		expectError(t, perform(r, http.MethodPost, "/v1/contracts/tx-1/upload", `{"url":"https://docs/contract.pdf"}`), http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("transaction already past signing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := newRouter(testSeller)
		r.POST("/v1/contracts/:transactionId/upload", h.Upload)

		uc.EXPECT().RecordSignature(gomock.Any(), testSeller, gomock.Any()).Return(entities.Contract{}, entities.ErrStateTransitionDenied)
		w := perform(r, http.MethodPost, "/v1/contracts/tx-1/upload", `{"url":"u","evidenceHash":"h"}`)
		expectError(t, w, http.StatusConflict, "STATE_TRANSITION_DENIED")
	})
}

func TestContractHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIContractUseCase(ctrl)
	h := NewContractHandler(uc)

	r := newRouter(testBuyer)
	r.GET("/v1/contracts/:transactionId", h.Get)

	signed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.EXPECT().Get(gomock.Any(), testBuyer, "tx-1").Return(entities.Contract{
		ID: "c-1", TransactionID: "tx-1", Status: entities.ContractStatusSigned, DocumentURL: "https://docs/contract.pdf", EvidenceHash: "h", SignedAt: &signed,
	}, nil)

	w := perform(r, http.MethodGet, "/v1/contracts/tx-1", "")
	expectStatus(t, w, http.StatusOK)
	var res response.ContractResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Status != "assinado" || res.URL != "https://docs/contract.pdf" || res.SignedAt == nil || !res.SignedAt.Equal(signed) {
		t.Fatalf("unexpected response %+v", res)
	}

	uc.EXPECT().Get(gomock.Any(), testBuyer, "tx-2").Return(entities.Contract{}, usecase.ErrContractNotFound)
	expectError(t, perform(r, http.MethodGet, "/v1/contracts/tx-2", ""), http.StatusNotFound, "CONTRACT_NOT_FOUND")
}
