package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	response "cartas_marketplace/internal/adapter/http/dto/response"
	"cartas_marketplace/internal/adapter/http/handlers/mocks"
	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/usecase"
	"cartas_marketplace/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestEscrowHandler_CreateIntent(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewEscrowHandler(uc)

		r := newRouter(testBuyer)
		r.POST("/v1/escrow/intent", h.CreateIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), testBuyer, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Principal, in usecase.CreateIntentInput) (entities.Escrow, error) {
				if in.TransactionID != "tx-1" || in.AmountMinorUnits != 1_000_000 || in.Split.PlatformFeeMinorUnits != 20_000 {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Escrow{ID: "e-1", TransactionID: "tx-1", Status: entities.EscrowStatusIntentCreated, ProviderIntentID: "intent-1"}, nil
			})

		w := perform(r, http.MethodPost, "/v1/escrow/intent", `{"transactionId":"tx-1","amountMinorUnits":1000000,"split":{"platformFeeMinorUnits":20000}}`)
		expectStatus(t, w, http.StatusCreated)

		var res response.EscrowResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.EscrowID != "e-1" || res.Status != "intent_created" {
			t.Fatalf("unexpected response %+v", res)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewEscrowHandler(uc)

		r := newRouter(testBuyer)
		r.POST("/v1/escrow/intent", h.CreateIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), testBuyer, gomock.Any()).Return(entities.Escrow{}, fmt.Errorf("%w: timeout", usecase.ErrProvider))
		w := perform(r, http.MethodPost, "/v1/escrow/intent", `{"transactionId":"tx-1","amountMinorUnits":1}`)
		expectError(t, w, http.StatusBadGateway, "PROVIDER_ERROR")
	})

	t.Run("zero amount rejected before usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEscrowHandler(mocks.NewMockIEscrowUseCase(ctrl))

		r := newRouter(testBuyer)
		r.POST("/v1/escrow/intent", h.CreateIntent)

		expectError(t, perform(r, http.MethodPost, "/v1/escrow/intent", `{"transactionId":"tx-1","amountMinorUnits":0}`), http.StatusBadRequest, "INVALID_REQUEST")
	})
}

func TestEscrowHandler_Webhook(t *testing.T) {
	outcomes := []entities.WebhookOutcome{
		entities.WebhookOutcomeMatched,
		entities.WebhookOutcomeUnmatched,
		entities.WebhookOutcomeDuplicate,
		entities.WebhookOutcomeRejected,
		entities.WebhookOutcomeFailed,
	}
	for _, outcome := range outcomes {
		t.Run(string(outcome), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIEscrowUseCase(ctrl)
			h := NewEscrowHandler(uc)

			r := newRouter(entities.Principal{})
			r.POST("/v1/escrow/webhooks", h.Webhook)

			uc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, req interfaces.WebhookRequest) usecase.WebhookResult {
					if string(req.Body) != `{"intentId":"intent-1"}` {
						t.Fatalf("unexpected body %s", req.Body)
					}
					if req.Query["type"] != "payment" {
						t.Fatalf("unexpected query %v", req.Query)
					}
					if req.Headers.Get("Content-Type") != "application/json" {
						t.Fatalf("headers not forwarded")
					}
					return usecase.WebhookResult{EventID: "mock:ev-1", Outcome: outcome}
				})

			w := perform(r, http.MethodPost, "/v1/escrow/webhooks?type=payment", `{"intentId":"intent-1"}`)
			expectStatus(t, w, http.StatusOK)
			var ack response.WebhookAckResponse
			if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !ack.Received || ack.Outcome != string(outcome) {
				t.Fatalf("unexpected ack %+v", ack)
			}
		})
	}
}

func TestEscrowHandler_Release(t *testing.T) {
	t.Run("released", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewEscrowHandler(uc)

		r := newRouter(testAdmin)
		r.POST("/v1/escrow/release", h.Release)

		uc.EXPECT().Release(gomock.Any(), testAdmin, "tx-1").Return(entities.Escrow{ID: "e-1", Status: entities.EscrowStatusReleased}, nil)
		w := perform(r, http.MethodPost, "/v1/escrow/release", `{"transactionId":"tx-1"}`)
		expectStatus(t, w, http.StatusOK)

		var res response.EscrowResponse
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.Status != "released" {
			t.Fatalf("unexpected status %s", res.Status)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"wrong step", fmt.Errorf("%w: escrow_bloqueado", entities.ErrStateTransitionDenied), http.StatusConflict, "STATE_TRANSITION_DENIED"},
			{"no escrow", usecase.ErrEscrowNotFound, http.StatusNotFound, "ESCROW_NOT_FOUND"},
			{"mfa", policy.ErrMfaRequired, http.StatusForbidden, "FORBIDDEN"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIEscrowUseCase(ctrl)
				h := NewEscrowHandler(uc)

				r := newRouter(testSeller)
				r.POST("/v1/escrow/release", h.Release)

				uc.EXPECT().Release(gomock.Any(), testSeller, "tx-1").Return(entities.Escrow{}, tc.err)
				expectError(t, perform(r, http.MethodPost, "/v1/escrow/release", `{"transactionId":"tx-1"}`), tc.status, tc.code)
			})
		}
	})
}

func TestEscrowHandler_Refund(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEscrowUseCase(ctrl)
	h := NewEscrowHandler(uc)

	r := newRouter(testBuyer)
	r.POST("/v1/escrow/refund", h.Refund)

	uc.EXPECT().Refund(gomock.Any(), testBuyer, "tx-1", "seller gave up").
		Return(entities.Escrow{ID: "e-1", Status: entities.EscrowStatusRefunded}, nil)
	expectStatus(t, perform(r, http.MethodPost, "/v1/escrow/refund", `{"transactionId":"tx-1","reason":"seller gave up"}`), http.StatusOK)

	uc.EXPECT().Refund(gomock.Any(), testBuyer, "tx-2", "").Return(entities.Escrow{}, usecase.ErrEscrowAlreadyReleased)
	expectError(t, perform(r, http.MethodPost, "/v1/escrow/refund", `{"transactionId":"tx-2"}`), http.StatusConflict, "STATE_TRANSITION_DENIED")
}
