package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	response "cartas_marketplace/internal/adapter/http/dto/response"
	"cartas_marketplace/internal/adapter/http/handlers/mocks"
	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestKycHandler_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIKycUseCase(ctrl)
	h := NewKycHandler(uc)

	r := newRouter(testBuyer)
	r.POST("/v1/kyc/cases", h.Start)

	uc.EXPECT().Start(gomock.Any(), testBuyer, 2).Return(entities.KycCase{ID: "k-1", UserID: "buyer-1", LevelRequested: 2, Status: entities.KycStatusPending}, nil)
	expectStatus(t, perform(r, http.MethodPost, "/v1/kyc/cases", `{"levelRequested":2}`), http.StatusCreated)

	uc.EXPECT().Start(gomock.Any(), testBuyer, 7).Return(entities.KycCase{}, usecase.ErrInvalidKycLevel)
	expectError(t, perform(r, http.MethodPost, "/v1/kyc/cases", `{"levelRequested":7}`), http.StatusBadRequest, "INVALID_REQUEST")
}

func TestKycHandler_List(t *testing.T) {
	t.Run("filters by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKycUseCase(ctrl)
		h := NewKycHandler(uc)

		r := newRouter(testAdmin)
		r.GET("/v1/compliance/kyc", h.List)

		uc.EXPECT().List(gomock.Any(), testAdmin, entities.KycStatusPending).Return([]entities.KycCase{{ID: "k-1", Status: entities.KycStatusPending}}, nil)
		w := perform(r, http.MethodGet, "/v1/compliance/kyc?status=PENDING", "")
		expectStatus(t, w, http.StatusOK)

		var res []response.KycCaseResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || len(res) != 1 {
			t.Fatalf("unexpected list %s err=%v", w.Body.String(), err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewKycHandler(mocks.NewMockIKycUseCase(ctrl))

		r := newRouter(testAdmin)
		r.GET("/v1/compliance/kyc", h.List)

		expectError(t, perform(r, http.MethodGet, "/v1/compliance/kyc?status=maybe", ""), http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("non admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKycUseCase(ctrl)
		h := NewKycHandler(uc)

		r := newRouter(testBuyer)
		r.GET("/v1/compliance/kyc", h.List)

		uc.EXPECT().List(gomock.Any(), testBuyer, entities.KycStatus("")).Return(nil, policy.ErrRoleNotAllowed)
		expectError(t, perform(r, http.MethodGet, "/v1/compliance/kyc", ""), http.StatusForbidden, "FORBIDDEN")
	})
}

func TestKycHandler_Review(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKycUseCase(ctrl)
		h := NewKycHandler(uc)

		r := newRouter(testAdmin)
		r.POST("/v1/compliance/kyc/:id/approve", h.Approve)

		uc.EXPECT().Approve(gomock.Any(), testAdmin, "k-1").Return(
			entities.KycCase{ID: "k-1", UserID: "buyer-1", Status: entities.KycStatusApproved},
			entities.UserTrust{UserID: "buyer-1", KycLevel: 2},
			nil,
		)
		w := perform(r, http.MethodPost, "/v1/compliance/kyc/k-1/approve", "")
		expectStatus(t, w, http.StatusOK)

		var res response.KycApprovalResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.Case.Status != "approved" || res.Trust.KycLevel != 2 {
			t.Fatalf("unexpected response %+v", res)
		}

		uc.EXPECT().Approve(gomock.Any(), testAdmin, "k-2").Return(entities.KycCase{}, entities.UserTrust{}, usecase.ErrKycCaseNotFound)
		expectError(t, perform(r, http.MethodPost, "/v1/compliance/kyc/k-2/approve", ""), http.StatusNotFound, "KYC_CASE_NOT_FOUND")
	})

	t.Run("reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKycUseCase(ctrl)
		h := NewKycHandler(uc)

		r := newRouter(testAdmin)
		r.POST("/v1/compliance/kyc/:id/reject", h.Reject)

		uc.EXPECT().Reject(gomock.Any(), testAdmin, "k-1", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Principal, _ string, rej entities.KycRejection) (entities.KycCase, error) {
				if rej.ReasonCode != "DOC_EXPIRED" || rej.Severity != "high" || len(rej.Blocks) != 1 {
					t.Fatalf("unexpected rejection %+v", rej)
				}
				return entities.KycCase{ID: "k-1", Status: entities.KycStatusRejected, ReasonCode: rej.ReasonCode}, nil
			})
		w := perform(r, http.MethodPost, "/v1/compliance/kyc/k-1/reject", `{"reasonCode":"DOC_EXPIRED","severity":"high","blocks":["escrow"]}`)
		expectStatus(t, w, http.StatusOK)

		expectError(t, perform(r, http.MethodPost, "/v1/compliance/kyc/k-1/reject", `{}`), http.StatusBadRequest, "INVALID_REQUEST")
	})
}

func TestPing(t *testing.T) {
	r := newRouter(entities.Principal{})
	r.GET("/v1/ping", Ping)
	expectStatus(t, perform(r, http.MethodGet, "/v1/ping", ""), http.StatusOK)
}
