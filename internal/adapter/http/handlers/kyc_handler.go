package handlers

import (
	"log"
	"net/http"
	"strings"

	request "cartas_marketplace/internal/adapter/http/dto/request"
	response "cartas_marketplace/internal/adapter/http/dto/response"
	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
)

type KycHandler struct {
	usecase usecase.IKycUseCase
}

func NewKycHandler(uc usecase.IKycUseCase) *KycHandler {
	return &KycHandler{usecase: uc}
}

// Start opens a KYC case for the caller.
//
// @Summary  Start a KYC case
// @Tags     kyc
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.StartKycRequest true "Requested level"
// @Success  201 {object} response.KycCaseResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /kyc/cases [post]
func (h *KycHandler) Start(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var payload request.StartKycRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "kyc", err)
		return
	}
	k, err := h.usecase.Start(c.Request.Context(), actor, payload.LevelRequested)
	if err != nil {
		respondError(c, "kyc", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromKycCase(k))
}

// List returns KYC cases, optionally filtered by status.
//
// @Summary  List KYC cases
// @Tags     compliance
// @Security Bearer
// @Produce  json
// @Param    status query string false "pending, approved or rejected"
// @Success  200 {array}  response.KycCaseResponse
// @Failure  403 {object} pkg.HTTPError
// @Router   /compliance/kyc [get]
func (h *KycHandler) List(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	status := entities.KycStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))
	switch status {
	case "", entities.KycStatusPending, entities.KycStatusApproved, entities.KycStatusRejected:
	default:
		respondInvalidRequest(c, "kyc", nil)
		return
	}
	ks, err := h.usecase.List(c.Request.Context(), actor, status)
	if err != nil {
		respondError(c, "kyc", err)
		return
	}
	c.JSON(http.StatusOK, response.FromKycCases(ks))
}

// Approve raises the user's stored trust level to the requested level.
//
// @Summary  Approve a KYC case
// @Tags     compliance
// @Security Bearer
// @Produce  json
// @Param    id path string true "KYC case ID"
// @Success  200 {object} response.KycApprovalResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /compliance/kyc/{id}/approve [post]
func (h *KycHandler) Approve(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	k, trust, err := h.usecase.Approve(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, "kyc", err)
		return
	}
	log.Printf("[kyc][handler] approve success case_id=%s user_id=%s kyc_level=%d", k.ID, trust.UserID, trust.KycLevel)
	c.JSON(http.StatusOK, response.FromKycApproval(k, trust))
}

// Reject closes a KYC case with a reason.
//
// @Summary  Reject a KYC case
// @Tags     compliance
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id   path string                   true "KYC case ID"
// @Param    body body request.RejectKycRequest true "Rejection"
// @Success  200 {object} response.KycCaseResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /compliance/kyc/{id}/reject [post]
func (h *KycHandler) Reject(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var payload request.RejectKycRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "kyc", err)
		return
	}
	k, err := h.usecase.Reject(c.Request.Context(), actor, c.Param("id"), payload.ToRejection())
	if err != nil {
		respondError(c, "kyc", err)
		return
	}
	c.JSON(http.StatusOK, response.FromKycCase(k))
}
