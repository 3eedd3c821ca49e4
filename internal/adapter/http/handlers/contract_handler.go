package handlers

import (
	"log"
	"net/http"

	request "cartas_marketplace/internal/adapter/http/dto/request"
	response "cartas_marketplace/internal/adapter/http/dto/response"
	"cartas_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// Upload records the signed contract. Retrying with the same payload is safe.
//
// @Summary  Record a signed contract
// @Tags     contracts
// @Security Bearer
// @Accept   json
// @Param    transactionId path string                        true "Transaction ID"
// @Param    body          body request.UploadContractRequest true "Signature evidence"
// @Success  204
// @Failure  409 {object} pkg.HTTPError
// @Router   /contracts/{transactionId}/upload [post]
func (h *ContractHandler) Upload(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var payload request.UploadContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "contract", err)
		return
	}

	ct, err := h.usecase.RecordSignature(c.Request.Context(), actor, payload.ToInput(c.Param("transactionId")))
	if err != nil {
		respondError(c, "contract", err)
		return
	}
	log.Printf("[contract][handler] upload success transaction_id=%s contract_id=%s", ct.TransactionID, ct.ID)
	c.Status(http.StatusNoContent)
}

// Get returns the contract of a transaction.
//
// @Summary  Get a contract
// @Tags     contracts
// @Security Bearer
// @Produce  json
// @Param    transactionId path string true "Transaction ID"
// @Success  200 {object} response.ContractResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /contracts/{transactionId} [get]
func (h *ContractHandler) Get(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	ct, err := h.usecase.Get(c.Request.Context(), actor, c.Param("transactionId"))
	if err != nil {
		respondError(c, "contract", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(ct))
}
