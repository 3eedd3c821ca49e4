package handlers

import (
	"log"
	"net/http"

	response "cartas_marketplace/internal/adapter/http/dto/response"
	"cartas_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

// Get returns the transaction with its escrow totals.
//
// @Summary  Get a transaction
// @Tags     transactions
// @Security Bearer
// @Produce  json
// @Param    id path string true "Transaction ID"
// @Success  200 {object} response.TransactionResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	view, err := h.usecase.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, "transaction", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransactionView(view))
}

// Cancel moves the transaction to cancelada. It does not refund escrow.
//
// @Summary  Cancel a transaction
// @Tags     transactions
// @Security Bearer
// @Param    id path string true "Transaction ID"
// @Success  204
// @Failure  409 {object} pkg.HTTPError
// @Router   /transactions/{id}/cancel [post]
func (h *TransactionHandler) Cancel(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	t, err := h.usecase.Cancel(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, "transaction", err)
		return
	}
	log.Printf("[transaction][handler] cancel success transaction_id=%s", t.ID)
	c.Status(http.StatusNoContent)
}

// ConfirmTransfer records that the administrator transferred the quota.
//
// @Summary  Confirm quota transfer
// @Tags     transactions
// @Security Bearer
// @Produce  json
// @Param    id path string true "Transaction ID"
// @Success  200 {object} response.TransactionResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /transactions/{id}/confirm-transfer [post]
func (h *TransactionHandler) ConfirmTransfer(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	t, err := h.usecase.ConfirmTransfer(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, "transaction", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(t))
}
