package handlers

import (
	"log"
	"net/http"

	request "cartas_marketplace/internal/adapter/http/dto/request"
	response "cartas_marketplace/internal/adapter/http/dto/response"
	"cartas_marketplace/internal/usecase"
	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const maxWebhookBodyBytes = 1 << 20

type EscrowHandler struct {
	usecase usecase.IEscrowUseCase
}

func NewEscrowHandler(uc usecase.IEscrowUseCase) *EscrowHandler {
	return &EscrowHandler{usecase: uc}
}

// CreateIntent opens (or returns the existing) escrow hold for a transaction.
//
// @Summary  Create escrow intent
// @Tags     escrow
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.CreateEscrowIntentRequest true "Intent"
// @Success  201 {object} response.EscrowResponse
// @Failure  409 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /escrow/intent [post]
func (h *EscrowHandler) CreateIntent(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var payload request.CreateEscrowIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "escrow", err)
		return
	}

	e, err := h.usecase.CreateIntent(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		respondError(c, "escrow", err)
		return
	}
	log.Printf("[escrow][handler] intent ready transaction_id=%s escrow_id=%s status=%s", e.TransactionID, e.ID, e.Status)
	c.JSON(http.StatusCreated, response.FromEscrow(e))
}

// Webhook receives provider notifications. It always answers 200 so the
// provider stops retrying; the outcome is journaled and logged instead.
//
// @Summary  Escrow provider webhook
// @Tags     escrow
// @Accept   json
// @Produce  json
// @Success  200 {object} response.WebhookAckResponse
// @Router   /escrow/webhooks [post]
func (h *EscrowHandler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[escrow][handler] webhook body unreadable err=%v", err)
		body = nil
	}

	query := make(map[string]string, len(c.Request.URL.Query()))
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	res := h.usecase.HandleWebhook(c.Request.Context(), interfaces.WebhookRequest{
		Headers: c.Request.Header.Clone(),
		Query:   query,
		Body:    body,
	})
	c.JSON(http.StatusOK, response.FromWebhookResult(res))
}

// Release pays the seller out of the hold.
//
// @Summary  Release escrow
// @Tags     escrow
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.ReleaseEscrowRequest true "Transaction"
// @Success  200 {object} response.EscrowResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /escrow/release [post]
func (h *EscrowHandler) Release(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var payload request.ReleaseEscrowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "escrow", err)
		return
	}

	e, err := h.usecase.Release(c.Request.Context(), actor, payload.TransactionID)
	if err != nil {
		respondError(c, "escrow", err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// Refund returns the hold to the buyer and cancels the transaction when it
// is still cancellable.
//
// @Summary  Refund escrow
// @Tags     escrow
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.RefundEscrowRequest true "Transaction and reason"
// @Success  200 {object} response.EscrowResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /escrow/refund [post]
func (h *EscrowHandler) Refund(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var payload request.RefundEscrowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "escrow", err)
		return
	}

	e, err := h.usecase.Refund(c.Request.Context(), actor, payload.TransactionID, payload.Reason)
	if err != nil {
		respondError(c, "escrow", err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}
