package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "cartas_marketplace/internal/adapter/http/dto/request"
	response "cartas_marketplace/internal/adapter/http/dto/response"
	"cartas_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// Create places an offer on a quota.
//
// @Summary  Create a proposal
// @Tags     proposals
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.CreateProposalRequest true "Proposal"
// @Success  201 {object} response.ProposalResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "proposal", err)
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		respondError(c, "proposal", err)
		return
	}
	log.Printf("[proposal][handler] create success proposal_id=%s quota_id=%s buyer_id=%s", p.ID, p.QuotaID, p.BuyerID)
	c.JSON(http.StatusCreated, response.FromProposal(p))
}

// Cancel withdraws an open proposal. The body is optional.
//
// @Summary  Cancel a proposal
// @Tags     proposals
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id   path string                        true  "Proposal ID"
// @Param    body body request.CancelProposalRequest false "Reason"
// @Success  200 {object} response.ProposalResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /proposals/{id}/cancel [post]
func (h *ProposalHandler) Cancel(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var payload request.CancelProposalRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		// An empty body, chunked or not, decodes to io.EOF and means no reason.
		if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
			respondInvalidRequest(c, "proposal", err)
			return
		}
	}

	p, err := h.usecase.Cancel(c.Request.Context(), actor, c.Param("id"), payload.Reason)
	if err != nil {
		respondError(c, "proposal", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// Accept sells the quota to the proposal's buyer and opens the transaction.
//
// @Summary  Accept a proposal
// @Tags     proposals
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id   path string                        true "Proposal ID"
// @Param    body body request.AcceptProposalRequest true "Sale value"
// @Success  200 {object} response.AcceptProposalResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /proposals/{id}/accept [post]
func (h *ProposalHandler) Accept(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var payload request.AcceptProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "proposal", err)
		return
	}

	res, err := h.usecase.Accept(c.Request.Context(), actor, c.Param("id"), payload.SaleValue)
	if err != nil {
		respondError(c, "proposal", err)
		return
	}
	log.Printf("[proposal][handler] accept success proposal_id=%s transaction_id=%s", res.Proposal.ID, res.Transaction.ID)
	c.JSON(http.StatusOK, response.FromAcceptProposal(res))
}

// ListByQuota returns the proposals on a quota visible to the caller, newest first.
//
// @Summary  List proposals on a quota
// @Tags     quotas
// @Security Bearer
// @Produce  json
// @Param    id path string true "Quota ID"
// @Success  200 {array}  response.ProposalResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotas/{id}/proposals [get]
func (h *ProposalHandler) ListByQuota(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	ps, err := h.usecase.ListByQuota(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, "proposal", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(ps))
}
