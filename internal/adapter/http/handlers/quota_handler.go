package handlers

import (
	"log"
	"net/http"

	request "cartas_marketplace/internal/adapter/http/dto/request"
	response "cartas_marketplace/internal/adapter/http/dto/response"
	"cartas_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuotaHandler handles listing of cartas.
type QuotaHandler struct {
	usecase usecase.IQuotaUseCase
}

func NewQuotaHandler(uc usecase.IQuotaUseCase) *QuotaHandler {
	return &QuotaHandler{usecase: uc}
}

// Create lists a new quota owned by the caller.
//
// @Summary  List a quota for sale
// @Tags     quotas
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.CreateQuotaRequest true "Quota"
// @Success  201 {object} response.QuotaResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError
// @Router   /quotas [post]
func (h *QuotaHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var payload request.CreateQuotaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "quota", err)
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		respondError(c, "quota", err)
		return
	}
	log.Printf("[quota][handler] create success quota_id=%s seller_id=%s", q.ID, q.SellerID)
	c.JSON(http.StatusCreated, response.FromQuota(q))
}

// Get returns one quota.
//
// @Summary  Get a quota
// @Tags     quotas
// @Security Bearer
// @Produce  json
// @Param    id path string true "Quota ID"
// @Success  200 {object} response.QuotaResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotas/{id} [get]
func (h *QuotaHandler) Get(c *gin.Context) {
	if _, ok := principal(c); !ok {
		return
	}
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "quota", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuota(q))
}

// Search lists quotas still open to proposals.
//
// @Summary  Search quotas for sale
// @Tags     quotas
// @Security Bearer
// @Produce  json
// @Param    assetType           query string false "Asset type"
// @Param    minCreditValue      query string false "Minimum credit value"
// @Param    maxCreditValue      query string false "Maximum credit value"
// @Param    minInstallmentsPaid query int    false "Minimum installments paid"
// @Param    limit               query int    false "Page size (default 50, max 200)"
// @Param    offset              query int    false "Page offset"
// @Success  200 {array}  response.QuotaResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotas [get]
func (h *QuotaHandler) Search(c *gin.Context) {
	if _, ok := principal(c); !ok {
		return
	}
	var query request.SearchQuotasQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalidRequest(c, "quota", err)
		return
	}
	in, err := query.ToInput()
	if err != nil {
		respondInvalidRequest(c, "quota", err)
		return
	}

	quotas, err := h.usecase.Search(c.Request.Context(), in)
	if err != nil {
		respondError(c, "quota", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotas(quotas))
}
