package routes

import (
	"cartas_marketplace/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotas       = "/quotas"
	PathProposals    = "/proposals"
	PathTransactions = "/transactions"
	PathContracts    = "/contracts"
	PathEscrow       = "/escrow"
	PathKyc          = "/kyc"
	PathCompliance   = "/compliance"
)

type marketplaceHandlers struct {
	quotas       *handlers.QuotaHandler
	proposals    *handlers.ProposalHandler
	transactions *handlers.TransactionHandler
	contracts    *handlers.ContractHandler
	escrow       *handlers.EscrowHandler
	kyc          *handlers.KycHandler
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

// addMarketplaceRoutes registers the API. Provider webhooks are public; every
// other route goes through requireAuth.
func addMarketplaceRoutes(rg *gin.RouterGroup, h marketplaceHandlers, requireAuth gin.HandlerFunc) {
	rg.POST(PathEscrow+"/webhooks", h.escrow.Webhook)

	private := rg.Group("", requireAuth)

	quotas := private.Group(PathQuotas)
	{
		quotas.POST("", h.quotas.Create)
		quotas.GET("", h.quotas.Search)
		quotas.GET("/:id", h.quotas.Get)
		quotas.GET("/:id/proposals", h.proposals.ListByQuota)
	}

	proposals := private.Group(PathProposals)
	{
		proposals.POST("", h.proposals.Create)
		proposals.POST("/:id/cancel", h.proposals.Cancel)
		proposals.POST("/:id/accept", h.proposals.Accept)
	}

	transactions := private.Group(PathTransactions)
	{
		transactions.GET("/:id", h.transactions.Get)
		transactions.POST("/:id/cancel", h.transactions.Cancel)
		transactions.POST("/:id/confirm-transfer", h.transactions.ConfirmTransfer)
	}

	contracts := private.Group(PathContracts)
	{
		contracts.POST("/:transactionId/upload", h.contracts.Upload)
		contracts.GET("/:transactionId", h.contracts.Get)
	}

	escrow := private.Group(PathEscrow)
	{
		escrow.POST("/intent", h.escrow.CreateIntent)
		escrow.POST("/release", h.escrow.Release)
		escrow.POST("/refund", h.escrow.Refund)
	}

	private.POST(PathKyc+"/cases", h.kyc.Start)

	compliance := private.Group(PathCompliance + "/kyc")
	{
		compliance.GET("", h.kyc.List)
		compliance.POST("/:id/approve", h.kyc.Approve)
		compliance.POST("/:id/reject", h.kyc.Reject)
	}
}
