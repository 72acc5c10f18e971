package routes

import (
	"contractor_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates       = "/estimates"
	PathClientEstimates = "/client/estimates"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, paymentHandler *handlers.PaymentHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
		estimates.PATCH("/:id/financials", estimateHandler.UpdateFinancials)
		estimates.GET("/:id/revisions", estimateHandler.RevisionHistory)

		estimates.POST("/:id/line-items", estimateHandler.AddLineItem)
		estimates.PATCH("/:id/line-items/:item_id", estimateHandler.UpdateLineItem)
		estimates.DELETE("/:id/line-items/:item_id", estimateHandler.DeleteLineItem)
		estimates.PUT("/:id/line-items/order", estimateHandler.ReorderLineItems)
		estimates.GET("/:id/line-items/duplicates", estimateHandler.FindDuplicateLineItems)
		estimates.POST("/:id/line-items/import", estimateHandler.ImportCollection)

		estimates.POST("/:id/send", estimateHandler.SendEstimate)
		estimates.POST("/:id/sent", estimateHandler.RecordSent)
		estimates.POST("/:id/invoice", estimateHandler.ConvertToInvoice)
		estimates.POST("/:id/change-order", estimateHandler.CreateChangeOrder)
		estimates.POST("/:id/purchase-order", estimateHandler.GeneratePurchaseOrder)

		estimates.POST("/:id/payments", paymentHandler.RecordPayment)
		estimates.GET("/:id/payments", paymentHandler.GetPayments)
		estimates.DELETE("/:id/payments/:payment_id", paymentHandler.DeletePayment)
	}
}

// addClientRoutes exposes the token surface clients reach from the review
// link. No authentication beyond the token itself.
func addClientRoutes(rg *gin.RouterGroup, clientViewHandler *handlers.ClientViewHandler) {
	client := rg.Group(PathClientEstimates)
	{
		client.GET("/:token", clientViewHandler.ViewEstimate)
		client.POST("/:token/decision", clientViewHandler.RecordDecision)
		client.POST("/:token/comments", clientViewHandler.AddComment)
	}
}
