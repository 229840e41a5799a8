package routes

import (
	"net/http"

	"maintenance_contracts/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing         = "/ping"
	PathContracts    = "/contracts"
	PathServiceItems = "/service-items"
	PathReports      = "/reports"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addContractRoutes(rg *gin.RouterGroup, contractHandler *handlers.ContractHandler, billingHandler *handlers.BillingHandler) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.PUT("/:id", contractHandler.UpdateContract)
		contracts.POST("/:id/cancel", contractHandler.CancelContract)
		contracts.GET("/:id/submission-preview", contractHandler.SubmissionPreview)
		contracts.POST("/:id/submit", contractHandler.SubmitContract)
		contracts.GET("/:id/actions", contractHandler.GetActions)
		contracts.PATCH("/:id/status", contractHandler.UpdateStatus)

		contracts.POST("/:id/service-items", contractHandler.AddServiceItem)
		contracts.PATCH("/:id/service-items/:row_id", contractHandler.UpdateServiceItem)
		contracts.DELETE("/:id/service-items/:row_id", contractHandler.RemoveServiceItem)
		contracts.POST("/:id/service-items/:row_id/select", contractHandler.SelectServiceItem)

		contracts.POST("/:id/billing-schedule", contractHandler.AddBillingEntry)
		contracts.PATCH("/:id/billing-schedule/:row_id", contractHandler.UpdateBillingEntry)
		contracts.DELETE("/:id/billing-schedule/:row_id", contractHandler.RemoveBillingEntry)
	}

	// Server procedures on submitted contracts.
	{
		contracts.POST("/:id/billing-entries", billingHandler.CreateBillingEntry)
		contracts.POST("/:id/invoices/next", billingHandler.GenerateNextInvoice)
		contracts.POST("/:id/billing-schedule/:row_id/payments", billingHandler.PayBillingEntry)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, serviceItemHandler *handlers.ServiceItemHandler) {
	items := rg.Group(PathServiceItems)
	{
		items.GET("", serviceItemHandler.ListServiceItems)
		items.GET("/:item_code/details", serviceItemHandler.GetServiceItemDetails)
		items.PUT("/:item_code", serviceItemHandler.UpsertItem)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/active-maintenance-contracts", reportHandler.ActiveMaintenanceContracts)
		reports.GET("/active-maintenance-contracts/filters", reportHandler.GetFilters)
	}
}
