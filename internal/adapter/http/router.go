package http

import (
	"github.com/labstack/echo/v4"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Base        *Handler
	Identity    *IdentityHandler
	Catalog     *CatalogHandler
	Inventory   *InventoryHandler
	Maintenance *MaintenanceHandler
	Paperwork   *PaperworkHandler
}

// RegisterRoutes mounts the API under /api/v1. Everything except /health and
// /auth/login sits behind the authenticated group; write routes additionally
// pass through the idempotency middleware when it is supplied.
func RegisterRoutes(e *echo.Echo, h Handlers, authMW echo.MiddlewareFunc, extra ...echo.MiddlewareFunc) {
	e.GET("/health", h.Base.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/auth/login", h.Identity.Login)

	mws := append([]echo.MiddlewareFunc{authMW}, extra...)
	g := v1.Group("", mws...)

	g.GET("/auth/me", h.Identity.Me)

	// identity
	g.POST("/persons", h.Identity.CreatePerson)
	g.GET("/persons", h.Identity.ListPersons)
	g.GET("/persons/:id", h.Identity.GetPerson)
	g.PATCH("/persons/:id", h.Identity.UpdatePerson)
	g.POST("/users", h.Identity.CreateUser)
	g.GET("/roles", h.Identity.ListRoles)
	g.POST("/persons/:id/roles", h.Identity.AssignRole)
	g.DELETE("/persons/:id/roles/:code", h.Identity.RemoveRole)

	// catalog
	g.POST("/brands", h.Catalog.CreateBrand)
	g.GET("/brands", h.Catalog.ListBrands)
	g.GET("/brands/:id", h.Catalog.GetBrand)
	g.DELETE("/brands/:id", h.Catalog.DeleteBrand)
	g.POST("/asset-types", h.Catalog.CreateAssetType)
	g.GET("/asset-types", h.Catalog.ListAssetTypes)
	g.POST("/asset-models", h.Catalog.CreateAssetModel)
	g.GET("/asset-models", h.Catalog.ListAssetModels)
	g.POST("/stock-item-models", h.Catalog.CreateStockItemModel)
	g.GET("/stock-item-models", h.Catalog.ListStockItemModels)
	g.POST("/consumable-models", h.Catalog.CreateConsumableModel)
	g.GET("/consumable-models", h.Catalog.ListConsumableModels)
	g.POST("/rooms", h.Catalog.CreateRoom)
	g.GET("/rooms", h.Catalog.ListRooms)
	g.POST("/attribute-definitions", h.Catalog.CreateAttributeDefinition)
	g.GET("/attribute-definitions", h.Catalog.ListAttributeDefinitions)

	// inventory
	g.POST("/assets", h.Inventory.CreateAsset)
	g.GET("/assets", h.Inventory.ListAssets)
	g.GET("/assets/:id", h.Inventory.GetAsset)
	g.POST("/stock-items", h.Inventory.CreateStockItem)
	g.GET("/stock-items", h.Inventory.ListStockItems)
	g.POST("/consumables", h.Inventory.CreateConsumable)
	g.GET("/consumables", h.Inventory.ListConsumables)
	g.POST("/assignments", h.Inventory.Assign)
	g.POST("/assignments/:id/return", h.Inventory.Return)
	g.GET("/persons/:id/assignments", h.Inventory.ListAssignments)
	g.POST("/movements", h.Inventory.Move)
	g.GET("/movements", h.Inventory.ListMovements)
	g.POST("/problem-reports", h.Inventory.ReportProblem)
	g.GET("/problem-reports", h.Inventory.ListProblemReports)
	g.POST("/problem-reports/:id/resolve", h.Inventory.ResolveProblem)
	g.GET("/attribute-values/:target/:id", h.Inventory.ListAttributeValues)
	g.POST("/condition-history", h.Inventory.RecordCondition)
	g.GET("/condition-history/:target/:id", h.Inventory.ListConditionHistory)

	// maintenance workflow
	g.POST("/maintenances", h.Maintenance.Create)
	g.GET("/maintenances", h.Maintenance.List)
	g.GET("/maintenances/:id", h.Maintenance.Get)
	g.PATCH("/maintenances/:id", h.Maintenance.Update)
	g.POST("/maintenances/:id/steps", h.Maintenance.CreateStep)
	g.GET("/maintenances/:id/steps", h.Maintenance.ListSteps)
	g.GET("/typical-steps", h.Maintenance.ListTypicalSteps)
	g.GET("/steps/:id", h.Maintenance.GetStep)
	g.PATCH("/steps/:id", h.Maintenance.UpdateStep)
	g.POST("/steps/:id/attribute-changes", h.Maintenance.QueueAttributeChanges)
	g.GET("/steps/:id/attribute-changes", h.Maintenance.ListAttributeChanges)
	g.POST("/steps/:id/item-requests", h.Maintenance.CreateItemRequest)
	g.GET("/steps/:id/item-requests", h.Maintenance.ListItemRequests)
	g.GET("/item-requests/:id", h.Maintenance.GetItemRequest)
	g.POST("/item-requests/:id/fulfill", h.Maintenance.FulfillItemRequest)
	g.POST("/item-requests/:id/reject", h.Maintenance.RejectItemRequest)

	// paperwork
	g.POST("/attribution-orders", h.Paperwork.CreateAttributionOrder)
	g.GET("/attribution-orders", h.Paperwork.ListAttributionOrders)
	g.GET("/attribution-orders/:id", h.Paperwork.GetAttributionOrder)
	g.POST("/receipt-reports", h.Paperwork.CreateReceiptReport)
	g.GET("/receipt-reports", h.Paperwork.ListReceiptReports)
	g.POST("/certificates", h.Paperwork.CreateCertificate)
	g.GET("/certificates", h.Paperwork.ListCertificates)
	g.POST("/company-asset-requests", h.Paperwork.CreateCompanyAssetRequest)
	g.GET("/company-asset-requests", h.Paperwork.ListCompanyAssetRequests)
}
