package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// CatalogRoutes are the public menu routes.
type CatalogRoutes struct {
	handler *CatalogHandler
}

// NewCatalogRoutes creates the catalog route group.
func NewCatalogRoutes(h *CatalogHandler) *CatalogRoutes {
	return &CatalogRoutes{handler: h}
}

// RegisterRoutes implements RouteGroup.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	catalog.GET("/products", r.handler.ListProducts)
	catalog.GET("/products/:id", r.handler.GetProduct)
	catalog.GET("/categories", r.handler.ListCategories)
	catalog.GET("/sizes", r.handler.ListSizes)
}

// SelectionRoutes are the customization session routes.
type SelectionRoutes struct {
	handler *SelectionHandler
}

// NewSelectionRoutes creates the selection route group.
func NewSelectionRoutes(h *SelectionHandler) *SelectionRoutes {
	return &SelectionRoutes{handler: h}
}

// RegisterRoutes implements RouteGroup.
func (r *SelectionRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	sel := rg.Group("/selections")
	sel.POST("", r.handler.Start)
	sel.GET("/:id", r.handler.Get)
	sel.DELETE("/:id", r.handler.Abandon)
	sel.GET("/:id/summary", r.handler.Summary)
	sel.POST("/:id/flavors", r.handler.AddFlavor)
	sel.DELETE("/:id/flavors/:productId", r.handler.RemoveFlavor)
	sel.PUT("/:id/addons/:addonId", r.handler.AddAddon)
	sel.DELETE("/:id/addons/:addonId", r.handler.RemoveAddon)
	sel.PUT("/:id/notes", r.handler.SetNotes)
	sel.POST("/:id/notes/presets", r.handler.AppendNotePreset)
	sel.POST("/:id/cart", r.handler.AddToCart)
}

// CartRoutes are the cart and checkout routes.
type CartRoutes struct {
	handler *CartHandler
}

// NewCartRoutes creates the cart route group.
func NewCartRoutes(h *CartHandler) *CartRoutes {
	return &CartRoutes{handler: h}
}

// RegisterRoutes implements RouteGroup.
func (r *CartRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	carts := rg.Group("/carts")
	carts.POST("", r.handler.Create)
	carts.GET("/:id", r.handler.Get)
	carts.DELETE("/:id", r.handler.Clear)
	carts.PATCH("/:id/items/:index", r.handler.UpdateQuantity)
	carts.DELETE("/:id/items/:index", r.handler.RemoveItem)
	carts.POST("/:id/checkout", r.handler.Checkout)
	carts.GET("/:id/orders", r.handler.Orders)
}

// AdminRoutes are the registration panel routes.
type AdminRoutes struct {
	products *ProductAdminHandler
	settings *SettingsHandler
}

// NewAdminRoutes creates the admin route group. Either handler may be nil.
func NewAdminRoutes(products *ProductAdminHandler, settings *SettingsHandler) *AdminRoutes {
	return &AdminRoutes{products: products, settings: settings}
}

// RegisterRoutes implements RouteGroup.
func (r *AdminRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	if r.products != nil {
		products := admin.Group("/products")
		products.GET("", r.products.List)
		products.POST("", r.products.Create)
		products.PUT("/:id", r.products.Update)
		products.PATCH("/:id/status", r.products.ToggleStatus)
		products.DELETE("/:id", r.products.Delete)
	}

	if r.settings == nil {
		return
	}
	settings := admin.Group("/settings")

	categories := settings.Group("/categories")
	categories.GET("", r.settings.ListCategories)
	categories.POST("", r.settings.AddCategory)
	categories.POST("/restore", r.settings.RestoreCategories)
	categories.PUT("/:id", r.settings.UpdateCategory)
	categories.DELETE("/:id", r.settings.DeleteCategory)

	sizes := settings.Group("/sizes")
	sizes.GET("", r.settings.ListSizes)
	sizes.POST("", r.settings.AddSize)
	sizes.POST("/restore", r.settings.RestoreSizes)
	sizes.PUT("/:id", r.settings.RenameSize)
	sizes.DELETE("/:id", r.settings.DeleteSize)

	flavors := settings.Group("/flavors")
	flavors.GET("", r.settings.GetFlavorConfig)
	flavors.PUT("", r.settings.SetFlavorConfig)
	flavors.POST("/restore", r.settings.RestoreFlavorConfig)
}
