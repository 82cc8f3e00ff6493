package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/service"
)

// CatalogHandler serves the public menu.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /api/v1/catalog/products.
//
// @Summary      List products
// @Description  Lists the active, sellable products. Filters by category, size and a case-insensitive name search.
// @Tags         Catalog
// @Produce      json
// @Param        categoria query string false "Category"
// @Param        peso      query string false "Size"
// @Param        q         query string false "Name search"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ProductResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/v1/catalog/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	q, err := BuildQuery[dto.ProductListQuery](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	products, err := h.catalog.ListProducts(c.Request.Context(), service.ProductFilter{
		Category: q.Category,
		Size:     q.Size,
		Search:   q.Search,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(productViews(products))
}

// GetProduct handles GET /api/v1/catalog/products/:id.
//
// @Summary      Get product
// @Description  Returns one active product and whether any add-on applies to it.
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ProductResponse}
// @Failure      404 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/v1/catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	ctx := c.Request.Context()

	product, err := h.catalog.Product(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	hasAddons, err := h.catalog.HasAddons(ctx, *product)
	if err != nil {
		respondError(c, err)
		return
	}

	view := productView(*product)
	view.HasAddons = &hasAddons
	NewResponseBuilder(c).SuccessOK(view)
}

// ListCategories handles GET /api/v1/catalog/categories.
//
// @Summary      List catalog categories
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]string}
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/v1/catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(categories)
}

// ListSizes handles GET /api/v1/catalog/sizes.
//
// @Summary      List catalog sizes
// @Description  Lists the sizes in use, optionally within one category.
// @Tags         Catalog
// @Produce      json
// @Param        categoria query string false "Category"
// @Success      200 {object} dto.SuccessResponse{data=[]string}
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/v1/catalog/sizes [get]
func (h *CatalogHandler) ListSizes(c *gin.Context) {
	sizes, err := h.catalog.Sizes(c.Request.Context(), c.Query("categoria"))
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(sizes)
}
