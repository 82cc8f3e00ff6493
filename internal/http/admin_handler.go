package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/middleware"
	"github.com/guttosm/cardapio-service/internal/service"
)

// ProductAdminHandler serves the product registration panel.
type ProductAdminHandler struct {
	products service.ProductAdminService
}

// NewProductAdminHandler creates a new ProductAdminHandler.
func NewProductAdminHandler(products service.ProductAdminService) *ProductAdminHandler {
	return &ProductAdminHandler{products: products}
}

func productInput(req *dto.ProductRequest) service.ProductInput {
	kind := model.KindNormal
	if req.Kind != "" {
		kind = model.ProductKind(req.Kind)
	}
	return service.ProductInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Quantity:        req.Quantity,
		Category:        req.Category,
		ImageURL:        req.ImageURL,
		Active:          req.IsActive(),
		Kind:            kind,
		MaxFlavors:      req.MaxFlavors,
		Size:            req.Size,
		AddonCategories: req.AddonCategories,
	}
}

// List handles GET /api/v1/admin/products.
//
// @Summary      List all products
// @Description  Every registered product, inactive and add-ons included.
// @Tags         Admin
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ProductResponse}
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/v1/admin/products [get]
func (h *ProductAdminHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(productViews(products))
}

// Create handles POST /api/v1/admin/products.
//
// @Summary      Register product
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body dto.ProductRequest true "Product"
// @Success      201 {object} dto.SuccessResponse{data=dto.ProductResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/v1/admin/products [post]
func (h *ProductAdminHandler) Create(c *gin.Context) {
	req, err := BuildRequest[dto.ProductRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), productInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	audit(c, middleware.ActionProductCreate, "Product registered", map[string]interface{}{
		"product_id": product.ID,
		"kind":       string(product.Kind),
	})
	NewResponseBuilder(c).SuccessCreated(productView(*product))
}

// Update handles PUT /api/v1/admin/products/:id.
//
// @Summary      Update product
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id      path string             true "Product ID"
// @Param        request body dto.ProductRequest true "Product"
// @Success      200 {object} dto.SuccessResponse{data=dto.ProductResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/v1/admin/products/{id} [put]
func (h *ProductAdminHandler) Update(c *gin.Context) {
	req, err := BuildRequest[dto.ProductRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), productInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	audit(c, middleware.ActionProductUpdate, "Product updated", map[string]interface{}{"product_id": product.ID})
	NewResponseBuilder(c).SuccessOK(productView(*product))
}

// ToggleStatus handles PATCH /api/v1/admin/products/:id/status.
//
// @Summary      Toggle product status
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ProductResponse}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/v1/admin/products/{id}/status [patch]
func (h *ProductAdminHandler) ToggleStatus(c *gin.Context) {
	product, err := h.products.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	audit(c, middleware.ActionProductUpdate, "Product status toggled", map[string]interface{}{
		"product_id": product.ID,
		"active":     product.Active,
	})
	NewResponseBuilder(c).SuccessOK(productView(*product))
}

// Delete handles DELETE /api/v1/admin/products/:id.
//
// @Summary      Delete product
// @Tags         Admin
// @Param        id path string true "Product ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/v1/admin/products/{id} [delete]
func (h *ProductAdminHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	audit(c, middleware.ActionProductDelete, "Product deleted", map[string]interface{}{"product_id": id})
	NewResponseBuilder(c).NoContent()
}
