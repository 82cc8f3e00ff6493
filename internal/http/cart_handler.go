package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/middleware"
	"github.com/guttosm/cardapio-service/internal/service"
)

// CartHandler serves cart mutations and checkout.
type CartHandler struct {
	carts    service.CartService
	checkout service.CheckoutService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts service.CartService, checkout service.CheckoutService) *CartHandler {
	return &CartHandler{carts: carts, checkout: checkout}
}

// Create handles POST /api/v1/carts.
//
// @Summary      Create cart
// @Tags         Cart
// @Produce      json
// @Success      201 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/v1/carts [post]
func (h *CartHandler) Create(c *gin.Context) {
	cart, err := h.carts.Create(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.SetCartID(c, cart.ID)
	NewResponseBuilder(c).SuccessCreated(cartView(cart, h.carts.Totals(cart)))
}

// Get handles GET /api/v1/carts/:id.
//
// @Summary      Get cart
// @Description  Returns the lines with subtotal, the fixed delivery fee and total.
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Cart ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/v1/carts/{id} [get]
func (h *CartHandler) Get(c *gin.Context) {
	h.respond(c, func(id string) (*model.Cart, error) {
		return h.carts.Get(c.Request.Context(), id)
	})
}

// UpdateQuantity handles PATCH /api/v1/carts/:id/items/:index.
//
// @Summary      Change line quantity
// @Description  Adds delta to the quantity of a line. Going above the line maximum is rejected; reaching zero removes the line.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Cart ID"
// @Param        index   path int                       true "Line index"
// @Param        request body dto.UpdateQuantityRequest true "Quantity change"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Stock exceeded or concurrent update"
// @Router       /api/v1/carts/{id}/items/{index} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	req, err := BuildRequestAndValidate[dto.UpdateQuantityRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	h.respond(c, func(id string) (*model.Cart, error) {
		cart, err := h.carts.Increment(c.Request.Context(), id, index, req.Delta)
		if err == nil {
			audit(c, middleware.ActionCartUpdate, "Line quantity changed", map[string]interface{}{
				"index": index,
				"delta": req.Delta,
			})
		}
		return cart, err
	})
}

// RemoveItem handles DELETE /api/v1/carts/:id/items/:index.
//
// @Summary      Remove line
// @Tags         Cart
// @Produce      json
// @Param        id    path string true "Cart ID"
// @Param        index path int    true "Line index"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/v1/carts/{id}/items/{index} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}

	h.respond(c, func(id string) (*model.Cart, error) {
		cart, err := h.carts.Remove(c.Request.Context(), id, index)
		if err == nil {
			audit(c, middleware.ActionCartRemove, "Line removed", map[string]interface{}{"index": index})
		}
		return cart, err
	})
}

// Clear handles DELETE /api/v1/carts/:id.
//
// @Summary      Clear cart
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Cart ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/v1/carts/{id} [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	h.respond(c, func(id string) (*model.Cart, error) {
		cart, err := h.carts.Clear(c.Request.Context(), id)
		if err == nil {
			audit(c, middleware.ActionCartClear, "Cart cleared", nil)
		}
		return cart, err
	})
}

// Checkout handles POST /api/v1/carts/:id/checkout.
//
// @Summary      Checkout
// @Description  Re-validates every line against current stock. On success an order is recorded with a 5.00 delivery fee and the cart is emptied; otherwise nothing changes and the causes are listed.
// @Tags         Cart
// @Produce      json
// @Param        id              path   string true  "Cart ID"
// @Param        Idempotency-Key header string false "Idempotency key"
// @Success      201 {object} dto.SuccessResponse{data=dto.OrderResponse}
// @Failure      400 {object} dto.ErrorResponse "Empty cart"
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Stock problems, with causes"
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/v1/carts/{id}/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	id := c.Param("id")
	middleware.SetCartID(c, id)

	order, err := h.checkout.Checkout(c.Request.Context(), id)
	if err != nil {
		auditError(c, middleware.ActionCheckout, "Checkout rejected", err, nil)
		respondError(c, err)
		return
	}

	audit(c, middleware.ActionCheckout, "Order placed", map[string]interface{}{
		"order_id": order.ID,
		"total":    money(order.Total),
		"lines":    len(order.Items),
	})
	NewResponseBuilder(c).SuccessCreated(orderView(*order))
}

// Orders handles GET /api/v1/carts/:id/orders.
//
// @Summary      Order history
// @Description  Orders placed from this cart, oldest first.
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Cart ID"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.OrderResponse}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/v1/carts/{id}/orders [get]
func (h *CartHandler) Orders(c *gin.Context) {
	id := c.Param("id")
	middleware.SetCartID(c, id)

	orders, err := h.carts.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(orderViews(orders))
}

func (h *CartHandler) respond(c *gin.Context, op func(id string) (*model.Cart, error)) {
	id := c.Param("id")
	middleware.SetCartID(c, id)

	cart, err := op(id)
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(cartView(cart, h.carts.Totals(cart)))
}
