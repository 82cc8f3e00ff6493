package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/middleware"
	"github.com/guttosm/cardapio-service/internal/service"
)

// SelectionHandler drives product customization sessions.
type SelectionHandler struct {
	selections service.SelectionService
	carts      service.CartService
}

// NewSelectionHandler creates a new SelectionHandler.
func NewSelectionHandler(selections service.SelectionService, carts service.CartService) *SelectionHandler {
	return &SelectionHandler{selections: selections, carts: carts}
}

// Start handles POST /api/v1/selections.
//
// @Summary      Start customization
// @Description  Opens a session for a product. Flavor mode is on when the product supports more than one flavor and other candidates share its category and size.
// @Tags         Selections
// @Accept       json
// @Produce      json
// @Param        request body dto.StartSelectionRequest true "Product"
// @Success      201 {object} dto.SuccessResponse{data=dto.SelectionResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Product out of stock"
// @Router       /api/v1/selections [post]
func (h *SelectionHandler) Start(c *gin.Context) {
	req, err := BuildRequest[dto.StartSelectionRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	sel, err := h.selections.Start(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetSessionID(c, sel.ID)
	audit(c, middleware.ActionSelectionStart, "Customization started", map[string]interface{}{
		"product_id":  sel.Base.ID,
		"flavor_mode": sel.FlavorMode,
	})
	NewResponseBuilder(c).SuccessCreated(selectionView(sel))
}

// Get handles GET /api/v1/selections/:id.
//
// @Summary      Get customization
// @Tags         Selections
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SelectionResponse}
// @Failure      404 {object} dto.ErrorResponse
// @Failure      410 {object} dto.ErrorResponse "Session abandoned"
// @Router       /api/v1/selections/{id} [get]
func (h *SelectionHandler) Get(c *gin.Context) {
	h.respond(c, func(id string) (*model.Selection, error) {
		return h.selections.Get(c.Request.Context(), id)
	})
}

// AddFlavor handles POST /api/v1/selections/:id/flavors.
//
// @Summary      Add flavor
// @Description  Adds one instance of a candidate flavor. The same flavor may be added more than once.
// @Tags         Selections
// @Accept       json
// @Produce      json
// @Param        id      path string             true "Session ID"
// @Param        request body dto.FlavorRequest  true "Flavor"
// @Success      200 {object} dto.SuccessResponse{data=dto.SelectionResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Limit reached or flavor out of stock"
// @Failure      410 {object} dto.ErrorResponse
// @Router       /api/v1/selections/{id}/flavors [post]
func (h *SelectionHandler) AddFlavor(c *gin.Context) {
	req, err := BuildRequest[dto.FlavorRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}
	h.respond(c, func(id string) (*model.Selection, error) {
		return h.selections.AddFlavor(c.Request.Context(), id, req.ProductID)
	})
}

// RemoveFlavor handles DELETE /api/v1/selections/:id/flavors/:productId.
//
// @Summary      Remove flavor
// @Description  Removes one instance of a flavor. The last instance of the base product cannot be removed.
// @Tags         Selections
// @Produce      json
// @Param        id        path string true "Session ID"
// @Param        productId path string true "Flavor product ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SelectionResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      410 {object} dto.ErrorResponse
// @Router       /api/v1/selections/{id}/flavors/{productId} [delete]
func (h *SelectionHandler) RemoveFlavor(c *gin.Context) {
	h.respond(c, func(id string) (*model.Selection, error) {
		return h.selections.RemoveFlavor(c.Request.Context(), id, c.Param("productId"))
	})
}

// AddAddon handles PUT /api/v1/selections/:id/addons/:addonId.
//
// @Summary      Select add-on
// @Tags         Selections
// @Produce      json
// @Param        id      path string true "Session ID"
// @Param        addonId path string true "Add-on ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SelectionResponse}
// @Failure      404 {object} dto.ErrorResponse
// @Failure      410 {object} dto.ErrorResponse
// @Router       /api/v1/selections/{id}/addons/{addonId} [put]
func (h *SelectionHandler) AddAddon(c *gin.Context) {
	h.respond(c, func(id string) (*model.Selection, error) {
		return h.selections.AddAddon(c.Request.Context(), id, c.Param("addonId"))
	})
}

// RemoveAddon handles DELETE /api/v1/selections/:id/addons/:addonId.
//
// @Summary      Deselect add-on
// @Tags         Selections
// @Produce      json
// @Param        id      path string true "Session ID"
// @Param        addonId path string true "Add-on ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SelectionResponse}
// @Failure      404 {object} dto.ErrorResponse
// @Failure      410 {object} dto.ErrorResponse
// @Router       /api/v1/selections/{id}/addons/{addonId} [delete]
func (h *SelectionHandler) RemoveAddon(c *gin.Context) {
	h.respond(c, func(id string) (*model.Selection, error) {
		return h.selections.RemoveAddon(c.Request.Context(), id, c.Param("addonId"))
	})
}

// SetNotes handles PUT /api/v1/selections/:id/notes.
//
// @Summary      Set notes
// @Tags         Selections
// @Accept       json
// @Produce      json
// @Param        id      path string           true "Session ID"
// @Param        request body dto.NotesRequest true "Notes"
// @Success      200 {object} dto.SuccessResponse{data=dto.SelectionResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      410 {object} dto.ErrorResponse
// @Router       /api/v1/selections/{id}/notes [put]
func (h *SelectionHandler) SetNotes(c *gin.Context) {
	req, err := BuildRequest[dto.NotesRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}
	h.respond(c, func(id string) (*model.Selection, error) {
		return h.selections.SetNotes(c.Request.Context(), id, req.Notes)
	})
}

// AppendNotePreset handles POST /api/v1/selections/:id/notes/presets.
//
// @Summary      Append note preset
// @Description  Appends a quick note, comma separated. A preset already present is not repeated.
// @Tags         Selections
// @Accept       json
// @Produce      json
// @Param        id      path string                true "Session ID"
// @Param        request body dto.NotePresetRequest true "Preset"
// @Success      200 {object} dto.SuccessResponse{data=dto.SelectionResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      410 {object} dto.ErrorResponse
// @Router       /api/v1/selections/{id}/notes/presets [post]
func (h *SelectionHandler) AppendNotePreset(c *gin.Context) {
	req, err := BuildRequest[dto.NotePresetRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}
	h.respond(c, func(id string) (*model.Selection, error) {
		return h.selections.AppendNotePreset(c.Request.Context(), id, req.Preset)
	})
}

// Summary handles GET /api/v1/selections/:id/summary.
//
// @Summary      Price summary
// @Description  Composed price (mean of the flavor instances), add-on total and unit price.
// @Tags         Selections
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SelectionSummaryResponse}
// @Failure      404 {object} dto.ErrorResponse
// @Failure      410 {object} dto.ErrorResponse
// @Router       /api/v1/selections/{id}/summary [get]
func (h *SelectionHandler) Summary(c *gin.Context) {
	id := c.Param("id")
	middleware.SetSessionID(c, id)

	summary, err := h.selections.Summary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(summaryView(summary))
}

// Abandon handles DELETE /api/v1/selections/:id.
//
// @Summary      Abandon customization
// @Tags         Selections
// @Param        id path string true "Session ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/v1/selections/{id} [delete]
func (h *SelectionHandler) Abandon(c *gin.Context) {
	id := c.Param("id")
	middleware.SetSessionID(c, id)

	if err := h.selections.Abandon(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).NoContent()
}

// AddToCart handles POST /api/v1/selections/:id/cart.
//
// @Summary      Add to cart
// @Description  Builds the line against current stock and adds it to the cart, merging into an equal line. Without carrinho_id a new cart is created. The session ends on success.
// @Tags         Selections
// @Accept       json
// @Produce      json
// @Param        id              path   string               true  "Session ID"
// @Param        Idempotency-Key header string               false "Idempotency key"
// @Param        request         body   dto.AddToCartRequest false "Target cart"
// @Success      201 {object} dto.SuccessResponse{data=dto.AddToCartResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Out of stock or concurrent update"
// @Failure      410 {object} dto.ErrorResponse
// @Router       /api/v1/selections/{id}/cart [post]
func (h *SelectionHandler) AddToCart(c *gin.Context) {
	id := c.Param("id")
	middleware.SetSessionID(c, id)

	var req dto.AddToCartRequest
	if c.Request.ContentLength != 0 {
		bound, err := BuildRequest[dto.AddToCartRequest](c)
		if err != nil {
			respondBindError(c, err)
			return
		}
		req = *bound
	}
	if req.CartID != "" {
		middleware.SetCartID(c, req.CartID)
	}

	result, err := h.selections.AddToCart(c.Request.Context(), id, req.CartID)
	if err != nil {
		auditError(c, middleware.ActionCartAdd, "Add to cart rejected", err, nil)
		respondError(c, err)
		return
	}

	middleware.SetCartID(c, result.Cart.ID)
	audit(c, middleware.ActionCartAdd, "Line added to cart", map[string]interface{}{
		"product_id": result.Item.BaseProductID(),
		"outcome":    string(result.Outcome),
		"quantity":   result.Item.Quantity,
	})

	NewResponseBuilder(c).SuccessCreated(dto.AddToCartResponse{
		Cart:    cartView(result.Cart, h.carts.Totals(result.Cart)),
		Item:    cartItemView(indexOfLine(result.Cart, result.Item), result.Item),
		Outcome: string(result.Outcome),
	})
}

func (h *SelectionHandler) respond(c *gin.Context, op func(id string) (*model.Selection, error)) {
	id := c.Param("id")
	middleware.SetSessionID(c, id)

	sel, err := op(id)
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(selectionView(sel))
}
