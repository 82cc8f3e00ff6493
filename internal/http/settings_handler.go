package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/middleware"
	"github.com/guttosm/cardapio-service/internal/service"
)

// SettingsHandler manages categories, sizes and the flavor limit.
type SettingsHandler struct {
	settings service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) changed(c *gin.Context, setting, op string) {
	audit(c, middleware.ActionSettingsUpdate, "Settings changed", map[string]interface{}{
		"setting": setting,
		"op":      op,
	})
}

// ListCategories handles GET /api/v1/admin/settings/categories.
//
// @Summary      List categories
// @Tags         Settings
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Category}
// @Router       /api/v1/admin/settings/categories [get]
func (h *SettingsHandler) ListCategories(c *gin.Context) {
	cats, err := h.settings.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(cats)
}

// AddCategory handles POST /api/v1/admin/settings/categories.
//
// @Summary      Add category
// @Description  The id is the slug of the name. Names are unique ignoring case.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body dto.CategoryRequest true "Category"
// @Success      201 {object} dto.SuccessResponse{data=model.Category}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/v1/admin/settings/categories [post]
func (h *SettingsHandler) AddCategory(c *gin.Context) {
	req, err := BuildRequest[dto.CategoryRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	cat, err := h.settings.AddCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Icon != "" {
		if cat, err = h.settings.UpdateCategory(c.Request.Context(), cat.ID, cat.Name, req.Icon); err != nil {
			respondError(c, err)
			return
		}
	}

	h.changed(c, "categories", "add")
	NewResponseBuilder(c).SuccessCreated(cat)
}

// UpdateCategory handles PUT /api/v1/admin/settings/categories/:id.
//
// @Summary      Update category
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        id      path string              true "Category ID"
// @Param        request body dto.CategoryRequest true "Category"
// @Success      200 {object} dto.SuccessResponse{data=model.Category}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/v1/admin/settings/categories/{id} [put]
func (h *SettingsHandler) UpdateCategory(c *gin.Context) {
	req, err := BuildRequest[dto.CategoryRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	cat, err := h.settings.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name, req.Icon)
	if err != nil {
		respondError(c, err)
		return
	}

	h.changed(c, "categories", "update")
	NewResponseBuilder(c).SuccessOK(cat)
}

// DeleteCategory handles DELETE /api/v1/admin/settings/categories/:id.
//
// @Summary      Delete category
// @Tags         Settings
// @Param        id path string true "Category ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/v1/admin/settings/categories/{id} [delete]
func (h *SettingsHandler) DeleteCategory(c *gin.Context) {
	if err := h.settings.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	h.changed(c, "categories", "delete")
	NewResponseBuilder(c).NoContent()
}

// RestoreCategories handles POST /api/v1/admin/settings/categories/restore.
//
// @Summary      Restore default categories
// @Tags         Settings
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Category}
// @Router       /api/v1/admin/settings/categories/restore [post]
func (h *SettingsHandler) RestoreCategories(c *gin.Context) {
	cats, err := h.settings.RestoreDefaultCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	h.changed(c, "categories", "restore")
	NewResponseBuilder(c).SuccessOK(cats)
}

// ListSizes handles GET /api/v1/admin/settings/sizes.
//
// @Summary      List sizes
// @Tags         Settings
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.SizeOption}
// @Router       /api/v1/admin/settings/sizes [get]
func (h *SettingsHandler) ListSizes(c *gin.Context) {
	sizes, err := h.settings.Sizes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(sizes)
}

// AddSize handles POST /api/v1/admin/settings/sizes.
//
// @Summary      Add size
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body dto.SizeRequest true "Size"
// @Success      201 {object} dto.SuccessResponse{data=model.SizeOption}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/v1/admin/settings/sizes [post]
func (h *SettingsHandler) AddSize(c *gin.Context) {
	req, err := BuildRequest[dto.SizeRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	size, err := h.settings.AddSize(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	h.changed(c, "sizes", "add")
	NewResponseBuilder(c).SuccessCreated(size)
}

// RenameSize handles PUT /api/v1/admin/settings/sizes/:id.
//
// @Summary      Rename size
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        id      path string          true "Size ID"
// @Param        request body dto.SizeRequest true "Size"
// @Success      200 {object} dto.SuccessResponse{data=model.SizeOption}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/v1/admin/settings/sizes/{id} [put]
func (h *SettingsHandler) RenameSize(c *gin.Context) {
	req, err := BuildRequest[dto.SizeRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	size, err := h.settings.RenameSize(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	h.changed(c, "sizes", "rename")
	NewResponseBuilder(c).SuccessOK(size)
}

// DeleteSize handles DELETE /api/v1/admin/settings/sizes/:id.
//
// @Summary      Delete size
// @Tags         Settings
// @Param        id path string true "Size ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/v1/admin/settings/sizes/{id} [delete]
func (h *SettingsHandler) DeleteSize(c *gin.Context) {
	if err := h.settings.DeleteSize(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	h.changed(c, "sizes", "delete")
	NewResponseBuilder(c).NoContent()
}

// RestoreSizes handles POST /api/v1/admin/settings/sizes/restore.
//
// @Summary      Restore default sizes
// @Tags         Settings
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.SizeOption}
// @Router       /api/v1/admin/settings/sizes/restore [post]
func (h *SettingsHandler) RestoreSizes(c *gin.Context) {
	sizes, err := h.settings.RestoreDefaultSizes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	h.changed(c, "sizes", "restore")
	NewResponseBuilder(c).SuccessOK(sizes)
}

// GetFlavorConfig handles GET /api/v1/admin/settings/flavors.
//
// @Summary      Flavor limit
// @Tags         Settings
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.FlavorConfig}
// @Router       /api/v1/admin/settings/flavors [get]
func (h *SettingsHandler) GetFlavorConfig(c *gin.Context) {
	cfg, err := h.settings.FlavorConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(cfg)
}

// SetFlavorConfig handles PUT /api/v1/admin/settings/flavors.
//
// @Summary      Set flavor limit
// @Description  Accepted range is 1 to 10.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body dto.FlavorConfigRequest true "Limit"
// @Success      200 {object} dto.SuccessResponse{data=model.FlavorConfig}
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/v1/admin/settings/flavors [put]
func (h *SettingsHandler) SetFlavorConfig(c *gin.Context) {
	req, err := BuildRequest[dto.FlavorConfigRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	cfg, err := h.settings.SetMaxFlavors(c.Request.Context(), req.MaxFlavors)
	if err != nil {
		respondError(c, err)
		return
	}
	h.changed(c, "flavors", "update")
	NewResponseBuilder(c).SuccessOK(cfg)
}

// RestoreFlavorConfig handles POST /api/v1/admin/settings/flavors/restore.
//
// @Summary      Restore default flavor limit
// @Tags         Settings
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.FlavorConfig}
// @Router       /api/v1/admin/settings/flavors/restore [post]
func (h *SettingsHandler) RestoreFlavorConfig(c *gin.Context) {
	cfg, err := h.settings.RestoreDefaultFlavorConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	h.changed(c, "flavors", "restore")
	NewResponseBuilder(c).SuccessOK(cfg)
}
