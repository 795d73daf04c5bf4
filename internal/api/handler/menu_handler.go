package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/service"
	"chefos/backend/pkg/response"
)

// MenuHandler serves the menu and menu-engineering endpoints.
type MenuHandler struct {
	menuSvc service.MenuService
}

// NewMenuHandler creates a MenuHandler.
func NewMenuHandler(menuSvc service.MenuService) *MenuHandler {
	return &MenuHandler{menuSvc: menuSvc}
}

// CreateMenuItem puts a recipe on the menu.
// POST /api/v1/menu
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	item, err := h.menuSvc.CreateMenuItem(c.Request.Context(), orgID, &req)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.Created(c, item)
}

// ListMenuItems lists menu items.
// GET /api/v1/menu?active=true
func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	items, err := h.menuSvc.ListMenuItems(c.Request.Context(), orgID, c.Query("active") == "true")
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, items)
}

// UpdateMenuItem edits a menu item (price, sales count, active flag).
// PUT /api/v1/menu/:id
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	item, err := h.menuSvc.UpdateMenuItem(c.Request.Context(), orgID, c.Param("id"), &req)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, item)
}

// DeleteMenuItem removes a menu item.
// DELETE /api/v1/menu/:id
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	if err := h.menuSvc.DeleteMenuItem(c.Request.Context(), orgID, c.Param("id")); err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, nil)
}

// EngineeringReport classifies active menu items by margin and popularity.
// GET /api/v1/menu/engineering
func (h *MenuHandler) EngineeringReport(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	report, err := h.menuSvc.EngineeringReport(c.Request.Context(), orgID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, report)
}

func (h *MenuHandler) handleMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMenuItemNotFound):
		response.NotFound(c, 20001, "menu item not found")
	case errors.Is(err, service.ErrRecipeNotFound):
		response.BadRequest(c, 14001, "recipe not found")
	default:
		response.InternalError(c)
	}
}
