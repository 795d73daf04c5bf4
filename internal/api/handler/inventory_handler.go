package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/service"
	pkgerrors "chefos/backend/pkg/errors"
	"chefos/backend/pkg/response"
)

// InventoryHandler serves the stock endpoints.
type InventoryHandler struct {
	inventorySvc service.InventoryService
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(inventorySvc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventorySvc: inventorySvc}
}

// UpsertItem creates or updates an ingredient's stock record.
// PUT /api/v1/inventory
func (h *InventoryHandler) UpsertItem(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.UpsertInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	item, err := h.inventorySvc.UpsertItem(c.Request.Context(), orgID, &req)
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			response.BadRequest(c, 13001, "ingredient not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, item)
}

// GetItem returns one stock record.
// GET /api/v1/inventory/:id
func (h *InventoryHandler) GetItem(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	item, err := h.inventorySvc.GetItem(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		h.handleInventoryError(c, err)
		return
	}

	response.OK(c, item)
}

// ListItems lists all stock records.
// GET /api/v1/inventory?below_par=true
func (h *InventoryHandler) ListItems(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var (
		items []dto.InventoryItemResponse
		err   error
	)
	if c.Query("below_par") == "true" {
		items, err = h.inventorySvc.ListBelowPar(c.Request.Context(), orgID)
	} else {
		items, err = h.inventorySvc.ListItems(c.Request.Context(), orgID)
	}
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, items)
}

// Adjust applies a stock movement to one record.
// POST /api/v1/inventory/:id/adjust
func (h *InventoryHandler) Adjust(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AdjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	item, err := h.inventorySvc.Adjust(c.Request.Context(), orgID, c.Param("id"), userID, &req)
	if err != nil {
		h.handleInventoryError(c, err)
		return
	}

	response.OK(c, item)
}

// ListAdjustments lists recent stock movements for one record.
// GET /api/v1/inventory/:id/adjustments?limit=50
func (h *InventoryHandler) ListAdjustments(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	adjustments, err := h.inventorySvc.ListAdjustments(c.Request.Context(), orgID, c.Param("id"), limit)
	if err != nil {
		h.handleInventoryError(c, err)
		return
	}

	response.OK(c, adjustments)
}

func (h *InventoryHandler) handleInventoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInventoryItemNotFound):
		response.NotFound(c, 15001, "inventory item not found")
	case errors.Is(err, service.ErrNegativeStock):
		response.BadRequest(c, 15002, "adjustment would take stock below zero")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 15003, "item changed since you last read it, reload and retry")
	default:
		response.InternalError(c)
	}
}
