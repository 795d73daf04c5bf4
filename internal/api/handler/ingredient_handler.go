package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/service"
	"chefos/backend/pkg/response"
)

// IngredientHandler serves the ingredient-catalog endpoints.
type IngredientHandler struct {
	ingredientSvc service.IngredientService
}

// NewIngredientHandler creates an IngredientHandler.
func NewIngredientHandler(ingredientSvc service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientSvc: ingredientSvc}
}

// CreateIngredient adds a catalog ingredient.
// POST /api/v1/ingredients
func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	ing, err := h.ingredientSvc.CreateIngredient(c.Request.Context(), orgID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, ing)
}

// GetIngredient returns one catalog entry.
// GET /api/v1/ingredients/:id
func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	ing, err := h.ingredientSvc.GetIngredient(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			response.NotFound(c, 13001, "ingredient not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, ing)
}

// ListIngredients lists the catalog, optionally filtered.
// GET /api/v1/ingredients?category=&search=
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.IngredientListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	list, err := h.ingredientSvc.ListIngredients(c.Request.Context(), orgID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, list)
}

// UpdateIngredient edits a catalog entry.
// PUT /api/v1/ingredients/:id
func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	ing, err := h.ingredientSvc.UpdateIngredient(c.Request.Context(), orgID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			response.NotFound(c, 13001, "ingredient not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, ing)
}

// DeleteIngredient removes a catalog entry.
// DELETE /api/v1/ingredients/:id
func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	if err := h.ingredientSvc.DeleteIngredient(c.Request.Context(), orgID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			response.NotFound(c, 13001, "ingredient not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// MatchIngredients fuzzy-matches free text against the catalog.
// POST /api/v1/ingredients/match
func (h *IngredientHandler) MatchIngredients(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.MatchIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	matches, err := h.ingredientSvc.MatchIngredients(c.Request.Context(), orgID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, matches)
}
