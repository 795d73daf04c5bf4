package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/service"
	"chefos/backend/pkg/response"
)

// RecipeHandler serves the recipe endpoints.
type RecipeHandler struct {
	recipeSvc service.RecipeService
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(recipeSvc service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeSvc: recipeSvc}
}

// CreateRecipe creates a recipe with its ingredient lines.
// POST /api/v1/recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	recipe, err := h.recipeSvc.CreateRecipe(c.Request.Context(), orgID, &req)
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			response.BadRequest(c, 13001, "ingredient not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, recipe)
}

// GetRecipe returns one recipe with lines.
// GET /api/v1/recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeSvc.GetRecipe(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		h.handleRecipeError(c, err)
		return
	}

	response.OK(c, recipe)
}

// ListRecipes lists all recipes.
// GET /api/v1/recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	recipes, err := h.recipeSvc.ListRecipes(c.Request.Context(), orgID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, recipes)
}

// UpdateRecipe edits a recipe; a lines array replaces the full line set.
// PUT /api/v1/recipes/:id
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	recipe, err := h.recipeSvc.UpdateRecipe(c.Request.Context(), orgID, c.Param("id"), &req)
	if err != nil {
		h.handleRecipeError(c, err)
		return
	}

	response.OK(c, recipe)
}

// DeleteRecipe removes a recipe.
// DELETE /api/v1/recipes/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	if err := h.recipeSvc.DeleteRecipe(c.Request.Context(), orgID, c.Param("id")); err != nil {
		h.handleRecipeError(c, err)
		return
	}

	response.OK(c, nil)
}

// CostRecipe returns the per-line and per-yield costing breakdown.
// GET /api/v1/recipes/:id/cost
func (h *RecipeHandler) CostRecipe(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	cost, err := h.recipeSvc.CostRecipe(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		h.handleRecipeError(c, err)
		return
	}

	response.OK(c, cost)
}

func (h *RecipeHandler) handleRecipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		response.NotFound(c, 14001, "recipe not found")
	case errors.Is(err, service.ErrIngredientNotFound):
		response.BadRequest(c, 13001, "ingredient not found")
	default:
		response.InternalError(c)
	}
}
