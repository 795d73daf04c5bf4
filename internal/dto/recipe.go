package dto

// ── recipe DTOs ──

// RecipeLineRequest is one ingredient line on a recipe write.
type RecipeLineRequest struct {
	IngredientID string  `json:"ingredient_id" binding:"required,uuid"`
	Quantity     float64 `json:"quantity"      binding:"required,gt=0"`
	Unit         string  `json:"unit"          binding:"required,max=20"`
}

// CreateRecipeRequest creates a recipe with its lines.
type CreateRecipeRequest struct {
	Name        string              `json:"name"        binding:"required,min=1,max=200"`
	Description *string             `json:"description" binding:"omitempty,max=2000"`
	YieldQty    float64             `json:"yield_qty"   binding:"omitempty,gt=0"`
	YieldUnit   string              `json:"yield_unit"  binding:"omitempty,max=20"`
	Method      *string             `json:"method"`
	Lines       []RecipeLineRequest `json:"lines"       binding:"omitempty,dive"`
}

// UpdateRecipeRequest edits a recipe; Lines, when present, replaces the
// full line set.
type UpdateRecipeRequest struct {
	Name        *string              `json:"name"        binding:"omitempty,min=1,max=200"`
	Description *string              `json:"description" binding:"omitempty,max=2000"`
	YieldQty    *float64             `json:"yield_qty"   binding:"omitempty,gt=0"`
	YieldUnit   *string              `json:"yield_unit"  binding:"omitempty,max=20"`
	Method      *string              `json:"method"`
	Lines       *[]RecipeLineRequest `json:"lines"       binding:"omitempty,dive"`
}

// RecipeResponse is the API shape of a recipe.
type RecipeResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description,omitempty"`
	YieldQty    float64              `json:"yield_qty"`
	YieldUnit   string               `json:"yield_unit"`
	Method      *string              `json:"method,omitempty"`
	Lines       []RecipeLineResponse `json:"lines"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// RecipeLineResponse is one line of a recipe read.
type RecipeLineResponse struct {
	ID             string  `json:"id"`
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	Position       int     `json:"position"`
}

// RecipeCostResponse is the costing breakdown of a recipe.
type RecipeCostResponse struct {
	RecipeID     string             `json:"recipe_id"`
	TotalCost    float64            `json:"total_cost"`
	CostPerYield float64            `json:"cost_per_yield"`
	Lines        []LineCostResponse `json:"lines"`
	// Incomplete is true when at least one line could not be costed.
	Incomplete bool `json:"incomplete"`
}

// LineCostResponse is the costing of a single recipe line. Cost is null
// when the recipe unit cannot be converted into the ingredient's pricing
// unit; Error then explains the incompatibility.
type LineCostResponse struct {
	LineID         string   `json:"line_id"`
	IngredientName string   `json:"ingredient_name"`
	Quantity       float64  `json:"quantity"`
	Unit           string   `json:"unit"`
	Cost           *float64 `json:"cost"`
	Conversion     string   `json:"conversion,omitempty"`
	Error          string   `json:"error,omitempty"`
}
