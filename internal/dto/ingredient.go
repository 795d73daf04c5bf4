package dto

// ── ingredient DTOs ──

// CreateIngredientRequest adds a catalog ingredient. Category and Unit are
// inferred from the name when left blank.
type CreateIngredientRequest struct {
	Name        string   `json:"name"          binding:"required,min=1,max=200"`
	Category    string   `json:"category"      binding:"omitempty,max=50"`
	Unit        string   `json:"unit"          binding:"omitempty,max=20"`
	CostPerUnit *float64 `json:"cost_per_unit" binding:"omitempty,gte=0"`
}

// UpdateIngredientRequest edits a catalog ingredient.
type UpdateIngredientRequest struct {
	Name        *string  `json:"name"          binding:"omitempty,min=1,max=200"`
	Category    *string  `json:"category"      binding:"omitempty,max=50"`
	Unit        *string  `json:"unit"          binding:"omitempty,max=20"`
	CostPerUnit *float64 `json:"cost_per_unit" binding:"omitempty,gte=0"`
}

// IngredientListRequest filters the catalog listing.
type IngredientListRequest struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// MatchIngredientsRequest fuzzy-matches free text against the catalog.
type MatchIngredientsRequest struct {
	Term      string  `json:"term"      binding:"required,min=1,max=200"`
	Threshold float64 `json:"threshold" binding:"omitempty,gt=0,lte=1"`
	Limit     int     `json:"limit"     binding:"omitempty,gte=1,lte=50"`
}

// IngredientResponse is the API shape of an ingredient.
type IngredientResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	CostPerUnit float64 `json:"cost_per_unit"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// IngredientMatchResponse is one ranked match candidate.
type IngredientMatchResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
	MatchType  string  `json:"match_type"`
}
