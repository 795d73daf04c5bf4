package dto

// ── menu DTOs ──

// CreateMenuItemRequest puts a recipe on the menu.
type CreateMenuItemRequest struct {
	RecipeID  string  `json:"recipe_id"  binding:"required,uuid"`
	Name      string  `json:"name"       binding:"required,min=1,max=200"`
	SellPrice float64 `json:"sell_price" binding:"required,gt=0"`
}

// UpdateMenuItemRequest edits a menu item.
type UpdateMenuItemRequest struct {
	Name      *string  `json:"name"       binding:"omitempty,min=1,max=200"`
	SellPrice *float64 `json:"sell_price" binding:"omitempty,gt=0"`
	UnitsSold *int     `json:"units_sold" binding:"omitempty,gte=0"`
	Active    *bool    `json:"active"`
}

// MenuItemResponse is the API shape of a menu item.
type MenuItemResponse struct {
	ID        string  `json:"id"`
	RecipeID  string  `json:"recipe_id"`
	Name      string  `json:"name"`
	SellPrice float64 `json:"sell_price"`
	UnitsSold int     `json:"units_sold"`
	Active    bool    `json:"active"`
}

// MenuEngineeringItem is one menu item's placement in the report.
// Classification: star (popular + profitable), plowhorse (popular only),
// puzzle (profitable only), dog (neither).
type MenuEngineeringItem struct {
	MenuItemID     string  `json:"menu_item_id"`
	Name           string  `json:"name"`
	SellPrice      float64 `json:"sell_price"`
	PortionCost    float64 `json:"portion_cost"`
	Margin         float64 `json:"margin"`
	FoodCostPct    float64 `json:"food_cost_pct"`
	UnitsSold      int     `json:"units_sold"`
	PopularityPct  float64 `json:"popularity_pct"`
	Classification string  `json:"classification"`
	// CostIncomplete marks items whose recipe had uncostable lines.
	CostIncomplete bool `json:"cost_incomplete,omitempty"`
}

// MenuEngineeringResponse is the full report.
type MenuEngineeringResponse struct {
	MeanMargin        float64               `json:"mean_margin"`
	MeanPopularityPct float64               `json:"mean_popularity_pct"`
	TotalUnitsSold    int                   `json:"total_units_sold"`
	Items             []MenuEngineeringItem `json:"items"`
}
