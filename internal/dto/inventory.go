package dto

// ── inventory DTOs ──

// UpsertInventoryItemRequest creates or updates the stock record for an
// ingredient.
type UpsertInventoryItemRequest struct {
	IngredientID string   `json:"ingredient_id" binding:"required,uuid"`
	OnHand       *float64 `json:"on_hand"       binding:"omitempty,gte=0"`
	ParLevel     *float64 `json:"par_level"     binding:"omitempty,gte=0"`
	Unit         string   `json:"unit"          binding:"omitempty,max=20"`
}

// AdjustInventoryRequest applies a stock movement. Version carries the
// caller's last-seen item version for conflict detection.
type AdjustInventoryRequest struct {
	Delta   float64 `json:"delta"   binding:"required"`
	Reason  string  `json:"reason"  binding:"required,oneof=received used waste count"`
	Note    *string `json:"note"    binding:"omitempty,max=500"`
	Version int     `json:"version" binding:"required,gte=1"`
}

// InventoryItemResponse is the API shape of a stock record.
type InventoryItemResponse struct {
	ID             string  `json:"id"`
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	OnHand         float64 `json:"on_hand"`
	ParLevel       float64 `json:"par_level"`
	Unit           string  `json:"unit"`
	BelowPar       bool    `json:"below_par"`
	Version        int     `json:"version"`
	UpdatedAt      string  `json:"updated_at"`
}

// AdjustmentResponse is one stock movement.
type AdjustmentResponse struct {
	ID        string  `json:"id"`
	Delta     float64 `json:"delta"`
	Reason    string  `json:"reason"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"`
}
