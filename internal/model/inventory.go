package model

import "time"

// Inventory adjustment reasons.
const (
	AdjustReceived = "received"
	AdjustUsed     = "used"
	AdjustWaste    = "waste"
	AdjustCount    = "count"
)

// InventoryItem tracks stock on hand per ingredient, stored in inventory_items.
// Version implements optimistic locking: concurrent stock edits conflict
// instead of silently overwriting each other.
type InventoryItem struct {
	ItemID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"item_id"`
	OrgID        string    `gorm:"type:uuid;not null"                             json:"org_id"`
	IngredientID string    `gorm:"type:uuid;not null"                             json:"ingredient_id"`
	OnHand       float64   `gorm:"type:numeric(12,3);not null;default:0"          json:"on_hand"`
	ParLevel     float64   `gorm:"type:numeric(12,3);not null;default:0"          json:"par_level"`
	Unit         string    `gorm:"type:varchar(20);not null;default:'g'"          json:"unit"`
	Version      int       `gorm:"not null;default:1"                             json:"version"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;references:IngredientID" json:"ingredient,omitempty"`
}

// TableName sets the table name.
func (InventoryItem) TableName() string { return "inventory_items" }

// InventoryAdjustment is a stock movement, stored in inventory_adjustments.
type InventoryAdjustment struct {
	AdjustmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"adjustment_id"`
	ItemID       string    `gorm:"type:uuid;not null"                             json:"item_id"`
	Delta        float64   `gorm:"type:numeric(12,3);not null"                    json:"delta"`
	Reason       string    `gorm:"type:varchar(20);not null"                      json:"reason"`
	Note         *string   `gorm:"type:varchar(500)"                              json:"note,omitempty"`
	AdjustedBy   string    `gorm:"type:uuid;not null"                             json:"adjusted_by"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (InventoryAdjustment) TableName() string { return "inventory_adjustments" }
