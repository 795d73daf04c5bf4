package model

// Ingredient is a costed catalog item, stored in ingredients.
// Unit is the unit the ingredient is priced per (CostPerUnit / Unit).
type Ingredient struct {
	IngredientID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"ingredient_id"`
	OrgID        string  `gorm:"type:uuid;not null"                             json:"org_id"`
	Name         string  `gorm:"type:varchar(200);not null"                     json:"name"`
	Category     string  `gorm:"type:varchar(50);not null;default:'Other'"      json:"category"`
	Unit         string  `gorm:"type:varchar(20);not null;default:'g'"          json:"unit"`
	CostPerUnit  float64 `gorm:"type:numeric(12,4);not null;default:0"          json:"cost_per_unit"`
	BaseModel
}

// TableName sets the table name.
func (Ingredient) TableName() string { return "ingredients" }
