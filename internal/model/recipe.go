package model

// Recipe is a costed dish or sub-recipe, stored in recipes.
type Recipe struct {
	RecipeID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"recipe_id"`
	OrgID       string  `gorm:"type:uuid;not null"                             json:"org_id"`
	Name        string  `gorm:"type:varchar(200);not null"                     json:"name"`
	Description *string `gorm:"type:text"                                      json:"description,omitempty"`
	YieldQty    float64 `gorm:"type:numeric(12,3);not null;default:1"          json:"yield_qty"`
	YieldUnit   string  `gorm:"type:varchar(20);not null;default:'each'"       json:"yield_unit"`
	Method      *string `gorm:"type:text"                                      json:"method,omitempty"`
	BaseModel

	Lines []RecipeLine `gorm:"foreignKey:RecipeID;references:RecipeID" json:"lines,omitempty"`
}

// TableName sets the table name.
func (Recipe) TableName() string { return "recipes" }

// RecipeLine is one ingredient usage within a recipe, stored in recipe_lines.
// Unit is the recipe-side unit, which may differ from the ingredient's
// pricing unit.
type RecipeLine struct {
	LineID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"line_id"`
	RecipeID     string  `gorm:"type:uuid;not null"                             json:"recipe_id"`
	IngredientID string  `gorm:"type:uuid;not null"                             json:"ingredient_id"`
	Quantity     float64 `gorm:"type:numeric(12,3);not null"                    json:"quantity"`
	Unit         string  `gorm:"type:varchar(20);not null"                      json:"unit"`
	Position     int     `gorm:"not null;default:0"                             json:"position"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;references:IngredientID" json:"ingredient,omitempty"`
}

// TableName sets the table name.
func (RecipeLine) TableName() string { return "recipe_lines" }
