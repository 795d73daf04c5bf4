package model

// MenuItem sells a recipe at a price, stored in menu_items. UnitsSold is
// the popularity input for menu engineering.
type MenuItem struct {
	MenuItemID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"menu_item_id"`
	OrgID      string  `gorm:"type:uuid;not null"                             json:"org_id"`
	RecipeID   string  `gorm:"type:uuid;not null"                             json:"recipe_id"`
	Name       string  `gorm:"type:varchar(200);not null"                     json:"name"`
	SellPrice  float64 `gorm:"type:numeric(12,2);not null"                    json:"sell_price"`
	UnitsSold  int     `gorm:"not null;default:0"                             json:"units_sold"`
	Active     bool    `gorm:"not null;default:true"                          json:"active"`
	BaseModel

	Recipe *Recipe `gorm:"foreignKey:RecipeID;references:RecipeID" json:"recipe,omitempty"`
}

// TableName sets the table name.
func (MenuItem) TableName() string { return "menu_items" }
