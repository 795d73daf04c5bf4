package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	Organization   OrganizationRepository
	User           UserRepository
	InviteCode     InviteCodeRepository
	Ingredient     IngredientRepository
	Recipe         RecipeRepository
	Inventory      InventoryRepository
	PrepTask       PrepTaskRepository
	TemperatureLog TemperatureLogRepository
	Duty           DutyRepository
	Vendor         VendorRepository
	Invoice        InvoiceRepository
	MenuItem       MenuItemRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Organization:   NewOrganizationRepo(db),
		User:           NewUserRepo(db),
		InviteCode:     NewInviteCodeRepo(db),
		Ingredient:     NewIngredientRepo(db),
		Recipe:         NewRecipeRepo(db),
		Inventory:      NewInventoryRepo(db),
		PrepTask:       NewPrepTaskRepo(db),
		TemperatureLog: NewTemperatureLogRepo(db),
		Duty:           NewDutyRepo(db),
		Vendor:         NewVendorRepo(db),
		Invoice:        NewInvoiceRepo(db),
		MenuItem:       NewMenuItemRepo(db),
	}
}
