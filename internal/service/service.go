package service

import (
	"go.uber.org/zap"

	"chefos/backend/config"
	"chefos/backend/internal/repository"
	"chefos/backend/pkg/jwt"
	"chefos/backend/pkg/redis"
)

// Service aggregates all business-logic services.
type Service struct {
	Auth       AuthService
	Team       TeamService
	Ingredient IngredientService
	Recipe     RecipeService
	Inventory  InventoryService
	PrepList   PrepListService
	FoodSafety FoodSafetyService
	Duty       DutyService
	Vendor     VendorService
	Invoice    InvoiceService
	Menu       MenuService
	Export     ExportService
}

// NewService wires all service implementations.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	recipeSvc := NewRecipeService(repo, logger)
	dutySvc := NewDutyService(repo, logger)
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Team:       NewTeamService(repo, logger),
		Ingredient: NewIngredientService(repo, logger),
		Recipe:     recipeSvc,
		Inventory:  NewInventoryService(repo, logger),
		PrepList:   NewPrepListService(repo, logger),
		FoodSafety: NewFoodSafetyService(repo, logger),
		Duty:       dutySvc,
		Vendor:     NewVendorService(repo, logger),
		Invoice:    NewInvoiceService(repo, logger),
		Menu:       NewMenuService(repo, recipeSvc, logger),
		Export:     NewExportService(repo, dutySvc, logger),
	}
}
