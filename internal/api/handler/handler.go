package handler

import "chefos/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	Team       *TeamHandler
	Ingredient *IngredientHandler
	Recipe     *RecipeHandler
	Inventory  *InventoryHandler
	PrepList   *PrepListHandler
	FoodSafety *FoodSafetyHandler
	Vendor     *VendorHandler
	Invoice    *InvoiceHandler
	Menu       *MenuHandler
	Export     *ExportHandler
}

// NewHandler wires handlers to their services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Team:       NewTeamHandler(svc.Team),
		Ingredient: NewIngredientHandler(svc.Ingredient),
		Recipe:     NewRecipeHandler(svc.Recipe),
		Inventory:  NewInventoryHandler(svc.Inventory),
		PrepList:   NewPrepListHandler(svc.PrepList),
		FoodSafety: NewFoodSafetyHandler(svc.FoodSafety, svc.Duty),
		Vendor:     NewVendorHandler(svc.Vendor),
		Invoice:    NewInvoiceHandler(svc.Invoice),
		Menu:       NewMenuHandler(svc.Menu),
		Export:     NewExportHandler(svc.Export),
	}
}
