package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/model"
)

func setupTestRecipeService() (RecipeService, *testRepos) {
	repos := newTestRepos()
	svc := NewRecipeService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func seedCatalog(repos *testRepos) {
	repos.ingredient.ingredients["ing-flour"] = &model.Ingredient{
		IngredientID: "ing-flour", OrgID: "org-1", Name: "Flour",
		Category: "Pantry", Unit: "kg", CostPerUnit: 2.0,
	}
	repos.ingredient.ingredients["ing-milk"] = &model.Ingredient{
		IngredientID: "ing-milk", OrgID: "org-1", Name: "Milk",
		Category: "Dairy", Unit: "l", CostPerUnit: 1.5,
	}
	repos.ingredient.ingredients["ing-egg"] = &model.Ingredient{
		IngredientID: "ing-egg", OrgID: "org-1", Name: "Egg",
		Category: "Protein", Unit: "each", CostPerUnit: 0.4,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCreateRecipe_WithLines(t *testing.T) {
	svc, repos := setupTestRecipeService()
	seedCatalog(repos)

	resp, err := svc.CreateRecipe(context.Background(), "org-1", &dto.CreateRecipeRequest{
		Name:     "Pancakes",
		YieldQty: 10, YieldUnit: "each",
		Lines: []dto.RecipeLineRequest{
			{IngredientID: "ing-flour", Quantity: 500, Unit: "g"},
			{IngredientID: "ing-milk", Quantity: 300, Unit: "ml"},
		},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}
	if len(resp.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(resp.Lines))
	}
	if resp.Lines[0].Position != 0 || resp.Lines[1].Position != 1 {
		t.Error("line positions must follow request order")
	}
	if resp.Lines[0].IngredientName != "Flour" {
		t.Errorf("expected joined ingredient name Flour, got %q", resp.Lines[0].IngredientName)
	}
}

func TestCostRecipe_ConvertsUnits(t *testing.T) {
	svc, repos := setupTestRecipeService()
	seedCatalog(repos)
	ctx := context.Background()

	// 500 g of flour priced at $2/kg = $1; 4 eggs at $0.40 = $1.60
	created, err := svc.CreateRecipe(ctx, "org-1", &dto.CreateRecipeRequest{
		Name:     "Dough",
		YieldQty: 2, YieldUnit: "each",
		Lines: []dto.RecipeLineRequest{
			{IngredientID: "ing-flour", Quantity: 500, Unit: "g"},
			{IngredientID: "ing-egg", Quantity: 4, Unit: "each"},
		},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	cost, err := svc.CostRecipe(ctx, "org-1", created.ID)
	if err != nil {
		t.Fatalf("CostRecipe: %v", err)
	}
	if cost.Incomplete {
		t.Error("all lines are costable, Incomplete must be false")
	}
	if !almostEqual(cost.TotalCost, 2.6) {
		t.Errorf("expected total 2.60, got %v", cost.TotalCost)
	}
	if !almostEqual(cost.CostPerYield, 1.3) {
		t.Errorf("expected 1.30 per yield, got %v", cost.CostPerYield)
	}

	flourLine := cost.Lines[0]
	if flourLine.Cost == nil || !almostEqual(*flourLine.Cost, 1.0) {
		t.Fatalf("expected flour line cost 1.00, got %v", flourLine.Cost)
	}
	if flourLine.Conversion == "" {
		t.Error("converted line must carry a conversion explanation")
	}

	eggLine := cost.Lines[1]
	if eggLine.Conversion != "" {
		t.Errorf("same-unit line must not explain a conversion, got %q", eggLine.Conversion)
	}
}

func TestCostRecipe_IncompatibleLineReported(t *testing.T) {
	svc, repos := setupTestRecipeService()
	seedCatalog(repos)
	ctx := context.Background()

	// Milk is priced per litre; a count unit cannot convert to volume.
	created, err := svc.CreateRecipe(ctx, "org-1", &dto.CreateRecipeRequest{
		Name: "Odd",
		Lines: []dto.RecipeLineRequest{
			{IngredientID: "ing-milk", Quantity: 2, Unit: "each"},
			{IngredientID: "ing-flour", Quantity: 1, Unit: "kg"},
		},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	cost, err := svc.CostRecipe(ctx, "org-1", created.ID)
	if err != nil {
		t.Fatalf("CostRecipe: %v", err)
	}
	if !cost.Incomplete {
		t.Fatal("expected Incomplete=true with an uncostable line")
	}

	bad := cost.Lines[0]
	if bad.Cost != nil {
		t.Errorf("incompatible line must have nil cost, got %v", *bad.Cost)
	}
	if bad.Error == "" {
		t.Error("incompatible line must carry an error message")
	}

	// The total still includes the costable lines: 1 kg flour at $2/kg.
	if !almostEqual(cost.TotalCost, 2.0) {
		t.Errorf("expected total 2.00 from the good line, got %v", cost.TotalCost)
	}
}

func TestUpdateRecipe_ReplacesLines(t *testing.T) {
	svc, repos := setupTestRecipeService()
	seedCatalog(repos)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, "org-1", &dto.CreateRecipeRequest{
		Name: "Base",
		Lines: []dto.RecipeLineRequest{
			{IngredientID: "ing-flour", Quantity: 1, Unit: "kg"},
		},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	newLines := []dto.RecipeLineRequest{
		{IngredientID: "ing-milk", Quantity: 500, Unit: "ml"},
		{IngredientID: "ing-egg", Quantity: 2, Unit: "each"},
	}
	updated, err := svc.UpdateRecipe(ctx, "org-1", created.ID, &dto.UpdateRecipeRequest{Lines: &newLines})
	if err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}
	if len(updated.Lines) != 2 {
		t.Fatalf("expected replaced line set of 2, got %d", len(updated.Lines))
	}
	if updated.Lines[0].IngredientID != "ing-milk" {
		t.Errorf("expected first line ing-milk, got %s", updated.Lines[0].IngredientID)
	}
}

func TestGetRecipe_NotFound(t *testing.T) {
	svc, _ := setupTestRecipeService()

	_, err := svc.GetRecipe(context.Background(), "org-1", "missing")
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestGetRecipe_OrgScoped(t *testing.T) {
	svc, repos := setupTestRecipeService()
	seedCatalog(repos)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, "org-1", &dto.CreateRecipeRequest{Name: "Secret"})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	_, err = svc.GetRecipe(ctx, "org-other", created.ID)
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Fatalf("cross-org read must report not found, got %v", err)
	}
}
