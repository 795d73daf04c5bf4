package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"chefos/backend/internal/dto"
)

func setupTestIngredientService() (IngredientService, *testRepos) {
	repos := newTestRepos()
	svc := NewIngredientService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestCreateIngredient_InfersCategoryAndUnit(t *testing.T) {
	svc, _ := setupTestIngredientService()

	resp, err := svc.CreateIngredient(context.Background(), "org-1", &dto.CreateIngredientRequest{
		Name: "Chicken Breast",
	})
	if err != nil {
		t.Fatalf("CreateIngredient: %v", err)
	}
	if resp.Category != "Protein" {
		t.Errorf("expected inferred category Protein, got %s", resp.Category)
	}
	if resp.Unit != "g" {
		t.Errorf("expected inferred unit g, got %s", resp.Unit)
	}
}

func TestCreateIngredient_ExplicitFieldsWin(t *testing.T) {
	svc, _ := setupTestIngredientService()
	cost := 3.2

	resp, err := svc.CreateIngredient(context.Background(), "org-1", &dto.CreateIngredientRequest{
		Name: "Chicken Stock", Category: "Pantry", Unit: "l", CostPerUnit: &cost,
	})
	if err != nil {
		t.Fatalf("CreateIngredient: %v", err)
	}
	if resp.Category != "Pantry" || resp.Unit != "l" {
		t.Errorf("explicit category/unit must win, got %s/%s", resp.Category, resp.Unit)
	}
	if resp.CostPerUnit != 3.2 {
		t.Errorf("expected cost 3.2, got %v", resp.CostPerUnit)
	}
}

func TestMatchIngredients(t *testing.T) {
	svc, repos := setupTestIngredientService()
	seedCatalog(repos)
	ctx := context.Background()

	matches, err := svc.MatchIngredients(ctx, "org-1", &dto.MatchIngredientsRequest{
		Term: "plain flour",
	})
	if err != nil {
		t.Fatalf("MatchIngredients: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("expected at least one match for plain flour")
	}
	if matches[0].Name != "Flour" {
		t.Errorf("best match should be Flour, got %s", matches[0].Name)
	}
	if matches[0].MatchType == "" {
		t.Error("match type must be labeled")
	}
}

func TestMatchIngredients_RespectsLimit(t *testing.T) {
	svc, repos := setupTestIngredientService()
	seedCatalog(repos)

	matches, err := svc.MatchIngredients(context.Background(), "org-1", &dto.MatchIngredientsRequest{
		Term: "m", Threshold: 0.01, Limit: 1,
	})
	if err != nil {
		t.Fatalf("MatchIngredients: %v", err)
	}
	if len(matches) > 1 {
		t.Errorf("limit 1 must cap results, got %d", len(matches))
	}
}

func TestUpdateIngredient_PartialFields(t *testing.T) {
	svc, repos := setupTestIngredientService()
	seedCatalog(repos)
	newCost := 2.5

	resp, err := svc.UpdateIngredient(context.Background(), "org-1", "ing-flour", &dto.UpdateIngredientRequest{
		CostPerUnit: &newCost,
	})
	if err != nil {
		t.Fatalf("UpdateIngredient: %v", err)
	}
	if resp.CostPerUnit != 2.5 {
		t.Errorf("expected updated cost 2.5, got %v", resp.CostPerUnit)
	}
	if resp.Name != "Flour" {
		t.Errorf("untouched fields must survive, got name %q", resp.Name)
	}
}

func TestDeleteIngredient_OrgScoped(t *testing.T) {
	svc, repos := setupTestIngredientService()
	seedCatalog(repos)
	ctx := context.Background()

	if err := svc.DeleteIngredient(ctx, "org-other", "ing-flour"); !errors.Is(err, ErrIngredientNotFound) {
		t.Fatalf("cross-org delete must fail, got %v", err)
	}
	if err := svc.DeleteIngredient(ctx, "org-1", "ing-flour"); err != nil {
		t.Fatalf("DeleteIngredient: %v", err)
	}
	if _, err := svc.GetIngredient(ctx, "org-1", "ing-flour"); !errors.Is(err, ErrIngredientNotFound) {
		t.Fatalf("deleted ingredient must be gone, got %v", err)
	}
}
