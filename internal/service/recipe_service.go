package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/model"
	"chefos/backend/internal/repository"
	"chefos/backend/internal/units"
)

// ── recipe business errors ──

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService manages recipes and their costing.
type RecipeService interface {
	CreateRecipe(ctx context.Context, orgID string, req *dto.CreateRecipeRequest) (*dto.RecipeResponse, error)
	GetRecipe(ctx context.Context, orgID, id string) (*dto.RecipeResponse, error)
	ListRecipes(ctx context.Context, orgID string) ([]dto.RecipeResponse, error)
	UpdateRecipe(ctx context.Context, orgID, id string, req *dto.UpdateRecipeRequest) (*dto.RecipeResponse, error)
	DeleteRecipe(ctx context.Context, orgID, id string) error
	CostRecipe(ctx context.Context, orgID, id string) (*dto.RecipeCostResponse, error)
}

type recipeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRecipeService creates a RecipeService.
func NewRecipeService(repo *repository.Repository, logger *zap.Logger) RecipeService {
	return &recipeService{repo: repo, logger: logger}
}

func (s *recipeService) CreateRecipe(ctx context.Context, orgID string, req *dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	recipe := &model.Recipe{
		OrgID:       orgID,
		Name:        req.Name,
		Description: req.Description,
		YieldQty:    req.YieldQty,
		YieldUnit:   req.YieldUnit,
		Method:      req.Method,
	}
	if recipe.YieldQty == 0 {
		recipe.YieldQty = 1
	}
	if recipe.YieldUnit == "" {
		recipe.YieldUnit = "each"
	}

	lines := buildRecipeLines(req.Lines)
	if err := s.repo.Recipe.Create(ctx, recipe, lines); err != nil {
		s.logger.Error("create recipe failed", zap.Error(err))
		return nil, err
	}
	return s.GetRecipe(ctx, orgID, recipe.RecipeID)
}

func (s *recipeService) GetRecipe(ctx context.Context, orgID, id string) (*dto.RecipeResponse, error) {
	recipe, err := s.getOrgRecipe(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) ListRecipes(ctx context.Context, orgID string) ([]dto.RecipeResponse, error) {
	recipes, err := s.repo.Recipe.List(ctx, orgID)
	if err != nil {
		s.logger.Error("list recipes failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		result = append(result, *toRecipeResponse(&recipes[i]))
	}
	return result, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, orgID, id string, req *dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	recipe, err := s.getOrgRecipe(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Description != nil {
		recipe.Description = req.Description
	}
	if req.YieldQty != nil {
		recipe.YieldQty = *req.YieldQty
	}
	if req.YieldUnit != nil {
		recipe.YieldUnit = *req.YieldUnit
	}
	if req.Method != nil {
		recipe.Method = req.Method
	}

	// Save only the recipe row; the preloaded associations stay untouched.
	recipe.Lines = nil
	if err := s.repo.Recipe.Update(ctx, recipe); err != nil {
		s.logger.Error("update recipe failed", zap.Error(err))
		return nil, err
	}

	if req.Lines != nil {
		if err := s.repo.Recipe.ReplaceLines(ctx, recipe.RecipeID, buildRecipeLines(*req.Lines)); err != nil {
			s.logger.Error("replace recipe lines failed", zap.Error(err))
			return nil, err
		}
	}
	return s.GetRecipe(ctx, orgID, id)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, orgID, id string) error {
	if _, err := s.getOrgRecipe(ctx, orgID, id); err != nil {
		return err
	}
	return s.repo.Recipe.Delete(ctx, orgID, id)
}

// CostRecipe prices every line of a recipe against its ingredient's
// per-unit cost, converting units where the families allow it. A line
// whose unit cannot be converted is reported with a nil cost and an
// explanation instead of silently multiplying mismatched units.
func (s *recipeService) CostRecipe(ctx context.Context, orgID, id string) (*dto.RecipeCostResponse, error) {
	recipe, err := s.getOrgRecipe(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.RecipeCostResponse{
		RecipeID: recipe.RecipeID,
		Lines:    make([]dto.LineCostResponse, 0, len(recipe.Lines)),
	}

	for i := range recipe.Lines {
		line := &recipe.Lines[i]
		lc := dto.LineCostResponse{
			LineID:   line.LineID,
			Quantity: line.Quantity,
			Unit:     line.Unit,
		}
		if line.Ingredient == nil {
			lc.Error = "ingredient no longer exists"
			resp.Incomplete = true
			resp.Lines = append(resp.Lines, lc)
			continue
		}
		lc.IngredientName = line.Ingredient.Name

		cost, err := units.IngredientCost(line.Quantity, line.Unit, line.Ingredient.CostPerUnit, line.Ingredient.Unit)
		if err != nil {
			var incompat *units.IncompatibleUnitsError
			if errors.As(err, &incompat) {
				lc.Error = incompat.Error()
				resp.Incomplete = true
				resp.Lines = append(resp.Lines, lc)
				continue
			}
			return nil, err
		}

		lc.Cost = &cost
		if converted, cerr := units.Convert(line.Quantity, line.Unit, line.Ingredient.Unit); cerr == nil {
			lc.Conversion = units.ConversionExplanation(line.Quantity, line.Unit, converted, line.Ingredient.Unit)
		}
		resp.TotalCost += cost
		resp.Lines = append(resp.Lines, lc)
	}

	if recipe.YieldQty > 0 {
		resp.CostPerYield = resp.TotalCost / recipe.YieldQty
	}
	return resp, nil
}

func (s *recipeService) getOrgRecipe(ctx context.Context, orgID, id string) (*model.Recipe, error) {
	recipe, err := s.repo.Recipe.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		s.logger.Error("lookup recipe failed", zap.Error(err))
		return nil, err
	}
	return recipe, nil
}

func buildRecipeLines(reqs []dto.RecipeLineRequest) []model.RecipeLine {
	lines := make([]model.RecipeLine, 0, len(reqs))
	for i, lr := range reqs {
		lines = append(lines, model.RecipeLine{
			IngredientID: lr.IngredientID,
			Quantity:     lr.Quantity,
			Unit:         lr.Unit,
			Position:     i,
		})
	}
	return lines
}

func toRecipeResponse(recipe *model.Recipe) *dto.RecipeResponse {
	resp := &dto.RecipeResponse{
		ID:          recipe.RecipeID,
		Name:        recipe.Name,
		Description: recipe.Description,
		YieldQty:    recipe.YieldQty,
		YieldUnit:   recipe.YieldUnit,
		Method:      recipe.Method,
		Lines:       make([]dto.RecipeLineResponse, 0, len(recipe.Lines)),
		CreatedAt:   recipe.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   recipe.UpdatedAt.Format(time.RFC3339),
	}
	for i := range recipe.Lines {
		line := &recipe.Lines[i]
		lr := dto.RecipeLineResponse{
			ID:           line.LineID,
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
			Position:     line.Position,
		}
		if line.Ingredient != nil {
			lr.IngredientName = line.Ingredient.Name
		}
		resp.Lines = append(resp.Lines, lr)
	}
	return resp
}
