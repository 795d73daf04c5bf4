package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/matcher"
	"chefos/backend/internal/model"
	"chefos/backend/internal/repository"
)

// ── ingredient business errors ──

var ErrIngredientNotFound = errors.New("ingredient not found")

// IngredientService manages the costed ingredient catalog.
type IngredientService interface {
	CreateIngredient(ctx context.Context, orgID string, req *dto.CreateIngredientRequest) (*dto.IngredientResponse, error)
	GetIngredient(ctx context.Context, orgID, id string) (*dto.IngredientResponse, error)
	ListIngredients(ctx context.Context, orgID string, req *dto.IngredientListRequest) ([]dto.IngredientResponse, error)
	UpdateIngredient(ctx context.Context, orgID, id string, req *dto.UpdateIngredientRequest) (*dto.IngredientResponse, error)
	DeleteIngredient(ctx context.Context, orgID, id string) error
	MatchIngredients(ctx context.Context, orgID string, req *dto.MatchIngredientsRequest) ([]dto.IngredientMatchResponse, error)
}

type ingredientService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewIngredientService creates an IngredientService.
func NewIngredientService(repo *repository.Repository, logger *zap.Logger) IngredientService {
	return &ingredientService{repo: repo, logger: logger}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, orgID string, req *dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	category := req.Category
	if category == "" {
		category = matcher.InferCategory(req.Name)
	}
	unit := req.Unit
	if unit == "" {
		unit = matcher.InferUnit(req.Name)
	}

	ing := &model.Ingredient{
		OrgID:    orgID,
		Name:     req.Name,
		Category: category,
		Unit:     unit,
	}
	if req.CostPerUnit != nil {
		ing.CostPerUnit = *req.CostPerUnit
	}

	if err := s.repo.Ingredient.Create(ctx, ing); err != nil {
		s.logger.Error("create ingredient failed", zap.Error(err))
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, orgID, id string) (*dto.IngredientResponse, error) {
	ing, err := s.getOrgIngredient(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

func (s *ingredientService) ListIngredients(ctx context.Context, orgID string, req *dto.IngredientListRequest) ([]dto.IngredientResponse, error) {
	ingredients, err := s.repo.Ingredient.List(ctx, orgID, req.Category, req.Search)
	if err != nil {
		s.logger.Error("list ingredients failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		result = append(result, *toIngredientResponse(&ingredients[i]))
	}
	return result, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, orgID, id string, req *dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := s.getOrgIngredient(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		ing.Name = *req.Name
	}
	if req.Category != nil {
		ing.Category = *req.Category
	}
	if req.Unit != nil {
		ing.Unit = *req.Unit
	}
	if req.CostPerUnit != nil {
		ing.CostPerUnit = *req.CostPerUnit
	}

	if err := s.repo.Ingredient.Update(ctx, ing); err != nil {
		s.logger.Error("update ingredient failed", zap.Error(err))
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, orgID, id string) error {
	if _, err := s.getOrgIngredient(ctx, orgID, id); err != nil {
		return err
	}
	return s.repo.Ingredient.Delete(ctx, orgID, id)
}

// MatchIngredients ranks catalog ingredients against a free-text term.
func (s *ingredientService) MatchIngredients(ctx context.Context, orgID string, req *dto.MatchIngredientsRequest) ([]dto.IngredientMatchResponse, error) {
	ingredients, err := s.repo.Ingredient.List(ctx, orgID, "", "")
	if err != nil {
		s.logger.Error("load catalog for matching failed", zap.Error(err))
		return nil, err
	}

	candidates := make([]matcher.Ingredient, 0, len(ingredients))
	for i := range ingredients {
		candidates = append(candidates, matcher.Ingredient{
			ID:   ingredients[i].IngredientID,
			Name: ingredients[i].Name,
		})
	}

	threshold := req.Threshold
	if threshold == 0 {
		threshold = matcher.DefaultThreshold
	}
	matches := matcher.FindSimilar(req.Term, candidates, threshold)
	if req.Limit > 0 && len(matches) > req.Limit {
		matches = matches[:req.Limit]
	}

	result := make([]dto.IngredientMatchResponse, 0, len(matches))
	for _, m := range matches {
		result = append(result, dto.IngredientMatchResponse{
			ID:         m.ID,
			Name:       m.Name,
			Similarity: m.Similarity,
			MatchType:  string(m.MatchType),
		})
	}
	return result, nil
}

func (s *ingredientService) getOrgIngredient(ctx context.Context, orgID, id string) (*model.Ingredient, error) {
	ing, err := s.repo.Ingredient.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		s.logger.Error("lookup ingredient failed", zap.Error(err))
		return nil, err
	}
	return ing, nil
}

func toIngredientResponse(ing *model.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:          ing.IngredientID,
		Name:        ing.Name,
		Category:    ing.Category,
		Unit:        ing.Unit,
		CostPerUnit: ing.CostPerUnit,
		CreatedAt:   ing.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   ing.UpdatedAt.Format(time.RFC3339),
	}
}
