package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/model"
	"chefos/backend/internal/repository"
)

// ── menu business errors ──

var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuService manages menu items and the menu-engineering report.
type MenuService interface {
	CreateMenuItem(ctx context.Context, orgID string, req *dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error)
	ListMenuItems(ctx context.Context, orgID string, activeOnly bool) ([]dto.MenuItemResponse, error)
	UpdateMenuItem(ctx context.Context, orgID, id string, req *dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error)
	DeleteMenuItem(ctx context.Context, orgID, id string) error
	EngineeringReport(ctx context.Context, orgID string) (*dto.MenuEngineeringResponse, error)
}

type menuService struct {
	repo      *repository.Repository
	recipeSvc RecipeService
	logger    *zap.Logger
}

// NewMenuService creates a MenuService. Recipe costing is delegated so
// the report and the recipe cost endpoint can never disagree.
func NewMenuService(repo *repository.Repository, recipeSvc RecipeService, logger *zap.Logger) MenuService {
	return &menuService{repo: repo, recipeSvc: recipeSvc, logger: logger}
}

func (s *menuService) CreateMenuItem(ctx context.Context, orgID string, req *dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if _, err := s.repo.Recipe.GetByID(ctx, orgID, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	item := &model.MenuItem{
		OrgID:     orgID,
		RecipeID:  req.RecipeID,
		Name:      req.Name,
		SellPrice: req.SellPrice,
		Active:    true,
	}
	if err := s.repo.MenuItem.Create(ctx, item); err != nil {
		s.logger.Error("create menu item failed", zap.Error(err))
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

func (s *menuService) ListMenuItems(ctx context.Context, orgID string, activeOnly bool) ([]dto.MenuItemResponse, error) {
	items, err := s.repo.MenuItem.List(ctx, orgID, activeOnly)
	if err != nil {
		s.logger.Error("list menu items failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		result = append(result, *toMenuItemResponse(&items[i]))
	}
	return result, nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, orgID, id string, req *dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := s.getOrgMenuItem(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.SellPrice != nil {
		item.SellPrice = *req.SellPrice
	}
	if req.UnitsSold != nil {
		item.UnitsSold = *req.UnitsSold
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := s.repo.MenuItem.Update(ctx, item); err != nil {
		s.logger.Error("update menu item failed", zap.Error(err))
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, orgID, id string) error {
	if _, err := s.getOrgMenuItem(ctx, orgID, id); err != nil {
		return err
	}
	return s.repo.MenuItem.Delete(ctx, orgID, id)
}

// EngineeringReport classifies every active menu item against the menu's
// mean contribution margin and mean popularity share: stars beat both
// means, plowhorses are popular but thin, puzzles are profitable but
// slow, dogs are neither.
func (s *menuService) EngineeringReport(ctx context.Context, orgID string) (*dto.MenuEngineeringResponse, error) {
	items, err := s.repo.MenuItem.List(ctx, orgID, true)
	if err != nil {
		s.logger.Error("load menu for report failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.MenuEngineeringResponse{
		Items: make([]dto.MenuEngineeringItem, 0, len(items)),
	}
	if len(items) == 0 {
		return resp, nil
	}

	totalUnits := 0
	for i := range items {
		totalUnits += items[i].UnitsSold
	}
	resp.TotalUnitsSold = totalUnits

	marginSum := 0.0
	for i := range items {
		item := &items[i]

		cost, err := s.recipeSvc.CostRecipe(ctx, orgID, item.RecipeID)
		if err != nil {
			if errors.Is(err, ErrRecipeNotFound) {
				continue
			}
			return nil, err
		}

		portionCost := cost.CostPerYield
		margin := item.SellPrice - portionCost

		ei := dto.MenuEngineeringItem{
			MenuItemID:     item.MenuItemID,
			Name:           item.Name,
			SellPrice:      item.SellPrice,
			PortionCost:    portionCost,
			Margin:         margin,
			UnitsSold:      item.UnitsSold,
			CostIncomplete: cost.Incomplete,
		}
		if item.SellPrice > 0 {
			ei.FoodCostPct = portionCost / item.SellPrice * 100
		}
		if totalUnits > 0 {
			ei.PopularityPct = float64(item.UnitsSold) / float64(totalUnits) * 100
		}

		marginSum += margin
		resp.Items = append(resp.Items, ei)
	}

	if len(resp.Items) == 0 {
		return resp, nil
	}
	resp.MeanMargin = marginSum / float64(len(resp.Items))
	resp.MeanPopularityPct = 100 / float64(len(resp.Items))

	for i := range resp.Items {
		ei := &resp.Items[i]
		profitable := ei.Margin >= resp.MeanMargin
		popular := ei.PopularityPct >= resp.MeanPopularityPct
		switch {
		case profitable && popular:
			ei.Classification = "star"
		case popular:
			ei.Classification = "plowhorse"
		case profitable:
			ei.Classification = "puzzle"
		default:
			ei.Classification = "dog"
		}
	}
	return resp, nil
}

func (s *menuService) getOrgMenuItem(ctx context.Context, orgID, id string) (*model.MenuItem, error) {
	item, err := s.repo.MenuItem.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		s.logger.Error("lookup menu item failed", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func toMenuItemResponse(item *model.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:        item.MenuItemID,
		RecipeID:  item.RecipeID,
		Name:      item.Name,
		SellPrice: item.SellPrice,
		UnitsSold: item.UnitsSold,
		Active:    item.Active,
	}
}
