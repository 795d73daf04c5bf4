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
)

// ── inventory business errors ──

var (
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrNegativeStock         = errors.New("adjustment would take stock below zero")
)

// InventoryService tracks stock on hand and its movements.
type InventoryService interface {
	UpsertItem(ctx context.Context, orgID string, req *dto.UpsertInventoryItemRequest) (*dto.InventoryItemResponse, error)
	GetItem(ctx context.Context, orgID, itemID string) (*dto.InventoryItemResponse, error)
	ListItems(ctx context.Context, orgID string) ([]dto.InventoryItemResponse, error)
	ListBelowPar(ctx context.Context, orgID string) ([]dto.InventoryItemResponse, error)
	Adjust(ctx context.Context, orgID, itemID, userID string, req *dto.AdjustInventoryRequest) (*dto.InventoryItemResponse, error)
	ListAdjustments(ctx context.Context, orgID, itemID string, limit int) ([]dto.AdjustmentResponse, error)
}

type inventoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInventoryService creates an InventoryService.
func NewInventoryService(repo *repository.Repository, logger *zap.Logger) InventoryService {
	return &inventoryService{repo: repo, logger: logger}
}

func (s *inventoryService) UpsertItem(ctx context.Context, orgID string, req *dto.UpsertInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	ing, err := s.repo.Ingredient.GetByID(ctx, orgID, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}

	item := &model.InventoryItem{
		OrgID:        orgID,
		IngredientID: req.IngredientID,
		Unit:         req.Unit,
	}
	if item.Unit == "" {
		item.Unit = ing.Unit
	}
	if req.OnHand != nil {
		item.OnHand = *req.OnHand
	}
	if req.ParLevel != nil {
		item.ParLevel = *req.ParLevel
	}

	if err := s.repo.Inventory.Upsert(ctx, item); err != nil {
		s.logger.Error("upsert inventory item failed", zap.Error(err))
		return nil, err
	}

	// Re-read to pick up the canonical row (upsert may have hit an
	// existing record with a different item_id and version).
	stored, err := s.repo.Inventory.GetByIngredient(ctx, orgID, req.IngredientID)
	if err != nil {
		return nil, err
	}
	return toInventoryItemResponse(stored), nil
}

func (s *inventoryService) GetItem(ctx context.Context, orgID, itemID string) (*dto.InventoryItemResponse, error) {
	item, err := s.getOrgItem(ctx, orgID, itemID)
	if err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

func (s *inventoryService) ListItems(ctx context.Context, orgID string) ([]dto.InventoryItemResponse, error) {
	items, err := s.repo.Inventory.List(ctx, orgID)
	if err != nil {
		s.logger.Error("list inventory failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.InventoryItemResponse, 0, len(items))
	for i := range items {
		result = append(result, *toInventoryItemResponse(&items[i]))
	}
	return result, nil
}

// ListBelowPar returns only the items whose stock has fallen below their
// par level, for reorder screens.
func (s *inventoryService) ListBelowPar(ctx context.Context, orgID string) ([]dto.InventoryItemResponse, error) {
	items, err := s.ListItems(ctx, orgID)
	if err != nil {
		return nil, err
	}

	low := make([]dto.InventoryItemResponse, 0)
	for _, item := range items {
		if item.BelowPar {
			low = append(low, item)
		}
	}
	return low, nil
}

// Adjust applies a stock movement under optimistic locking: the write is
// rejected when the item changed since the caller last read it.
func (s *inventoryService) Adjust(ctx context.Context, orgID, itemID, userID string, req *dto.AdjustInventoryRequest) (*dto.InventoryItemResponse, error) {
	item, err := s.getOrgItem(ctx, orgID, itemID)
	if err != nil {
		return nil, err
	}

	newOnHand := item.OnHand + req.Delta
	if newOnHand < 0 {
		return nil, ErrNegativeStock
	}

	item.OnHand = newOnHand
	item.Version = req.Version
	if err := s.repo.Inventory.UpdateVersioned(ctx, item); err != nil {
		return nil, err
	}

	adj := &model.InventoryAdjustment{
		ItemID:     item.ItemID,
		Delta:      req.Delta,
		Reason:     req.Reason,
		Note:       req.Note,
		AdjustedBy: userID,
	}
	if err := s.repo.Inventory.RecordAdjustment(ctx, adj); err != nil {
		s.logger.Error("record adjustment failed", zap.Error(err))
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

func (s *inventoryService) ListAdjustments(ctx context.Context, orgID, itemID string, limit int) ([]dto.AdjustmentResponse, error) {
	if _, err := s.getOrgItem(ctx, orgID, itemID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	adjustments, err := s.repo.Inventory.ListAdjustments(ctx, itemID, limit)
	if err != nil {
		s.logger.Error("list adjustments failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AdjustmentResponse, 0, len(adjustments))
	for i := range adjustments {
		adj := &adjustments[i]
		result = append(result, dto.AdjustmentResponse{
			ID:        adj.AdjustmentID,
			Delta:     adj.Delta,
			Reason:    adj.Reason,
			Note:      adj.Note,
			CreatedAt: adj.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

func (s *inventoryService) getOrgItem(ctx context.Context, orgID, itemID string) (*model.InventoryItem, error) {
	item, err := s.repo.Inventory.GetByID(ctx, orgID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryItemNotFound
		}
		s.logger.Error("lookup inventory item failed", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func toInventoryItemResponse(item *model.InventoryItem) *dto.InventoryItemResponse {
	resp := &dto.InventoryItemResponse{
		ID:           item.ItemID,
		IngredientID: item.IngredientID,
		OnHand:       item.OnHand,
		ParLevel:     item.ParLevel,
		Unit:         item.Unit,
		BelowPar:     item.ParLevel > 0 && item.OnHand < item.ParLevel,
		Version:      item.Version,
		UpdatedAt:    item.UpdatedAt.Format(time.RFC3339),
	}
	if item.Ingredient != nil {
		resp.IngredientName = item.Ingredient.Name
	}
	return resp
}
