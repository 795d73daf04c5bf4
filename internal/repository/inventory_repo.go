package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chefos/backend/internal/model"
	pkgerrors "chefos/backend/pkg/errors"
)

// InventoryRepository is the inventory data-access interface.
// UpdateVersioned applies optimistic locking: the write only lands when the
// row still carries the caller's version, otherwise ErrOptimisticLock.
type InventoryRepository interface {
	Upsert(ctx context.Context, item *model.InventoryItem) error
	GetByID(ctx context.Context, orgID, itemID string) (*model.InventoryItem, error)
	GetByIngredient(ctx context.Context, orgID, ingredientID string) (*model.InventoryItem, error)
	List(ctx context.Context, orgID string) ([]model.InventoryItem, error)
	UpdateVersioned(ctx context.Context, item *model.InventoryItem) error
	RecordAdjustment(ctx context.Context, adj *model.InventoryAdjustment) error
	ListAdjustments(ctx context.Context, itemID string, limit int) ([]model.InventoryAdjustment, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Upsert(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "org_id"}, {Name: "ingredient_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"on_hand":    item.OnHand,
				"par_level":  item.ParLevel,
				"unit":       item.Unit,
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(item).Error
}

func (r *inventoryRepo) GetByID(ctx context.Context, orgID, itemID string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("org_id = ? AND item_id = ?", orgID, itemID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) GetByIngredient(ctx context.Context, orgID, ingredientID string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("org_id = ? AND ingredient_id = ?", orgID, ingredientID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) List(ctx context.Context, orgID string) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("org_id = ?", orgID).
		Find(&items).Error
	return items, err
}

func (r *inventoryRepo) UpdateVersioned(ctx context.Context, item *model.InventoryItem) error {
	oldVersion := item.Version
	item.Version = oldVersion + 1
	result := r.db.WithContext(ctx).
		Model(item).
		Where("item_id = ? AND version = ?", item.ItemID, oldVersion).
		Updates(map[string]interface{}{
			"on_hand":    item.OnHand,
			"par_level":  item.ParLevel,
			"unit":       item.Unit,
			"version":    item.Version,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		item.Version = oldVersion
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *inventoryRepo) RecordAdjustment(ctx context.Context, adj *model.InventoryAdjustment) error {
	return r.db.WithContext(ctx).Create(adj).Error
}

func (r *inventoryRepo) ListAdjustments(ctx context.Context, itemID string, limit int) ([]model.InventoryAdjustment, error) {
	var adjustments []model.InventoryAdjustment
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Limit(limit).
		Find(&adjustments).Error
	return adjustments, err
}
