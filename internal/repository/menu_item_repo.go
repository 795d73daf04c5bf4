package repository

import (
	"context"

	"gorm.io/gorm"

	"chefos/backend/internal/model"
)

// MenuItemRepository is the menu_items data-access interface.
type MenuItemRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	GetByID(ctx context.Context, orgID, id string) (*model.MenuItem, error)
	List(ctx context.Context, orgID string, activeOnly bool) ([]model.MenuItem, error)
	Update(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, orgID, id string) error
}

type menuItemRepo struct {
	db *gorm.DB
}

func NewMenuItemRepo(db *gorm.DB) MenuItemRepository {
	return &menuItemRepo{db: db}
}

func (r *menuItemRepo) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepo) GetByID(ctx context.Context, orgID, id string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND menu_item_id = ?", orgID, id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepo) List(ctx context.Context, orgID string, activeOnly bool) ([]model.MenuItem, error) {
	q := r.db.WithContext(ctx).Where("org_id = ?", orgID)
	if activeOnly {
		q = q.Where("active = TRUE")
	}

	var items []model.MenuItem
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *menuItemRepo) Update(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuItemRepo) Delete(ctx context.Context, orgID, id string) error {
	return r.db.WithContext(ctx).
		Where("org_id = ? AND menu_item_id = ?", orgID, id).
		Delete(&model.MenuItem{}).Error
}
