package repository

import (
	"context"

	"gorm.io/gorm"

	"chefos/backend/internal/model"
)

// IngredientRepository is the ingredients data-access interface.
type IngredientRepository interface {
	Create(ctx context.Context, ing *model.Ingredient) error
	GetByID(ctx context.Context, orgID, id string) (*model.Ingredient, error)
	List(ctx context.Context, orgID, category, search string) ([]model.Ingredient, error)
	Update(ctx context.Context, ing *model.Ingredient) error
	Delete(ctx context.Context, orgID, id string) error
}

type ingredientRepo struct {
	db *gorm.DB
}

func NewIngredientRepo(db *gorm.DB) IngredientRepository {
	return &ingredientRepo{db: db}
}

func (r *ingredientRepo) Create(ctx context.Context, ing *model.Ingredient) error {
	return r.db.WithContext(ctx).Create(ing).Error
}

func (r *ingredientRepo) GetByID(ctx context.Context, orgID, id string) (*model.Ingredient, error) {
	var ing model.Ingredient
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND ingredient_id = ?", orgID, id).
		First(&ing).Error
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *ingredientRepo) List(ctx context.Context, orgID, category, search string) ([]model.Ingredient, error) {
	q := r.db.WithContext(ctx).Where("org_id = ?", orgID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var ingredients []model.Ingredient
	err := q.Order("name ASC").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepo) Update(ctx context.Context, ing *model.Ingredient) error {
	return r.db.WithContext(ctx).Save(ing).Error
}

func (r *ingredientRepo) Delete(ctx context.Context, orgID, id string) error {
	return r.db.WithContext(ctx).
		Where("org_id = ? AND ingredient_id = ?", orgID, id).
		Delete(&model.Ingredient{}).Error
}
