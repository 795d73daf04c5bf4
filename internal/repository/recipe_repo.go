package repository

import (
	"context"

	"gorm.io/gorm"

	"chefos/backend/internal/model"
)

// RecipeRepository is the recipes data-access interface. Line replacement
// runs inside a transaction so a recipe never exists half-written.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe, lines []model.RecipeLine) error
	GetByID(ctx context.Context, orgID, id string) (*model.Recipe, error)
	List(ctx context.Context, orgID string) ([]model.Recipe, error)
	Update(ctx context.Context, recipe *model.Recipe) error
	ReplaceLines(ctx context.Context, recipeID string, lines []model.RecipeLine) error
	Delete(ctx context.Context, orgID, id string) error
}

type recipeRepo struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) Create(ctx context.Context, recipe *model.Recipe, lines []model.RecipeLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].RecipeID = recipe.RecipeID
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepo) GetByID(ctx context.Context, orgID, id string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Lines.Ingredient").
		Where("org_id = ? AND recipe_id = ?", orgID, id).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepo) List(ctx context.Context, orgID string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("name ASC").
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) Update(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepo) ReplaceLines(ctx context.Context, recipeID string, lines []model.RecipeLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeLine{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].RecipeID = recipeID
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepo) Delete(ctx context.Context, orgID, id string) error {
	return r.db.WithContext(ctx).
		Where("org_id = ? AND recipe_id = ?", orgID, id).
		Delete(&model.Recipe{}).Error
}
