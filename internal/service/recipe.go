package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lezzetli-tarifler/backend/internal/models"
	"github.com/lezzetli-tarifler/backend/internal/types"
)

// RecipeService handles public recipe listings
type RecipeService struct {
	db     *gorm.DB
	images *ImageService
}

var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, images *ImageService) *RecipeService {
	return &RecipeService{
		db:     db,
		images: images,
	}
}

// ListRecipes lists all recipes, or only those in categoryID when it is not nil
func (s *RecipeService) ListRecipes(ctx context.Context, categoryID *uuid.UUID) ([]types.RecipeResponse, error) {
	query := s.withAssociations(ctx)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var recipes []models.Recipe
	if err := query.Order("views DESC").Order("title").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return s.toResponses(ctx, recipes)
}

// TopRecipes returns the limit most viewed recipes
func (s *RecipeService) TopRecipes(ctx context.Context, limit int) ([]types.RecipeResponse, error) {
	var recipes []models.Recipe
	err := s.withAssociations(ctx).
		Order("views DESC").
		Order("title").
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list top recipes: %w", err)
	}
	return s.toResponses(ctx, recipes)
}

// SearchRecipes matches term case-insensitively against title, ingredients and instructions.
// Both sides are lowered by the database so they share its case mapping.
func (s *RecipeService) SearchRecipes(ctx context.Context, term string) ([]types.RecipeResponse, error) {
	pattern := "%" + term + "%"

	var recipes []models.Recipe
	err := s.withAssociations(ctx).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(ingredients) LIKE LOWER(?) OR LOWER(instructions) LIKE LOWER(?)", pattern, pattern, pattern).
		Order("views DESC").
		Order("title").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	return s.toResponses(ctx, recipes)
}

func (s *RecipeService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *RecipeService) withAssociations(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("User", selectAuthor).
		Preload("RecipeImages")
}

func (s *RecipeService) toResponses(ctx context.Context, recipes []models.Recipe) ([]types.RecipeResponse, error) {
	result := make([]types.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		if err := s.images.SignRecipeImages(ctx, recipes[i].RecipeImages); err != nil {
			return nil, err
		}
		result = append(result, types.NewRecipeResponse(&recipes[i]))
	}
	return result, nil
}
