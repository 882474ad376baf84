package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lezzetli-tarifler/backend/internal/logger"
	"github.com/lezzetli-tarifler/backend/internal/models"
	"github.com/lezzetli-tarifler/backend/internal/types"
)

// FavoriteService reads a user's favorited recipes
type FavoriteService struct {
	db     *gorm.DB
	images *ImageService
}

var _ IFavoriteService = (*FavoriteService)(nil)

// NewFavoriteService creates a new FavoriteService instance. images may be nil.
func NewFavoriteService(db *gorm.DB, images *ImageService) *FavoriteService {
	return &FavoriteService{
		db:     db,
		images: images,
	}
}

// GetFavoriteRecipes returns every recipe userID has favorited, each with its author,
// its images and the global favorite and comment counts. Favorites whose recipe no
// longer exists are skipped.
func (s *FavoriteService) GetFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]types.FavoriteRecipe, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.User", selectAuthor).
		Preload("Recipe.RecipeImages").
		Where("user_id = ?", userID).
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	recipeIDs := make([]uuid.UUID, 0, len(favorites))
	for _, fav := range favorites {
		if fav.Recipe != nil {
			recipeIDs = append(recipeIDs, fav.Recipe.ID)
		}
	}

	favoriteCounts, err := countByRecipe(ctx, s.db, &models.Favorite{}, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}
	commentCounts, err := countByRecipe(ctx, s.db, &models.Comment{}, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	result := make([]types.FavoriteRecipe, 0, len(recipeIDs))
	for _, fav := range favorites {
		if fav.Recipe == nil {
			logger.Warn(ctx).
				Str("favorite_id", fav.ID.String()).
				Str("recipe_id", fav.RecipeID.String()).
				Msg("favorite references a missing recipe, skipping")
			continue
		}
		if err := s.images.SignRecipeImages(ctx, fav.Recipe.RecipeImages); err != nil {
			return nil, err
		}

		id := fav.Recipe.ID
		result = append(result, types.FavoriteRecipe{
			RecipeResponse: types.NewRecipeResponse(fav.Recipe),
			IsFavorited:    true,
			FavoriteCount:  favoriteCounts[id],
			CommentCount:   commentCounts[id],
		})
	}

	return result, nil
}

// selectAuthor restricts a preloaded user to its public columns
func selectAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "profile_image")
}

type recipeCount struct {
	RecipeID uuid.UUID
	Count    int64
}

// countByRecipe counts rows of model per recipe in one grouped query.
// Recipes without rows are absent from the map, so lookups yield 0.
func countByRecipe(ctx context.Context, db *gorm.DB, model interface{}, recipeIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return counts, nil
	}

	var rows []recipeCount
	err := db.WithContext(ctx).
		Model(model).
		Select("recipe_id, COUNT(*) AS count").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.RecipeID] = row.Count
	}
	return counts, nil
}
