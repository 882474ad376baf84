package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/lezzetli-tarifler/backend/internal/models"
)

// RecipeAuthor is the public subset of a user embedded in recipe responses
type RecipeAuthor struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	ProfileImage *string   `json:"profileImage"`
}

// NewRecipeAuthor returns nil when the author was not loaded
func NewRecipeAuthor(u *models.User) *RecipeAuthor {
	if u == nil {
		return nil
	}
	return &RecipeAuthor{
		ID:           u.ID,
		Username:     u.Username,
		ProfileImage: u.ProfileImage,
	}
}

// RecipeResponse is a recipe as returned by the listing endpoints
type RecipeResponse struct {
	ID                  uuid.UUID            `json:"id"`
	Title               string               `json:"title"`
	Ingredients         string               `json:"ingredients"`
	IngredientsSections string               `json:"ingredientsSections"`
	Instructions        string               `json:"instructions"`
	Tips                string               `json:"tips"`
	ServingSize         string               `json:"servingSize"`
	PreparationTime     string               `json:"preparationTime"`
	CookingTime         string               `json:"cookingTime"`
	Views               int                  `json:"views"`
	ImageFilename       string               `json:"imageFilename"`
	UserID              uuid.UUID            `json:"userId"`
	CategoryID          *uuid.UUID           `json:"categoryId"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
	User                *RecipeAuthor        `json:"user"`
	RecipeImages        []models.RecipeImage `json:"recipeImages"`
}

// NewRecipeResponse copies every public recipe field. The author is reduced
// to RecipeAuthor so no other user column can leak.
func NewRecipeResponse(r *models.Recipe) RecipeResponse {
	images := r.RecipeImages
	if images == nil {
		images = []models.RecipeImage{}
	}
	return RecipeResponse{
		ID:                  r.ID,
		Title:               r.Title,
		Ingredients:         r.Ingredients,
		IngredientsSections: r.IngredientsSections,
		Instructions:        r.Instructions,
		Tips:                r.Tips,
		ServingSize:         r.ServingSize,
		PreparationTime:     r.PreparationTime,
		CookingTime:         r.CookingTime,
		Views:               r.Views,
		ImageFilename:       r.ImageFilename,
		UserID:              r.UserID,
		CategoryID:          r.CategoryID,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		User:                NewRecipeAuthor(r.User),
		RecipeImages:        images,
	}
}

// FavoriteRecipe is a recipe in the caller's favorites list
type FavoriteRecipe struct {
	RecipeResponse
	IsFavorited   bool  `json:"isFavorited"`
	FavoriteCount int64 `json:"favoriteCount"`
	CommentCount  int64 `json:"commentCount"`
}

// FavoritesResponse is the body of GET /favorites
type FavoritesResponse struct {
	Recipes []FavoriteRecipe `json:"recipes"`
}
