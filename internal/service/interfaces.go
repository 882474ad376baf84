package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lezzetli-tarifler/backend/internal/models"
	"github.com/lezzetli-tarifler/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
	RevokeToken(ctx context.Context, claims *types.TokenClaims) error
}

// IFavoriteService defines the interface for reading a user's favorites
type IFavoriteService interface {
	GetFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]types.FavoriteRecipe, error)
}

// IRecipeService defines the interface for public recipe listings
type IRecipeService interface {
	ListRecipes(ctx context.Context, categoryID *uuid.UUID) ([]types.RecipeResponse, error)
	TopRecipes(ctx context.Context, limit int) ([]types.RecipeResponse, error)
	SearchRecipes(ctx context.Context, term string) ([]types.RecipeResponse, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// TokenRevocationStore keeps ids of tokens invalidated by logout
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// ImageURLSigner produces time-limited download URLs for stored objects
type ImageURLSigner interface {
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}
