package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/lezzetli-tarifler/backend/internal/models"
	"github.com/lezzetli-tarifler/backend/internal/service"
	"github.com/lezzetli-tarifler/backend/internal/types"
)

// MockRecipeService is a mock implementation of the RecipeService interface
type MockRecipeService struct {
	mock.Mock
}

var _ service.IRecipeService = (*MockRecipeService)(nil)

func (m *MockRecipeService) ListRecipes(ctx context.Context, categoryID *uuid.UUID) ([]types.RecipeResponse, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) TopRecipes(ctx context.Context, limit int) ([]types.RecipeResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) SearchRecipes(ctx context.Context, term string) ([]types.RecipeResponse, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

// MockFavoriteService is a mock implementation of the FavoriteService interface
type MockFavoriteService struct {
	mock.Mock
}

var _ service.IFavoriteService = (*MockFavoriteService)(nil)

func (m *MockFavoriteService) GetFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]types.FavoriteRecipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.FavoriteRecipe), args.Error(1)
}
