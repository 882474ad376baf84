package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezzetli-tarifler/backend/internal/models"
	"github.com/lezzetli-tarifler/backend/internal/service"
)

func TestSignRecipeImages(t *testing.T) {
	images := []models.RecipeImage{
		{ImagePath: "recipes/a.jpg"},
		{ImagePath: "recipes/b.jpg"},
	}

	svc := service.NewImageService(&fakeSigner{}, time.Minute)
	require.NoError(t, svc.SignRecipeImages(context.Background(), images))
	assert.Equal(t, "https://cdn.example.com/recipes/a.jpg?expires=1m0s", images[0].URL)
	assert.Equal(t, "https://cdn.example.com/recipes/b.jpg?expires=1m0s", images[1].URL)
}

func TestSignRecipeImages_NotConfigured(t *testing.T) {
	images := []models.RecipeImage{{ImagePath: "recipes/a.jpg"}}

	var svc *service.ImageService
	require.NoError(t, svc.SignRecipeImages(context.Background(), images))
	assert.Empty(t, images[0].URL)
}

func TestSignRecipeImages_Error(t *testing.T) {
	signErr := errors.New("boom")
	images := []models.RecipeImage{{ImagePath: "recipes/a.jpg"}}

	svc := service.NewImageService(&fakeSigner{err: signErr}, time.Minute)
	assert.ErrorIs(t, svc.SignRecipeImages(context.Background(), images), signErr)
}
