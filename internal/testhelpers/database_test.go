package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezzetli-tarifler/backend/internal/models"
)

func TestDatabaseSetup(t *testing.T) {
	db := SetupTestDatabase(t)
	require.NotNil(t, db)

	user := CreateTestUser(t, db, "ayse")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ayse@example.com", user.Email)

	recipe := CreateTestRecipe(t, db, user.ID, "Mercimek Çorbası")
	assert.NotEqual(t, uuid.Nil, recipe.ID)

	AddFavorite(t, db, user.ID, recipe.ID)
	AddComment(t, db, user.ID, recipe.ID, "Harika olmuş")
	AddRecipeImage(t, db, recipe.ID, "recipes/mercimek.jpg")

	var favorites int64
	require.NoError(t, db.Model(&models.Favorite{}).Where("user_id = ?", user.ID).Count(&favorites).Error)
	assert.Equal(t, int64(1), favorites)
}

func TestDatabaseSetup_Isolated(t *testing.T) {
	first := SetupTestDatabase(t)
	second := SetupTestDatabase(t)

	CreateTestUser(t, first, "mehmet")

	var count int64
	require.NoError(t, second.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFavoriteUniquePerUserAndRecipe(t *testing.T) {
	db := SetupTestDatabase(t)
	user := CreateTestUser(t, db, "zeynep")
	recipe := CreateTestRecipe(t, db, user.ID, "Karnıyarık")

	AddFavorite(t, db, user.ID, recipe.ID)
	err := db.Create(&models.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error
	assert.Error(t, err)
}
