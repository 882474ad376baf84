package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lezzetli-tarifler/backend/internal/models"
)

// TestPassword is the plain-text password of every user created by CreateTestUser
const TestPassword = "testpassword123"

// CreateTestUser creates a user named username with email username@example.com
func CreateTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hashedPassword),
		Appearance:   "light",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestCategory creates a recipe category
func CreateTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

// CreateTestRecipe creates a recipe authored by authorID
func CreateTestRecipe(t *testing.T, db *gorm.DB, authorID uuid.UUID, title string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		UserID:          authorID,
		Title:           title,
		Ingredients:     "2 su bardağı un\n1 yumurta",
		Instructions:    "Tüm malzemeleri karıştırın.",
		ServingSize:     "4 kişilik",
		PreparationTime: "15 dk",
		CookingTime:     "30 dk",
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

// AddFavorite marks recipeID as a favorite of userID
func AddFavorite(t *testing.T, db *gorm.DB, userID, recipeID uuid.UUID) *models.Favorite {
	t.Helper()
	favorite := &models.Favorite{UserID: userID, RecipeID: recipeID}
	require.NoError(t, db.Create(favorite).Error)
	return favorite
}

// AddComment adds a comment by userID on recipeID
func AddComment(t *testing.T, db *gorm.DB, userID, recipeID uuid.UUID, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{UserID: userID, RecipeID: recipeID, Content: content}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

// AddRecipeImage attaches an image stored at path to recipeID
func AddRecipeImage(t *testing.T, db *gorm.DB, recipeID uuid.UUID, path string) *models.RecipeImage {
	t.Helper()
	image := &models.RecipeImage{RecipeID: recipeID, ImagePath: path}
	require.NoError(t, db.Create(image).Error)
	return image
}
