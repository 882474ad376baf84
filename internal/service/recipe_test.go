package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezzetli-tarifler/backend/internal/service"
	"github.com/lezzetli-tarifler/backend/internal/testhelpers"
	"github.com/lezzetli-tarifler/backend/internal/types"
)

func titles(recipes []types.RecipeResponse) []string {
	result := make([]string, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, r.Title)
	}
	return result
}

func TestListRecipes(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	author := testhelpers.CreateTestUser(t, db, "sef")
	soups := testhelpers.CreateTestCategory(t, db, "Çorbalar")
	desserts := testhelpers.CreateTestCategory(t, db, "Tatlılar")

	lentil := testhelpers.CreateTestRecipe(t, db, author.ID, "Mercimek Çorbası")
	tarhana := testhelpers.CreateTestRecipe(t, db, author.ID, "Tarhana Çorbası")
	baklava := testhelpers.CreateTestRecipe(t, db, author.ID, "Baklava")
	require.NoError(t, db.Model(lentil).Updates(map[string]interface{}{"category_id": soups.ID, "views": 10}).Error)
	require.NoError(t, db.Model(tarhana).Updates(map[string]interface{}{"category_id": soups.ID, "views": 50}).Error)
	require.NoError(t, db.Model(baklava).Updates(map[string]interface{}{"category_id": desserts.ID, "views": 30}).Error)
	testhelpers.AddRecipeImage(t, db, baklava.ID, "recipes/baklava.jpg")

	svc := service.NewRecipeService(db, nil)

	all, err := svc.ListRecipes(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tarhana Çorbası", "Baklava", "Mercimek Çorbası"}, titles(all))
	require.NotNil(t, all[0].User)
	assert.Equal(t, "sef", all[0].User.Username)
	assert.Len(t, all[1].RecipeImages, 1)

	inSoups, err := svc.ListRecipes(ctx, &soups.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tarhana Çorbası", "Mercimek Çorbası"}, titles(inSoups))
}

func TestTopRecipes(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "sef")
	for i, title := range []string{"A", "B", "C", "D"} {
		recipe := testhelpers.CreateTestRecipe(t, db, author.ID, title)
		require.NoError(t, db.Model(recipe).Update("views", i*10).Error)
	}

	svc := service.NewRecipeService(db, nil)
	top, err := svc.TopRecipes(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C"}, titles(top))
}

func TestSearchRecipes(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "sef")
	testhelpers.CreateTestRecipe(t, db, author.ID, "Fırında Tavuk")
	testhelpers.CreateTestRecipe(t, db, author.ID, "Tavuk Sote")
	testhelpers.CreateTestRecipe(t, db, author.ID, "Zeytinyağlı Fasulye")

	svc := service.NewRecipeService(db, nil)

	found, err := svc.SearchRecipes(context.Background(), "tavuk")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Fırında Tavuk", "Tavuk Sote"}, titles(found))

	// every fixture recipe mentions "yumurta" in its ingredients
	byIngredient, err := svc.SearchRecipes(context.Background(), "yumurta")
	require.NoError(t, err)
	assert.Len(t, byIngredient, 3)

	none, err := svc.SearchRecipes(context.Background(), "pizza")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSearchRecipes_CaseFolding(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "sef")
	testhelpers.CreateTestRecipe(t, db, author.ID, "İmam Bayıldı")
	testhelpers.CreateTestRecipe(t, db, author.ID, "Tavuk Sote")

	svc := service.NewRecipeService(db, nil)

	found, err := svc.SearchRecipes(context.Background(), "İmam")
	require.NoError(t, err)
	assert.Equal(t, []string{"İmam Bayıldı"}, titles(found))

	found, err = svc.SearchRecipes(context.Background(), "TAVUK")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tavuk Sote"}, titles(found))
}

func TestListCategories(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	testhelpers.CreateTestCategory(t, db, "Tatlılar")
	testhelpers.CreateTestCategory(t, db, "Ana Yemekler")

	svc := service.NewRecipeService(db, nil)
	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Ana Yemekler", categories[0].Name)
	assert.Equal(t, "Tatlılar", categories[1].Name)
}

func TestListRecipes_SkipsDeleted(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "sef")
	testhelpers.CreateTestRecipe(t, db, author.ID, "Kalan")
	deleted := testhelpers.CreateTestRecipe(t, db, author.ID, "Silinen")
	require.NoError(t, db.Delete(deleted).Error)

	svc := service.NewRecipeService(db, nil)
	recipes, err := svc.ListRecipes(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kalan"}, titles(recipes))
}
