package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lezzetli-tarifler/backend/internal/logger"
	"github.com/lezzetli-tarifler/backend/internal/service"
)

// topRecipesLimit is the size of the home page "most viewed" list
const topRecipesLimit = 10

type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.ListCategories)
	router.GET("/top-recipes", h.TopRecipes)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/category/:id", h.GetRecipesByCategory)
		recipes.GET("/search", h.SearchRecipes)
	}
}

func (h *RecipeHandler) ListCategories(c *gin.Context) {
	categories, err := h.recipeService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context()).Err(err).Msg("failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgCategoriesFailed})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), nil)
	if err != nil {
		logger.Error(c.Request.Context()).Err(err).Msg("failed to list recipes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgRecipesFailed})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipesByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidCategory})
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), &categoryID)
	if err != nil {
		logger.Error(c.Request.Context()).Err(err).Str("category_id", categoryID.String()).Msg("failed to list recipes by category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgRecipesFailed})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// SearchRecipes matches ?q= against title, ingredients and instructions. An empty query matches everything.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	query := c.Query("q")
	recipes, err := h.recipeService.SearchRecipes(c.Request.Context(), query)
	if err != nil {
		logger.Error(c.Request.Context()).Err(err).Str("query", query).Msg("failed to search recipes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgSearchFailed})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) TopRecipes(c *gin.Context) {
	recipes, err := h.recipeService.TopRecipes(c.Request.Context(), topRecipesLimit)
	if err != nil {
		logger.Error(c.Request.Context()).Err(err).Msg("failed to list top recipes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgRecipesFailed})
		return
	}
	c.JSON(http.StatusOK, recipes)
}
