package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lezzetli-tarifler/backend/internal/logger"
	"github.com/lezzetli-tarifler/backend/internal/middleware"
	"github.com/lezzetli-tarifler/backend/internal/service"
	"github.com/lezzetli-tarifler/backend/internal/types"
)

// FavoriteHandler serves the authenticated user's favorites
type FavoriteHandler struct {
	favoriteService service.IFavoriteService
	authMiddleware  gin.HandlerFunc
}

func NewFavoriteHandler(favoriteService service.IFavoriteService, authMiddleware gin.HandlerFunc) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		authMiddleware:  authMiddleware,
	}
}

// RegisterRoutes mounts GET /recipes/favorites under router
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	recipes.GET("/favorites", h.authMiddleware, h.GetFavorites)
}

// GetFavorites returns every recipe the caller favorited, enriched with author,
// images and favorite/comment counts.
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
		return
	}

	recipes, err := h.favoriteService.GetFavoriteRecipes(ctx, userID)
	if err != nil {
		logger.Error(ctx).Err(err).Str("user_id", userID.String()).Msg("failed to get favorite recipes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgFavoritesFailed})
		return
	}
	if recipes == nil {
		recipes = []types.FavoriteRecipe{}
	}

	c.JSON(http.StatusOK, types.FavoritesResponse{Recipes: recipes})
}
