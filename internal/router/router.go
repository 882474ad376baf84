package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lezzetli-tarifler/backend/internal/api"
	"github.com/lezzetli-tarifler/backend/internal/metrics"
	"github.com/lezzetli-tarifler/backend/internal/middleware"
)

// Handlers groups the API handlers mounted by SetupRouter
type Handlers struct {
	Health   *api.HealthHandler
	Auth     *api.AuthHandler
	Recipe   *api.RecipeHandler
	Favorite *api.FavoriteHandler
}

// SetupRouter configures the application routes
func SetupRouter(allowedOrigins []string, m *metrics.Metrics, gatherer prometheus.Gatherer, h Handlers) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestLogger(),
		middleware.Metrics(m),
		middleware.Recovery(),
		middleware.CORS(allowedOrigins),
	)

	router.GET("/health", h.Health.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	apiGroup := router.Group("/api")
	h.Auth.RegisterRoutes(apiGroup)
	h.Recipe.RegisterRoutes(apiGroup)
	h.Favorite.RegisterRoutes(apiGroup)

	return router
}
