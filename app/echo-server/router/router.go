package router

import (
	"shopperSpectrum/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")
	reco.GET("", handler.Recommend)
}

func SetSegmentRoutes(api *echo.Group, handler *rest.SegmentHandler) {
	segments := api.Group("/segments")
	segments.POST("/predict", handler.Predict)
	segments.GET("/labels", handler.Labels)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")
	products.GET("", handler.GetAllProducts)
	products.GET("/:code", handler.GetProductByCode)
}

// SetOpsRoutes mounts liveness and Prometheus scraping outside /api/v1.
func SetOpsRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
