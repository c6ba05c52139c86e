package server

import (
	"ontox/internal/server/middleware"
	"ontox/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	// Label listing for autocomplete seeds
	e.GET("/", routes.GetLabelsHandler)

	apiRoutes := e.Group("/api")

	// Query routes
	apiRoutes.GET("/ancestors", routes.GetAncestorsHandler)
	apiRoutes.GET("/search", routes.SearchHandler)

	// Admin routes
	apiRoutes.POST("/reload", routes.ReloadHandler, middleware.AuthMiddleware)
}
