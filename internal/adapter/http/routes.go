// Package http provides the HTTP tool layer for the connection search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all connection search tool routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ToolHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Tools group
	tools := api.Group("/tools")
	tools.POST("/search-connections", h.SearchConnections)
	tools.POST("/search-locations", h.SearchLocations)
	tools.GET("/passenger-types", h.PassengerTypes)
	tools.POST("/connection-details", h.ConnectionDetails)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *ToolHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	// Tools group
	tools := api.Group("/tools")
	tools.POST("/search-connections", h.SearchConnections)
	tools.POST("/search-locations", h.SearchLocations)
	tools.GET("/passenger-types", h.PassengerTypes)
	tools.POST("/connection-details", h.ConnectionDetails)
}
