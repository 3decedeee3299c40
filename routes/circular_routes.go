package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/krct/facultydesk_backend/controllers"
	"github.com/krct/facultydesk_backend/middleware"
)

// RegisterCircularRoutes sets up circular routes. Reading is open to all
// authenticated staff; publishing and editing is admin only.
func RegisterCircularRoutes(e *echo.Echo, circularController *controllers.CircularController) {
	circularGroup := e.Group("/api/circulars")
	circularGroup.Use(middleware.JWTMiddleware())

	circularGroup.GET("", circularController.List)
	circularGroup.GET("/:id", circularController.Get)

	circularGroup.POST("", circularController.Create, middleware.RequireAdmin())
	circularGroup.PUT("/:id", circularController.Update, middleware.RequireAdmin())
	circularGroup.DELETE("/:id", circularController.Delete, middleware.RequireAdmin())
	circularGroup.PATCH("/:id/pin", circularController.TogglePin, middleware.RequireAdmin())
}
