package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/krct/facultydesk_backend/controllers"
	"github.com/krct/facultydesk_backend/middleware"
)

// RegisterNotificationRoutes sets up notification routes
func RegisterNotificationRoutes(e *echo.Echo, notificationController *controllers.NotificationController) {
	notificationGroup := e.Group("/api/notifications")
	notificationGroup.Use(middleware.JWTMiddleware())

	notificationGroup.GET("", notificationController.List)
	notificationGroup.PATCH("/:id/read", notificationController.MarkRead)

	// Direct messages come from admins only
	notificationGroup.POST("/message", notificationController.SendMessage, middleware.RequireAdmin())
}
