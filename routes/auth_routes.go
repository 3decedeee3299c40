package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/krct/facultydesk_backend/controllers"
	"github.com/krct/facultydesk_backend/middleware"
)

// RegisterAuthRoutes sets up authentication routes
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	// Public authentication routes
	e.POST("/api/auth/login", authController.Login)
	e.POST("/api/auth/forgot-password", authController.ForgotPassword)
	e.POST("/api/auth/reset-password", authController.ResetPassword)

	// Routes that require a valid token
	authGroup := e.Group("/api/auth")
	authGroup.Use(middleware.JWTMiddleware())
	authGroup.POST("/logout", authController.Logout)
	authGroup.POST("/change-password", authController.ChangePassword)

	// Account creation is reserved for admins
	authGroup.POST("/register", authController.Register, middleware.RequireAdmin())
}
