package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/krct/facultydesk_backend/controllers"
	"github.com/krct/facultydesk_backend/middleware"
)

// RegisterCertificationRoutes sets up certification CRUD routes
func RegisterCertificationRoutes(e *echo.Echo, certificationController *controllers.CertificationController) {
	certGroup := e.Group("/api/certifications")
	certGroup.Use(middleware.JWTMiddleware())

	certGroup.GET("", certificationController.List)
	certGroup.POST("", certificationController.Create)
	certGroup.GET("/:id", certificationController.Get)
	certGroup.PUT("/:id", certificationController.Update)
	certGroup.DELETE("/:id", certificationController.Delete)
	certGroup.PATCH("/:id/pin", certificationController.TogglePin)
}
