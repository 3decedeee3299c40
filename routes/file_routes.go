package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/krct/facultydesk_backend/controllers"
	"github.com/krct/facultydesk_backend/middleware"
)

// RegisterFileRoutes sets up the certificate file pipeline routes
func RegisterFileRoutes(e *echo.Echo, fileController *controllers.CertificateFileController) {
	fileGroup := e.Group("/api/files/certificates")
	fileGroup.Use(middleware.JWTMiddleware())

	fileGroup.POST("", fileController.Upload)
	fileGroup.POST("/analyze", fileController.Analyze)
	fileGroup.DELETE("", fileController.Delete)
}
