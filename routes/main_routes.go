package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krct/facultydesk_backend/controllers"
	"github.com/krct/facultydesk_backend/repositories"
	"github.com/krct/facultydesk_backend/services"
	"github.com/krct/facultydesk_backend/websocket"
)

// SetupRoutes wires repositories into controllers and registers every route group
func SetupRoutes(e *echo.Echo, db *mongo.Database, hub *websocket.Hub, uploadDir string) {
	facultyRepo := repositories.NewFacultyRepository(db)
	certificationRepo := repositories.NewCertificationRepository(db)
	circularRepo := repositories.NewCircularRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	mailer := services.NewSMTPMailerFromEnv()
	analyzer := services.NewCertificateAnalyzer()

	authController := controllers.NewAuthController(facultyRepo, mailer)
	facultyController := controllers.NewFacultyController(facultyRepo, certificationRepo, circularRepo)
	certificationController := controllers.NewCertificationController(certificationRepo)
	circularController := controllers.NewCircularController(circularRepo, notificationRepo, facultyRepo, mailer, hub)
	notificationController := controllers.NewNotificationController(notificationRepo, facultyRepo, hub)
	fileController := controllers.NewCertificateFileController(uploadDir, analyzer)

	RegisterAuthRoutes(e, authController)
	RegisterFacultyRoutes(e, facultyController, facultyRepo)
	RegisterCertificationRoutes(e, certificationController)
	RegisterCircularRoutes(e, circularController)
	RegisterNotificationRoutes(e, notificationController)
	RegisterFileRoutes(e, fileController)

	// Live pushes for circulars and direct messages
	e.GET("/ws", func(c echo.Context) error {
		return websocket.HandleWebSocket(c, hub)
	})
}
