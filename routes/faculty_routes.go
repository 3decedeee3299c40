package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/krct/facultydesk_backend/controllers"
	"github.com/krct/facultydesk_backend/middleware"
	"github.com/krct/facultydesk_backend/repositories"
)

// RegisterFacultyRoutes sets up faculty profile and dashboard routes
func RegisterFacultyRoutes(e *echo.Echo, facultyController *controllers.FacultyController, facultyRepo repositories.FacultyRepository) {
	facultyGroup := e.Group("/api/faculty")
	facultyGroup.Use(middleware.JWTMiddleware())

	facultyGroup.GET("", facultyController.GetAll)
	facultyGroup.GET("/me", facultyController.Me)
	facultyGroup.PUT("/me", facultyController.UpdateProfile)
	facultyGroup.GET("/me/status", facultyController.ProfileStatus)
	facultyGroup.GET("/me/idcard", facultyController.IDCard)
	facultyGroup.GET("/:id", facultyController.GetByID)

	// Dashboard is only reachable once the profile is filled in
	dashboardGroup := e.Group("/api/dashboard")
	dashboardGroup.Use(middleware.JWTMiddleware())
	dashboardGroup.Use(middleware.RequireCompleteProfile(facultyRepo))
	dashboardGroup.GET("", facultyController.Dashboard)
}
