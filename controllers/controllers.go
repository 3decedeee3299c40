// controllers/controllers.go
package controllers

import (
	"errors"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/middleware"
	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/repositories"
)

// callerID extracts the authenticated caller's id from the JWT claims
func callerID(c echo.Context) (primitive.ObjectID, error) {
	userID := middleware.GetUserIDFromToken(c)
	if userID == "" {
		return primitive.NilObjectID, errors.New("no token found")
	}
	return primitive.ObjectIDFromHex(userID)
}

// isAdmin reports whether the caller's token carries the admin role
func isAdmin(c echo.Context) bool {
	claims := middleware.GetUserFromToken(c)
	return claims != nil && claims.Role == models.RoleAdmin
}

// currentFaculty loads the caller's account record
func currentFaculty(c echo.Context, faculty repositories.FacultyRepository) (*models.Faculty, error) {
	id, err := callerID(c)
	if err != nil {
		return nil, err
	}
	return faculty.GetByID(c.Request().Context(), id)
}
