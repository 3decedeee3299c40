// middleware/profile_gate.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/repositories"
)

// RequireCompleteProfile gates dashboard-class routes. The profile state is
// recomputed from the store on every request, so an external profile edit
// takes effect on the next navigation.
func RequireCompleteProfile(faculty repositories.FacultyRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := primitive.ObjectIDFromHex(GetUserIDFromToken(c))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Success: false,
					Error:   "Unauthorized",
				})
			}

			f, err := faculty.GetByID(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Success: false,
					Error:   "Account not found",
				})
			}

			if state := f.ProfileState(); state != models.ProfileStateComplete {
				return c.JSON(http.StatusForbidden, models.Response{
					Success: false,
					Error:   "Profile is incomplete",
					Data: map[string]interface{}{
						"state":      state,
						"redirectTo": f.NextProfileStep(),
					},
				})
			}

			return next(c)
		}
	}
}
