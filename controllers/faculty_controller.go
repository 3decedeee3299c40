// controllers/faculty_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/repositories"
	"github.com/krct/facultydesk_backend/utils"
)

// FacultyController handles profile and directory endpoints
type FacultyController struct {
	faculty        repositories.FacultyRepository
	certifications repositories.CertificationRepository
	circulars      repositories.CircularRepository
}

// NewFacultyController creates a new faculty controller
func NewFacultyController(faculty repositories.FacultyRepository, certifications repositories.CertificationRepository, circulars repositories.CircularRepository) *FacultyController {
	return &FacultyController{
		faculty:        faculty,
		certifications: certifications,
		circulars:      circulars,
	}
}

// GetAll returns the staff directory
func (fc *FacultyController) GetAll(c echo.Context) error {
	faculty, err := fc.faculty.GetAll(c.Request().Context())
	if err != nil {
		log.Printf("Error listing faculty: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to retrieve faculty",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    faculty,
	})
}

// GetByID returns one faculty member
func (fc *FacultyController) GetByID(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid faculty ID",
		})
	}

	faculty, err := fc.faculty.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Faculty not found",
			})
		}
		log.Printf("Error finding faculty: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to retrieve faculty",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    faculty,
	})
}

// Me returns the caller's own record
func (fc *FacultyController) Me(c echo.Context) error {
	faculty, err := currentFaculty(c, fc.faculty)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    faculty,
	})
}

// UpdateProfile saves the caller's profile form. Upsert semantics: when no
// record exists under the caller's id a fresh one is created.
func (fc *FacultyController) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Name, email, department and designation are required",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid email format",
		})
	}

	id, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	faculty, err := fc.faculty.GetByID(c.Request().Context(), id)
	if err != nil {
		if err != repositories.ErrNotFound {
			log.Printf("Error loading profile: %v", err)
			return c.JSON(http.StatusInternalServerError, models.Response{
				Success: false,
				Error:   "Failed to load profile",
			})
		}
		faculty = &models.Faculty{ID: id, Role: models.RoleFaculty}
	}

	faculty.FullName = utils.SanitizeInput(req.FullName)
	faculty.Email = email
	faculty.Department = utils.SanitizeInput(req.Department)
	faculty.Designation = utils.SanitizeInput(req.Designation)
	faculty.FacultyCode = utils.SanitizeInput(req.FacultyCode)
	faculty.Specialization = utils.SanitizeInput(req.Specialization)
	faculty.Experience = utils.SanitizeInput(req.Experience)
	faculty.Qualification = utils.SanitizeInput(req.Qualification)
	faculty.Bio = utils.SanitizeInput(req.Bio)
	faculty.ProfilePhoto = req.ProfilePhoto
	faculty.JoinDate = req.JoinDate

	if err := fc.faculty.Upsert(c.Request().Context(), faculty); err != nil {
		log.Printf("Error saving profile: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save profile",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile updated",
		Data: map[string]interface{}{
			"faculty": faculty,
			"state":   faculty.ProfileState(),
		},
	})
}

// ProfileStatus reports how far the caller has progressed through profile
// setup and where the UI should send them next
func (fc *FacultyController) ProfileStatus(c echo.Context) error {
	faculty, err := currentFaculty(c, fc.faculty)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: map[string]interface{}{
			"state":    faculty.ProfileState(),
			"nextStep": faculty.NextProfileStep(),
		},
	})
}

// Dashboard returns the landing-page summary: certification counts by type
// plus the caller's recent records and the latest circulars
func (fc *FacultyController) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	counts, err := fc.certifications.CountByType(ctx)
	if err != nil {
		log.Printf("Error aggregating certifications: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to build dashboard",
		})
	}

	mine, err := fc.certifications.List(ctx, repositories.CertificationFilter{FacultyID: id})
	if err != nil {
		log.Printf("Error listing certifications: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to build dashboard",
		})
	}
	if len(mine) > 5 {
		mine = mine[:5]
	}

	circulars, err := fc.circulars.List(ctx, repositories.CircularFilter{})
	if err != nil {
		log.Printf("Error listing circulars: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to build dashboard",
		})
	}
	if len(circulars) > 3 {
		circulars = circulars[:3]
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: map[string]interface{}{
			"certificationCounts":  counts,
			"recentCertifications": mine,
			"recentCirculars":      circulars,
		},
	})
}

// IDCard renders a QR code pointing at the caller's public profile
func (fc *FacultyController) IDCard(c echo.Context) error {
	faculty, err := currentFaculty(c, fc.faculty)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	content := baseURL() + "/faculty/" + faculty.ID.Hex()
	qrPNG, err := utils.GenerateQRCode(content, 200)
	if err != nil {
		log.Printf("Error generating QR code: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to generate QR code",
		})
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=idcard.png")
	return c.Blob(http.StatusOK, "image/png", qrPNG)
}
