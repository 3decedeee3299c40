// controllers/certification_controller.go
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

// CertificationController handles professional development records
type CertificationController struct {
	certifications repositories.CertificationRepository
}

// NewCertificationController creates a new certification controller
func NewCertificationController(certifications repositories.CertificationRepository) *CertificationController {
	return &CertificationController{certifications: certifications}
}

// List returns certifications, pinned first then newest first. Supports
// ?type=, ?search= and ?mine=true filters.
func (cc *CertificationController) List(c echo.Context) error {
	filter := repositories.CertificationFilter{
		Search: c.QueryParam("search"),
	}

	if t := c.QueryParam("type"); t != "" {
		if !models.IsValidCertificationType(t) {
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Error:   "Invalid certification type",
			})
		}
		filter.Type = t
	}

	if c.QueryParam("mine") == "true" {
		id, err := callerID(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Unauthorized",
			})
		}
		filter.FacultyID = id
	} else if createdBy := c.QueryParam("createdBy"); createdBy != "" {
		id, err := primitive.ObjectIDFromHex(createdBy)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Error:   "Invalid createdBy ID",
			})
		}
		filter.FacultyID = id
	}

	certs, err := cc.certifications.List(c.Request().Context(), filter)
	if err != nil {
		log.Printf("Error listing certifications: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to retrieve certifications",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    certs,
	})
}

// Create validates and stores a new certification owned by the caller
func (cc *CertificationController) Create(c echo.Context) error {
	var req models.CertificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Title, type, organization and date are required",
		})
	}
	if !models.IsValidCertificationType(req.Type) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid certification type",
		})
	}

	id, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	cert := &models.Certification{
		Title:           utils.SanitizeInput(req.Title),
		Type:            req.Type,
		Organization:    utils.SanitizeInput(req.Organization),
		Date:            req.Date,
		Duration:        utils.SanitizeInput(req.Duration),
		Description:     utils.SanitizeInput(req.Description),
		CertificateFile: req.CertificateFile,
		FacultyID:       id,
	}

	if err := cc.certifications.Create(c.Request().Context(), cert); err != nil {
		if err == repositories.ErrDuplicateCertification {
			return c.JSON(http.StatusConflict, models.Response{
				Success: false,
				Error:   "A certification with this title and organization already exists",
			})
		}
		log.Printf("Error creating certification: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to create certification",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Certification created",
		Data:    cert,
	})
}

// Get returns one certification
func (cc *CertificationController) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid certification ID",
		})
	}

	cert, err := cc.certifications.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Certification not found",
			})
		}
		log.Printf("Error finding certification: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to retrieve certification",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    cert,
	})
}

// Update replaces the mutable fields. Only the owner (or an admin) may edit;
// anyone else gets the same 404 a missing record would produce.
func (cc *CertificationController) Update(c echo.Context) error {
	var req models.CertificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Title, type, organization and date are required",
		})
	}
	if !models.IsValidCertificationType(req.Type) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid certification type",
		})
	}

	cert, status, errResp := cc.loadOwned(c)
	if errResp != nil {
		return c.JSON(status, errResp)
	}

	cert.Title = utils.SanitizeInput(req.Title)
	cert.Type = req.Type
	cert.Organization = utils.SanitizeInput(req.Organization)
	cert.Date = req.Date
	cert.Duration = utils.SanitizeInput(req.Duration)
	cert.Description = utils.SanitizeInput(req.Description)
	cert.CertificateFile = req.CertificateFile

	if err := cc.certifications.Update(c.Request().Context(), cert); err != nil {
		if err == repositories.ErrDuplicateCertification {
			return c.JSON(http.StatusConflict, models.Response{
				Success: false,
				Error:   "A certification with this title and organization already exists",
			})
		}
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Certification not found",
			})
		}
		log.Printf("Error updating certification: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to update certification",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Certification updated",
		Data:    cert,
	})
}

// Delete hard-deletes an owned certification
func (cc *CertificationController) Delete(c echo.Context) error {
	cert, status, errResp := cc.loadOwned(c)
	if errResp != nil {
		return c.JSON(status, errResp)
	}

	if err := cc.certifications.Delete(c.Request().Context(), cert.ID); err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Certification not found",
			})
		}
		log.Printf("Error deleting certification: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to delete certification",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Certification deleted",
	})
}

// TogglePin flips the pin flag on an owned certification
func (cc *CertificationController) TogglePin(c echo.Context) error {
	cert, status, errResp := cc.loadOwned(c)
	if errResp != nil {
		return c.JSON(status, errResp)
	}

	cert.IsPinned = !cert.IsPinned
	if err := cc.certifications.Update(c.Request().Context(), cert); err != nil {
		log.Printf("Error toggling pin: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to update certification",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Pin toggled",
		Data:    cert,
	})
}

// loadOwned resolves the :id parameter and enforces ownership. A record owned
// by someone else is reported as not found so the endpoint does not leak
// other owners' record ids.
func (cc *CertificationController) loadOwned(c echo.Context) (*models.Certification, int, *models.Response) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return nil, http.StatusBadRequest, &models.Response{
			Success: false,
			Error:   "Invalid certification ID",
		}
	}

	caller, err := callerID(c)
	if err != nil {
		return nil, http.StatusUnauthorized, &models.Response{
			Success: false,
			Error:   "Unauthorized",
		}
	}

	cert, err := cc.certifications.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, http.StatusNotFound, &models.Response{
				Success: false,
				Error:   "Certification not found",
			}
		}
		log.Printf("Error finding certification: %v", err)
		return nil, http.StatusInternalServerError, &models.Response{
			Success: false,
			Error:   "Failed to retrieve certification",
		}
	}

	if cert.FacultyID != caller && !isAdmin(c) {
		return nil, http.StatusNotFound, &models.Response{
			Success: false,
			Error:   "Certification not found",
		}
	}

	return cert, 0, nil
}
