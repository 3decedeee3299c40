// controllers/circular_controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/repositories"
	"github.com/krct/facultydesk_backend/services"
	"github.com/krct/facultydesk_backend/utils"
	ws "github.com/krct/facultydesk_backend/websocket"
)

// CircularController handles admin broadcasts
type CircularController struct {
	circulars     repositories.CircularRepository
	notifications repositories.NotificationRepository
	faculty       repositories.FacultyRepository
	mailer        services.Mailer
	hub           *ws.Hub
}

// NewCircularController creates a new circular controller. The hub may be nil
// when live pushes are not wanted.
func NewCircularController(circulars repositories.CircularRepository, notifications repositories.NotificationRepository, faculty repositories.FacultyRepository, mailer services.Mailer, hub *ws.Hub) *CircularController {
	return &CircularController{
		circulars:     circulars,
		notifications: notifications,
		faculty:       faculty,
		mailer:        mailer,
		hub:           hub,
	}
}

// List returns circulars, pinned first then newest first. Supports ?search=
// and ?pinned=true. Circulars have no ownership scoping; every authenticated
// staff member sees the full list.
func (cc *CircularController) List(c echo.Context) error {
	filter := repositories.CircularFilter{
		Search:     c.QueryParam("search"),
		PinnedOnly: c.QueryParam("pinned") == "true",
	}

	circulars, err := cc.circulars.List(c.Request().Context(), filter)
	if err != nil {
		log.Printf("Error listing circulars: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to retrieve circulars",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    circulars,
	})
}

// Get returns one circular
func (cc *CircularController) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid circular ID",
		})
	}

	circular, err := cc.circulars.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Circular not found",
			})
		}
		log.Printf("Error finding circular: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to retrieve circular",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    circular,
	})
}

// Create stores a circular and fans it out: one broadcast notification row is
// written synchronously, then the email digest and live push run in the
// background. Background failures are logged only.
func (cc *CircularController) Create(c echo.Context) error {
	var req models.CircularRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Heading and body are required",
		})
	}

	creator, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	circular := &models.Circular{
		Heading:   utils.SanitizeInput(req.Heading),
		Body:      utils.SanitizeInput(req.Body),
		AdminNote: utils.SanitizeInput(req.AdminNote),
		CreatedBy: creator,
	}

	if err := cc.circulars.Create(c.Request().Context(), circular); err != nil {
		log.Printf("Error creating circular: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to create circular",
		})
	}

	notification := &models.Notification{
		UserID:  models.NotificationTargetAll,
		Type:    models.NotificationTypeCircular,
		Title:   circular.Heading,
		Content: circular.Body,
		From:    "Admin",
	}
	if err := cc.notifications.Create(c.Request().Context(), notification); err != nil {
		log.Printf("Error creating circular notification: %v", err)
	}

	go cc.fanOut(circular)

	return c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Circular published",
		Data:    circular,
	})
}

// fanOut delivers the email digest and live push for a new circular
func (cc *CircularController) fanOut(circular *models.Circular) {
	if cc.hub != nil {
		cc.hub.Broadcast(ws.Event{
			Type:    ws.EventCircular,
			Title:   circular.Heading,
			Message: circular.Body,
			Data:    circular,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	staff, err := cc.faculty.GetAll(ctx)
	if err != nil {
		log.Printf("Error loading recipients for circular digest: %v", err)
		return
	}

	for _, member := range staff {
		if member.Email == "" {
			continue
		}
		cc.mailer.Send(member.Email, "New Circular: "+circular.Heading,
			services.CircularEmailBody(member.FullName, circular.Heading, circular.Body))
	}
}

// Update replaces the mutable fields of a circular
func (cc *CircularController) Update(c echo.Context) error {
	var req models.CircularRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Heading and body are required",
		})
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid circular ID",
		})
	}

	circular, err := cc.circulars.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Circular not found",
			})
		}
		log.Printf("Error finding circular: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to retrieve circular",
		})
	}

	circular.Heading = utils.SanitizeInput(req.Heading)
	circular.Body = utils.SanitizeInput(req.Body)
	circular.AdminNote = utils.SanitizeInput(req.AdminNote)

	if err := cc.circulars.Update(c.Request().Context(), circular); err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Circular not found",
			})
		}
		log.Printf("Error updating circular: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to update circular",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Circular updated",
		Data:    circular,
	})
}

// Delete removes a circular. Deleting an id that no longer exists reports
// 404; the client treats that as already deleted.
func (cc *CircularController) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid circular ID",
		})
	}

	if err := cc.circulars.Delete(c.Request().Context(), id); err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Circular not found",
			})
		}
		log.Printf("Error deleting circular: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to delete circular",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Circular deleted",
	})
}

// TogglePin flips the pin flag, moving the circular above all unpinned ones
func (cc *CircularController) TogglePin(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid circular ID",
		})
	}

	circular, err := cc.circulars.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Circular not found",
			})
		}
		log.Printf("Error finding circular: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to retrieve circular",
		})
	}

	circular.IsPinned = !circular.IsPinned
	if err := cc.circulars.Update(c.Request().Context(), circular); err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Circular not found",
			})
		}
		log.Printf("Error toggling pin: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to update circular",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Pin toggled",
		Data:    circular,
	})
}
