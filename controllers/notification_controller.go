// controllers/notification_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/middleware"
	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/repositories"
	"github.com/krct/facultydesk_backend/utils"
	ws "github.com/krct/facultydesk_backend/websocket"
)

// NotificationController handles per-user notification reads and direct
// admin messages
type NotificationController struct {
	notifications repositories.NotificationRepository
	faculty       repositories.FacultyRepository
	hub           *ws.Hub
}

// NewNotificationController creates a new notification controller
func NewNotificationController(notifications repositories.NotificationRepository, faculty repositories.FacultyRepository, hub *ws.Hub) *NotificationController {
	return &NotificationController{
		notifications: notifications,
		faculty:       faculty,
		hub:           hub,
	}
}

// List returns the caller's notifications (targeted plus broadcast),
// newest-first, with the unread count the UI shows as a badge
func (nc *NotificationController) List(c echo.Context) error {
	userID := middleware.GetUserIDFromToken(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	notifications, err := nc.notifications.ListForUser(ctx, userID)
	if err != nil {
		log.Printf("Error listing notifications: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to retrieve notifications",
		})
	}

	unread, err := nc.notifications.UnreadCount(ctx, userID)
	if err != nil {
		log.Printf("Error counting unread notifications: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to retrieve notifications",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: models.NotificationList{
			Notifications: notifications,
			UnreadCount:   unread,
		},
	})
}

// SendMessage creates exactly one notification targeted at one faculty
// member and pushes it live when they are connected
func (nc *NotificationController) SendMessage(c echo.Context) error {
	var req models.MessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Faculty ID, title and content are required",
		})
	}

	facultyID, err := primitive.ObjectIDFromHex(req.FacultyID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid faculty ID",
		})
	}

	if _, err := nc.faculty.GetByID(c.Request().Context(), facultyID); err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Faculty not found",
			})
		}
		log.Printf("Error finding faculty: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to send message",
		})
	}

	notification := &models.Notification{
		UserID:  facultyID.Hex(),
		Type:    models.NotificationTypeMessage,
		Title:   utils.SanitizeInput(req.Title),
		Content: utils.SanitizeInput(req.Content),
		From:    "Admin",
	}
	if err := nc.notifications.Create(c.Request().Context(), notification); err != nil {
		log.Printf("Error creating notification: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to send message",
		})
	}

	if nc.hub != nil {
		// Best effort: the stored record is the source of truth
		_ = nc.hub.SendToUser(facultyID, ws.Event{
			Type:    ws.EventMessage,
			Title:   notification.Title,
			Message: notification.Content,
			Data:    notification,
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Message sent",
		Data:    notification,
	})
}

// MarkRead marks one notification as read for the caller. Notifications
// addressed to somebody else are reported as not found.
func (nc *NotificationController) MarkRead(c echo.Context) error {
	userID := middleware.GetUserIDFromToken(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Authentication required",
		})
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid notification ID",
		})
	}

	if err := nc.notifications.MarkRead(c.Request().Context(), id, userID); err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Notification not found",
			})
		}
		log.Printf("Error marking notification read: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to update notification",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Notification marked as read",
	})
}
