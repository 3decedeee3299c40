package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/repositories"
	"github.com/krct/facultydesk_backend/repositories/memory"
)

type notificationFixture struct {
	controller    *NotificationController
	notifications repositories.NotificationRepository
	faculty       repositories.FacultyRepository
}

func newNotificationFixture() *notificationFixture {
	db := memory.Open()
	notifications := memory.NewNotificationRepository(db)
	faculty := memory.NewFacultyRepository(db)
	return &notificationFixture{
		controller:    NewNotificationController(notifications, faculty, nil),
		notifications: notifications,
		faculty:       faculty,
	}
}

func TestBroadcastVisibleToEveryone(t *testing.T) {
	e := newTestEcho()
	fix := newNotificationFixture()

	require.NoError(t, fix.notifications.Create(context.Background(), &models.Notification{
		UserID:  models.NotificationTargetAll,
		Type:    models.NotificationTypeCircular,
		Title:   "Exam Schedule",
		Content: "Exams start Monday",
	}))

	for i := 0; i < 2; i++ {
		c, rec := newJSONContext(e, http.MethodGet, "/api/notifications", "")
		authenticate(c, primitive.NewObjectID(), models.RoleFaculty)

		require.NoError(t, fix.controller.List(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var list models.NotificationList
		decodeData(t, rec, &list)
		require.Len(t, list.Notifications, 1)
		assert.Equal(t, "Exam Schedule", list.Notifications[0].Title)
		assert.Equal(t, int64(1), list.UnreadCount)
	}
}

func TestSendMessageTargetsOneFaculty(t *testing.T) {
	e := newTestEcho()
	fix := newNotificationFixture()
	admin := primitive.NewObjectID()

	recipient := &models.Faculty{
		FullName: "Dr. Priya Raman",
		Email:    "priya.r@krct.ac.in",
		Role:     models.RoleFaculty,
	}
	require.NoError(t, fix.faculty.Create(context.Background(), recipient))

	c, rec := newJSONContext(e, http.MethodPost, "/api/notifications/message",
		`{"facultyId":"`+recipient.ID.Hex()+`","title":"Document Request","content":"Please submit your appraisal form"}`)
	authenticate(c, admin, models.RoleAdmin)

	require.NoError(t, fix.controller.SendMessage(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// The recipient sees the message
	c, rec = newJSONContext(e, http.MethodGet, "/api/notifications", "")
	authenticate(c, recipient.ID, models.RoleFaculty)
	require.NoError(t, fix.controller.List(c))
	var list models.NotificationList
	decodeData(t, rec, &list)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, models.NotificationTypeMessage, list.Notifications[0].Type)

	// Nobody else does
	c, rec = newJSONContext(e, http.MethodGet, "/api/notifications", "")
	authenticate(c, primitive.NewObjectID(), models.RoleFaculty)
	require.NoError(t, fix.controller.List(c))
	decodeData(t, rec, &list)
	assert.Empty(t, list.Notifications)
}

func TestSendMessageUnknownFaculty(t *testing.T) {
	e := newTestEcho()
	fix := newNotificationFixture()

	c, rec := newJSONContext(e, http.MethodPost, "/api/notifications/message",
		`{"facultyId":"`+primitive.NewObjectID().Hex()+`","title":"Hello","content":"Anyone there?"}`)
	authenticate(c, primitive.NewObjectID(), models.RoleAdmin)

	require.NoError(t, fix.controller.SendMessage(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkReadFlipsOneRecord(t *testing.T) {
	e := newTestEcho()
	fix := newNotificationFixture()
	user := primitive.NewObjectID()

	first := &models.Notification{UserID: user.Hex(), Type: models.NotificationTypeMessage, Title: "First"}
	second := &models.Notification{UserID: user.Hex(), Type: models.NotificationTypeMessage, Title: "Second"}
	require.NoError(t, fix.notifications.Create(context.Background(), first))
	require.NoError(t, fix.notifications.Create(context.Background(), second))

	c, rec := newJSONContext(e, http.MethodPatch, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(first.ID.Hex())
	authenticate(c, user, models.RoleFaculty)

	require.NoError(t, fix.controller.MarkRead(c))
	require.Equal(t, http.StatusOK, rec.Code)

	unread, err := fix.notifications.UnreadCount(context.Background(), user.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	// Marking an unknown id is a 404
	c, rec = newJSONContext(e, http.MethodPatch, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(primitive.NewObjectID().Hex())
	authenticate(c, user, models.RoleFaculty)
	require.NoError(t, fix.controller.MarkRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkReadRejectsNonRecipient(t *testing.T) {
	e := newTestEcho()
	fix := newNotificationFixture()
	recipient := primitive.NewObjectID()

	message := &models.Notification{UserID: recipient.Hex(), Type: models.NotificationTypeMessage, Title: "Private"}
	require.NoError(t, fix.notifications.Create(context.Background(), message))

	c, rec := newJSONContext(e, http.MethodPatch, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(message.ID.Hex())
	authenticate(c, primitive.NewObjectID(), models.RoleFaculty)

	require.NoError(t, fix.controller.MarkRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The recipient's record is untouched
	unread, err := fix.notifications.UnreadCount(context.Background(), recipient.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestMarkReadBroadcastIsPerUser(t *testing.T) {
	e := newTestEcho()
	fix := newNotificationFixture()
	reader := primitive.NewObjectID()
	other := primitive.NewObjectID()

	broadcast := &models.Notification{
		UserID:  models.NotificationTargetAll,
		Type:    models.NotificationTypeCircular,
		Title:   "Holiday Notice",
		Content: "Campus closed on Friday",
	}
	require.NoError(t, fix.notifications.Create(context.Background(), broadcast))

	c, rec := newJSONContext(e, http.MethodPatch, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(broadcast.ID.Hex())
	authenticate(c, reader, models.RoleFaculty)
	require.NoError(t, fix.controller.MarkRead(c))
	require.Equal(t, http.StatusOK, rec.Code)

	unread, err := fix.notifications.UnreadCount(context.Background(), reader.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	// Everyone else still has an unread badge
	unread, err = fix.notifications.UnreadCount(context.Background(), other.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	list, err := fix.notifications.ListForUser(context.Background(), reader.Hex())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRead)

	list, err = fix.notifications.ListForUser(context.Background(), other.Hex())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsRead)
}
