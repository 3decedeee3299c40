// models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationTargetAll is the sentinel target for broadcast notifications.
// It is matched at read time instead of materializing one copy per recipient.
const NotificationTargetAll = "all"

// Notification types
const (
	NotificationTypeCircular     = "circular"
	NotificationTypeMessage      = "message"
	NotificationTypeAnnouncement = "announcement"
	NotificationTypeAlert        = "alert"
)

// Notification model
type Notification struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId"` // recipient hex id, or "all"
	Type      string             `json:"type" bson:"type"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	From      string             `json:"from,omitempty" bson:"from,omitempty"`
	IsRead    bool               `json:"isRead" bson:"isRead"`
	// ReadBy holds per-user read receipts for broadcast records, which are
	// shared by every recipient and cannot carry a single read flag. List
	// responses fold it into IsRead for the requesting user.
	ReadBy    []string  `json:"-" bson:"readBy,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ReadByUser reports whether the record counts as read for the given user
func (n *Notification) ReadByUser(userID string) bool {
	if n.IsRead {
		return true
	}
	for _, id := range n.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}

// NotificationList is the list-by-user payload: the records plus an
// unread-count aggregate the UI shows as a badge.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unreadCount"`
}

// MessageRequest is the admin-to-faculty direct message body
type MessageRequest struct {
	FacultyID string `json:"facultyId" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
}
