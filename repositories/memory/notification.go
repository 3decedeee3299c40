package memory

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/repositories"
)

type notificationRepository struct {
	table *notificationTable
}

var _ repositories.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *DB) repositories.NotificationRepository {
	return &notificationRepository{table: db.notification}
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	r.table.Lock()
	defer r.table.Unlock()

	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	stored := *n
	r.table.rows = append(r.table.rows, &stored)
	return nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	r.table.RLock()
	defer r.table.RUnlock()

	notifications := []models.Notification{}
	for _, row := range r.table.rows {
		if row.UserID == userID {
			notifications = append(notifications, *row)
		} else if row.UserID == models.NotificationTargetAll {
			stored := *row
			stored.IsRead = stored.ReadByUser(userID)
			notifications = append(notifications, stored)
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID string) (int64, error) {
	r.table.RLock()
	defer r.table.RUnlock()

	var count int64
	for _, row := range r.table.rows {
		if (row.UserID == userID || row.UserID == models.NotificationTargetAll) && !row.ReadByUser(userID) {
			count++
		}
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID, userID string) error {
	r.table.Lock()
	defer r.table.Unlock()

	for _, row := range r.table.rows {
		if row.ID != id {
			continue
		}
		switch row.UserID {
		case userID:
			row.IsRead = true
			return nil
		case models.NotificationTargetAll:
			if !row.ReadByUser(userID) {
				row.ReadBy = append(row.ReadBy, userID)
			}
			return nil
		}
	}
	return repositories.ErrNotFound
}
