// repositories/notification_repository.go
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/krct/facultydesk_backend/models"
)

type notificationRepository struct {
	collection *mongo.Collection
}

var _ NotificationRepository = (*notificationRepository)(nil)

// NewNotificationRepository creates a Mongo-backed notification store
func NewNotificationRepository(db *mongo.Database) NotificationRepository {
	return &notificationRepository{collection: db.Collection("notifications")}
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, n)
	return err
}

// ListForUser returns the user's notifications plus every broadcast record,
// newest-first.
func (r *notificationRepository) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	query := bson.M{"userId": bson.M{"$in": []string{userID, models.NotificationTargetAll}}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}

	for i := range notifications {
		if notifications[i].UserID == models.NotificationTargetAll {
			notifications[i].IsRead = notifications[i].ReadByUser(userID)
		}
	}
	return notifications, nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"$or": bson.A{
		bson.M{"userId": userID, "isRead": false},
		bson.M{"userId": models.NotificationTargetAll, "readBy": bson.M{"$ne": userID}},
	}})
}

// MarkRead records that the given user has read one notification. Targeted
// records must belong to the caller; broadcast records get a per-user receipt
// instead of flipping the shared flag. Anything else is not found.
func (r *notificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID, userID string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	result, err = r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "userId": models.NotificationTargetAll},
		bson.M{"$addToSet": bson.M{"readBy": userID}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
