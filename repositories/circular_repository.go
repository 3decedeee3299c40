// repositories/circular_repository.go
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

type circularRepository struct {
	collection *mongo.Collection
}

var _ CircularRepository = (*circularRepository)(nil)

// NewCircularRepository creates a Mongo-backed circular store
func NewCircularRepository(db *mongo.Database) CircularRepository {
	return &circularRepository{collection: db.Collection("circulars")}
}

func (r *circularRepository) Create(ctx context.Context, circular *models.Circular) error {
	if circular.ID.IsZero() {
		circular.ID = primitive.NewObjectID()
	}
	now := time.Now()
	circular.CreatedAt = now
	circular.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, circular)
	return err
}

func (r *circularRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Circular, error) {
	var circular models.Circular
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&circular)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &circular, nil
}

func (r *circularRepository) List(ctx context.Context, filter CircularFilter) ([]models.Circular, error) {
	query := bson.M{}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = []bson.M{
			{"heading": regex},
			{"body": regex},
		}
	}
	if filter.PinnedOnly {
		query["isPinned"] = true
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "isPinned", Value: -1},
		{Key: "createdAt", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	circulars := []models.Circular{}
	if err := cursor.All(ctx, &circulars); err != nil {
		return nil, err
	}
	return circulars, nil
}

func (r *circularRepository) Update(ctx context.Context, circular *models.Circular) error {
	circular.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": circular.ID}, circular)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *circularRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
