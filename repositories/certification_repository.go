// repositories/certification_repository.go
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

type certificationRepository struct {
	collection *mongo.Collection
}

var _ CertificationRepository = (*certificationRepository)(nil)

// NewCertificationRepository creates a Mongo-backed certification store
func NewCertificationRepository(db *mongo.Database) CertificationRepository {
	return &certificationRepository{collection: db.Collection("certifications")}
}

// Create inserts a certification. The (title, organization) pair must be
// unique across all owners; the unique index backs up the pre-insert check.
func (r *certificationRepository) Create(ctx context.Context, cert *models.Certification) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"title":        cert.Title,
		"organization": cert.Organization,
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateCertification
	}

	if cert.ID.IsZero() {
		cert.ID = primitive.NewObjectID()
	}
	now := time.Now()
	cert.CreatedAt = now
	cert.UpdatedAt = now

	_, err = r.collection.InsertOne(ctx, cert)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCertification
	}
	return err
}

func (r *certificationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Certification, error) {
	var cert models.Certification
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cert)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *certificationRepository) List(ctx context.Context, filter CertificationFilter) ([]models.Certification, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if !filter.FacultyID.IsZero() {
		query["facultyId"] = filter.FacultyID
	}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = []bson.M{
			{"title": regex},
			{"organization": regex},
		}
	}

	// Pinned records first, then newest-first
	opts := options.Find().SetSort(bson.D{
		{Key: "isPinned", Value: -1},
		{Key: "createdAt", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	certs := []models.Certification{}
	if err := cursor.All(ctx, &certs); err != nil {
		return nil, err
	}
	return certs, nil
}

// Update replaces the record. A title/organization change is re-checked
// against every other record before the write.
func (r *certificationRepository) Update(ctx context.Context, cert *models.Certification) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"title":        cert.Title,
		"organization": cert.Organization,
		"_id":          bson.M{"$ne": cert.ID},
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateCertification
	}

	cert.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": cert.ID}, cert)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCertification
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *certificationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByType aggregates record counts per certification type for the
// dashboard summary.
func (r *certificationRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Type  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(results))
	for _, res := range results {
		counts[res.Type] = res.Count
	}
	return counts, nil
}
