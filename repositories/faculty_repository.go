// repositories/faculty_repository.go
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

type facultyRepository struct {
	collection *mongo.Collection
}

var _ FacultyRepository = (*facultyRepository)(nil)

// NewFacultyRepository creates a Mongo-backed faculty store
func NewFacultyRepository(db *mongo.Database) FacultyRepository {
	return &facultyRepository{collection: db.Collection("faculty")}
}

func (r *facultyRepository) Create(ctx context.Context, f *models.Faculty) error {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, f)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *facultyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Faculty, error) {
	var f models.Faculty
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *facultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	var f models.Faculty
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *facultyRepository) GetByResetToken(ctx context.Context, token string) (*models.Faculty, error) {
	var f models.Faculty
	err := r.collection.FindOne(ctx, bson.M{"resetToken": token}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *facultyRepository) GetAll(ctx context.Context) ([]models.Faculty, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "fullName", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	faculty := []models.Faculty{}
	if err := cursor.All(ctx, &faculty); err != nil {
		return nil, err
	}
	return faculty, nil
}

func (r *facultyRepository) Update(ctx context.Context, f *models.Faculty) error {
	f.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *facultyRepository) Upsert(ctx context.Context, f *models.Faculty) error {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.UpdatedAt = now

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": f.ID}, f, options.Replace().SetUpsert(true))
	return err
}
