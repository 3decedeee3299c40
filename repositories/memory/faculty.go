package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/repositories"
)

type facultyRepository struct {
	table *facultyTable
}

var _ repositories.FacultyRepository = (*facultyRepository)(nil)

func NewFacultyRepository(db *DB) repositories.FacultyRepository {
	return &facultyRepository{table: db.faculty}
}

func (r *facultyRepository) Create(ctx context.Context, f *models.Faculty) error {
	r.table.Lock()
	defer r.table.Unlock()

	for _, row := range r.table.rows {
		if row.Email == f.Email {
			return repositories.ErrDuplicateEmail
		}
	}

	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now

	stored := *f
	r.table.rows = append(r.table.rows, &stored)
	return nil
}

func (r *facultyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Faculty, error) {
	r.table.RLock()
	defer r.table.RUnlock()

	for _, row := range r.table.rows {
		if row.ID == id {
			f := *row
			return &f, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *facultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	r.table.RLock()
	defer r.table.RUnlock()

	for _, row := range r.table.rows {
		if row.Email == email {
			f := *row
			return &f, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *facultyRepository) GetByResetToken(ctx context.Context, token string) (*models.Faculty, error) {
	r.table.RLock()
	defer r.table.RUnlock()

	for _, row := range r.table.rows {
		if row.ResetToken != "" && row.ResetToken == token {
			f := *row
			return &f, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *facultyRepository) GetAll(ctx context.Context) ([]models.Faculty, error) {
	r.table.RLock()
	defer r.table.RUnlock()

	faculty := make([]models.Faculty, 0, len(r.table.rows))
	for _, row := range r.table.rows {
		faculty = append(faculty, *row)
	}
	return faculty, nil
}

func (r *facultyRepository) Update(ctx context.Context, f *models.Faculty) error {
	r.table.Lock()
	defer r.table.Unlock()

	for i, row := range r.table.rows {
		if row.ID == f.ID {
			f.UpdatedAt = time.Now()
			stored := *f
			r.table.rows[i] = &stored
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *facultyRepository) Upsert(ctx context.Context, f *models.Faculty) error {
	r.table.Lock()
	defer r.table.Unlock()

	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.UpdatedAt = now

	stored := *f
	for i, row := range r.table.rows {
		if row.ID == f.ID {
			r.table.rows[i] = &stored
			return nil
		}
	}
	r.table.rows = append(r.table.rows, &stored)
	return nil
}
