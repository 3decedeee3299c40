package memory

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/repositories"
	"github.com/krct/facultydesk_backend/utils"
)

type circularRepository struct {
	table *circularTable
}

var _ repositories.CircularRepository = (*circularRepository)(nil)

func NewCircularRepository(db *DB) repositories.CircularRepository {
	return &circularRepository{table: db.circular}
}

func (r *circularRepository) Create(ctx context.Context, circular *models.Circular) error {
	r.table.Lock()
	defer r.table.Unlock()

	if circular.ID.IsZero() {
		circular.ID = primitive.NewObjectID()
	}
	now := time.Now()
	circular.CreatedAt = now
	circular.UpdatedAt = now

	stored := *circular
	r.table.rows = append(r.table.rows, &stored)
	return nil
}

func (r *circularRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Circular, error) {
	r.table.RLock()
	defer r.table.RUnlock()

	for _, row := range r.table.rows {
		if row.ID == id {
			circular := *row
			return &circular, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *circularRepository) List(ctx context.Context, filter repositories.CircularFilter) ([]models.Circular, error) {
	r.table.RLock()
	defer r.table.RUnlock()

	circulars := []models.Circular{}
	search := strings.ToLower(filter.Search)
	for _, row := range r.table.rows {
		if filter.PinnedOnly && !row.IsPinned {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(row.Heading), search) &&
			!strings.Contains(strings.ToLower(row.Body), search) {
			continue
		}
		circulars = append(circulars, *row)
	}

	utils.SortPinnedNewest(circulars)
	return circulars, nil
}

func (r *circularRepository) Update(ctx context.Context, circular *models.Circular) error {
	r.table.Lock()
	defer r.table.Unlock()

	for i, row := range r.table.rows {
		if row.ID == circular.ID {
			circular.UpdatedAt = time.Now()
			stored := *circular
			r.table.rows[i] = &stored
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *circularRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.table.Lock()
	defer r.table.Unlock()

	for i, row := range r.table.rows {
		if row.ID == id {
			r.table.rows = append(r.table.rows[:i], r.table.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}
