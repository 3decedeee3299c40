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

type certificationRepository struct {
	table *certificationTable
}

var _ repositories.CertificationRepository = (*certificationRepository)(nil)

func NewCertificationRepository(db *DB) repositories.CertificationRepository {
	return &certificationRepository{table: db.certification}
}

func (r *certificationRepository) Create(ctx context.Context, cert *models.Certification) error {
	r.table.Lock()
	defer r.table.Unlock()

	// Duplicate rule is global: the pair is checked across all owners.
	for _, row := range r.table.rows {
		if row.Title == cert.Title && row.Organization == cert.Organization {
			return repositories.ErrDuplicateCertification
		}
	}

	if cert.ID.IsZero() {
		cert.ID = primitive.NewObjectID()
	}
	now := time.Now()
	cert.CreatedAt = now
	cert.UpdatedAt = now

	stored := *cert
	r.table.rows = append(r.table.rows, &stored)
	return nil
}

func (r *certificationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Certification, error) {
	r.table.RLock()
	defer r.table.RUnlock()

	for _, row := range r.table.rows {
		if row.ID == id {
			cert := *row
			return &cert, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *certificationRepository) List(ctx context.Context, filter repositories.CertificationFilter) ([]models.Certification, error) {
	r.table.RLock()
	defer r.table.RUnlock()

	certs := []models.Certification{}
	search := strings.ToLower(filter.Search)
	for _, row := range r.table.rows {
		if filter.Type != "" && row.Type != filter.Type {
			continue
		}
		if !filter.FacultyID.IsZero() && row.FacultyID != filter.FacultyID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(row.Title), search) &&
			!strings.Contains(strings.ToLower(row.Organization), search) {
			continue
		}
		certs = append(certs, *row)
	}

	utils.SortPinnedNewest(certs)
	return certs, nil
}

func (r *certificationRepository) Update(ctx context.Context, cert *models.Certification) error {
	r.table.Lock()
	defer r.table.Unlock()

	for _, row := range r.table.rows {
		if row.ID != cert.ID && row.Title == cert.Title && row.Organization == cert.Organization {
			return repositories.ErrDuplicateCertification
		}
	}

	for i, row := range r.table.rows {
		if row.ID == cert.ID {
			cert.UpdatedAt = time.Now()
			stored := *cert
			r.table.rows[i] = &stored
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *certificationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
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

func (r *certificationRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	r.table.RLock()
	defer r.table.RUnlock()

	counts := map[string]int64{}
	for _, row := range r.table.rows {
		counts[row.Type]++
	}
	return counts, nil
}
