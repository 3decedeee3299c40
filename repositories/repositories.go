// repositories/repositories.go
package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/models"
)

// Sentinel errors shared by every store implementation. Controllers map these
// onto HTTP statuses (404, 409) instead of matching error strings.
var (
	ErrNotFound               = errors.New("record not found")
	ErrDuplicateEmail         = errors.New("an account with this email already exists")
	ErrDuplicateCertification = errors.New("a certification with this title and organization already exists")
)

// CertificationFilter narrows certification lists. Zero values mean "any".
type CertificationFilter struct {
	Type      string
	FacultyID primitive.ObjectID
	Search    string
}

// CircularFilter narrows circular lists.
type CircularFilter struct {
	Search     string
	PinnedOnly bool
}

// FacultyRepository persists faculty accounts.
type FacultyRepository interface {
	Create(ctx context.Context, f *models.Faculty) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Faculty, error)
	GetByEmail(ctx context.Context, email string) (*models.Faculty, error)
	GetByResetToken(ctx context.Context, token string) (*models.Faculty, error)
	GetAll(ctx context.Context) ([]models.Faculty, error)
	Update(ctx context.Context, f *models.Faculty) error
	// Upsert writes the document under its ID, creating it when missing.
	// Profile updates use this so a login without a profile record still works.
	Upsert(ctx context.Context, f *models.Faculty) error
}

// CertificationRepository persists professional development records.
// List results come back pinned-first, newest-first.
type CertificationRepository interface {
	Create(ctx context.Context, cert *models.Certification) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Certification, error)
	List(ctx context.Context, filter CertificationFilter) ([]models.Certification, error)
	Update(ctx context.Context, cert *models.Certification) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByType(ctx context.Context) (map[string]int64, error)
}

// CircularRepository persists admin broadcasts. List results come back
// pinned-first, newest-first.
type CircularRepository interface {
	Create(ctx context.Context, circular *models.Circular) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Circular, error)
	List(ctx context.Context, filter CircularFilter) ([]models.Circular, error)
	Update(ctx context.Context, circular *models.Circular) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// NotificationRepository persists per-user notifications. The sentinel target
// models.NotificationTargetAll is resolved at read time by ListForUser and
// UnreadCount.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListForUser(ctx context.Context, userID string) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id primitive.ObjectID, userID string) error
}
