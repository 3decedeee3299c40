// Package memory holds in-memory store implementations with the same
// contract as the Mongo repositories. Handler tests run against these so no
// database is needed.
package memory

import (
	"sync"

	"github.com/krct/facultydesk_backend/models"
)

type DB struct {
	faculty       *facultyTable
	certification *certificationTable
	circular      *circularTable
	notification  *notificationTable
}

type facultyTable struct {
	sync.RWMutex
	rows []*models.Faculty
}

type certificationTable struct {
	sync.RWMutex
	rows []*models.Certification
}

type circularTable struct {
	sync.RWMutex
	rows []*models.Circular
}

type notificationTable struct {
	sync.RWMutex
	rows []*models.Notification
}

// Open creates an empty in-memory database
func Open() *DB {
	return &DB{
		faculty:       &facultyTable{},
		certification: &certificationTable{},
		circular:      &circularTable{},
		notification:  &notificationTable{},
	}
}
