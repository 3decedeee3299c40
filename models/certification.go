// models/certification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Certification types accepted by the create/update endpoints
const (
	CertTypeConference    = "conference"
	CertTypeFDP           = "fdp"
	CertTypeJournal       = "journal"
	CertTypeResearch      = "research"
	CertTypeSeminar       = "seminar"
	CertTypeProject       = "project"
	CertTypeWorkshop      = "workshop"
	CertTypeCertification = "certification"
)

var certificationTypes = map[string]bool{
	CertTypeConference:    true,
	CertTypeFDP:           true,
	CertTypeJournal:       true,
	CertTypeResearch:      true,
	CertTypeSeminar:       true,
	CertTypeProject:       true,
	CertTypeWorkshop:      true,
	CertTypeCertification: true,
}

// IsValidCertificationType checks a type value against the fixed enum
func IsValidCertificationType(t string) bool {
	return certificationTypes[t]
}

// Certification is a staff-submitted professional development record
type Certification struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Type            string             `json:"type" bson:"type"`
	Organization    string             `json:"organization" bson:"organization"`
	Date            string             `json:"date" bson:"date"`
	Duration        string             `json:"duration,omitempty" bson:"duration,omitempty"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	CertificateFile string             `json:"certificateFile,omitempty" bson:"certificateFile,omitempty"`
	IsPinned        bool               `json:"isPinned" bson:"isPinned"`
	FacultyID       primitive.ObjectID `json:"createdBy" bson:"facultyId"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PinSortKey implements utils.PinSortable
func (c Certification) PinSortKey() (bool, time.Time) {
	return c.IsPinned, c.CreatedAt
}

// CertificationRequest is the create/update request body
type CertificationRequest struct {
	Title           string `json:"title" validate:"required"`
	Type            string `json:"type" validate:"required"`
	Organization    string `json:"organization" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Duration        string `json:"duration,omitempty"`
	Description     string `json:"description,omitempty"`
	CertificateFile string `json:"certificateFile,omitempty"`
}

// CertificateAnalysis is the heuristic pre-fill derived from an uploaded file.
// It is a best guess only; the user confirms or edits every field before the
// record is saved.
type CertificateAnalysis struct {
	Title        string `json:"title"`
	Type         string `json:"type"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	Duration     string `json:"duration,omitempty"`
	Description  string `json:"description,omitempty"`
	Confidence   int    `json:"confidence"`
}
