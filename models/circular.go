// models/circular.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Circular is an admin-broadcast announcement visible to all staff
type Circular struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Heading   string             `json:"heading" bson:"heading"`
	Body      string             `json:"body" bson:"body"`
	AdminNote string             `json:"adminNote,omitempty" bson:"adminNote,omitempty"`
	IsPinned  bool               `json:"isPinned" bson:"isPinned"`
	CreatedBy primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PinSortKey implements utils.PinSortable
func (c Circular) PinSortKey() (bool, time.Time) {
	return c.IsPinned, c.CreatedAt
}

// CircularRequest is the create/update request body
type CircularRequest struct {
	Heading   string `json:"heading" validate:"required"`
	Body      string `json:"body" validate:"required"`
	AdminNote string `json:"adminNote,omitempty"`
}
