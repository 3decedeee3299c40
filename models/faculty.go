// models/faculty.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile completion states, in the order the UI walks through them.
const (
	ProfileStateRegistered         = "registered"
	ProfileStateDepartmentSelected = "department_selected"
	ProfileStateComplete           = "profile_complete"
)

// Faculty roles
const (
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

// Faculty represents a staff member account with profile details
type Faculty struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FullName       string             `json:"fullName" bson:"fullName"`
	Email          string             `json:"email" bson:"email"`
	Username       string             `json:"username,omitempty" bson:"username,omitempty"`
	Password       string             `json:"-" bson:"password"` // bcrypt hash, never serialized
	Role           string             `json:"role" bson:"role"`  // "faculty" or "admin"
	Department     string             `json:"department,omitempty" bson:"department,omitempty"`
	Designation    string             `json:"designation,omitempty" bson:"designation,omitempty"`
	FacultyCode    string             `json:"facultyCode,omitempty" bson:"facultyCode,omitempty"`
	Specialization string             `json:"specialization,omitempty" bson:"specialization,omitempty"`
	Experience     string             `json:"experience,omitempty" bson:"experience,omitempty"`
	Qualification  string             `json:"qualification,omitempty" bson:"qualification,omitempty"`
	Bio            string             `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfilePhoto   string             `json:"profilePhoto,omitempty" bson:"profilePhoto,omitempty"`
	JoinDate       string             `json:"joinDate,omitempty" bson:"joinDate,omitempty"`
	ResetToken     string             `json:"-" bson:"resetToken,omitempty"`
	ResetExpiry    time.Time          `json:"-" bson:"resetExpiry,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProfileState reports how far the account has progressed through profile
// setup. The check is recomputed from the stored document on every call so an
// external edit takes effect on the next request.
func (f *Faculty) ProfileState() string {
	if f.Department == "" {
		return ProfileStateRegistered
	}
	if f.FullName == "" || f.Email == "" || f.Designation == "" {
		return ProfileStateDepartmentSelected
	}
	return ProfileStateComplete
}

// NextProfileStep returns the route the UI should send an incomplete account to.
func (f *Faculty) NextProfileStep() string {
	switch f.ProfileState() {
	case ProfileStateRegistered:
		return "/select-department"
	case ProfileStateDepartmentSelected:
		return "/complete-profile"
	default:
		return "/dashboard"
	}
}

// Response model shared by every endpoint
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
