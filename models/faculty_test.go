package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileState(t *testing.T) {
	f := &Faculty{}
	assert.Equal(t, ProfileStateRegistered, f.ProfileState())
	assert.Equal(t, "/select-department", f.NextProfileStep())

	f.Department = "Computer Science"
	assert.Equal(t, ProfileStateDepartmentSelected, f.ProfileState())
	assert.Equal(t, "/complete-profile", f.NextProfileStep())

	f.FullName = "Dr. Priya Raman"
	f.Email = "priya.r@krct.ac.in"
	assert.Equal(t, ProfileStateDepartmentSelected, f.ProfileState())

	f.Designation = "Associate Professor"
	assert.Equal(t, ProfileStateComplete, f.ProfileState())
	assert.Equal(t, "/dashboard", f.NextProfileStep())
}

func TestFacultyPasswordNeverSerialized(t *testing.T) {
	f := &Faculty{
		FullName:   "Dr. Priya Raman",
		Email:      "priya.r@krct.ac.in",
		Password:   "$2a$10$secret-hash",
		ResetToken: "reset-token",
	}

	data, err := json.Marshal(f)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "secret-hash")
	assert.NotContains(t, string(data), "reset-token")
}
