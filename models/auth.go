// models/auth.go

package models

// RegisterRequest creates a faculty account. Credentials are generated
// server-side and sent to the new account's email, never returned in the
// response.
type RegisterRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username,omitempty"`
	Department  string `json:"department,omitempty"`
	Designation string `json:"designation,omitempty"`
	FacultyCode string `json:"facultyCode,omitempty"`
	Role        string `json:"role,omitempty"` // defaults to "faculty"
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token   string   `json:"token"`
	Faculty *Faculty `json:"faculty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// UpdateProfileRequest is the profile form body. Name, email, department and
// designation are the fields the completion gate checks.
type UpdateProfileRequest struct {
	FullName       string `json:"fullName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Department     string `json:"department" validate:"required"`
	Designation    string `json:"designation" validate:"required"`
	FacultyCode    string `json:"facultyCode,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Experience     string `json:"experience,omitempty"`
	Qualification  string `json:"qualification,omitempty"`
	Bio            string `json:"bio,omitempty"`
	ProfilePhoto   string `json:"profilePhoto,omitempty"`
	JoinDate       string `json:"joinDate,omitempty"`
}
