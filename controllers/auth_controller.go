// controllers/auth_controller.go
package controllers

import (
	"crypto/rand"
	"encoding/base32"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/krct/facultydesk_backend/middleware"
	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/repositories"
	"github.com/krct/facultydesk_backend/services"
	"github.com/krct/facultydesk_backend/utils"
)

const resetTokenLifetime = 15 * time.Minute

// AuthController handles account creation and credential flows
type AuthController struct {
	faculty repositories.FacultyRepository
	mailer  services.Mailer
}

// NewAuthController creates a new auth controller
func NewAuthController(faculty repositories.FacultyRepository, mailer services.Mailer) *AuthController {
	return &AuthController{faculty: faculty, mailer: mailer}
}

// Register creates a faculty account with generated credentials. The password
// is never returned; it goes to the new account's email out-of-band.
func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Full name and a valid email are required",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid email format",
		})
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to generate credentials",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to secure credentials",
		})
	}

	role := req.Role
	if role != models.RoleAdmin {
		role = models.RoleFaculty
	}

	faculty := &models.Faculty{
		FullName:    utils.SanitizeInput(req.FullName),
		Email:       email,
		Username:    utils.SanitizeInput(req.Username),
		Password:    string(hashed),
		Role:        role,
		Department:  utils.SanitizeInput(req.Department),
		Designation: utils.SanitizeInput(req.Designation),
		FacultyCode: utils.SanitizeInput(req.FacultyCode),
	}

	if err := ac.faculty.Create(c.Request().Context(), faculty); err != nil {
		if err == repositories.ErrDuplicateEmail {
			return c.JSON(http.StatusConflict, models.Response{
				Success: false,
				Error:   "An account with this email already exists",
			})
		}
		log.Printf("Error creating faculty account: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to create account",
		})
	}

	// Credentials go out in the background; delivery failures are logged by
	// the mailer, not surfaced here.
	ac.mailer.Send(faculty.Email, "Your Faculty Portal Account",
		services.CredentialsEmailBody(faculty.FullName, faculty.Email, tempPassword))

	return c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Account created. Credentials have been emailed.",
		Data:    faculty,
	})
}

// Login verifies credentials and issues a JWT
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Email and password are required",
		})
	}

	faculty, err := ac.faculty.GetByEmail(c.Request().Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid email or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(faculty.Password), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid email or password",
		})
	}

	token, err := middleware.GenerateJWT(faculty.ID.Hex(), faculty.Email, faculty.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: models.LoginResponse{
			Token:   token,
			Faculty: faculty,
		},
	})
}

// Logout revokes the caller's token until its natural expiry
func (ac *AuthController) Logout(c echo.Context) error {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	claims := middleware.GetUserFromToken(c)
	expiry := time.Now().Add(time.Hour)
	if claims != nil && claims.ExpiresAt > 0 {
		expiry = time.Unix(claims.ExpiresAt, 0)
	}
	middleware.RevokeToken(user.Raw, expiry)

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged out",
	})
}

// ChangePassword verifies the current password and stores a new one
func (ac *AuthController) ChangePassword(c echo.Context) error {
	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Current password and a new password of at least 8 characters are required",
		})
	}

	faculty, err := currentFaculty(c, ac.faculty)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(faculty.Password), []byte(req.CurrentPassword)); err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Current password is incorrect",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to secure new password",
		})
	}

	faculty.Password = string(hashed)
	if err := ac.faculty.Update(c.Request().Context(), faculty); err != nil {
		log.Printf("Error updating password: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to update password",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Password changed successfully",
	})
}

// ForgotPassword emails a time-limited reset token
func (ac *AuthController) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Email is required",
		})
	}

	faculty, err := ac.faculty.GetByEmail(c.Request().Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "No account associated with this email",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to check account",
		})
	}

	faculty.ResetToken = uuid.New().String()
	faculty.ResetExpiry = time.Now().Add(resetTokenLifetime)
	if err := ac.faculty.Update(c.Request().Context(), faculty); err != nil {
		log.Printf("Error saving reset token: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save reset information",
		})
	}

	resetLink := baseURL() + "/reset-password?token=" + faculty.ResetToken
	ac.mailer.Send(faculty.Email, "Password Reset Request",
		services.PasswordResetEmailBody(faculty.FullName, resetLink))

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Password reset instructions sent",
		Data: map[string]interface{}{
			"email": maskEmail(faculty.Email),
		},
	})
}

// ResetPassword consumes a reset token and stores the new password
func (ac *AuthController) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Token and a new password of at least 8 characters are required",
		})
	}

	faculty, err := ac.faculty.GetByResetToken(c.Request().Context(), req.Token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid or expired reset token",
		})
	}
	if time.Now().After(faculty.ResetExpiry) {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid or expired reset token",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to secure new password",
		})
	}

	faculty.Password = string(hashed)
	faculty.ResetToken = ""
	faculty.ResetExpiry = time.Time{}
	if err := ac.faculty.Update(c.Request().Context(), faculty); err != nil {
		log.Printf("Error resetting password: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to reset password",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Password reset successfully",
	})
}

// generateTempPassword creates a random 12-character credential
func generateTempPassword() (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	return encoded[:12], nil
}

// maskEmail hides most of the local part for UI display
func maskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 2 {
		return email
	}
	return email[:2] + strings.Repeat("*", at-2) + email[at:]
}

func baseURL() string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return strings.TrimSuffix(base, "/")
}
