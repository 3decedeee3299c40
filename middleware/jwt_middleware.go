// middleware/jwt_middleware.go
package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/krct/facultydesk_backend/config"
	"github.com/krct/facultydesk_backend/models"
)

const tokenLifetime = 72 * time.Hour

// JwtCustomClaims for JWT token
type JwtCustomClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// GetJWTSecret returns the JWT secret from environment variables
func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET environment variable is required")
	}
	return secret
}

// Revoked tokens live in Redis when available so revocation survives a
// restart; the in-memory map is the fallback for development setups.
var (
	revokedMu     sync.RWMutex
	revokedTokens = make(map[string]time.Time)
)

// RevokeToken invalidates a token until its natural expiry
func RevokeToken(token string, expiry time.Time) {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		ttl = time.Hour
	}

	if rdb := config.GetRedisClient(); rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Set(ctx, "revoked:"+token, "1", ttl).Err(); err == nil {
			return
		}
		log.Printf("Failed to store revoked token in Redis, falling back to memory")
	}

	revokedMu.Lock()
	revokedTokens[token] = expiry
	revokedMu.Unlock()
}

// IsTokenRevoked checks whether a token has been revoked via logout
func IsTokenRevoked(token string) bool {
	if rdb := config.GetRedisClient(); rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if n, err := rdb.Exists(ctx, "revoked:"+token).Result(); err == nil && n > 0 {
			return true
		}
	}

	revokedMu.RLock()
	defer revokedMu.RUnlock()
	_, exists := revokedTokens[token]
	return exists
}

// CleanupRevokedTokens periodically drops expired entries from the in-memory
// fallback store
func CleanupRevokedTokens() {
	for {
		time.Sleep(1 * time.Hour)
		now := time.Now()
		revokedMu.Lock()
		for token, expiry := range revokedTokens {
			if now.After(expiry) {
				delete(revokedTokens, token)
			}
		}
		revokedMu.Unlock()
	}
}

// JWTMiddleware returns a configured JWT middleware
func JWTMiddleware() echo.MiddlewareFunc {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("Warning: JWT_SECRET environment variable is not set")
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusUnauthorized, "JWT configuration error")
			}
		}
	}

	return middleware.JWTWithConfig(middleware.JWTConfig{
		// Revocation has to be checked inside the parse step: an error here
		// stops the chain, whereas SuccessHandler cannot prevent the handler
		// from running.
		ParseTokenFunc: func(auth string, c echo.Context) (interface{}, error) {
			token, err := jwt.ParseWithClaims(auth, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil {
				return nil, err
			}
			if !token.Valid {
				return nil, errors.New("token is not valid")
			}
			if IsTokenRevoked(auth) {
				return nil, errors.New("token has been invalidated")
			}
			return token, nil
		},
		SuccessHandler: func(c echo.Context) {
			user := c.Get("user").(*jwt.Token)
			claims := user.Claims.(*JwtCustomClaims)
			c.Set("userId", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("email", claims.Email)
		},
		ErrorHandler: func(err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Please provide valid credentials")
		},
	})
}

// RequireAdmin rejects callers whose token does not carry the admin role
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetUserFromToken(c)
			if claims == nil || claims.Role != models.RoleAdmin {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Success: false,
					Error:   "Admin access required",
				})
			}
			return next(c)
		}
	}
}

// GenerateJWT creates a signed token for the account
func GenerateJWT(userID, email, role string) (string, error) {
	claims := &JwtCustomClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET environment variable is required")
	}
	return token.SignedString([]byte(secret))
}

// ParseToken validates a raw token string and returns its claims. Used by the
// websocket handshake, which cannot go through the HTTP middleware.
func ParseToken(tokenString string) (*JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(GetJWTSecret()), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if IsTokenRevoked(tokenString) {
		return nil, errors.New("token has been invalidated")
	}
	return claims, nil
}

// GetUserFromToken extracts user claims from the request's JWT token
func GetUserFromToken(c echo.Context) *JwtCustomClaims {
	user := c.Get("user")
	if user == nil {
		return nil
	}

	token, ok := user.(*jwt.Token)
	if !ok {
		return nil
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// GetUserIDFromToken returns the caller's id, or an empty string when the
// request is unauthenticated
func GetUserIDFromToken(c echo.Context) string {
	if userID, ok := c.Get("userId").(string); ok && userID != "" {
		return userID
	}

	claims := GetUserFromToken(c)
	if claims != nil {
		return claims.UserID
	}
	return ""
}
