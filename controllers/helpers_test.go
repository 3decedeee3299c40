package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/middleware"
	"github.com/krct/facultydesk_backend/models"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// newJSONContext builds a request context the way the router would, minus the
// middleware chain
func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authenticate stamps the context with the claims the JWT middleware would
// have set after verifying a token
func authenticate(c echo.Context, id primitive.ObjectID, role string) {
	claims := &middleware.JwtCustomClaims{
		UserID: id.Hex(),
		Email:  "user@krct.ac.in",
		Role:   role,
	}
	c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, claims))
	c.Set("userId", claims.UserID)
	c.Set("role", claims.Role)
	c.Set("email", claims.Email)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// decodeData re-marshals the envelope's data field into a concrete type
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	resp := decodeResponse(t, rec)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// fakeMailer records outgoing mail instead of talking to SMTP
type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) Send(to, subject, body string) <-chan error {
	m.mu.Lock()
	m.sent = append(m.sent, to)
	m.mu.Unlock()

	result := make(chan error, 1)
	result <- nil
	return result
}

func (m *fakeMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}
