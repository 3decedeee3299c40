package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/repositories"
	"github.com/krct/facultydesk_backend/repositories/memory"
)

func newCertificationFixture() (*CertificationController, repositories.CertificationRepository) {
	repo := memory.NewCertificationRepository(memory.Open())
	return NewCertificationController(repo), repo
}

func TestCreateCertificationMissingDate(t *testing.T) {
	e := newTestEcho()
	controller, repo := newCertificationFixture()
	owner := primitive.NewObjectID()

	c, rec := newJSONContext(e, http.MethodPost, "/api/certifications",
		`{"title":"Deep Learning Workshop","type":"workshop","organization":"NPTEL"}`)
	authenticate(c, owner, models.RoleFaculty)

	require.NoError(t, controller.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeResponse(t, rec).Success)

	// The store stays untouched on validation failure
	certs, err := repo.List(context.Background(), repositories.CertificationFilter{})
	require.NoError(t, err)
	assert.Empty(t, certs)
}

func TestCreateCertificationInvalidType(t *testing.T) {
	e := newTestEcho()
	controller, _ := newCertificationFixture()

	c, rec := newJSONContext(e, http.MethodPost, "/api/certifications",
		`{"title":"Some Event","type":"webinar","organization":"IEEE","date":"2024-01-15"}`)
	authenticate(c, primitive.NewObjectID(), models.RoleFaculty)

	require.NoError(t, controller.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCertificationDuplicateAcrossOwners(t *testing.T) {
	e := newTestEcho()
	controller, repo := newCertificationFixture()

	body := `{"title":"Machine Learning FDP","type":"fdp","organization":"AICTE","date":"2024-03-10"}`

	c, rec := newJSONContext(e, http.MethodPost, "/api/certifications", body)
	authenticate(c, primitive.NewObjectID(), models.RoleFaculty)
	require.NoError(t, controller.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// A different owner submitting the same title and organization hits the
	// same duplicate rule
	c, rec = newJSONContext(e, http.MethodPost, "/api/certifications", body)
	authenticate(c, primitive.NewObjectID(), models.RoleFaculty)
	require.NoError(t, controller.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	certs, err := repo.List(context.Background(), repositories.CertificationFilter{})
	require.NoError(t, err)
	assert.Len(t, certs, 1)
}

func TestCertificationOwnership(t *testing.T) {
	e := newTestEcho()
	controller, repo := newCertificationFixture()
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	cert := &models.Certification{
		Title:        "Cloud Computing Seminar",
		Type:         models.CertTypeSeminar,
		Organization: "CSI",
		Date:         "2024-05-02",
		FacultyID:    owner,
	}
	require.NoError(t, repo.Create(context.Background(), cert))

	updateBody := `{"title":"Cloud Computing Seminar","type":"seminar","organization":"CSI","date":"2024-05-03"}`

	// A non-owner cannot tell the record exists
	c, rec := newJSONContext(e, http.MethodPut, "/", updateBody)
	c.SetParamNames("id")
	c.SetParamValues(cert.ID.Hex())
	authenticate(c, other, models.RoleFaculty)
	require.NoError(t, controller.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newJSONContext(e, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(cert.ID.Hex())
	authenticate(c, other, models.RoleFaculty)
	require.NoError(t, controller.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	stored, err := repo.GetByID(context.Background(), cert.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", stored.Date)

	// The owner can edit
	c, rec = newJSONContext(e, http.MethodPut, "/", updateBody)
	c.SetParamNames("id")
	c.SetParamValues(cert.ID.Hex())
	authenticate(c, owner, models.RoleFaculty)
	require.NoError(t, controller.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// So can an admin
	c, rec = newJSONContext(e, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(cert.ID.Hex())
	authenticate(c, primitive.NewObjectID(), models.RoleAdmin)
	require.NoError(t, controller.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCertificationPinOrdering(t *testing.T) {
	e := newTestEcho()
	controller, repo := newCertificationFixture()
	owner := primitive.NewObjectID()

	older := &models.Certification{
		Title:        "Data Structures Workshop",
		Type:         models.CertTypeWorkshop,
		Organization: "ISTE",
		Date:         "2023-11-20",
		FacultyID:    owner,
	}
	require.NoError(t, repo.Create(context.Background(), older))
	time.Sleep(2 * time.Millisecond)

	newer := &models.Certification{
		Title:        "IoT Conference",
		Type:         models.CertTypeConference,
		Organization: "IEEE",
		Date:         "2024-06-11",
		FacultyID:    owner,
	}
	require.NoError(t, repo.Create(context.Background(), newer))

	// Newest first while nothing is pinned
	c, rec := newJSONContext(e, http.MethodGet, "/api/certifications", "")
	authenticate(c, owner, models.RoleFaculty)
	require.NoError(t, controller.List(c))
	var certs []models.Certification
	decodeData(t, rec, &certs)
	require.Len(t, certs, 2)
	assert.Equal(t, newer.ID, certs[0].ID)

	// Pinning the older record moves it to the top regardless of date
	c, rec = newJSONContext(e, http.MethodPatch, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(older.ID.Hex())
	authenticate(c, owner, models.RoleFaculty)
	require.NoError(t, controller.TogglePin(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = newJSONContext(e, http.MethodGet, "/api/certifications", "")
	authenticate(c, owner, models.RoleFaculty)
	require.NoError(t, controller.List(c))
	decodeData(t, rec, &certs)
	require.Len(t, certs, 2)
	assert.Equal(t, older.ID, certs[0].ID)
	assert.True(t, certs[0].IsPinned)

	// Unpinning restores date order
	c, _ = newJSONContext(e, http.MethodPatch, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(older.ID.Hex())
	authenticate(c, owner, models.RoleFaculty)
	require.NoError(t, controller.TogglePin(c))

	c, rec = newJSONContext(e, http.MethodGet, "/api/certifications", "")
	authenticate(c, owner, models.RoleFaculty)
	require.NoError(t, controller.List(c))
	decodeData(t, rec, &certs)
	assert.Equal(t, newer.ID, certs[0].ID)
}

func TestListCertificationsFilters(t *testing.T) {
	e := newTestEcho()
	controller, repo := newCertificationFixture()
	mine := primitive.NewObjectID()
	theirs := primitive.NewObjectID()

	seed := []*models.Certification{
		{Title: "IEEE Conference 2024", Type: models.CertTypeConference, Organization: "IEEE", Date: "2024-02-01", FacultyID: mine},
		{Title: "Python FDP", Type: models.CertTypeFDP, Organization: "AICTE", Date: "2024-04-12", FacultyID: mine},
		{Title: "Robotics Workshop", Type: models.CertTypeWorkshop, Organization: "NPTEL", Date: "2024-05-20", FacultyID: theirs},
	}
	for _, cert := range seed {
		require.NoError(t, repo.Create(context.Background(), cert))
	}

	var certs []models.Certification

	c, rec := newJSONContext(e, http.MethodGet, "/api/certifications?mine=true", "")
	authenticate(c, mine, models.RoleFaculty)
	require.NoError(t, controller.List(c))
	decodeData(t, rec, &certs)
	assert.Len(t, certs, 2)

	c, rec = newJSONContext(e, http.MethodGet, "/api/certifications?type=workshop", "")
	authenticate(c, mine, models.RoleFaculty)
	require.NoError(t, controller.List(c))
	decodeData(t, rec, &certs)
	require.Len(t, certs, 1)
	assert.Equal(t, "Robotics Workshop", certs[0].Title)

	c, rec = newJSONContext(e, http.MethodGet, "/api/certifications?search=ieee", "")
	authenticate(c, mine, models.RoleFaculty)
	require.NoError(t, controller.List(c))
	decodeData(t, rec, &certs)
	require.Len(t, certs, 1)
	assert.Equal(t, "IEEE Conference 2024", certs[0].Title)

	c, rec = newJSONContext(e, http.MethodGet, "/api/certifications?type=webinar", "")
	authenticate(c, mine, models.RoleFaculty)
	require.NoError(t, controller.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
