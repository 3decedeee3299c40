package services

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krct/facultydesk_backend/models"
)

func TestAnalyzeConferenceCertificate(t *testing.T) {
	analyzer := NewCertificateAnalyzer()

	analysis, err := analyzer.Analyze("IEEE_Conference_2023.pdf")
	require.NoError(t, err)

	assert.Equal(t, "IEEE Conference 2023", analysis.Title)
	assert.Equal(t, models.CertTypeConference, analysis.Type)
	assert.Equal(t, "IEEE", analysis.Organization)
	assert.Equal(t, "3 days", analysis.Duration)
	assert.Equal(t, 95, analysis.Confidence)
	assert.Contains(t, analysis.Description, "Participated in")

	// Suggested date is a real day within the last three years
	date, err := time.Parse("2006-01-02", analysis.Date)
	require.NoError(t, err)
	assert.True(t, date.After(time.Now().AddDate(-3, 0, -1)))
	assert.True(t, date.Before(time.Now().AddDate(0, 0, 1)))
}

func TestAnalyzeTypeKeywords(t *testing.T) {
	analyzer := NewCertificateAnalyzer()

	tests := []struct {
		fileName string
		certType string
	}{
		{"nptel-workshop-completion.jpg", models.CertTypeWorkshop},
		{"faculty development program.pdf", models.CertTypeFDP},
		{"FDP_attendance.png", models.CertTypeFDP},
		{"springer journal publication.pdf", models.CertTypeJournal},
		{"research grant letter.pdf", models.CertTypeResearch},
		{"final year project guide.pdf", models.CertTypeProject},
		{"random_scan.pdf", models.CertTypeCertification},
	}

	for _, tt := range tests {
		analysis, err := analyzer.Analyze(tt.fileName)
		require.NoError(t, err, tt.fileName)
		assert.Equal(t, tt.certType, analysis.Type, tt.fileName)
	}
}

func TestAnalyzeUnknownFile(t *testing.T) {
	analyzer := NewCertificateAnalyzer()

	analysis, err := analyzer.Analyze("scan0042.png")
	require.NoError(t, err)

	assert.Equal(t, models.CertTypeCertification, analysis.Type)
	assert.Equal(t, "Professional Organization", analysis.Organization)
	assert.Equal(t, 70, analysis.Confidence)
}

func TestAnalyzeEmptyName(t *testing.T) {
	analyzer := NewCertificateAnalyzer()

	_, err := analyzer.Analyze("")
	assert.Error(t, err)
	_, err = analyzer.Analyze("   ")
	assert.Error(t, err)
}

func TestCleanFileName(t *testing.T) {
	assert.Equal(t, "IEEE Conference 2023", cleanFileName("IEEE_Conference_2023.pdf"))
	assert.Equal(t, "Aws Cloud Practitioner", cleanFileName("aws-cloud-practitioner.png"))
	assert.Equal(t, "Ugc Care Journal", cleanFileName("ugc.care.journal.pdf"))
}

func TestCleanFileNameHandlesMultibyteInitials(t *testing.T) {
	got := cleanFileName("école_polytechnique_séminaire.pdf")
	assert.Equal(t, "École Polytechnique Séminaire", got)
	assert.True(t, utf8.ValidString(got))
}
