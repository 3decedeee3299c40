package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "Dr. Priya Raman", SanitizeInput("  Dr. Priya Raman  "))
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", SanitizeInput("<script>alert(1)</script>"))
	assert.Equal(t, "line", SanitizeInput("line\x00\x1b"))
}

func TestSanitizeEmail(t *testing.T) {
	email, err := SanitizeEmail("  Priya.R@KRCT.ac.in ")
	assert.NoError(t, err)
	assert.Equal(t, "priya.r@krct.ac.in", email)

	_, err = SanitizeEmail("not-an-email")
	assert.Error(t, err)
	_, err = SanitizeEmail("")
	assert.Error(t, err)
}
