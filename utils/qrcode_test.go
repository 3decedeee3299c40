package utils

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode("http://localhost:8080/faculty/64f1c0ffee", 200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestGenerateQRCodeTooSmall(t *testing.T) {
	// Scaling below the symbol's module count fails
	_, err := GenerateQRCode("http://localhost:8080/faculty/64f1c0ffee", 2)
	assert.Error(t, err)
}
