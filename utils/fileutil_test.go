package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(name, contentType string) *multipart.FileHeader {
	header := &multipart.FileHeader{Filename: name, Header: textproto.MIMEHeader{}}
	if contentType != "" {
		header.Header.Set("Content-Type", contentType)
	}
	return header
}

func TestDetectCertificateContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        string
	}{
		{"scan.pdf", "application/pdf", "application/pdf"},
		{"photo.jpg", "image/jpeg; charset=binary", "image/jpeg"},
		{"photo.JPG", "application/octet-stream", "image/jpeg"},
		{"scan.pdf", "", "application/pdf"},
		{"notes.txt", "text/plain", ""},
	}

	for _, tt := range tests {
		got := DetectCertificateContentType(fileHeader(tt.name, tt.contentType))
		assert.Equal(t, tt.want, got, "%s (%s)", tt.name, tt.contentType)
	}
}

func TestValidateCertificateFile(t *testing.T) {
	assert.NoError(t, ValidateCertificateFile("image/jpeg", 1024))
	assert.NoError(t, ValidateCertificateFile("application/pdf", MaxCertificateFileSize))

	assert.ErrorIs(t, ValidateCertificateFile("text/plain", 1024), ErrInvalidFileType)
	assert.ErrorIs(t, ValidateCertificateFile("", 1024), ErrInvalidFileType)
	assert.ErrorIs(t, ValidateCertificateFile("image/png", MaxCertificateFileSize+1), ErrFileTooLarge)
}

func TestSaveCertificateFileRejectedBeforeWrite(t *testing.T) {
	dir := t.TempDir()

	_, err := SaveCertificateFile(dir, []byte("plain text"), "text/plain")
	assert.ErrorIs(t, err, ErrInvalidFileType)

	// A rejected upload must leave the store untouched
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestSaveAndDeleteCertificateFile(t *testing.T) {
	dir := t.TempDir()

	url, err := SaveCertificateFile(dir, []byte("%PDF-1.4 fake"), "application/pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/certificates/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	stored := filepath.Join(dir, "certificates", filepath.Base(url))
	_, err = os.Stat(stored)
	require.NoError(t, err)

	require.NoError(t, DeleteCertificateFile(dir, url))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	// Second delete reports the file as gone
	err = DeleteCertificateFile(dir, url)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteCertificateFileRejectsForeignPath(t *testing.T) {
	err := DeleteCertificateFile(t.TempDir(), "/etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestCreateImageThumbnail(t *testing.T) {
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	for x := 0; x < 640; x++ {
		for y := 0; y < 480; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 255), G: uint8(y % 255), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	url, err := SaveCertificateFile(dir, buf.Bytes(), "image/png")
	require.NoError(t, err)

	thumbURL, err := CreateImageThumbnail(dir, url)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(thumbURL, "/uploads/thumbnails/"))

	_, err = os.Stat(filepath.Join(dir, "thumbnails", filepath.Base(thumbURL)))
	assert.NoError(t, err)
}

func TestCreateImageThumbnailSkipsPDF(t *testing.T) {
	thumbURL, err := CreateImageThumbnail(t.TempDir(), "/uploads/certificates/scan.pdf")
	require.NoError(t, err)
	assert.Empty(t, thumbURL)
}
