// utils/fileutil.go
package utils

import (
	"errors"
	"fmt"
	"image/jpeg"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// MaxCertificateFileSize is the upload cap (10 MiB)
	MaxCertificateFileSize = 10 << 20
	// Base URL for serving files
	baseURL = "/uploads"

	certificateSubDir = "certificates"
	thumbnailSubDir   = "thumbnails"
)

// Typed upload errors, checked before anything touches storage
var (
	ErrInvalidFileType = errors.New("unsupported file type. Allowed types: jpeg, png, webp, pdf")
	ErrFileTooLarge    = fmt.Errorf("file too large. Maximum size is %d bytes", MaxCertificateFileSize)
)

// Allowed certificate MIME types and their storage extensions
var certificateMIMEExts = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

var extMIMEs = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".pdf":  "application/pdf",
}

// DetectCertificateContentType resolves the effective content type of an
// upload, falling back to the file extension when the multipart header is
// missing or generic.
func DetectCertificateContentType(header *multipart.FileHeader) string {
	contentType := strings.TrimSpace(strings.Split(header.Header.Get("Content-Type"), ";")[0])
	if _, ok := certificateMIMEExts[contentType]; ok {
		return contentType
	}
	return extMIMEs[strings.ToLower(filepath.Ext(header.Filename))]
}

// ValidateCertificateFile rejects an upload before any write happens
func ValidateCertificateFile(contentType string, size int64) error {
	if _, ok := certificateMIMEExts[contentType]; !ok {
		return ErrInvalidFileType
	}
	if size > MaxCertificateFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// SaveCertificateFile writes validated file data under a generated name and
// returns the URL the record stores.
func SaveCertificateFile(baseDir string, fileData []byte, contentType string) (string, error) {
	ext, ok := certificateMIMEExts[contentType]
	if !ok {
		return "", ErrInvalidFileType
	}
	if len(fileData) > MaxCertificateFileSize {
		return "", ErrFileTooLarge
	}

	filename := uuid.New().String() + ext
	dir := filepath.Join(baseDir, certificateSubDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %v", dir, err)
	}

	fullPath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullPath, fileData, 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %v", fullPath, err)
	}

	return fmt.Sprintf("%s/%s/%s", baseURL, certificateSubDir, filename), nil
}

// CreateImageThumbnail renders a 320px-wide jpeg preview for image
// certificates. PDFs and webp uploads are skipped.
func CreateImageThumbnail(baseDir, fileURL string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileURL))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", nil
	}

	sourcePath := filepath.Join(baseDir, certificateSubDir, filepath.Base(fileURL))
	img, err := imaging.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	// Resize to max width of 320px while maintaining aspect ratio
	resized := imaging.Resize(img, 320, 0, imaging.Lanczos)

	thumbName := strings.TrimSuffix(filepath.Base(fileURL), ext) + ".jpg"
	thumbDir := filepath.Join(baseDir, thumbnailSubDir)
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %v", err)
	}

	out, err := os.Create(filepath.Join(thumbDir, thumbName))
	if err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %v", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", baseURL, thumbnailSubDir, thumbName), nil
}

// DeleteCertificateFile removes a stored certificate and its thumbnail. The
// URL must point inside the certificates directory.
func DeleteCertificateFile(baseDir, fileURL string) error {
	prefix := baseURL + "/" + certificateSubDir + "/"
	if !strings.HasPrefix(fileURL, prefix) {
		return ErrInvalidFileType
	}

	filename := filepath.Base(fileURL)
	if err := os.Remove(filepath.Join(baseDir, certificateSubDir, filename)); err != nil {
		return err
	}

	// Thumbnail may not exist for pdf/webp uploads
	thumbName := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
	_ = os.Remove(filepath.Join(baseDir, thumbnailSubDir, thumbName))
	return nil
}
