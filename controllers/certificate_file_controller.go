// controllers/certificate_file_controller.go
package controllers

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/krct/facultydesk_backend/models"
	"github.com/krct/facultydesk_backend/services"
	"github.com/krct/facultydesk_backend/utils"
)

// CertificateFileController handles the certificate intake pipeline: upload,
// heuristic analysis, delete. Analysis only pre-fills the review form; the
// record itself is always saved through the certification endpoints.
type CertificateFileController struct {
	uploadDir string
	analyzer  *services.CertificateAnalyzer
}

// NewCertificateFileController creates a file controller rooted at uploadDir
func NewCertificateFileController(uploadDir string, analyzer *services.CertificateAnalyzer) *CertificateFileController {
	return &CertificateFileController{uploadDir: uploadDir, analyzer: analyzer}
}

// AnalyzeRequest identifies an uploaded file to derive suggestions from
type AnalyzeRequest struct {
	FileName string `json:"fileName" validate:"required"`
	FileURL  string `json:"fileUrl,omitempty"`
}

// Upload accepts a multipart certificate file. Type and size are validated
// before anything is written, so a rejected upload leaves no trace in the
// file store.
func (fc *CertificateFileController) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "No file uploaded",
		})
	}

	contentType := utils.DetectCertificateContentType(fileHeader)
	if err := utils.ValidateCertificateFile(contentType, fileHeader.Size); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   err.Error(),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to read uploaded file",
		})
	}
	defer src.Close()

	// The size header is client-supplied; cap the actual read too
	fileData, err := io.ReadAll(io.LimitReader(src, utils.MaxCertificateFileSize+1))
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to read uploaded file",
		})
	}
	if int64(len(fileData)) > utils.MaxCertificateFileSize {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   utils.ErrFileTooLarge.Error(),
		})
	}

	fileURL, err := utils.SaveCertificateFile(fc.uploadDir, fileData, contentType)
	if err != nil {
		log.Printf("Error saving certificate file: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to store file",
		})
	}

	thumbnailURL, err := utils.CreateImageThumbnail(fc.uploadDir, fileURL)
	if err != nil {
		// The upload stands on its own; a missing preview is cosmetic
		log.Printf("Error creating thumbnail: %v", err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "File uploaded",
		Data: map[string]interface{}{
			"fileUrl":      fileURL,
			"thumbnailUrl": thumbnailURL,
			"fileName":     fileHeader.Filename,
		},
	})
}

// Analyze derives a best-guess record from the file name to pre-fill the
// review form. A failed analysis returns an empty suggestion so the user can
// fill the form manually; it never blocks the upload.
func (fc *CertificateFileController) Analyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "File name is required",
		})
	}

	analysis, err := fc.analyzer.Analyze(req.FileName)
	if err != nil {
		log.Printf("Certificate analysis failed for %q: %v", req.FileName, err)
		return c.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: "Analysis unavailable; please fill in the details manually",
			Data:    &models.CertificateAnalysis{},
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "File analyzed",
		Data:    analysis,
	})
}

// Delete removes a stored certificate file and its thumbnail
func (fc *CertificateFileController) Delete(c echo.Context) error {
	fileURL := c.QueryParam("file")
	if fileURL == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "File parameter is required",
		})
	}

	if err := utils.DeleteCertificateFile(fc.uploadDir, fileURL); err != nil {
		if os.IsNotExist(err) {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "File not found",
			})
		}
		if err == utils.ErrInvalidFileType {
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Error:   "Invalid file path",
			})
		}
		log.Printf("Error deleting certificate file: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to delete file",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "File deleted",
	})
}
