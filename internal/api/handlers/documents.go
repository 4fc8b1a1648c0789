package handlers

import (
	"net/http"
	"time"

	"jobdeck/internal/api/middleware"
	"jobdeck/internal/logging"
	"jobdeck/internal/tracker"
	"jobdeck/pkg/models"

	"github.com/labstack/echo/v4"
)

// UploadDocumentHandler accepts a multipart document upload. The file goes
// to the blob store, its metadata to the database.
func UploadDocumentHandler(documents *tracker.DocumentService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Ingen fil valgt",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		file, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file", map[string]interface{}{"error": err.Error()})
			return respondError(c, requestID, err)
		}
		defer file.Close()

		in := tracker.UploadInput{
			JobID:       c.FormValue("job_id"),
			Label:       c.FormValue("label"),
			Type:        models.DocumentType(c.FormValue("type")),
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get(echo.HeaderContentType),
			Size:        fileHeader.Size,
			Content:     file,
		}

		doc, err := documents.Upload(c.Request().Context(), middleware.OwnerID(c), in)
		if err != nil {
			return respondError(c, requestID, err)
		}

		logger.Info("Document uploaded", map[string]interface{}{
			"document_id": doc.ID,
			"size":        fileHeader.Size,
		})

		return c.JSON(http.StatusCreated, doc)
	}
}

// DeleteDocumentHandler removes a document record and its stored file
func DeleteDocumentHandler(documents *tracker.DocumentService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		if err := documents.Delete(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
			return respondError(c, requestID, err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// ListDocumentsHandler returns the owner's documents, optionally filtered
// to one job via ?job_id
func ListDocumentsHandler(documents *tracker.DocumentService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		ownerID := middleware.OwnerID(c)

		var (
			list []models.Document
			err  error
		)
		if jobID := c.QueryParam("job_id"); jobID != "" {
			list, err = documents.ListByJob(c.Request().Context(), ownerID, jobID)
		} else {
			list, err = documents.ListAll(c.Request().Context(), ownerID)
		}
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, list)
	}
}

// ListJobDocumentsHandler returns a job's documents, newest first
func ListJobDocumentsHandler(documents *tracker.DocumentService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		list, err := documents.ListByJob(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, list)
	}
}
