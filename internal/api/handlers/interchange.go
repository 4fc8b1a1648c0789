package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobdeck/internal/api/middleware"
	"jobdeck/internal/interchange"
	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"

	"github.com/labstack/echo/v4"
)

// ImportCSVHandler ingests a CSV file of jobs. Validation runs over the
// whole file first; a single bad row rejects the import with per-row errors.
func ImportCSVHandler(importer *interchange.Importer) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		content, err := readImportBody(c)
		if err != nil {
			logger.Error("Failed to read import payload", map[string]interface{}{"error": err.Error()})
			return bindError(c, requestID)
		}

		result, err := importer.Import(c.Request().Context(), middleware.OwnerID(c), content)
		if err != nil {
			var importErr *utils.ImportError
			if errors.As(err, &importErr) {
				return c.JSON(http.StatusBadRequest, models.ImportRejectedResponse{
					Error:     "Validering feilet",
					Errors:    importErr.Rows,
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}

// readImportBody accepts either a multipart "file" part or a raw CSV body
func readImportBody(c echo.Context) (string, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return "", err
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ExportCSVHandler streams the owner's jobs as a CSV download
func ExportCSVHandler(exporter *interchange.Exporter) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		csvContent, err := exporter.ExportCSV(c.Request().Context(), middleware.OwnerID(c))
		if err != nil {
			return respondError(c, requestID, err)
		}

		filename := fmt.Sprintf("jobs-export-%s.csv", time.Now().Format("2006-01-02"))
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(csvContent))
	}
}

// ExportBackupHandler returns the full-fidelity JSON backup of all jobs
func ExportBackupHandler(exporter *interchange.Exporter) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		backup, err := exporter.ExportBackup(c.Request().Context(), middleware.OwnerID(c))
		if err != nil {
			return respondError(c, requestID, err)
		}

		filename := fmt.Sprintf("jobs-backup-%s.json", time.Now().Format("2006-01-02"))
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
		return c.JSON(http.StatusOK, backup)
	}
}

// ExportJobHandler returns one job with its full history and attachments
func ExportJobHandler(exporter *interchange.Exporter) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		detail, err := exporter.ExportJob(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, detail)
	}
}

// RestoreHandler re-creates jobs from a previously exported JSON backup
func RestoreHandler(exporter *interchange.Exporter) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		var backup interchange.Backup
		if err := c.Bind(&backup); err != nil {
			logger.Error("Failed to bind backup payload", map[string]interface{}{"error": err.Error()})
			return bindError(c, requestID)
		}

		result, err := exporter.Restore(c.Request().Context(), middleware.OwnerID(c), &backup)
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}
