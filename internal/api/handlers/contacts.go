package handlers

import (
	"net/http"

	"jobdeck/internal/api/middleware"
	"jobdeck/internal/logging"
	"jobdeck/internal/tracker"
	"jobdeck/pkg/models"

	"github.com/labstack/echo/v4"
)

// CreateContactHandler records a person connected to an application
func CreateContactHandler(contacts *tracker.ContactService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.CreateContactRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind contact create request", map[string]interface{}{"error": err.Error()})
			return bindError(c, requestID)
		}

		contact, err := contacts.Create(c.Request().Context(), middleware.OwnerID(c), &req)
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusCreated, contact)
	}
}

// DeleteContactHandler handles contact deletion
func DeleteContactHandler(contacts *tracker.ContactService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		if err := contacts.Delete(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
			return respondError(c, requestID, err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// ListJobContactsHandler returns a job's contacts, newest first
func ListJobContactsHandler(contacts *tracker.ContactService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		list, err := contacts.ListByJob(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, list)
	}
}
