package handlers

import (
	"net/http"

	"jobdeck/internal/api/middleware"
	"jobdeck/internal/logging"
	"jobdeck/internal/tracker"
	"jobdeck/pkg/models"

	"github.com/labstack/echo/v4"
)

// CreateNoteHandler attaches a note to a job
func CreateNoteHandler(notes *tracker.NoteService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.CreateNoteRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind note create request", map[string]interface{}{"error": err.Error()})
			return bindError(c, requestID)
		}

		note, err := notes.Create(c.Request().Context(), middleware.OwnerID(c), &req)
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusCreated, note)
	}
}

// DeleteNoteHandler handles note deletion
func DeleteNoteHandler(notes *tracker.NoteService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		if err := notes.Delete(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
			return respondError(c, requestID, err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// ListJobNotesHandler returns a job's notes, newest first
func ListJobNotesHandler(notes *tracker.NoteService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		list, err := notes.ListByJob(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, list)
	}
}
