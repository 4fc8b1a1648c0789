package handlers

import (
	"net/http"
	"time"

	"jobdeck/internal/api/middleware"
	"jobdeck/internal/logging"
	"jobdeck/internal/tracker"
	"jobdeck/pkg/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// CreateJobHandler handles job creation requests
func CreateJobHandler(jobs *tracker.JobService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.CreateJobRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind job create request", map[string]interface{}{"error": err.Error()})
			return bindError(c, requestID)
		}

		job, err := jobs.Create(c.Request().Context(), middleware.OwnerID(c), &req)
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusCreated, job)
	}
}

// ListJobsHandler handles board listing requests with optional filters
func ListJobsHandler(jobs *tracker.JobService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		filter := tracker.JobFilter{
			Status: models.JobStatus(c.QueryParam("status")),
			Search: c.QueryParam("search"),
		}

		list, err := jobs.List(c.Request().Context(), middleware.OwnerID(c), filter)
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, list)
	}
}

// GetJobHandler handles single job lookups
func GetJobHandler(jobs *tracker.JobService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		job, err := jobs.Get(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, job)
	}
}

// UpdateJobHandler handles partial job updates
func UpdateJobHandler(jobs *tracker.JobService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.UpdateJobRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind job update request", map[string]interface{}{"error": err.Error()})
			return bindError(c, requestID)
		}

		job, err := jobs.Update(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), &req)
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, job)
	}
}

// MoveJobStatusHandler handles pipeline moves on the board
func MoveJobStatusHandler(jobs *tracker.JobService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.MoveStatusRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind status move request", map[string]interface{}{"error": err.Error()})
			return bindError(c, requestID)
		}
		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		job, err := jobs.MoveStatus(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), models.JobStatus(req.Status))
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, job)
	}
}

// DeleteJobHandler handles job deletion
func DeleteJobHandler(jobs *tracker.JobService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		if err := jobs.Delete(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
			return respondError(c, requestID, err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// JobEventsHandler returns a job's activity history, newest first
func JobEventsHandler(jobs *tracker.JobService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		events, err := jobs.Events(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, events)
	}
}
