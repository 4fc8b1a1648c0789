package handlers

import (
	"net/http"
	"strconv"

	"jobdeck/internal/api/middleware"
	"jobdeck/internal/logging"
	"jobdeck/internal/tracker"
	"jobdeck/pkg/models"

	"github.com/labstack/echo/v4"
)

// CreateTaskHandler handles task creation, job-scoped or standalone
func CreateTaskHandler(tasks *tracker.TaskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.CreateTaskRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind task create request", map[string]interface{}{"error": err.Error()})
			return bindError(c, requestID)
		}

		task, err := tasks.Create(c.Request().Context(), middleware.OwnerID(c), &req)
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusCreated, task)
	}
}

// UpdateTaskHandler handles partial task updates
func UpdateTaskHandler(tasks *tracker.TaskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.UpdateTaskRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind task update request", map[string]interface{}{"error": err.Error()})
			return bindError(c, requestID)
		}

		task, err := tasks.Update(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), &req)
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, task)
	}
}

// ToggleTaskHandler flips a task's done flag
func ToggleTaskHandler(tasks *tracker.TaskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		task, err := tasks.Toggle(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, task)
	}
}

// DeleteTaskHandler handles task deletion
func DeleteTaskHandler(tasks *tracker.TaskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		if err := tasks.Delete(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
			return respondError(c, requestID, err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// ListJobTasksHandler returns a job's tasks, open ones first
func ListJobTasksHandler(tasks *tracker.TaskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		list, err := tasks.ListByJob(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, list)
	}
}

// UpcomingTasksHandler returns open tasks due soonest across all jobs
func UpcomingTasksHandler(tasks *tracker.TaskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		limit := 0
		if raw := c.QueryParam("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				limit = parsed
			}
		}

		list, err := tasks.Upcoming(c.Request().Context(), middleware.OwnerID(c), limit)
		if err != nil {
			return respondError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, list)
	}
}
