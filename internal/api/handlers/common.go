package handlers

import (
	"errors"
	"net/http"
	"time"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"

	"github.com/labstack/echo/v4"
)

// errorSlug maps an HTTP status to the machine-readable error field
func errorSlug(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusUnauthorized:
		return "authentication_required"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadGateway:
		return "storage_unavailable"
	default:
		return "internal_error"
	}
}

// respondError converts a service error into the wire error shape
func respondError(c echo.Context, requestID string, err error) error {
	var cerr *utils.CustomError
	if errors.As(err, &cerr) {
		message := cerr.Message
		if cerr.Detail != "" {
			message = cerr.Message + ": " + cerr.Detail
		}
		return c.JSON(cerr.Code, models.ErrorResponse{
			Error:     errorSlug(cerr.Code),
			Message:   message,
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:     "internal_error",
		Message:   "Something went wrong",
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

// bindError is the shared response for malformed request bodies
func bindError(c echo.Context, requestID string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:     "invalid_request",
		Message:   "Invalid request format",
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
