package middleware

import (
	"net/http"
	"strings"
	"time"

	"jobdeck/internal/auth"
	"jobdeck/internal/logging"
	"jobdeck/pkg/models"

	"github.com/labstack/echo/v4"
)

const ownerContextKey = "owner_id"

// RequireOwner authenticates the request's bearer token and stores the
// resolved owner ID on the context. Every route behind it is owner-scoped.
func RequireOwner(verifier auth.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := RequestID(c)

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:     "authentication_required",
					Message:   "Missing or malformed Authorization header",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}

			ownerID, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				logging.LogWithRequestID(requestID).Warn("Token verification failed", map[string]interface{}{
					"error": err.Error(),
				})
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:     "authentication_required",
					Message:   "Invalid or expired token",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}

			c.Set(ownerContextKey, ownerID)
			return next(c)
		}
	}
}

// OwnerID returns the authenticated owner ID stored by RequireOwner
func OwnerID(c echo.Context) string {
	if id, ok := c.Get(ownerContextKey).(string); ok {
		return id
	}
	return ""
}
