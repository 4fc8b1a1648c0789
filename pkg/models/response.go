package models

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ImportResponse reports the outcome of a committed CSV import
type ImportResponse struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// ImportRejectedResponse carries the row errors of an import that failed
// validation before anything was written
type ImportRejectedResponse struct {
	Error     string    `json:"error"`
	Errors    []string  `json:"errors"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
