// Package response holds the JSON envelopes the API writes and the mapping
// from service and storage errors to HTTP statuses.
package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/catalog-pagination/internal/repository"
	"github.com/maxviazov/catalog-pagination/internal/service"
)

// RequestIDKey is the gin context key the request id middleware stores under.
const RequestIDKey = "request_id"

// StatusClientClosedRequest is used when the caller went away mid-request.
const StatusClientClosedRequest = 499

type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
	RequestID   string               `json:"request_id,omitempty"`
}

type errorRule struct {
	target error
	status int
	code   string
}

// rules are checked in order with errors.Is; the first match wins.
var rules = []errorRule{
	{repository.ErrNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrAlreadyExists, http.StatusConflict, "already_exists"},
	{repository.ErrConflict, http.StatusConflict, "conflict"},
	{repository.ErrUnavailable, http.StatusServiceUnavailable, "unavailable"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
	{context.Canceled, StatusClientClosedRequest, "canceled"},
}

// MapError converts an error into an HTTP status and payload. Unknown errors
// become a bare 500 so internals never reach the client.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}
	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}
	for _, r := range rules {
		if errors.Is(err, r.target) {
			return r.status, ErrorPayload{Error: r.code}
		}
	}
	return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
}

// WriteError aborts the request with the mapped payload. The original error
// is attached to the gin context for the access log.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	payload.RequestID = c.GetString(RequestIDKey)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, payload)
}

func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
