package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"logistics/internal/domain"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// DestinationNotFoundResponse lists the known destinations alongside the error.
type DestinationNotFoundResponse struct {
	Success               bool     `json:"success"`
	Error                 string   `json:"error"`
	AvailableDestinations []string `json:"available_destinations"`
}

// EndpointNotFoundResponse lists the known routes alongside the error.
type EndpointNotFoundResponse struct {
	Success            bool     `json:"success"`
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// RespondJSON writes v as two-space indented JSON.
func RespondJSON(c *gin.Context, status int, v interface{}) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.Data(http.StatusInternalServerError, contentTypeJSON,
			[]byte(`{"success": false, "error": "failed to encode response"}`))
		return
	}
	c.Data(status, contentTypeJSON, body)
}

// RespondError sends an error envelope with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	RespondJSON(c, status, ErrorResponse{Success: false, Error: msg})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrMalformedBody):
		return http.StatusBadRequest, "Invalid JSON body"
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "Missing required fields: destination and weight_kg are required"
	case errors.Is(err, domain.ErrInvalidWeight):
		return http.StatusBadRequest, "weight_kg must be a positive number"
	case errors.Is(err, domain.ErrInvalidDestination):
		return http.StatusBadRequest, "destination must be a string"
	case errors.Is(err, domain.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, "Request body too large"
	case errors.Is(err, domain.ErrDestinationNotFound):
		return http.StatusNotFound, "Destination not found"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	RespondError(c, status, msg)
}
