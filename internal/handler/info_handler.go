package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Endpoint describes one public route.
type Endpoint struct {
	Method      string
	Path        string
	Description string
}

// String returns the route as "METHOD /path".
func (e Endpoint) String() string {
	return e.Method + " " + e.Path
}

// Endpoints lists every public route in display order.
var Endpoints = []Endpoint{
	{Method: http.MethodGet, Path: "/", Description: "Welcome & API info"},
	{Method: http.MethodGet, Path: "/health", Description: "Health check"},
	{Method: http.MethodGet, Path: "/tariffs", Description: "Get all tariffs"},
	{Method: http.MethodPost, Path: "/calculate", Description: "Calculate shipping cost (body: {destination, weight_kg})"},
}

// InfoHandler serves the welcome page and the catch-all 404.
type InfoHandler struct {
	service string
	version string
}

// NewInfoHandler creates a new InfoHandler.
func NewInfoHandler(service, version string) *InfoHandler {
	return &InfoHandler{service: service, version: version}
}

type welcomeResponse struct {
	Success   bool              `json:"success"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Welcome handles GET /
func (h *InfoHandler) Welcome(c *gin.Context) {
	endpoints := make(map[string]string, len(Endpoints))
	for _, e := range Endpoints {
		endpoints[e.String()] = e.Description
	}
	RespondJSON(c, http.StatusOK, welcomeResponse{
		Success:   true,
		Service:   h.service,
		Version:   h.version,
		Endpoints: endpoints,
	})
}

// NotFound handles every unmatched method and path.
func (h *InfoHandler) NotFound(c *gin.Context) {
	routes := make([]string, len(Endpoints))
	for i, e := range Endpoints {
		routes[i] = e.String()
	}
	RespondJSON(c, http.StatusNotFound, EndpointNotFoundResponse{
		Success:            false,
		Error:              "Endpoint not found",
		AvailableEndpoints: routes,
	})
}
