package handler

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"logistics/internal/domain"
)

// TableSizer reports how many tariffs are loaded.
type TableSizer interface {
	Size() int
}

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	tariffs   TableSizer
	service   string
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler. Uptime is measured from startedAt.
func NewHealthHandler(tariffs TableSizer, service string, startedAt time.Time) *HealthHandler {
	return &HealthHandler{tariffs: tariffs, service: service, startedAt: startedAt}
}

type healthResponse struct {
	Success       bool                `json:"success"`
	Service       string              `json:"service"`
	Status        domain.HealthStatus `json:"status"`
	Uptime        float64             `json:"uptime"`
	MemoryUsageMB string              `json:"memory_usage_mb"`
	TariffsLoaded int                 `json:"tariffs_loaded"`
}

// Health handles GET /health. It always answers 200; an empty table is reported as degraded.
func (h *HealthHandler) Health(c *gin.Context) {
	loaded := h.tariffs.Size()
	status := domain.HealthStatusHealthy
	if loaded == 0 {
		status = domain.HealthStatusDegraded
	}

	RespondJSON(c, http.StatusOK, healthResponse{
		Success:       true,
		Service:       h.service,
		Status:        status,
		Uptime:        time.Since(h.startedAt).Seconds(),
		MemoryUsageMB: HeapUsageMB(),
		TariffsLoaded: loaded,
	})
}

// HeapUsageMB returns the allocated heap in megabytes with two decimals.
func HeapUsageMB() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("%.2f", float64(m.HeapAlloc)/1024/1024)
}
