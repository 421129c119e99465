package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/metrics"
)

// HealthStatus is the body returned by the health endpoints.
type HealthStatus struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version,omitempty"`
	Backend  string                 `json:"backend,omitempty"`
	Database *DatabaseHealth        `json:"database,omitempty"`
	Checks   map[string]string      `json:"checks,omitempty"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// DatabaseHealth reports connection pool state for the SQL backend.
type DatabaseHealth struct {
	Status          string `json:"status"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
}

// HealthHandler serves liveness and readiness probes. DB is nil when
// the server runs on the in-memory backend; in that mode the process
// being up is the whole health story.
type HealthHandler struct {
	DB      *sql.DB
	Version string
	Backend string
}

// Health godoc
// @Summary      Health check
// @Description  Reports overall service health including database state.
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthStatus
// @Failure      503  {object}  HealthStatus
// @Router       /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:  "healthy",
		Version: h.Version,
		Backend: h.Backend,
	}

	if h.DB != nil {
		dbHealth := h.checkDatabase(r.Context())
		status.Database = dbHealth
		if dbHealth.Status != "healthy" {
			status.Status = "unhealthy"
			respond.JSON(w, http.StatusServiceUnavailable, status)
			return
		}
	}

	respond.JSON(w, http.StatusOK, status)
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Returns 200 once the service can take traffic.
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthStatus
// @Failure      503  {object}  HealthStatus
// @Router       /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			respond.JSON(w, http.StatusServiceUnavailable,
				HealthStatus{Status: "not ready", Checks: map[string]string{"database": err.Error()}})
			return
		}
	}
	respond.JSON(w, http.StatusOK, HealthStatus{Status: "ready"})
}

// Live godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthStatus
// @Router       /live [get]
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, HealthStatus{Status: "alive"})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) *DatabaseHealth {
	stats := h.DB.Stats()
	health := &DatabaseHealth{
		Status:          "healthy",
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
	}
	metrics.UpdateDBConnectionStats(stats.OpenConnections, stats.Idle)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(pingCtx); err != nil {
		health.Status = "unhealthy"
	}
	return health
}
