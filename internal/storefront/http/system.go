package http

import (
	"net/http"
	"time"

	"github.com/oakleaftoys/storefront/internal/storefront/store"
	"github.com/oakleaftoys/storefront/pkg/httpx"
)

// HealthResponse is the body of the health probe endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime,omitempty"`
	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint checking the local database is reachable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, checks"
//	@Failure		503	{object}	HealthResponse	"status, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, HealthResponse{
			Status: overallStatus,
			Checks: checks,
		})
	}
}
