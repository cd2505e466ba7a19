package http

import (
	"net/http"
	"time"

	"github.com/dmikalova/login-gateway/pkg/httpx"
)

// HealthResponse is the /health body.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// HealthHandler always returns 200 while the process is up. It is mounted
// outside the domain middleware so load balancers can probe it with any
// Host header.
func HealthHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
