package health

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ilmanen/sunpaper/pkg/mqtt"
)

// RenderStatus exposes the agent state the health endpoint reports
type RenderStatus interface {
	// LastRender returns the time of the last successful render tick
	LastRender() time.Time
}

// Checker provides health check functionality for the daemon
type Checker struct {
	agent  RenderStatus
	mqtt   mqtt.Client // nil when telemetry is disabled
	logger *slog.Logger
}

// NewChecker creates a new health checker with the given dependencies
func NewChecker(agent RenderStatus, mqttClient mqtt.Client, logger *slog.Logger) *Checker {
	return &Checker{
		agent:  agent,
		mqtt:   mqttClient,
		logger: logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	LastRender string `json:"last_render,omitempty"`
	MQTT       string `json:"mqtt,omitempty"`
}

// HandlerFunc returns an HTTP handler function for health checks.
// Returns 200 whenever the process is alive; the last render time is
// informational so a supervisor can alert on staleness separately.
func (h *Checker) HandlerFunc() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		}

		if last := h.agent.LastRender(); !last.IsZero() {
			response.LastRender = last.UTC().Format(time.RFC3339Nano)
		}

		if h.mqtt != nil {
			if h.mqtt.IsConnected() {
				response.MQTT = "connected"
			} else {
				response.MQTT = "disconnected"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode health response", "error", err)
		}
	}
}
