package handlers

import (
	"net/http"
	"time"
)

// HealthHandler serves the liveness and root endpoints
type HealthHandler struct {
	startedAt time.Time
	pinger    interface{ Ping() error }
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(pinger interface{ Ping() error }) *HealthHandler {
	return &HealthHandler{
		startedAt: time.Now(),
		pinger:    pinger,
	}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	database := "up"
	status := http.StatusOK
	if err := h.pinger.Ping(); err != nil {
		database = "down"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, Response{
		Success: status == http.StatusOK,
		Message: "Server is running",
		Data: map[string]interface{}{
			"database": database,
			"uptime":   time.Since(h.startedAt).Round(time.Second).String(),
		},
	})
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, "Welcome to the ShopEase API", map[string]interface{}{
		"health": "/api/health",
		"items":  "/api/items",
		"auth":   "/api/auth",
		"cart":   "/api/cart",
	})
}
