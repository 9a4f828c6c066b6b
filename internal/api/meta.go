package api

import (
	"net/http"
	"time"
)

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Server is running",
		"version":   "v1",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Root handles GET / and describes the available API versions.
func Root(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Welcome to the API",
		"versions": map[string]any{
			"v1": map[string]any{
				"status": "stable",
				"endpoints": map[string]any{
					"items": "/api/v1/items",
				},
			},
			"v2": map[string]any{
				"status": "latest",
				"endpoints": map[string]any{
					"items": "/api/v2/items",
				},
				"enhancements": []string{
					"Enhanced response metadata",
					"Soft delete support (?soft=true)",
					"Item value calculations",
					"Notification hooks",
				},
			},
		},
		"health": "/health",
	})
}
