package health

import (
	"net/http"

	"github.com/cantinhoapps/vendus-gateway/internal/web"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the unauthenticated health check.
func RegisterRoutes(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		web.JSON(w, http.StatusOK, map[string]any{"ok": true, "status": "API a funcionar"})
	})
}
