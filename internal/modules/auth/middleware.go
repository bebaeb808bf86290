package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/cantinhoapps/vendus-gateway/internal/config"
	"github.com/cantinhoapps/vendus-gateway/internal/web"
)

// HeaderName is the shared-secret header every protected route requires.
const HeaderName = "x-api-key"

// RequireKey gates a route group behind the internal API key. An unset
// server-side key is a configuration error (500), distinct from a missing
// or wrong client key (401).
func RequireKey(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.InternalAPIKey == "" {
				web.Fail(w, http.StatusInternalServerError,
					(&web.ConfigError{Key: "INTERNAL_API_KEY"}).Error())
				return
			}
			provided := r.Header.Get(HeaderName)
			if provided == "" ||
				subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.InternalAPIKey)) != 1 {
				web.Fail(w, http.StatusUnauthorized, "Acesso não autorizado.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
