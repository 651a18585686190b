package middleware

import (
	"net/http"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminKey gates destructive and dashboard-only routes behind a shared
// admin key. The configured value is a bcrypt hash so the plaintext never
// lives in the environment of the server process.
func AdminKey(config utils.AdminConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Admin-Key")
			if key == "" {
				utils.ResponseUnauthorized(w, "Admin key required")
				return
			}

			if config.KeyHash == "" {
				logger.Error("Admin route hit with no ADMIN_KEY_HASH configured",
					zap.String("path", r.URL.Path))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(config.KeyHash), []byte(key)); err != nil {
				logger.Warn("Admin key rejected",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
