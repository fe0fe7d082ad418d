package middleware

import (
	"net/http"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/pkg/logger"
)

// UserContext tags the request logger with the authenticated caller. It
// must run after the bearer guard.
func UserContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if userID := internal.UserIDFromContext(ctx); userID != "" {
			ctx = logger.With(ctx, "user_id", userID, "role", internal.RoleFromContext(ctx))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
