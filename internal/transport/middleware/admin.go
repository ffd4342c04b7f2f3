package middleware

import (
	"net/http"

	"github.com/heartmarshall/plancatalog-backend/pkg/ctxutil"
)

// RequireAdmin rejects requests that are not made by an authenticated admin:
// 401 without an identity, 403 for any other role.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !ctxutil.IsAdminCtx(r.Context()) {
				writeError(w, http.StatusForbidden, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
