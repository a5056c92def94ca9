package middleware

import (
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/auth"
	"github.com/sirupsen/logrus"
)

// RequireRole rejects requests without a valid bearer token carrying role.
// The verified claims are stored in the request context.
func RequireRole(tokens *auth.Tokens, role string, logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := tokens.Parse(r.Header.Get("Authorization"))
			if err != nil {
				logger.WithError(err).WithField("path", r.URL.Path).Debug("rejected token")
				writeError(w, http.StatusUnauthorized, "missing or invalid token")
				return
			}
			if claims.Role != role {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}
