package middleware

import (
	"net/http"
	"strings"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/domain"
)

const (
	msgMissingToken = "token de autenticação ausente"
	msgInvalidToken = "token de autenticação inválido"
	msgForbidden    = "acesso negado"
)

// TokenVerifier checks a bearer token and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (int64, domain.UserRole, error)
}

// Logger is the logging surface the middleware depends on.
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth authenticates requests via the Authorization bearer token and
// places the identity on the request context.
func Auth(verifier TokenVerifier, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondError(w, http.StatusUnauthorized, msgMissingToken)
				return
			}

			userID, role, err := verifier.Verify(token)
			if err != nil {
				log.Warn("auth: rejected token: %v", err)
				handlers.RespondError(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userID, role)))
		})
	}
}

// RequireAdmin rejects requests whose token does not carry the
// administrator role. Must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(next, domain.RoleAdmin)
}

// RequireEditor admits editors and administrators. Must run after Auth.
func RequireEditor(next http.Handler) http.Handler {
	return requireRole(next, domain.RoleEditor, domain.RoleAdmin)
}

func requireRole(next http.Handler, allowed ...domain.UserRole) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetRole(r.Context())
		if !ok {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingToken)
			return
		}
		for _, a := range allowed {
			if role == a {
				next.ServeHTTP(w, r)
				return
			}
		}
		handlers.RespondError(w, http.StatusForbidden, msgForbidden)
	})
}
