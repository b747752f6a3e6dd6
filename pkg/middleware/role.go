package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
	"github.com/Magzlar/tik-tok-ad-project/pkg/apiErrors"
)

// RoleMiddleware restringe o acesso aos papéis informados
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warn("middleware: access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.Role) {
				logrus.WithFields(logrus.Fields{
					"subject": claims.Subject,
					"role":    claims.Role,
					"path":    r.URL.Path,
				}).Warn("middleware: access denied")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "You do not have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin})
}

// AdminOrOperator permite leitura de status para operadores
func AdminOrOperator() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin, domain.RoleOperator})
}
