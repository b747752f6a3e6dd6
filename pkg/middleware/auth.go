package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
	"github.com/Magzlar/tik-tok-ad-project/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyClaims contextKey = "admin_claims"
)

// TokenValidator valida o token bearer da API administrativa
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.AdminClaims, error)
}

// rotas sem autenticação
var publicPaths = map[string]bool{
	"/healthcheck": true,
}

func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				logrus.WithError(err).Warn("middleware: rejected admin token")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext devolve as claims colocadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.AdminClaims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*domain.AdminClaims)
	return claims, ok
}
