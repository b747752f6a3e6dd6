package authenticating

import "errors"

// Erros de autenticação da API administrativa
var (
	ErrMissingSecret  = errors.New("admin JWT secret is not configured")
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidRole    = errors.New("invalid role")
	ErrMissingSubject = errors.New("token subject is required")
)
