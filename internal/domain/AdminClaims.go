package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis aceitos pela API administrativa
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// AdminClaims são as claims do token bearer da API administrativa.
// Subject identifica o operador.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
