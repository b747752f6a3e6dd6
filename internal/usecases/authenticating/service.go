package authenticating

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/Magzlar/tik-tok-ad-project/internal/config"
	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
)

const issuer = "tiktok-budgeter"

// Authenticator emite e valida os tokens da API administrativa
type Authenticator interface {
	GenerateToken(subject, role string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.AdminClaims, error)
}

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.Admin.JWTSecret),
		now:    time.Now,
	}
}

func validRole(role string) bool {
	return role == domain.RoleAdmin || role == domain.RoleOperator
}

// GenerateToken assina um token HS256 para o operador informado
func (s *Service) GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}
	if subject == "" {
		return "", ErrMissingSubject
	}
	if !validRole(role) {
		return "", errors.Wrapf(ErrInvalidRole, "role %q", role)
	}

	now := s.now()
	claims := domain.AdminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.AdminClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.AdminClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !validRole(claims.Role) {
		return nil, ErrInvalidRole
	}

	return claims, nil
}
