package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Magzlar/tik-tok-ad-project/internal/config"
	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
	"github.com/Magzlar/tik-tok-ad-project/internal/scheduler"
)

type stubSyncer struct{}

func (stubSyncer) TriggerManualSync(context.Context) error { return nil }
func (stubSyncer) GetStatus() scheduler.BudgetSyncStatus {
	return scheduler.BudgetSyncStatus{SyncEnabled: true}
}

type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (*domain.AdminClaims, error) {
	if token != "good" {
		return nil, errors.New("invalid token")
	}
	return &domain.AdminClaims{Role: domain.RoleAdmin}, nil
}

func TestServer_Handler(t *testing.T) {
	srv := New(&config.Config{Server: config.Server{Host: "localhost", Port: "0"}}, stubSyncer{}, stubValidator{})

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{name: "healthcheck sem token", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "status sem token", method: http.MethodGet, path: "/v1/budget/status", wantStatus: http.StatusUnauthorized},
		{name: "status com token", method: http.MethodGet, path: "/v1/budget/status", token: "good", wantStatus: http.StatusOK},
		{name: "run com token", method: http.MethodPost, path: "/v1/budget/run", token: "good", wantStatus: http.StatusAccepted},
		{name: "token inválido", method: http.MethodPost, path: "/v1/budget/run", token: "bad", wantStatus: http.StatusUnauthorized},
		{name: "rota inexistente", method: http.MethodGet, path: "/v1/unknown", token: "good", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
