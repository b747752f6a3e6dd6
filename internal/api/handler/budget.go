package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/Magzlar/tik-tok-ad-project/internal/scheduler"
	"github.com/Magzlar/tik-tok-ad-project/internal/usecases/budgeting"
	"github.com/Magzlar/tik-tok-ad-project/pkg/apiErrors"
	"github.com/Magzlar/tik-tok-ad-project/pkg/log"
	"github.com/Magzlar/tik-tok-ad-project/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BudgetSyncer é a parte do agendador usada pela API
type BudgetSyncer interface {
	TriggerManualSync(ctx context.Context) error
	GetStatus() scheduler.BudgetSyncStatus
}

type RunResponse struct {
	Message string `json:"message"`
}

// GetBudgetStatus retorna o estado do agendador e o relatório da última execução
func GetBudgetStatus(service BudgetSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetStatus())
	}
}

// RunBudgetSync dispara uma execução manual em segundo plano
func RunBudgetSync(service BudgetSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("user_subject", claims.Subject)
		}

		err := service.TriggerManualSync(r.Context())
		if errors.Is(err, budgeting.ErrRunInProgress) {
			apiErrors.WriteError(w, apiErrors.ErrRunInProgress, "A budget run is already in progress", nil)
			return
		}
		if err != nil {
			logger.WithError(err).Error("http: failed to trigger budget run")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to trigger budget run", nil)
			return
		}

		logger.Info("http: manual budget run triggered")
		writeJSON(w, http.StatusAccepted, RunResponse{Message: "Budget run started"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
