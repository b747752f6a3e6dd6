package handler

import (
	"net/http"

	"github.com/Magzlar/tik-tok-ad-project/internal/api/handler/router"
	"github.com/Magzlar/tik-tok-ad-project/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Budget(service BudgetSyncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/budget/status",
			Method:      http.MethodGet,
			Handler:     GetBudgetStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/budget/run",
			Method:      http.MethodPost,
			Handler:     RunBudgetSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
