package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/Magzlar/tik-tok-ad-project/internal/api/handler"
	"github.com/Magzlar/tik-tok-ad-project/internal/api/handler/router"
	"github.com/Magzlar/tik-tok-ad-project/internal/config"
	"github.com/Magzlar/tik-tok-ad-project/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	budgetSync handler.BudgetSyncer,
	validator middleware.TokenValidator,
) *Server {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Budget(budgetSync)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Admin.AllowedOrigins),
		middleware.AuthMiddleware(validator),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Handler expõe a cadeia completa para testes
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serve até ctx ser cancelado e então desliga o servidor
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("http: server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logrus.WithError(err).Error("http: server failed")
			return err
		}
		return nil
	case <-ctx.Done():
		logrus.Info("http: context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("http: graceful shutdown started")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("http: error during shutdown")
		return err
	}

	logrus.Info("http: server stopped")
	return nil
}
