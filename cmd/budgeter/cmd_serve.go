package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Magzlar/tik-tok-ad-project/internal/api"
	"github.com/Magzlar/tik-tok-ad-project/internal/scheduler"
	"github.com/Magzlar/tik-tok-ad-project/internal/usecases/authenticating"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the daily budget scheduler and the admin API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	budgetSync := scheduler.NewBudgetSyncService(newBudgetService(cfg), cfg)
	if err := budgetSync.Start(gctx); err != nil {
		return err
	}

	if cfg.Admin.JWTSecret == "" {
		logrus.Warn("budgeter: ADMIN_JWT_SECRET is empty, every authenticated admin route will return 401")
	}

	server := api.New(cfg, budgetSync, authenticating.NewService(cfg))

	g.Go(func() error {
		return server.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		budgetSync.Wait()
		return nil
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}

	logrus.Info("budgeter: stopped")
	return nil
}
