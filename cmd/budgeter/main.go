package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Magzlar/tik-tok-ad-project/infrastructure/integrator/tiktok"
	"github.com/Magzlar/tik-tok-ad-project/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/Magzlar/tik-tok-ad-project/internal/config"
	"github.com/Magzlar/tik-tok-ad-project/internal/usecases/budgeting"
)

var rootCmd = &cobra.Command{
	Use:   "budgeter",
	Short: "Adjust TikTok campaign daily budgets based on ROAS",
	Long: `budgeter reads campaign spend and attributed revenue for the configured
advertiser and scales each campaign's daily budget toward the target ROAS.

Available commands:
  run   - Execute a single budget adjustment run and exit
  serve - Run the daily scheduler and the admin HTTP API
  token - Issue a bearer token for the admin API`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogger()
	},
}

func init() {
	rootCmd.AddCommand(runCmd, serveCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadConfig carrega e valida a configuração e aplica o nível de log
func loadConfig(validate bool) (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("config: invalid log level %q, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if validate {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// newBudgetService monta cliente, integrador e orquestrador
func newBudgetService(cfg *config.Config, opts ...budgeting.Option) *budgeting.Service {
	tokenManager := tiktokclient.NewTokenManager(cfg, tiktokclient.NewHTTPClient(cfg))
	client := tiktokclient.NewClient(cfg, tokenManager)
	integrator := tiktok.New(cfg, client)

	return budgeting.NewService(integrator, cfg, opts...)
}
