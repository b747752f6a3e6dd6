package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
	"github.com/Magzlar/tik-tok-ad-project/internal/usecases/budgeting"
	"github.com/Magzlar/tik-tok-ad-project/pkg/utils"
)

var (
	runDryRun bool
	runJSON   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a single budget adjustment run",
	Long: `Authenticate, fetch eligible campaigns and update every campaign whose
budget changes. Exits with status 1 when the run aborts before the
campaign loop (authentication or campaign fetch failure).`,
	RunE: runBudget,
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "compute decisions without updating budgets")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the run report as JSON")
}

func runBudget(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}

	opts := []budgeting.Option{}
	if cmd.Flags().Changed("dry-run") {
		opts = append(opts, budgeting.WithDryRun(runDryRun))
	}

	report, runErr := newBudgetService(cfg, opts...).Run(cmd.Context())
	if report != nil {
		printReport(cmd.OutOrStdout(), report, runJSON)
	}

	return runErr
}

func printReport(w io.Writer, report *domain.RunReport, asJSON bool) {
	if asJSON {
		fmt.Fprintln(w, utils.PrettyJson(report))
		return
	}

	if !report.AdvertiserIDValid && !report.Aborted() {
		fmt.Fprintln(w, "Warning: configured advertiser ID is not among the token's advertiser IDs.")
	}
	for _, line := range report.Lines() {
		fmt.Fprintln(w, line)
	}
}
