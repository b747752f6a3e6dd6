package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
	"github.com/Magzlar/tik-tok-ad-project/internal/usecases/authenticating"
)

var (
	tokenSubject string
	tokenRole    string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the admin API",
	Long: `Sign a token with ADMIN_JWT_SECRET. Roles:
  admin    - can read status and trigger runs
  operator - can only read status`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "operator identifier (required)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", domain.RoleOperator, "admin or operator")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(false)
	if err != nil {
		return err
	}

	token, err := authenticating.NewService(cfg).GenerateToken(tokenSubject, tokenRole, cfg.Admin.TokenTTL)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
