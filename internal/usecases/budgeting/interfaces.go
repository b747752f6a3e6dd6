package budgeting

import (
	"context"

	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
)

// PlatformIntegrator define as operações da plataforma de anúncios usadas pelo ajuste de orçamentos
type PlatformIntegrator interface {
	Authenticate(ctx context.Context) (*domain.AccessToken, error)
	GetEligibleCampaigns(ctx context.Context, lookbackDays int, minSpend, minPaymentRate float64) ([]domain.Campaign, error)
	UpdateBudget(ctx context.Context, campaignID string, budget float64) (*domain.BudgetUpdateConfirmation, error)
}

// Runner executa uma rodada completa de ajuste de orçamentos
type Runner interface {
	Run(ctx context.Context) (*domain.RunReport, error)
}
