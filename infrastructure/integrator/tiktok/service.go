package tiktok

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	tiktokdomain "github.com/Magzlar/tik-tok-ad-project/infrastructure/integrator/tiktok/domain"
	"github.com/Magzlar/tik-tok-ad-project/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/Magzlar/tik-tok-ad-project/internal/config"
	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
	"github.com/Magzlar/tik-tok-ad-project/pkg/utils"
)

type TikTokIntegrator struct {
	cfg    *config.Config
	Client tiktokclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client tiktokclient.Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

func (s *TikTokIntegrator) Authenticate(ctx context.Context) (*domain.AccessToken, error) {
	return s.Client.Authenticate(ctx)
}

// GetEligibleCampaigns lista as campanhas, busca o relatório de desempenho da
// janela e devolve apenas as campanhas presentes nos dois lados que passam
// nos limites mínimos de gasto e receita.
func (s *TikTokIntegrator) GetEligibleCampaigns(ctx context.Context, lookbackDays int, minSpend, minPaymentRate float64) ([]domain.Campaign, error) {
	campaigns, err := s.Client.GetCampaigns(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"advertiser_id": s.cfg.TikTok.AdvertiserID,
			"error":         err.Error(),
		}).Error("tiktok: failed to list campaigns")
		return nil, err
	}

	if len(campaigns) == 0 {
		logrus.WithField("advertiser_id", s.cfg.TikTok.AdvertiserID).Info("tiktok: advertiser has no campaigns")
		return []domain.Campaign{}, nil
	}

	budgets := make(map[string]*float64, len(campaigns))
	campaignIDs := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		budgets[c.CampaignID] = c.Budget
		campaignIDs = append(campaignIDs, c.CampaignID)
	}

	startDate, endDate := utils.TrailingWindow(s.now(), lookbackDays)

	rows, err := s.Client.GetCampaignReport(ctx, tiktokclient.ReportParams{
		CampaignIDs: campaignIDs,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"advertiser_id": s.cfg.TikTok.AdvertiserID,
			"start_date":    startDate.Format(time.DateOnly),
			"end_date":      endDate.Format(time.DateOnly),
			"error":         err.Error(),
		}).Error("tiktok: failed to get campaign performance report")
		return nil, err
	}

	eligible := JoinCampaignPerformance(budgets, rows, minSpend, minPaymentRate)

	logrus.WithFields(logrus.Fields{
		"campaigns":   len(campaigns),
		"report_rows": len(rows),
		"eligible":    len(eligible),
		"start_date":  startDate.Format(time.DateOnly),
		"end_date":    endDate.Format(time.DateOnly),
	}).Info("tiktok: campaign performance retrieved")

	return eligible, nil
}

// JoinCampaignPerformance junta as linhas do relatório aos orçamentos pelo ID
// da campanha. Linhas sem campanha correspondente (e campanhas sem linha) são
// descartadas. Gasto e receita precisam ser estritamente maiores que os mínimos.
func JoinCampaignPerformance(budgets map[string]*float64, rows []tiktokdomain.ReportRow, minSpend, minPaymentRate float64) []domain.Campaign {
	eligible := make([]domain.Campaign, 0, len(rows))

	for _, row := range rows {
		campaignID := row.Dimensions.CampaignID

		budget, found := budgets[campaignID]
		if !found {
			logrus.WithField("campaign_id", campaignID).Debug("tiktok: report row without matching campaign, ignoring")
			continue
		}

		spend := row.Metrics.Spend.Float64()
		paymentRate := row.Metrics.TotalCompletePaymentRate.Float64()

		if spend <= minSpend || paymentRate <= minPaymentRate {
			continue
		}

		var budgetCopy *float64
		if budget != nil {
			b := *budget
			budgetCopy = &b
		}

		eligible = append(eligible, domain.Campaign{
			ID:          campaignID,
			Spend:       spend,
			PaymentRate: paymentRate,
			Budget:      budgetCopy,
		})
	}

	return eligible
}

// UpdateBudget envia o novo orçamento diário e devolve a confirmação bruta da plataforma
func (s *TikTokIntegrator) UpdateBudget(ctx context.Context, campaignID string, budget float64) (*domain.BudgetUpdateConfirmation, error) {
	env, err := s.Client.UpdateCampaignBudget(ctx, campaignID, budget)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"budget":      budget,
			"error":       err.Error(),
		}).Error("tiktok: failed to update campaign budget")
		return nil, err
	}

	return &domain.BudgetUpdateConfirmation{
		CampaignID: campaignID,
		Budget:     utils.RoundWithTwoDecimalPlace(budget),
		RequestID:  env.RequestID,
		Payload:    env.Data,
	}, nil
}
