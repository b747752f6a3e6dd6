package tiktokclient

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	tiktokdomain "github.com/Magzlar/tik-tok-ad-project/infrastructure/integrator/tiktok/domain"
	"github.com/Magzlar/tik-tok-ad-project/pkg/utils"
)

// UpdateCampaignBudget define o novo orçamento diário da campanha (BUDGET_MODE_DAY).
// O valor é arredondado para duas casas decimais antes do envio.
func (c *TikTokClient) UpdateCampaignBudget(ctx context.Context, campaignID string, budget float64) (*tiktokdomain.Envelope, error) {
	payload := tiktokdomain.BudgetUpdateRequest{
		AdvertiserID: c.Cfg.TikTok.AdvertiserID,
		CampaignID:   campaignID,
		BudgetMode:   tiktokdomain.BudgetModeDay,
		Budget:       utils.RoundWithTwoDecimalPlace(budget),
	}

	env, err := c.doAuthenticated(ctx, apiRequest{
		Op:      "campaign/update",
		Method:  http.MethodPost,
		URL:     c.endpoint(EndpointCampaignUpdate),
		Payload: payload,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"budget":      payload.Budget,
		"request_id":  env.RequestID,
	}).Debug("tiktok: campaign budget updated")

	return env, nil
}
