package tiktokclient

import (
	"context"
	"net/http"
	"time"

	tiktokdomain "github.com/Magzlar/tik-tok-ad-project/infrastructure/integrator/tiktok/domain"
)

type ReportParams struct {
	CampaignIDs []string
	StartDate   time.Time
	EndDate     time.Time
}

// GetCampaignReport busca gasto e receita atribuída agregados por campanha no período
func (c *TikTokClient) GetCampaignReport(ctx context.Context, params ReportParams) ([]tiktokdomain.ReportRow, error) {
	payload := tiktokdomain.ReportRequest{
		AdvertiserID: c.Cfg.TikTok.AdvertiserID,
		Dimensions:   []string{tiktokdomain.DimensionCampaignID},
		Metrics:      []string{tiktokdomain.MetricSpend, tiktokdomain.MetricTotalCompletePaymentRate},
		StartDate:    params.StartDate.Format(time.DateOnly),
		EndDate:      params.EndDate.Format(time.DateOnly),
		Filtering: tiktokdomain.ReportFiltering{
			CampaignIDs: params.CampaignIDs,
			BuyingTypes: c.Cfg.TikTok.BuyingType,
		},
	}

	env, err := c.doAuthenticated(ctx, apiRequest{
		Op:      "report/integrated/get",
		Method:  http.MethodPost,
		URL:     c.endpoint(EndpointReport),
		Payload: payload,
	})
	if err != nil {
		return nil, err
	}

	var data tiktokdomain.ReportData
	if err := decodeData("report/integrated/get", env, &data); err != nil {
		return nil, err
	}

	return data.List, nil
}
