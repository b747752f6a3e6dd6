package tiktokclient

import (
	"context"
	"net/http"
	"net/url"

	tiktokdomain "github.com/Magzlar/tik-tok-ad-project/infrastructure/integrator/tiktok/domain"
)

// GetCampaigns lista as campanhas do anunciante configurado com seus orçamentos.
// TODO paginar usando page_info quando o anunciante tiver mais de uma página de campanhas
func (c *TikTokClient) GetCampaigns(ctx context.Context) ([]tiktokdomain.Campaign, error) {
	params := url.Values{}
	params.Add("advertiser_id", c.Cfg.TikTok.AdvertiserID)

	env, err := c.doAuthenticated(ctx, apiRequest{
		Op:     "campaign/get",
		Method: http.MethodGet,
		URL:    c.endpoint(EndpointCampaignList),
		Query:  params,
	})
	if err != nil {
		return nil, err
	}

	var data tiktokdomain.CampaignListData
	if err := decodeData("campaign/get", env, &data); err != nil {
		return nil, err
	}

	return data.List, nil
}
