package tiktokclient

import (
	"context"
	"net/http"
	"net/url"

	tiktokdomain "github.com/Magzlar/tik-tok-ad-project/infrastructure/integrator/tiktok/domain"
	"github.com/Magzlar/tik-tok-ad-project/internal/config"
	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
)

// RequestAccessToken troca app_id, secret e auth_code por um access token.
// Essa chamada não leva o header Access-Token.
func RequestAccessToken(ctx context.Context, httpClient *http.Client, cfg config.TikTok) (*tiktokdomain.TokenData, error) {
	params := url.Values{}
	params.Add("app_id", cfg.AppID)
	params.Add("secret", cfg.Secret)
	params.Add("auth_code", cfg.AuthCode)

	env, err := send(ctx, httpClient, apiRequest{
		Op:     "oauth2/access_token",
		Method: http.MethodGet,
		URL:    cfg.BaseURL + EndpointAccessToken,
		Query:  params,
	})
	if err != nil {
		return nil, err
	}

	var data tiktokdomain.TokenData
	if err := decodeData("oauth2/access_token", env, &data); err != nil {
		return nil, err
	}

	if data.AccessToken == "" {
		return nil, &domain.AuthenticationError{Message: "token endpoint returned no access_token"}
	}

	return &data, nil
}
