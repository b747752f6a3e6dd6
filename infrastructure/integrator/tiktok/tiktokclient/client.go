package tiktokclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	tiktokdomain "github.com/Magzlar/tik-tok-ad-project/infrastructure/integrator/tiktok/domain"
	"github.com/Magzlar/tik-tok-ad-project/internal/config"
	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	EndpointAccessToken    = "/oauth2/access_token/"
	EndpointCampaignList   = "/campaign/get/"
	EndpointReport         = "/report/integrated/get/"
	EndpointCampaignUpdate = "/campaign/update/"

	defaultRequestTimeout = 30 * time.Second
	maxErrorBodyLength    = 512
)

type Client interface {
	Authenticate(ctx context.Context) (*domain.AccessToken, error)
	GetCampaigns(ctx context.Context) ([]tiktokdomain.Campaign, error)
	GetCampaignReport(ctx context.Context, params ReportParams) ([]tiktokdomain.ReportRow, error)
	UpdateCampaignBudget(ctx context.Context, campaignID string, budget float64) (*tiktokdomain.Envelope, error)
	EnsureValidToken(ctx context.Context) (string, error)
}

type TikTokClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &TikTokClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   NewHTTPClient(cfg),
	}
}

// NewHTTPClient cria o cliente HTTP compartilhado pelas chamadas à API
func NewHTTPClient(cfg *config.Config) *http.Client {
	timeout := cfg.TikTok.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Authenticate força a obtenção de um novo token e o guarda em cache
func (c *TikTokClient) Authenticate(ctx context.Context) (*domain.AccessToken, error) {
	return c.TokenManager.Authenticate(ctx)
}

// EnsureValidToken retorna o token em cache ou autentica novamente se expirado
func (c *TikTokClient) EnsureValidToken(ctx context.Context) (string, error) {
	return c.TokenManager.EnsureValidToken(ctx)
}

// doAuthenticated executa uma chamada autenticada. Se a plataforma recusar o
// token, o cache é invalidado para que a próxima tentativa autentique de novo.
func (c *TikTokClient) doAuthenticated(ctx context.Context, r apiRequest) (*tiktokdomain.Envelope, error) {
	token, err := c.EnsureValidToken(ctx)
	if err != nil {
		return nil, err
	}
	r.AccessToken = token

	env, err := send(ctx, c.httpClient, r)
	if err != nil {
		var platformErr *domain.PlatformError
		if errors.As(err, &platformErr) && platformErr.Code != nil && tiktokdomain.IsTokenError(*platformErr.Code) {
			logrus.WithFields(logrus.Fields{
				"operation": r.Op,
				"code":      *platformErr.Code,
			}).Warn("tiktok: access token rejected by platform, invalidating cached token")
			c.TokenManager.Invalidate()
		}
		return nil, err
	}

	return env, nil
}

func (c *TikTokClient) endpoint(path string) string {
	return c.Cfg.TikTok.BaseURL + path
}

type apiRequest struct {
	Op          string
	Method      string
	URL         string
	Query       url.Values
	Payload     any
	AccessToken string
}

// send executa uma única chamada HTTP e traduz qualquer falha em PlatformError
func send(ctx context.Context, httpClient *http.Client, r apiRequest) (*tiktokdomain.Envelope, error) {
	var body io.Reader
	if r.Payload != nil {
		encoded, err := json.Marshal(r.Payload)
		if err != nil {
			return nil, &domain.PlatformError{Op: r.Op, Message: "failed to encode request: " + err.Error(), Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	requestURL := r.URL
	if len(r.Query) > 0 {
		requestURL += "?" + r.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, requestURL, body)
	if err != nil {
		logrus.WithError(err).Error("tiktok: failed to create request")
		return nil, &domain.PlatformError{Op: r.Op, Message: "failed to create request: " + err.Error(), Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if r.AccessToken != "" {
		req.Header.Set("Access-Token", r.AccessToken)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("operation", r.Op).Error("tiktok: request failed")
		return nil, &domain.PlatformError{Op: r.Op, Message: "API request failed: " + err.Error(), Err: err}
	}
	defer resp.Body.Close()

	return handleResponse(r.Op, resp)
}

// handleResponse valida status HTTP e código de aplicação da resposta
func handleResponse(op string, resp *http.Response) (*tiktokdomain.Envelope, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.PlatformError{Op: op, Message: "failed to read response: " + err.Error(), HTTPStatus: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.PlatformError{
			Op:         op,
			Message:    fmt.Sprintf("unexpected HTTP status: %s", truncate(string(body))),
			HTTPStatus: resp.StatusCode,
		}
	}

	var env tiktokdomain.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &domain.PlatformError{Op: op, Message: "failed to decode response: " + err.Error(), HTTPStatus: resp.StatusCode, Err: err}
	}

	if !env.OK() {
		code := env.Code
		message := env.Message
		if message == "" {
			message = "Unknown error"
		}
		return nil, &domain.PlatformError{Op: op, Message: message, Code: &code}
	}

	return &env, nil
}

func decodeData(op string, env *tiktokdomain.Envelope, out any) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &domain.PlatformError{Op: op, Message: "failed to decode response data: " + err.Error(), Err: err}
	}
	return nil
}

func truncate(s string) string {
	if len(s) <= maxErrorBodyLength {
		return s
	}
	return s[:maxErrorBodyLength] + "..."
}
