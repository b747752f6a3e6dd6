package tiktokclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Magzlar/tik-tok-ad-project/internal/config"
	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
)

const testAdvertiserID = "7041312028410778178"

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Token  string
	Body   map[string]any
}

// fakePlatform simula a API com respostas configuráveis por endpoint
type fakePlatform struct {
	t         *testing.T
	mu        sync.Mutex
	responses map[string][]fakeResponse
	requests  []recordedRequest
}

type fakeResponse struct {
	status int
	body   string
}

func newFakePlatform(t *testing.T) (*fakePlatform, *httptest.Server) {
	fp := &fakePlatform{t: t, responses: map[string][]fakeResponse{}}
	srv := httptest.NewServer(http.HandlerFunc(fp.serve))
	t.Cleanup(srv.Close)
	return fp, srv
}

// on enfileira respostas para um endpoint; a última se repete
func (fp *fakePlatform) on(path string, responses ...fakeResponse) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.responses[path] = append(fp.responses[path], responses...)
}

func (fp *fakePlatform) serve(w http.ResponseWriter, r *http.Request) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	rec := recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  map[string]string{},
		Token:  r.Header.Get("Access-Token"),
	}
	for k := range r.URL.Query() {
		rec.Query[k] = r.URL.Query().Get(k)
	}
	if r.Body != nil {
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			assert.NoError(fp.t, json.Unmarshal(raw, &rec.Body))
		}
	}
	fp.requests = append(fp.requests, rec)

	queue := fp.responses[r.URL.Path]
	if len(queue) == 0 {
		http.NotFound(w, r)
		return
	}
	resp := queue[0]
	if len(queue) > 1 {
		fp.responses[r.URL.Path] = queue[1:]
	}

	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

func (fp *fakePlatform) requestsTo(path string) []recordedRequest {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	var out []recordedRequest
	for _, r := range fp.requests {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func ok(body string) fakeResponse {
	return fakeResponse{status: http.StatusOK, body: body}
}

const tokenOK = `{"code":0,"message":"OK","data":{"access_token":"tok-1","advertiser_ids":["111","7041312028410778178"]}}`

func newTestClient(srv *httptest.Server) (*TikTokClient, *TokenManager) {
	cfg := &config.Config{
		TikTok: config.TikTok{
			BaseURL:        srv.URL + "/open_api/v1.3",
			AppID:          "app-id",
			Secret:         "app-secret",
			AuthCode:       "auth-code",
			AdvertiserID:   testAdvertiserID,
			TokenLifetime:  time.Hour,
			BuyingType:     "AUCTION",
			RequestTimeout: 5 * time.Second,
		},
	}
	httpClient := NewHTTPClient(cfg)
	tm := NewTokenManager(cfg, httpClient)
	client := NewClient(cfg, tm).(*TikTokClient)
	return client, tm
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name     string
		response fakeResponse
		validate func(t *testing.T, token *domain.AccessToken, err error)
	}{
		{
			name:     "sucesso com anunciante autorizado",
			response: ok(tokenOK),
			validate: func(t *testing.T, token *domain.AccessToken, err error) {
				require.NoError(t, err)
				assert.Equal(t, "tok-1", token.Token)
				assert.True(t, token.AdvertiserIDValid)
				assert.Equal(t, []string{"111", testAdvertiserID}, token.AdvertiserIDs)
			},
		},
		{
			name:     "anunciante fora da lista autorizada",
			response: ok(`{"code":0,"message":"OK","data":{"access_token":"tok-1","advertiser_ids":["111"]}}`),
			validate: func(t *testing.T, token *domain.AccessToken, err error) {
				require.NoError(t, err)
				assert.False(t, token.AdvertiserIDValid)
			},
		},
		{
			name:     "código de aplicação diferente de zero",
			response: ok(`{"code":40001,"message":"invalid auth_code"}`),
			validate: func(t *testing.T, token *domain.AccessToken, err error) {
				require.Error(t, err)
				assert.Nil(t, token)
				assert.ErrorIs(t, err, domain.ErrPlatform)

				var platformErr *domain.PlatformError
				require.ErrorAs(t, err, &platformErr)
				require.NotNil(t, platformErr.Code)
				assert.Equal(t, 40001, *platformErr.Code)
				assert.Equal(t, "invalid auth_code", platformErr.Message)
			},
		},
		{
			name:     "resposta sem access_token",
			response: ok(`{"code":0,"message":"OK","data":{"advertiser_ids":["111"]}}`),
			validate: func(t *testing.T, token *domain.AccessToken, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrAuthentication)
				assert.NotErrorIs(t, err, domain.ErrPlatform)
			},
		},
		{
			name:     "status HTTP de erro",
			response: fakeResponse{status: http.StatusBadGateway, body: "upstream down"},
			validate: func(t *testing.T, token *domain.AccessToken, err error) {
				var platformErr *domain.PlatformError
				require.ErrorAs(t, err, &platformErr)
				assert.Equal(t, http.StatusBadGateway, platformErr.HTTPStatus)
				assert.Nil(t, platformErr.Code)
				assert.Contains(t, platformErr.Message, "upstream down")
			},
		},
		{
			name:     "corpo que não é JSON",
			response: ok("<html>"),
			validate: func(t *testing.T, token *domain.AccessToken, err error) {
				assert.ErrorIs(t, err, domain.ErrPlatform)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp, srv := newFakePlatform(t)
			fp.on("/open_api/v1.3/oauth2/access_token/", tt.response)
			client, _ := newTestClient(srv)

			token, err := client.Authenticate(context.Background())
			tt.validate(t, token, err)

			reqs := fp.requestsTo("/open_api/v1.3/oauth2/access_token/")
			require.Len(t, reqs, 1)
			assert.Equal(t, http.MethodGet, reqs[0].Method)
			assert.Equal(t, "app-id", reqs[0].Query["app_id"])
			assert.Equal(t, "app-secret", reqs[0].Query["secret"])
			assert.Equal(t, "auth-code", reqs[0].Query["auth_code"])
			assert.Empty(t, reqs[0].Token)
		})
	}
}

func TestAuthenticate_TransportFailure(t *testing.T) {
	_, srv := newFakePlatform(t)
	client, _ := newTestClient(srv)
	srv.Close()

	_, err := client.Authenticate(context.Background())

	var platformErr *domain.PlatformError
	require.ErrorAs(t, err, &platformErr)
	assert.NotNil(t, platformErr.Err)
	assert.Zero(t, platformErr.HTTPStatus)
}

func TestGetCampaigns_AuthenticatesLazilyAndReusesToken(t *testing.T) {
	fp, srv := newFakePlatform(t)
	fp.on("/open_api/v1.3/oauth2/access_token/", ok(tokenOK))
	fp.on("/open_api/v1.3/campaign/get/", ok(`{"code":0,"message":"OK","data":{"list":[
		{"campaign_id":"c1","campaign_name":"A","budget":80},
		{"campaign_id":"c2","campaign_name":"B","budget":null}
	]}}`))
	client, _ := newTestClient(srv)

	for i := 0; i < 2; i++ {
		campaigns, err := client.GetCampaigns(context.Background())
		require.NoError(t, err)
		require.Len(t, campaigns, 2)
		assert.Equal(t, "c1", campaigns[0].CampaignID)
		require.NotNil(t, campaigns[0].Budget)
		assert.Equal(t, 80.0, *campaigns[0].Budget)
		assert.Nil(t, campaigns[1].Budget)
	}

	assert.Len(t, fp.requestsTo("/open_api/v1.3/oauth2/access_token/"), 1)

	reqs := fp.requestsTo("/open_api/v1.3/campaign/get/")
	require.Len(t, reqs, 2)
	for _, r := range reqs {
		assert.Equal(t, "tok-1", r.Token)
		assert.Equal(t, testAdvertiserID, r.Query["advertiser_id"])
	}
}

func TestEnsureValidToken_RefreshesAfterExpiry(t *testing.T) {
	fp, srv := newFakePlatform(t)
	fp.on("/open_api/v1.3/oauth2/access_token/",
		ok(tokenOK),
		ok(`{"code":0,"message":"OK","data":{"access_token":"tok-2","advertiser_ids":["7041312028410778178"]}}`),
	)
	client, tm := newTestClient(srv)

	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	tm.now = func() time.Time { return now }

	token, err := client.EnsureValidToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	now = now.Add(59 * time.Minute)
	token, err = client.EnsureValidToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	now = now.Add(time.Minute)
	token, err = client.EnsureValidToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)

	current, cached := tm.Current()
	require.True(t, cached)
	assert.Equal(t, now.Add(time.Hour), current.ExpiresAt)
	assert.Len(t, fp.requestsTo("/open_api/v1.3/oauth2/access_token/"), 2)
}

func TestGetCampaigns_FailsWhenAuthenticationFails(t *testing.T) {
	fp, srv := newFakePlatform(t)
	fp.on("/open_api/v1.3/oauth2/access_token/", ok(`{"code":40001,"message":"bad secret"}`))
	client, _ := newTestClient(srv)

	_, err := client.GetCampaigns(context.Background())

	assert.ErrorIs(t, err, domain.ErrPlatform)
	assert.Empty(t, fp.requestsTo("/open_api/v1.3/campaign/get/"))
}

func TestDoAuthenticated_InvalidatesRejectedToken(t *testing.T) {
	fp, srv := newFakePlatform(t)
	fp.on("/open_api/v1.3/oauth2/access_token/", ok(tokenOK))
	fp.on("/open_api/v1.3/campaign/get/", ok(`{"code":40105,"message":"Access token is invalid"}`))
	client, tm := newTestClient(srv)

	_, err := client.GetCampaigns(context.Background())
	assert.ErrorIs(t, err, domain.ErrPlatform)

	_, cached := tm.Current()
	assert.False(t, cached)
}

func TestGetCampaignReport(t *testing.T) {
	fp, srv := newFakePlatform(t)
	fp.on("/open_api/v1.3/oauth2/access_token/", ok(tokenOK))
	fp.on("/open_api/v1.3/report/integrated/get/", ok(`{"code":0,"message":"OK","data":{"list":[
		{"dimensions":{"campaign_id":"c1"},"metrics":{"spend":"100.00","total_complete_payment_rate":"200.00"}},
		{"dimensions":{"campaign_id":"c2"},"metrics":{"spend":12.5,"total_complete_payment_rate":null}}
	]}}`))
	client, _ := newTestClient(srv)

	rows, err := client.GetCampaignReport(context.Background(), ReportParams{
		CampaignIDs: []string{"c1", "c2"},
		StartDate:   time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "c1", rows[0].Dimensions.CampaignID)
	assert.Equal(t, 100.0, rows[0].Metrics.Spend.Float64())
	assert.Equal(t, 200.0, rows[0].Metrics.TotalCompletePaymentRate.Float64())
	assert.Equal(t, 12.5, rows[1].Metrics.Spend.Float64())
	assert.Zero(t, rows[1].Metrics.TotalCompletePaymentRate.Float64())

	reqs := fp.requestsTo("/open_api/v1.3/report/integrated/get/")
	require.Len(t, reqs, 1)
	body := reqs[0].Body
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "tok-1", reqs[0].Token)
	assert.Equal(t, testAdvertiserID, body["advertiser_id"])
	assert.Equal(t, []any{"campaign_id"}, body["dimensions"])
	assert.Equal(t, []any{"spend", "total_complete_payment_rate"}, body["metrics"])
	assert.Equal(t, "2026-09-17", body["start_date"])
	assert.Equal(t, "2026-10-17", body["end_date"])
	assert.Equal(t, map[string]any{
		"campaign_ids": []any{"c1", "c2"},
		"buying_types": "AUCTION",
	}, body["filtering"])
}

func TestUpdateCampaignBudget(t *testing.T) {
	fp, srv := newFakePlatform(t)
	fp.on("/open_api/v1.3/oauth2/access_token/", ok(tokenOK))
	fp.on("/open_api/v1.3/campaign/update/",
		ok(`{"code":0,"message":"OK","request_id":"req-9","data":{"campaign_id":"c1"}}`),
		ok(`{"code":40002,"message":"budget too low"}`),
	)
	client, _ := newTestClient(srv)

	env, err := client.UpdateCampaignBudget(context.Background(), "c1", 106.66666)
	require.NoError(t, err)
	assert.Equal(t, "req-9", env.RequestID)
	assert.JSONEq(t, `{"campaign_id":"c1"}`, string(env.Data))

	reqs := fp.requestsTo("/open_api/v1.3/campaign/update/")
	require.Len(t, reqs, 1)
	assert.Equal(t, map[string]any{
		"advertiser_id": testAdvertiserID,
		"campaign_id":   "c1",
		"budget_mode":   "BUDGET_MODE_DAY",
		"budget":        106.67,
	}, reqs[0].Body)

	_, err = client.UpdateCampaignBudget(context.Background(), "c1", 10)
	var platformErr *domain.PlatformError
	require.ErrorAs(t, err, &platformErr)
	assert.Equal(t, "campaign/update", platformErr.Op)
	assert.Equal(t, "budget too low", platformErr.Message)
}
