package tiktokclient

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Magzlar/tik-tok-ad-project/internal/config"
	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
)

const (
	defaultTokenLifetime = time.Hour
	refreshKey           = "access_token"
)

// TokenManager mantém o access token do anunciante configurado. O token é
// obtido na primeira chamada e renovado de forma preguiçosa quando expira.
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client
	now        func() time.Time

	mu      sync.RWMutex
	token   *domain.AccessToken
	refresh singleflight.Group
}

func NewTokenManager(cfg *config.Config, httpClient *http.Client) *TokenManager {
	return &TokenManager{
		cfg:        cfg,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// Authenticate obtém um novo token. Chamadas concorrentes compartilham a mesma requisição.
func (tm *TokenManager) Authenticate(ctx context.Context) (*domain.AccessToken, error) {
	v, err, shared := tm.refresh.Do(refreshKey, func() (any, error) {
		return tm.fetchToken(ctx)
	})
	if err != nil {
		return nil, err
	}

	if shared {
		logrus.Debug("tiktok: joined in-flight authentication")
	}

	return v.(*domain.AccessToken), nil
}

func (tm *TokenManager) fetchToken(ctx context.Context) (*domain.AccessToken, error) {
	logrus.Info("tiktok: requesting access token")

	data, err := RequestAccessToken(ctx, tm.httpClient, tm.cfg.TikTok)
	if err != nil {
		logrus.WithError(err).Error("tiktok: failed to get access token")
		return nil, err
	}

	lifetime := tm.cfg.TikTok.TokenLifetime
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}

	token := &domain.AccessToken{
		Token:             data.AccessToken,
		AdvertiserIDs:     data.AdvertiserIDs,
		AdvertiserIDValid: slices.Contains(data.AdvertiserIDs, tm.cfg.TikTok.AdvertiserID),
		ExpiresAt:         tm.now().Add(lifetime),
	}

	tm.mu.Lock()
	tm.token = token
	tm.mu.Unlock()

	fields := logrus.Fields{
		"advertiser_id":       tm.cfg.TikTok.AdvertiserID,
		"advertiser_id_valid": token.AdvertiserIDValid,
		"expires_at":          token.ExpiresAt.Format(time.RFC3339),
	}
	if !token.AdvertiserIDValid {
		logrus.WithFields(fields).WithField("advertiser_ids", token.AdvertiserIDs).
			Warn("tiktok: configured advertiser is not authorized for this token")
	} else {
		logrus.WithFields(fields).Info("tiktok: access token obtained")
	}

	return token, nil
}

// EnsureValidToken devolve o token em cache, autenticando de forma síncrona
// quando não há token ou ele expirou.
func (tm *TokenManager) EnsureValidToken(ctx context.Context) (string, error) {
	tm.mu.RLock()
	token := tm.token
	tm.mu.RUnlock()

	if !token.Expired(tm.now()) {
		return token.Token, nil
	}

	logrus.Debug("tiktok: no valid access token cached, authenticating")
	token, err := tm.Authenticate(ctx)
	if err != nil {
		return "", err
	}

	return token.Token, nil
}

// Invalidate descarta o token em cache
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	tm.token = nil
	tm.mu.Unlock()
}

// Current retorna uma cópia do token em cache, se houver
func (tm *TokenManager) Current() (domain.AccessToken, bool) {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	if tm.token == nil {
		return domain.AccessToken{}, false
	}
	return *tm.token, true
}
