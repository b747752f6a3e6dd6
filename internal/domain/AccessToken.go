package domain

import "time"

// AccessToken guarda a credencial da plataforma para um anunciante.
// ExpiresAt é calculado localmente a partir do tempo de vida configurado,
// o endpoint de token não informa a expiração.
type AccessToken struct {
	Token             string    `json:"-"`
	AdvertiserIDValid bool      `json:"advertiser_id_valid"`
	AdvertiserIDs     []string  `json:"advertiser_ids"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// Expired indica se o token não pode mais ser usado no instante now
func (t *AccessToken) Expired(now time.Time) bool {
	if t == nil || t.Token == "" {
		return true
	}
	return !now.Before(t.ExpiresAt)
}
