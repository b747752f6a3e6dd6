package tiktokdomain

import (
	jsoniter "github.com/json-iterator/go"
)

// Envelope é o formato comum de todas as respostas da API: code == 0 indica sucesso
type Envelope struct {
	Code      int                 `json:"code"`
	Message   string              `json:"message"`
	RequestID string              `json:"request_id"`
	Data      jsoniter.RawMessage `json:"data"`
}

func (e *Envelope) OK() bool {
	return e.Code == 0
}

type TokenData struct {
	AccessToken   string   `json:"access_token"`
	AdvertiserIDs []string `json:"advertiser_ids"`
	Scope         []int    `json:"scope,omitempty"`
}

type PageInfo struct {
	Page        int `json:"page"`
	PageSize    int `json:"page_size"`
	TotalNumber int `json:"total_number"`
	TotalPage   int `json:"total_page"`
}
