package tiktokdomain

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

const (
	DimensionCampaignID            = "campaign_id"
	MetricSpend                    = "spend"
	MetricTotalCompletePaymentRate = "total_complete_payment_rate"
)

type ReportFiltering struct {
	CampaignIDs []string `json:"campaign_ids"`
	BuyingTypes string   `json:"buying_types"`
}

type ReportRequest struct {
	AdvertiserID string          `json:"advertiser_id"`
	Dimensions   []string        `json:"dimensions"`
	Metrics      []string        `json:"metrics"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Filtering    ReportFiltering `json:"filtering"`
}

type ReportData struct {
	List     []ReportRow `json:"list"`
	PageInfo PageInfo    `json:"page_info"`
}

type ReportRow struct {
	Dimensions ReportDimensions `json:"dimensions"`
	Metrics    ReportMetrics    `json:"metrics"`
}

type ReportDimensions struct {
	CampaignID string `json:"campaign_id"`
}

type ReportMetrics struct {
	Spend                    Amount `json:"spend"`
	TotalCompletePaymentRate Amount `json:"total_complete_payment_rate"`
}

// Amount aceita métricas enviadas como número ou como string ("12.34").
// Valores ausentes, nulos ou vazios viram zero.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` || raw == "" {
		*a = 0
		return nil
	}

	var s string
	if strings.HasPrefix(raw, `"`) {
		if err := jsoniter.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = raw
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}
