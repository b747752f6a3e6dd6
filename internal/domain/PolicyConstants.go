package domain

// PolicyConstants são os parâmetros da política de orçamento, carregados uma vez na inicialização
type PolicyConstants struct {
	TargetROAS     float64 `json:"target_roas"`
	MaxAdjustment  float64 `json:"max_adjustment"`
	MinBudget      float64 `json:"min_budget"`
	LookbackDays   int     `json:"lookback_days"`
	MinSpend       float64 `json:"min_spend"`
	MinPaymentRate float64 `json:"min_payment_rate"`
}
