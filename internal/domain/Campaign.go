package domain

// Campaign representa uma campanha montada a partir da junção da lista de
// campanhas com o relatório de desempenho. Budget é nil quando a plataforma
// não informou orçamento diário.
type Campaign struct {
	ID          string   `json:"campaign_id"`
	Spend       float64  `json:"spend"`
	PaymentRate float64  `json:"total_complete_payment_rate"`
	Budget      *float64 `json:"budget,omitempty"`
}

func (c Campaign) HasBudget() bool {
	return c.Budget != nil
}

// BudgetUpdateConfirmation é o retorno bruto da plataforma para uma atualização de orçamento
type BudgetUpdateConfirmation struct {
	CampaignID string  `json:"campaign_id"`
	Budget     float64 `json:"budget"`
	RequestID  string  `json:"request_id"`
	Payload    []byte  `json:"-"`
}
