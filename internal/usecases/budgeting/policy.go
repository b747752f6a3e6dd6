package budgeting

import (
	"math"

	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
)

// ROAS calcula receita atribuída / gasto
func ROAS(campaign domain.Campaign) (float64, error) {
	if campaign.Spend == 0 {
		return 0, ErrDivisionByZero
	}
	return campaign.PaymentRate / campaign.Spend, nil
}

// AdjustmentFactor é o desvio relativo do ROAS em relação à meta, limitado a [-max, +max]
func AdjustmentFactor(roas, targetROAS, maxAdjustment float64) float64 {
	raw := (roas - targetROAS) / targetROAS
	return math.Max(-maxAdjustment, math.Min(maxAdjustment, raw))
}

// NewBudget aplica o fator ao orçamento atual respeitando o piso
func NewBudget(currentBudget, factor, minBudget float64) float64 {
	return math.Max(currentBudget*(1+factor), minBudget)
}

// BudgetChanged compara os orçamentos na precisão de centavos, a mesma enviada à plataforma.
// Diferenças menores que um centavo contam como "sem mudança".
func BudgetChanged(currentBudget, newBudget float64) bool {
	return math.Round(currentBudget*100) != math.Round(newBudget*100)
}

// Decision é o resultado da política para uma campanha
type Decision struct {
	ROAS      float64
	Factor    float64
	OldBudget float64
	NewBudget float64
	Changed   bool
}

// Decide aplica a política completa a uma campanha com orçamento conhecido
func Decide(campaign domain.Campaign, constants domain.PolicyConstants) (Decision, error) {
	roas, err := ROAS(campaign)
	if err != nil {
		return Decision{}, err
	}

	current := *campaign.Budget
	factor := AdjustmentFactor(roas, constants.TargetROAS, constants.MaxAdjustment)
	newBudget := NewBudget(current, factor, constants.MinBudget)

	return Decision{
		ROAS:      roas,
		Factor:    factor,
		OldBudget: current,
		NewBudget: newBudget,
		Changed:   BudgetChanged(current, newBudget),
	}, nil
}
