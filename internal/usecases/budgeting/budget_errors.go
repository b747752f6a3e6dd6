package budgeting

import (
	"errors"
	"fmt"
)

// Erros específicos do ajuste de orçamentos
var (
	// Erro de cálculo: gasto zero não tem ROAS definido
	ErrDivisionByZero = errors.New("cannot compute ROAS with zero spend")

	// Erros fatais da execução
	ErrAuthenticationFailed = errors.New("failed to get access token after retries")
	ErrCampaignFetchFailed  = errors.New("failed to get campaign performance after retries")

	// Erros por campanha
	ErrBudgetUpdateFailed = errors.New("failed to update campaign budget")
	ErrUnexpected         = errors.New("unexpected error processing campaign")

	ErrRunInProgress = errors.New("budget run already in progress")
)

// CampaignError associa uma falha à campanha em que ocorreu
type CampaignError struct {
	Err        error  // Erro base
	CampaignID string // Campanha afetada
	Cause      error  // Causa original, quando houver
}

func (e *CampaignError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("campaign %s: %s: %s", e.CampaignID, e.Err.Error(), e.Cause.Error())
	}
	return fmt.Sprintf("campaign %s: %s", e.CampaignID, e.Err.Error())
}

// Unwrap expõe tanto o erro base quanto a causa para errors.Is/As
func (e *CampaignError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewCampaignError(err error, campaignID string, cause error) *CampaignError {
	return &CampaignError{
		Err:        err,
		CampaignID: campaignID,
		Cause:      cause,
	}
}
