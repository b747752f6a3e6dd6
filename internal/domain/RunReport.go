package domain

import (
	"fmt"
	"time"
)

type OutcomeStatus string

const (
	OutcomeUpdated   OutcomeStatus = "updated"
	OutcomeUnchanged OutcomeStatus = "unchanged"
	OutcomeSkipped   OutcomeStatus = "skipped"
	OutcomeFailed    OutcomeStatus = "error"
)

// FailureKind separa falhas da plataforma na atualização de falhas inesperadas
type FailureKind string

const (
	FailureUpdate     FailureKind = "update"
	FailureUnexpected FailureKind = "unexpected"
)

// CampaignOutcome é o resultado do processamento de uma campanha em uma execução
type CampaignOutcome struct {
	CampaignID       string        `json:"campaign_id"`
	Status           OutcomeStatus `json:"status"`
	ROAS             float64       `json:"roas,omitempty"`
	AdjustmentFactor float64       `json:"adjustment_factor,omitempty"`
	OldBudget        *float64      `json:"old_budget,omitempty"`
	NewBudget        float64       `json:"new_budget,omitempty"`
	DryRun           bool          `json:"dry_run,omitempty"`
	FailureKind      FailureKind   `json:"failure_kind,omitempty"`
	Error            string        `json:"error,omitempty"`
}

// Line formata o resultado como uma linha legível para o operador
func (o CampaignOutcome) Line() string {
	switch o.Status {
	case OutcomeUpdated:
		prefix := "Updated"
		if o.DryRun {
			prefix = "[dry-run] Would update"
		}
		return fmt.Sprintf("%s campaign %s: %.2f -> %.2f", prefix, o.CampaignID, derefBudget(o.OldBudget), o.NewBudget)
	case OutcomeUnchanged:
		return fmt.Sprintf("No budget change for campaign %s (ROAS: %.2f)", o.CampaignID, o.ROAS)
	case OutcomeSkipped:
		return fmt.Sprintf("Skipping campaign %s due to missing budget info.", o.CampaignID)
	default:
		if o.FailureKind == FailureUnexpected {
			return fmt.Sprintf("Unexpected error for campaign %s: %s", o.CampaignID, o.Error)
		}
		return fmt.Sprintf("Error updating campaign %s: %s", o.CampaignID, o.Error)
	}
}

// RunReport agrega os resultados de uma execução completa do ajuste de orçamentos
type RunReport struct {
	RunID             string            `json:"run_id"`
	CorrelationID     string            `json:"correlation_id"`
	StartedAt         time.Time         `json:"started_at"`
	FinishedAt        time.Time         `json:"finished_at"`
	DryRun            bool              `json:"dry_run"`
	AdvertiserIDValid bool              `json:"advertiser_id_valid"`
	AdvertiserIDs     []string          `json:"advertiser_ids,omitempty"`
	NoCampaigns       bool              `json:"no_campaigns"`
	Outcomes          []CampaignOutcome `json:"outcomes"`
	Fatal             string            `json:"fatal,omitempty"`
}

// Aborted indica se a execução terminou antes do laço de campanhas
func (r *RunReport) Aborted() bool {
	return r.Fatal != ""
}

func (r *RunReport) Counts() map[OutcomeStatus]int {
	counts := map[OutcomeStatus]int{
		OutcomeUpdated:   0,
		OutcomeUnchanged: 0,
		OutcomeSkipped:   0,
		OutcomeFailed:    0,
	}
	for _, o := range r.Outcomes {
		counts[o.Status]++
	}
	return counts
}

// Lines retorna as linhas de status da execução na ordem em que ocorreram
func (r *RunReport) Lines() []string {
	if r.Aborted() {
		return []string{r.Fatal}
	}
	if r.NoCampaigns {
		return []string{"No campaigns met the criteria."}
	}

	lines := make([]string, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		lines = append(lines, o.Line())
	}
	return lines
}

func (r *RunReport) Summary() string {
	if r.Aborted() {
		return fmt.Sprintf("run %s aborted: %s", r.RunID, r.Fatal)
	}
	c := r.Counts()
	return fmt.Sprintf("run %s finished: %d updated, %d unchanged, %d skipped, %d errors",
		r.RunID, c[OutcomeUpdated], c[OutcomeUnchanged], c[OutcomeSkipped], c[OutcomeFailed])
}

func derefBudget(b *float64) float64 {
	if b == nil {
		return 0
	}
	return *b
}
