package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
)

func TestPrintReport(t *testing.T) {
	old := 80.0

	tests := []struct {
		name   string
		report *domain.RunReport
		want   string
	}{
		{
			name: "linhas por campanha",
			report: &domain.RunReport{
				AdvertiserIDValid: true,
				Outcomes: []domain.CampaignOutcome{
					{CampaignID: "c1", Status: domain.OutcomeUpdated, OldBudget: &old, NewBudget: 106.67},
					{CampaignID: "c2", Status: domain.OutcomeSkipped},
				},
			},
			want: "Updated campaign c1: 80.00 -> 106.67\nSkipping campaign c2 due to missing budget info.\n",
		},
		{
			name: "aviso de anunciante inválido",
			report: &domain.RunReport{
				NoCampaigns: true,
			},
			want: "Warning: configured advertiser ID is not among the token's advertiser IDs.\nNo campaigns met the criteria.\n",
		},
		{
			name: "execução abortada",
			report: &domain.RunReport{
				Fatal: "Failed to get access token after retries: boom",
			},
			want: "Failed to get access token after retries: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printReport(&buf, tt.report, false)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &domain.RunReport{RunID: "abc12345", NoCampaigns: true}, true)

	assert.Contains(t, buf.String(), `"run_id": "abc12345"`)
	assert.Contains(t, buf.String(), `"no_campaigns": true`)
}
