package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCampaignOutcome_Line(t *testing.T) {
	old := 80.0

	tests := []struct {
		name    string
		outcome CampaignOutcome
		want    string
	}{
		{
			name:    "atualizada",
			outcome: CampaignOutcome{CampaignID: "c1", Status: OutcomeUpdated, OldBudget: &old, NewBudget: 106.67},
			want:    "Updated campaign c1: 80.00 -> 106.67",
		},
		{
			name:    "dry-run",
			outcome: CampaignOutcome{CampaignID: "c1", Status: OutcomeUpdated, OldBudget: &old, NewBudget: 50, DryRun: true},
			want:    "[dry-run] Would update campaign c1: 80.00 -> 50.00",
		},
		{
			name:    "sem mudança",
			outcome: CampaignOutcome{CampaignID: "c2", Status: OutcomeUnchanged, ROAS: 1.5},
			want:    "No budget change for campaign c2 (ROAS: 1.50)",
		},
		{
			name:    "pulada",
			outcome: CampaignOutcome{CampaignID: "c3", Status: OutcomeSkipped},
			want:    "Skipping campaign c3 due to missing budget info.",
		},
		{
			name:    "erro",
			outcome: CampaignOutcome{CampaignID: "c4", Status: OutcomeFailed, Error: "campaign/update: boom"},
			want:    "Error updating campaign c4: campaign/update: boom",
		},
		{
			name:    "erro inesperado",
			outcome: CampaignOutcome{CampaignID: "c5", Status: OutcomeFailed, FailureKind: FailureUnexpected, Error: "panic: nil map"},
			want:    "Unexpected error for campaign c5: panic: nil map",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.Line())
		})
	}
}

func TestRunReport_Summary(t *testing.T) {
	report := &RunReport{
		RunID: "abc12345",
		Outcomes: []CampaignOutcome{
			{Status: OutcomeUpdated},
			{Status: OutcomeUpdated},
			{Status: OutcomeSkipped},
			{Status: OutcomeFailed},
		},
	}
	assert.Equal(t, "run abc12345 finished: 2 updated, 0 unchanged, 1 skipped, 1 errors", report.Summary())
	assert.False(t, report.Aborted())

	report.Fatal = "Failed to get campaign performance after retries: timeout"
	assert.True(t, report.Aborted())
	assert.Equal(t, []string{report.Fatal}, report.Lines())
}

func TestPlatformError(t *testing.T) {
	code := 40001
	err := &PlatformError{Op: "campaign/get", Message: "invalid param", Code: &code, HTTPStatus: 200}

	assert.Equal(t, "campaign/get: invalid param (code: 40001) (status: 200)", err.Error())
	assert.ErrorIs(t, err, ErrPlatform)
	assert.NotErrorIs(t, err, ErrAuthentication)

	authErr := &AuthenticationError{Message: "no token"}
	assert.ErrorIs(t, authErr, ErrAuthentication)
	assert.NotErrorIs(t, authErr, ErrPlatform)
}

func TestAccessToken_Expired(t *testing.T) {
	var nilToken *AccessToken
	now := mustTime(t)

	assert.True(t, nilToken.Expired(now))
	assert.True(t, (&AccessToken{}).Expired(now))
	assert.False(t, (&AccessToken{Token: "t", ExpiresAt: now.Add(1)}).Expired(now))
	assert.True(t, (&AccessToken{Token: "t", ExpiresAt: now}).Expired(now))
}

func mustTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 3, 31, 6, 0, 0, 0, time.UTC)
}
