package budgeting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/Magzlar/tik-tok-ad-project/internal/config"
	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
	"github.com/Magzlar/tik-tok-ad-project/pkg/log"
	"github.com/Magzlar/tik-tok-ad-project/pkg/retry"
	"github.com/Magzlar/tik-tok-ad-project/pkg/utils"
)

type Service struct {
	integrator   PlatformIntegrator
	constants    domain.PolicyConstants
	retryPolicy  retry.Policy
	advertiserID string
	dryRun       bool
	now          func() time.Time
}

type Option func(*Service)

// WithDryRun calcula as decisões sem chamar a atualização de orçamento
func WithDryRun(dryRun bool) Option {
	return func(s *Service) {
		s.dryRun = dryRun
	}
}

func WithSleeper(sleeper retry.Sleeper) Option {
	return func(s *Service) {
		s.retryPolicy.Sleeper = sleeper
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(integrator PlatformIntegrator, cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		integrator: integrator,
		constants:  cfg.Budget.PolicyConstants(),
		retryPolicy: retry.Policy{
			MaxRetries: cfg.Retry.MaxRetries,
			Delay:      cfg.Retry.Delay,
			RetryOn:    []error{domain.ErrPlatform},
		},
		advertiserID: cfg.TikTok.AdvertiserID,
		dryRun:       cfg.Budget.DryRun,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run autentica, busca as campanhas elegíveis e ajusta o orçamento de cada uma.
// Falhas de autenticação ou de busca encerram a execução e são devolvidas como
// erro junto com o relatório; falhas de uma campanha ficam apenas no seu resultado.
func (s *Service) Run(ctx context.Context) (*domain.RunReport, error) {
	runID, err := utils.GenerateRunID()
	if err != nil {
		return nil, errors.Wrap(err, "budgeting: failed to generate run id")
	}

	ctx, correlationID := log.WithCorrelationID(ctx)
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	report := &domain.RunReport{
		RunID:         runID,
		CorrelationID: correlationID,
		StartedAt:     s.now().UTC(),
		DryRun:        s.dryRun,
		Outcomes:      []domain.CampaignOutcome{},
	}
	defer func() {
		report.FinishedAt = s.now().UTC()
	}()

	logger.WithFields(log.Fields{
		"advertiser_id":      s.advertiserID,
		"budget_target_roas": s.constants.TargetROAS,
		"budget_dry_run":     s.dryRun,
	}).Info("budgeting: run started")

	token, err := retry.Execute(s.retryPolicy, func() (*domain.AccessToken, error) {
		return s.integrator.Authenticate(ctx)
	})
	if err != nil {
		report.Fatal = fmt.Sprintf("Failed to get access token after retries: %s", err.Error())
		logger.WithError(err).Error("budgeting: authentication failed, aborting run")
		return report, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	report.AdvertiserIDValid = token.AdvertiserIDValid
	report.AdvertiserIDs = token.AdvertiserIDs

	campaigns, err := retry.Execute(s.retryPolicy, func() ([]domain.Campaign, error) {
		return s.integrator.GetEligibleCampaigns(ctx, s.constants.LookbackDays, s.constants.MinSpend, s.constants.MinPaymentRate)
	})
	if err != nil {
		report.Fatal = fmt.Sprintf("Failed to get campaign performance after retries: %s", err.Error())
		logger.WithError(err).Error("budgeting: campaign fetch failed, aborting run")
		return report, fmt.Errorf("%w: %w", ErrCampaignFetchFailed, err)
	}

	if len(campaigns) == 0 {
		report.NoCampaigns = true
		logger.Info("budgeting: no campaigns met the criteria")
		return report, nil
	}

	for _, campaign := range campaigns {
		report.Outcomes = append(report.Outcomes, s.processCampaign(ctx, campaign))
	}

	logger.Info(report.Summary())

	return report, nil
}

// processCampaign nunca interrompe o lote: qualquer falha, inclusive panic, vira
// um resultado de erro da campanha
func (s *Service) processCampaign(ctx context.Context, campaign domain.Campaign) (outcome domain.CampaignOutcome) {
	logger := log.ForContext(ctx).WithField("campaign_id", campaign.ID)

	defer func() {
		if r := recover(); r != nil {
			campaignErr := NewCampaignError(ErrUnexpected, campaign.ID, fmt.Errorf("panic: %v", r))
			logger.WithError(campaignErr).Error("budgeting: unexpected failure processing campaign")
			outcome = failedOutcome(campaign.ID, campaignErr)
		}
	}()

	if !campaign.HasBudget() {
		logger.Warn("budgeting: campaign without budget info, skipping")
		return domain.CampaignOutcome{
			CampaignID: campaign.ID,
			Status:     domain.OutcomeSkipped,
		}
	}

	decision, err := Decide(campaign, s.constants)
	if err != nil {
		campaignErr := NewCampaignError(ErrUnexpected, campaign.ID, err)
		logger.WithError(campaignErr).Error("budgeting: failed to evaluate campaign")
		return failedOutcome(campaign.ID, campaignErr)
	}

	oldBudget := decision.OldBudget
	outcome = domain.CampaignOutcome{
		CampaignID:       campaign.ID,
		ROAS:             decision.ROAS,
		AdjustmentFactor: decision.Factor,
		OldBudget:        &oldBudget,
		NewBudget:        utils.RoundWithTwoDecimalPlace(decision.NewBudget),
	}

	if !decision.Changed {
		outcome.Status = domain.OutcomeUnchanged
		logger.WithField("budget_roas", decision.ROAS).Info("budgeting: no budget change")
		return outcome
	}

	if s.dryRun {
		outcome.Status = domain.OutcomeUpdated
		outcome.DryRun = true
		logger.WithFields(log.Fields{
			"budget_old": oldBudget,
			"budget_new": outcome.NewBudget,
		}).Info("budgeting: dry-run, budget update not sent")
		return outcome
	}

	_, err = retry.Execute(s.retryPolicy, func() (*domain.BudgetUpdateConfirmation, error) {
		return s.integrator.UpdateBudget(ctx, campaign.ID, decision.NewBudget)
	})
	if err != nil {
		campaignErr := NewCampaignError(ErrBudgetUpdateFailed, campaign.ID, err)
		logger.WithError(campaignErr).Error("budgeting: budget update failed")
		return failedOutcome(campaign.ID, campaignErr)
	}

	outcome.Status = domain.OutcomeUpdated
	logger.WithFields(log.Fields{
		"budget_old":  oldBudget,
		"budget_new":  outcome.NewBudget,
		"budget_roas": decision.ROAS,
	}).Info("budgeting: campaign budget updated")

	return outcome
}

func failedOutcome(campaignID string, err *CampaignError) domain.CampaignOutcome {
	message := err.Err.Error()
	if err.Cause != nil {
		message = err.Cause.Error()
	}
	kind := domain.FailureUnexpected
	if errors.Is(err.Err, ErrBudgetUpdateFailed) {
		kind = domain.FailureUpdate
	}
	return domain.CampaignOutcome{
		CampaignID:  campaignID,
		Status:      domain.OutcomeFailed,
		FailureKind: kind,
		Error:       message,
	}
}
