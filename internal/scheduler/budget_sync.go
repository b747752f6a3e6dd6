package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Magzlar/tik-tok-ad-project/internal/config"
	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
	"github.com/Magzlar/tik-tok-ad-project/internal/usecases/budgeting"
)

// BudgetSyncConfig representa a configuração do agendador de ajuste de orçamentos
type BudgetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// BudgetSyncService agenda e executa o ajuste diário de orçamentos
type BudgetSyncService struct {
	scheduler *gocron.Scheduler
	config    BudgetSyncConfig
	runner    budgeting.Runner

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.RunReport
	lastError           string
	wg                  sync.WaitGroup
}

func NewBudgetSyncService(runner budgeting.Runner, appConfig *config.Config) *BudgetSyncService {
	syncConfig := BudgetSyncConfig{
		CronSchedule: appConfig.BudgetSync.CronSchedule,
		SyncEnabled:  appConfig.BudgetSync.Enabled,
	}

	// relatórios da plataforma usam o dia em UTC
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("scheduler: budget sync configuration loaded")

	return &BudgetSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		runner:    runner,
	}
}

// Start agenda o job e para o agendador quando ctx for cancelado
func (s *BudgetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: budget sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting budget sync")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runBudgetSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduler: failed to schedule budget sync: %w", err)
	}

	s.scheduler.StartAsync()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		<-ctx.Done()
		logrus.Info("scheduler: stopping budget sync")
		s.scheduler.Stop()
	}()

	return nil
}

// Wait bloqueia até o agendador e as execuções manuais terminarem
func (s *BudgetSyncService) Wait() {
	s.wg.Wait()
}

// tryAcquire marca a execução como iniciada; falso se já houver uma em andamento
func (s *BudgetSyncService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *BudgetSyncService) runBudgetSync(ctx context.Context) {
	if !s.tryAcquire() {
		logrus.Info("scheduler: budget sync already running, skipping")
		return
	}
	s.execute(ctx)
}

func (s *BudgetSyncService) execute(ctx context.Context) {
	startTime := time.Now()

	report, err := s.runner.Run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastReport = report
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	fields := logrus.Fields{"duration": time.Since(startTime).String()}
	if report != nil {
		fields["run_id"] = report.RunID
	}

	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("scheduler: budget sync aborted")
		return
	}
	logrus.WithFields(fields).Info("scheduler: budget sync finished")
}

// TriggerManualSync inicia uma execução fora do agendamento.
// Retorna budgeting.ErrRunInProgress se já houver uma execução em andamento.
func (s *BudgetSyncService) TriggerManualSync(ctx context.Context) error {
	if !s.tryAcquire() {
		logrus.Info("scheduler: budget sync already running, ignoring manual request")
		return budgeting.ErrRunInProgress
	}

	logrus.Info("scheduler: starting manual budget sync")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.execute(context.WithoutCancel(ctx))
	}()
	return nil
}

// BudgetSyncStatus é o estado exposto pela API administrativa
type BudgetSyncStatus struct {
	SyncEnabled         bool              `json:"sync_enabled"`
	SyncCron            string            `json:"sync_cron"`
	Running             bool              `json:"running"`
	LastSyncStartedAt   time.Time         `json:"last_sync_started_at"`
	LastSyncCompletedAt time.Time         `json:"last_sync_completed_at"`
	LastSummary         string            `json:"last_summary,omitempty"`
	LastError           string            `json:"last_error,omitempty"`
	LastReport          *domain.RunReport `json:"last_report,omitempty"`
}

// GetStatus retorna o status atual do agendador
func (s *BudgetSyncService) GetStatus() BudgetSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := BudgetSyncStatus{
		SyncEnabled:         s.config.SyncEnabled,
		SyncCron:            s.config.CronSchedule,
		Running:             s.syncRunning,
		LastSyncStartedAt:   s.lastSyncStartedAt,
		LastSyncCompletedAt: s.lastSyncCompletedAt,
		LastError:           s.lastError,
		LastReport:          s.lastReport,
	}
	if s.lastReport != nil {
		status.LastSummary = s.lastReport.Summary()
	}
	return status
}
