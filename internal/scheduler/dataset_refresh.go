// Package scheduler contém o agendamento da reconstrução do dataset
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/indicators-dashboard/internal/config"
	"github.com/vfg2006/indicators-dashboard/internal/usecases/dataset"
)

// ErrRefreshRunning é retornado quando já existe uma reconstrução em andamento
var ErrRefreshRunning = errors.New("dataset refresh already running")

type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	datasets  dataset.DatasetService
	config    DatasetRefreshConfig

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastBuildID         string
	lastRecords         int
}

func NewDatasetRefreshService(datasets dataset.DatasetService, cfg *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule,
		SyncEnabled:  cfg.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		datasets:  datasets,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de reconstrução do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de reconstrução do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDataset(ctx); err != nil {
			logrus.WithError(err).Warn("Reconstrução agendada do dataset ignorada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconstrução do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de reconstrução do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDataset reconstrói o dataset de forma síncrona. Nunca roda duas vezes
// ao mesmo tempo.
func (s *DatasetRefreshService) RefreshDataset(ctx context.Context) error {
	if !s.tryStart() {
		return ErrRefreshRunning
	}

	s.run(ctx)
	return nil
}

// TriggerManualSync dispara a reconstrução em background; false se já havia uma em andamento
func (s *DatasetRefreshService) TriggerManualSync(ctx context.Context) bool {
	if !s.tryStart() {
		logrus.Info("Reconstrução do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando reconstrução manual do dataset")
	go s.run(ctx)

	return true
}

func (s *DatasetRefreshService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *DatasetRefreshService) run(ctx context.Context) {
	built := s.datasets.Refresh(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastBuildID = built.BuildID
	s.lastRecords = built.Len()

	logrus.WithFields(logrus.Fields{
		"build_id": built.BuildID,
		"records":  built.Len(),
	}).Info("Reconstrução do dataset concluída")
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_build_id":          s.lastBuildID,
		"last_records":           s.lastRecords,
	}
}
