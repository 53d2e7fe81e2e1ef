package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/config"
)

// Refresher é o subconjunto do Record Store usado pelo agendador
type Refresher interface {
	Refresh(ctx context.Context) error
}

// DatasetRefreshConfig representa a configuração do agendador de recarga do dataset
type DatasetRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// DatasetRefreshService gerencia o agendamento da recarga periódica do
// dataset de vendas a partir da origem configurada
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	config    DatasetRefreshConfig
	dataset   Refresher

	refreshMutex          sync.Mutex
	refreshRunning        bool
	lastRefreshStartedAt  time.Time
	lastRefreshFinishedAt time.Time
	lastRefreshError      string
}

// RefreshStatus descreve o estado corrente do agendador para a API
type RefreshStatus struct {
	Enabled          bool      `json:"enabled"`
	Running          bool      `json:"running"`
	CronSchedule     string    `json:"cron_schedule,omitempty"`
	LastStartedAt    time.Time `json:"last_started_at"`
	LastFinishedAt   time.Time `json:"last_finished_at"`
	LastRefreshError string    `json:"last_refresh_error,omitempty"`
}

// NewDatasetRefreshService cria uma nova instância do agendador de recarga do dataset
func NewDatasetRefreshService(dataset Refresher, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule:   appConfig.DatasetRefresh.CronSchedule,
		RefreshEnabled: appConfig.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		dataset:   dataset,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Recarga periódica do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRefresh(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRefresh dispara uma recarga fora do agendamento
func (s *DatasetRefreshService) TriggerManualRefresh() {
	go s.runRefresh(context.Background())
}

// Status retorna o estado corrente do agendador
func (s *DatasetRefreshService) Status() RefreshStatus {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return RefreshStatus{
		Enabled:          s.config.RefreshEnabled,
		Running:          s.refreshRunning,
		CronSchedule:     s.config.CronSchedule,
		LastStartedAt:    s.lastRefreshStartedAt,
		LastFinishedAt:   s.lastRefreshFinishedAt,
		LastRefreshError: s.lastRefreshError,
	}
}

// runRefresh executa uma recarga, ignorando disparos enquanto outra recarga
// ainda está em andamento
func (s *DatasetRefreshService) runRefresh(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando disparo")
		return
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando recarga do dataset de vendas")

	err := s.dataset.Refresh(ctx)

	s.refreshMutex.Lock()
	s.refreshRunning = false
	s.lastRefreshFinishedAt = time.Now()
	s.lastRefreshError = ""
	if err != nil {
		s.lastRefreshError = err.Error()
	}
	s.refreshMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar o dataset de vendas")
		return
	}

	logrus.Info("Recarga do dataset de vendas concluída")
}
