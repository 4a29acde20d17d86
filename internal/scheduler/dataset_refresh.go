// Package scheduler contém o agendamento da atualização periódica dos datasets
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pauloenterprise/sales-dashboard-api/internal/config"
	"github.com/sirupsen/logrus"
)

// Refetcher é o subconjunto do dataset store que o agendador precisa.
type Refetcher interface {
	Resource() string
	Refetch(ctx context.Context) error
}

type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService dispara Refetch periódico nos stores para manter os
// datasets em memória alinhados com o upstream sem depender de reinício.
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	stores    []Refetcher
	config    DatasetRefreshConfig

	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

func NewDatasetRefreshService(cfg *config.Config, stores ...Refetcher) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule, // Default: a cada 30 minutos
		Enabled:      cfg.DatasetRefresh.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de atualização de datasets carregada")

	return &DatasetRefreshService{
		scheduler: scheduler,
		stores:    stores,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de atualização de datasets desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização de datasets")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDatasets(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização periódica dos datasets")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de datasets: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização de datasets")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDatasets dispara o Refetch de todos os stores registrados. Execuções
// sobrepostas são descartadas: um refetch ainda rodando indica upstream lento
// e empilhar outro só pioraria.
func (s *DatasetRefreshService) RefreshDatasets(ctx context.Context) error {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if s.refreshRunning {
		logrus.Warn("Atualização de datasets já está em execução")
		return nil
	}

	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	defer func() {
		s.refreshRunning = false
		s.lastRefreshCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização periódica dos datasets")

	for _, store := range s.stores {
		if err := store.Refetch(ctx); err != nil {
			logrus.WithError(err).WithField("resource", store.Resource()).
				Error("Erro ao iniciar refetch do dataset")
			continue
		}

		logrus.WithField("resource", store.Resource()).Info("Refetch do dataset iniciado")
	}

	return nil
}

// LastRefresh informa os instantes de início e fim da última execução.
func (s *DatasetRefreshService) LastRefresh() (startedAt, completedAt time.Time) {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()
	return s.lastRefreshStartedAt, s.lastRefreshCompletedAt
}
