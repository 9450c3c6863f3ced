package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-analytics-api/infrastructure/repository"
	"github.com/vfg2006/creator-analytics-api/internal/config"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/analyzing"
)

// AnalyticsRefreshSyncConfig representa a configuração do agendador de
// atualização de analytics dos criadores
type AnalyticsRefreshSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// AnalyticsRefreshSyncService gerencia o agendamento e execução da atualização
// periódica dos analytics de todos os criadores cadastrados
type AnalyticsRefreshSyncService struct {
	scheduler           *gocron.Scheduler
	config              AnalyticsRefreshSyncConfig
	creatorRepo         repository.CreatorRepository
	analyticsRepo       repository.AnalyticsRepository
	generator           *analyzing.Generator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAnalyticsRefreshSyncService cria uma nova instância do serviço de
// atualização periódica de analytics
func NewAnalyticsRefreshSyncService(
	creatorRepo repository.CreatorRepository,
	analyticsRepo repository.AnalyticsRepository,
	generator *analyzing.Generator,
	appConfig *config.Config,
) *AnalyticsRefreshSyncService {
	syncConfig := AnalyticsRefreshSyncConfig{
		CronSchedule:        appConfig.AnalyticsRefreshSync.CronSchedule,
		RequestDelaySeconds: appConfig.AnalyticsRefreshSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.AnalyticsRefreshSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização de analytics carregada")

	return &AnalyticsRefreshSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		creatorRepo:   creatorRepo,
		analyticsRepo: analyticsRepo,
		generator:     generator,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *AnalyticsRefreshSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização periódica de analytics desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de analytics")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAllCreators(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de analytics: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de analytics")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshAllCreators gera um novo snapshot para cada criador cadastrado e o
// aplica ao respectivo registro de analytics
func (s *AnalyticsRefreshSyncService) refreshAllCreators(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de analytics já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização de analytics para todos os criadores")

	creators, err := s.creatorRepo.ListAllCreators()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de criadores para atualização de analytics")
		return
	}

	if len(creators) == 0 {
		logrus.Info("Nenhum criador encontrado para atualização de analytics")
		return
	}

	updated := 0
	for _, creator := range creators {
		if err := s.refreshCreator(ctx, creator); err != nil {
			logrus.WithFields(logrus.Fields{
				"creator_id": creator.ID,
				"username":   creator.Username,
				"error":      err.Error(),
			}).Error("Erro ao atualizar analytics do criador")
			continue
		}
		updated++

		// Pequeno intervalo entre criadores para não saturar o banco
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"creators": len(creators),
		"updated":  updated,
	}).Info("Atualização de analytics concluída")

	s.lastSyncCompletedAt = time.Now()
}

// refreshCreator aplica um novo snapshot ao registro de analytics do criador,
// criando o registro quando ainda não houver um
func (s *AnalyticsRefreshSyncService) refreshCreator(ctx context.Context, creator *domain.Creator) error {
	record, err := s.analyticsRepo.GetAnalyticsByCreatorID(creator.ID)
	if err != nil {
		return err
	}

	snapshot := s.generator.GenerateSnapshot()

	if record != nil {
		return s.analyticsRepo.ApplySnapshotAndAppend(ctx, record, snapshot)
	}

	now := time.Now()
	record = &domain.AnalyticsRecord{
		CreatorID:      creator.ID,
		Followers:      snapshot.Followers,
		EngagementRate: snapshot.EngagementRate,
		AvgLikes:       snapshot.AvgLikes,
		AvgComments:    snapshot.AvgComments,
		Historical: []domain.HistoricalEntry{
			{
				Date:           now,
				Followers:      snapshot.Followers,
				EngagementRate: snapshot.EngagementRate,
			},
		},
		LastUpdated: now,
	}

	_, err = s.analyticsRepo.CreateAnalytics(ctx, record)
	return err
}

// TriggerManualSync inicia manualmente uma atualização de analytics
func (s *AnalyticsRefreshSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de analytics já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de analytics")
	go s.refreshAllCreators(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AnalyticsRefreshSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
