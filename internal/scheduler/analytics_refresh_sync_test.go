package scheduler

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/analyzing"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(creatorRepo *mocks.MockCreatorRepository, analyticsRepo *mocks.MockAnalyticsRepository) *AnalyticsRefreshSyncService {
	return &AnalyticsRefreshSyncService{
		config: AnalyticsRefreshSyncConfig{
			CronSchedule:        "0 3 * * *",
			RequestDelaySeconds: 0,
			SyncEnabled:         true,
		},
		creatorRepo:   creatorRepo,
		analyticsRepo: analyticsRepo,
		generator:     analyzing.NewGenerator(rand.New(rand.NewSource(42))),
	}
}

func TestAnalyticsRefreshSyncService_refreshAllCreators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creatorRepo := mocks.NewMockCreatorRepository(ctrl)
	analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

	creators := []*domain.Creator{
		{ID: "c1", UserID: 1, Username: "primeira"},
		{ID: "c2", UserID: 2, Username: "segunda"},
	}

	existing := &domain.AnalyticsRecord{
		ID:        1,
		CreatorID: "c1",
		Followers: 9000,
		Historical: []domain.HistoricalEntry{
			{Date: time.Now().Add(-24 * time.Hour), Followers: 8900, EngagementRate: 2.5},
		},
	}

	creatorRepo.EXPECT().
		ListAllCreators().
		Return(creators, nil)

	// c1 já possui registro: aplica snapshot e anexa entrada
	analyticsRepo.EXPECT().
		GetAnalyticsByCreatorID("c1").
		Return(existing, nil)

	analyticsRepo.EXPECT().
		ApplySnapshotAndAppend(gomock.Any(), existing, gomock.Any()).
		Return(nil)

	// c2 ainda não possui registro: cria com uma entrada histórica
	analyticsRepo.EXPECT().
		GetAnalyticsByCreatorID("c2").
		Return(nil, nil)

	analyticsRepo.EXPECT().
		CreateAnalytics(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.AnalyticsRecord) (*domain.AnalyticsRecord, error) {
			assert.Equal(t, "c2", record.CreatorID)
			assert.Len(t, record.Historical, 1)
			return record, nil
		})

	service := newTestSyncService(creatorRepo, analyticsRepo)

	service.refreshAllCreators(context.Background())

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestAnalyticsRefreshSyncService_refreshAllCreators_SemCriadores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creatorRepo := mocks.NewMockCreatorRepository(ctrl)
	analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

	creatorRepo.EXPECT().
		ListAllCreators().
		Return(nil, nil)

	service := newTestSyncService(creatorRepo, analyticsRepo)

	service.refreshAllCreators(context.Background())
}

func TestAnalyticsRefreshSyncService_refreshAllCreators_ErroIndividualNaoInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creatorRepo := mocks.NewMockCreatorRepository(ctrl)
	analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

	creators := []*domain.Creator{
		{ID: "c1", UserID: 1, Username: "primeira"},
		{ID: "c2", UserID: 2, Username: "segunda"},
	}

	creatorRepo.EXPECT().
		ListAllCreators().
		Return(creators, nil)

	analyticsRepo.EXPECT().
		GetAnalyticsByCreatorID("c1").
		Return(nil, assert.AnError)

	// c2 continua sendo processado mesmo com a falha em c1
	analyticsRepo.EXPECT().
		GetAnalyticsByCreatorID("c2").
		Return(nil, nil)

	analyticsRepo.EXPECT().
		CreateAnalytics(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.AnalyticsRecord) (*domain.AnalyticsRecord, error) {
			return record, nil
		})

	service := newTestSyncService(creatorRepo, analyticsRepo)

	service.refreshAllCreators(context.Background())
}

func TestAnalyticsRefreshSyncService_Start_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(mocks.NewMockCreatorRepository(ctrl), mocks.NewMockAnalyticsRepository(ctrl))
	service.config.SyncEnabled = false

	err := service.Start(context.Background())

	assert.NoError(t, err)
}
