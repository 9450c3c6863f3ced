package dashboarding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/analyzing"
	"go.uber.org/mock/gomock"
)

func newTestService(creatorRepo *mocks.MockCreatorRepository, analyticsRepo *mocks.MockAnalyticsRepository) *Service {
	return &Service{
		creatorRepo:   creatorRepo,
		analyticsRepo: analyticsRepo,
		generator:     analyzing.NewGenerator(rand.New(rand.NewSource(42))),
	}
}

func TestService_GetSummary_EscopoPorPerfil(t *testing.T) {
	adminCreators := []*domain.Creator{
		{ID: "c1", UserID: 1, Name: "Criadora A", Platform: domain.PlatformInstagram, Username: "a"},
		{ID: "c2", UserID: 2, Name: "Criador B", Platform: domain.PlatformYouTube, Username: "b"},
	}

	t.Run("Administrador enxerga todos os criadores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		creatorRepo := mocks.NewMockCreatorRepository(ctrl)
		analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

		creatorRepo.EXPECT().
			ListAllCreators().
			Return(adminCreators, nil)

		analyticsRepo.EXPECT().
			ListAnalyticsByCreatorIDs([]string{"c1", "c2"}).
			Return([]*domain.AnalyticsRecord{
				{CreatorID: "c1", Followers: 10000, EngagementRate: 4.0},
				{CreatorID: "c2", Followers: 20000, EngagementRate: 2.0},
			}, nil)

		service := newTestService(creatorRepo, analyticsRepo)

		summary, err := service.GetSummary(&domain.Claims{UserID: 99, UserRoleID: domain.RoleAdmin}, domain.TimeframeWeek)

		assert.NoError(t, err)
		assert.Equal(t, 2, summary.TotalCreators)
		assert.Equal(t, 30000, summary.TotalFollowers)
		assert.Equal(t, 3.0, summary.AvgEngagement)
	})

	t.Run("Usuário comum enxerga apenas os próprios criadores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		creatorRepo := mocks.NewMockCreatorRepository(ctrl)
		analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

		userID := 1
		creatorRepo.EXPECT().
			ListCreators(domain.ListCreatorsFilter{UserID: &userID}).
			Return([]*domain.Creator{adminCreators[0]}, 1, nil)

		analyticsRepo.EXPECT().
			ListAnalyticsByCreatorIDs([]string{"c1"}).
			Return([]*domain.AnalyticsRecord{
				{CreatorID: "c1", Followers: 10000, EngagementRate: 4.0},
			}, nil)

		service := newTestService(creatorRepo, analyticsRepo)

		summary, err := service.GetSummary(&domain.Claims{UserID: 1, UserRoleID: domain.RoleUser}, domain.TimeframeWeek)

		assert.NoError(t, err)
		assert.Equal(t, 1, summary.TotalCreators)
		assert.Equal(t, 10000, summary.TotalFollowers)
	})
}

func TestService_GetSummary_SemCriadores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creatorRepo := mocks.NewMockCreatorRepository(ctrl)
	analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

	userID := 7
	creatorRepo.EXPECT().
		ListCreators(domain.ListCreatorsFilter{UserID: &userID}).
		Return(nil, 0, nil)

	analyticsRepo.EXPECT().
		ListAnalyticsByCreatorIDs([]string{}).
		Return(nil, nil)

	service := newTestService(creatorRepo, analyticsRepo)

	summary, err := service.GetSummary(&domain.Claims{UserID: 7, UserRoleID: domain.RoleUser}, domain.TimeframeWeek)

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.TotalCreators)
	assert.Equal(t, 0, summary.TotalFollowers)
	assert.Equal(t, 0.0, summary.AvgEngagement)
	assert.Empty(t, summary.TopCreators)
}

func TestService_GetSummary_TopCreators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creatorRepo := mocks.NewMockCreatorRepository(ctrl)
	analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

	creators := []*domain.Creator{
		{ID: "c1", UserID: 1, Name: "Primeira", Platform: domain.PlatformInstagram, Username: "primeira"},
		{ID: "c2", UserID: 1, Name: "Segunda", Platform: domain.PlatformInstagram, Username: "segunda"},
		{ID: "c3", UserID: 1, Name: "Terceira", Platform: domain.PlatformX, Username: "terceira"},
		{ID: "c4", UserID: 1, Name: "Quarta", Platform: domain.PlatformYouTube, Username: "quarta"},
		{ID: "c5", UserID: 1, Name: "Quinta", Platform: domain.PlatformYouTube, Username: "quinta"},
		{ID: "c6", UserID: 1, Name: "Sexta", Platform: domain.PlatformInstagram, Username: "sexta"},
	}

	creatorRepo.EXPECT().
		ListAllCreators().
		Return(creators, nil)

	// Pontuação de impacto: followers × engagementRate
	analyticsRepo.EXPECT().
		ListAnalyticsByCreatorIDs(gomock.Any()).
		Return([]*domain.AnalyticsRecord{
			{CreatorID: "c1", Followers: 1000, EngagementRate: 1.0},  // 1000
			{CreatorID: "c2", Followers: 5000, EngagementRate: 5.0},  // 25000
			{CreatorID: "c3", Followers: 2000, EngagementRate: 4.0},  // 8000
			{CreatorID: "c4", Followers: 10000, EngagementRate: 1.0}, // 10000
			{CreatorID: "c5", Followers: 3000, EngagementRate: 2.0},  // 6000
			{CreatorID: "c6", Followers: 100, EngagementRate: 1.0},   // 100
		}, nil)

	service := newTestService(creatorRepo, analyticsRepo)

	summary, err := service.GetSummary(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, domain.TimeframeWeek)

	assert.NoError(t, err)
	assert.Len(t, summary.TopCreators, 5)

	names := make([]string, 0, len(summary.TopCreators))
	for _, top := range summary.TopCreators {
		names = append(names, top.Name)
	}
	assert.Equal(t, []string{"Segunda", "Quarta", "Terceira", "Quinta", "Primeira"}, names)

	assert.Equal(t, map[domain.Platform]int{
		domain.PlatformInstagram: 3,
		domain.PlatformYouTube:   2,
		domain.PlatformX:         1,
	}, summary.PlatformDistribution)
}

func TestService_GetSummary_TamanhoDasSeriesPorTimeframe(t *testing.T) {
	tests := []struct {
		name       string
		timeframe  domain.Timeframe
		wantPoints int
	}{
		{"Timeframe day gera 24 pontos", domain.TimeframeDay, 24},
		{"Timeframe week gera 7 pontos", domain.TimeframeWeek, 7},
		{"Timeframe month gera 30 pontos", domain.TimeframeMonth, 30},
		{"Timeframe year gera 12 pontos", domain.TimeframeYear, 12},
		{"Timeframe desconhecido usa o padrão semanal", domain.Timeframe("quinzena"), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			creatorRepo := mocks.NewMockCreatorRepository(ctrl)
			analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

			creatorRepo.EXPECT().
				ListAllCreators().
				Return([]*domain.Creator{
					{ID: "c1", UserID: 1, Name: "Criadora A", Platform: domain.PlatformInstagram, Username: "a"},
				}, nil)

			analyticsRepo.EXPECT().
				ListAnalyticsByCreatorIDs(gomock.Any()).
				Return([]*domain.AnalyticsRecord{
					{CreatorID: "c1", Followers: 10000, EngagementRate: 4.0},
				}, nil)

			service := newTestService(creatorRepo, analyticsRepo)

			summary, err := service.GetSummary(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, tt.timeframe)

			assert.NoError(t, err)
			assert.Len(t, summary.FollowersGrowth, tt.wantPoints)
			assert.Len(t, summary.EngagementHistory, tt.wantPoints)

			// Cada ponto varia em até ±20% do valor base
			for _, value := range summary.FollowersGrowth {
				assert.GreaterOrEqual(t, value, 10000*0.8)
				assert.Less(t, value, 10000*1.2)
			}
		})
	}
}
