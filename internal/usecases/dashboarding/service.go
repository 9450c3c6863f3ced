package dashboarding

import (
	"sort"

	"github.com/vfg2006/creator-analytics-api/infrastructure/repository"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/creator-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/creator-analytics-api/pkg/utils"
)

const topCreatorsLimit = 5

type DashboardService interface {
	GetSummary(claims *domain.Claims, timeframe domain.Timeframe) (*domain.DashboardSummary, error)
}

type Service struct {
	creatorRepo   repository.CreatorRepository
	analyticsRepo repository.AnalyticsRepository
	generator     *analyzing.Generator
}

func NewService(
	creatorRepo repository.CreatorRepository,
	analyticsRepo repository.AnalyticsRepository,
	generator *analyzing.Generator,
) DashboardService {
	return &Service{
		creatorRepo:   creatorRepo,
		analyticsRepo: analyticsRepo,
		generator:     generator,
	}
}

// GetSummary agrega os analytics do conjunto de criadores visível para o
// usuário: todos para administradores, apenas os próprios para os demais.
// A agregação é somente leitura.
func (s *Service) GetSummary(claims *domain.Claims, timeframe domain.Timeframe) (*domain.DashboardSummary, error) {
	creators, err := s.visibleCreators(claims)
	if err != nil {
		return nil, analyzing.NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar criadores")
	}

	creatorIDs := make([]string, 0, len(creators))
	creatorsByID := make(map[string]*domain.Creator, len(creators))
	for _, creator := range creators {
		creatorIDs = append(creatorIDs, creator.ID)
		creatorsByID[creator.ID] = creator
	}

	records, err := s.analyticsRepo.ListAnalyticsByCreatorIDs(creatorIDs)
	if err != nil {
		return nil, analyzing.NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar analytics")
	}

	totalFollowers := 0
	sumEngagement := 0.0
	for _, record := range records {
		totalFollowers += record.Followers
		sumEngagement += record.EngagementRate
	}

	avgEngagement := 0.0
	if len(records) > 0 {
		avgEngagement = utils.RoundWithTwoDecimalPlace(sumEngagement / float64(len(records)))
	}

	platformDistribution := make(map[domain.Platform]int)
	for _, creator := range creators {
		platformDistribution[creator.Platform]++
	}

	points := timeframe.DataPoints()

	return &domain.DashboardSummary{
		TotalCreators:        len(creators),
		TotalFollowers:       totalFollowers,
		AvgEngagement:        avgEngagement,
		PlatformDistribution: platformDistribution,
		TopCreators:          s.topCreators(records, creatorsByID),
		FollowersGrowth:      s.mockSeries(float64(totalFollowers), points),
		EngagementHistory:    s.mockSeries(avgEngagement, points),
		// Indicadores de variação ilustrativos, sem base histórica real
		CreatorsChange:   "+12%",
		FollowersChange:  "+23%",
		EngagementChange: "+5%",
	}, nil
}

func (s *Service) visibleCreators(claims *domain.Claims) ([]*domain.Creator, error) {
	if claims.IsAdmin() {
		return s.creatorRepo.ListAllCreators()
	}

	userID := claims.UserID
	creators, _, err := s.creatorRepo.ListCreators(domain.ListCreatorsFilter{UserID: &userID})
	return creators, err
}

// topCreators retorna os cinco registros com maior pontuação de impacto
// (followers × engagementRate). Registros cujo criador não foi localizado
// permanecem no ranking, apenas sem os campos de identidade.
func (s *Service) topCreators(records []*domain.AnalyticsRecord, creatorsByID map[string]*domain.Creator) []*domain.TopCreator {
	ranked := make([]*domain.AnalyticsRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		scoreI := float64(ranked[i].Followers) * ranked[i].EngagementRate
		scoreJ := float64(ranked[j].Followers) * ranked[j].EngagementRate
		return scoreI > scoreJ
	})

	if len(ranked) > topCreatorsLimit {
		ranked = ranked[:topCreatorsLimit]
	}

	top := make([]*domain.TopCreator, 0, len(ranked))
	for _, record := range ranked {
		entry := &domain.TopCreator{
			Followers:      record.Followers,
			EngagementRate: record.EngagementRate,
		}

		if creator, ok := creatorsByID[record.CreatorID]; ok {
			entry.Name = creator.Name
			entry.Username = creator.Username
		}

		top = append(top, entry)
	}

	return top
}

// mockSeries produz a série sintética exibida nos gráficos do dashboard,
// variando o valor base em até ±20% por ponto
func (s *Service) mockSeries(base float64, points int) []float64 {
	series := make([]float64, 0, points)
	for i := 0; i < points; i++ {
		series = append(series, s.generator.Jitter(base))
	}
	return series
}
