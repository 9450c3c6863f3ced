package analyzing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-analytics-api/infrastructure/repository"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"github.com/vfg2006/creator-analytics-api/pkg/apiErrors"
)

type AnalyticsService interface {
	RefreshAnalytics(ctx context.Context, claims *domain.Claims, creatorID string) (*domain.AnalyticsResponse, error)
	GetCreatorAnalytics(claims *domain.Claims, creatorID string) (*domain.AnalyticsResponse, error)
}

type Service struct {
	creatorRepo   repository.CreatorRepository
	analyticsRepo repository.AnalyticsRepository
	generator     *Generator
}

func NewService(
	creatorRepo repository.CreatorRepository,
	analyticsRepo repository.AnalyticsRepository,
	generator *Generator,
) AnalyticsService {
	return &Service{
		creatorRepo:   creatorRepo,
		analyticsRepo: analyticsRepo,
		generator:     generator,
	}
}

// RefreshAnalytics gera um novo snapshot para o criador e o aplica ao registro
// existente, criando o registro quando ainda não houver um. Toda chamada anexa
// exatamente uma entrada à série histórica.
func (s *Service) RefreshAnalytics(ctx context.Context, claims *domain.Claims, creatorID string) (*domain.AnalyticsResponse, error) {
	creator, err := s.resolveAndAuthorize(claims, creatorID)
	if err != nil {
		return nil, err
	}

	record, err := s.analyticsRepo.GetAnalyticsByCreatorID(creatorID)
	if err != nil {
		return nil, NewAnalyticsErrorWithCreator(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, creatorID, "Erro ao consultar analytics no banco de dados")
	}

	snapshot := s.generator.GenerateSnapshot()

	if record != nil {
		if err := s.analyticsRepo.ApplySnapshotAndAppend(ctx, record, snapshot); err != nil {
			return nil, NewAnalyticsErrorWithCreator(err, apiErrors.ErrDatabaseOperation, creatorID, "Erro ao atualizar analytics")
		}

		return &domain.AnalyticsResponse{
			AnalyticsRecord: record,
			Creator:         creator.Ref(),
		}, nil
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

	record, err = s.analyticsRepo.CreateAnalytics(ctx, record)
	if err != nil {
		return nil, NewAnalyticsErrorWithCreator(err, apiErrors.ErrDatabaseOperation, creatorID, "Erro ao criar registro de analytics")
	}

	logrus.WithFields(logrus.Fields{
		"creator_id": creatorID,
		"followers":  record.Followers,
	}).Debug("Registro de analytics criado no primeiro refresh")

	return &domain.AnalyticsResponse{
		AnalyticsRecord: record,
		Creator:         creator.Ref(),
	}, nil
}

// GetCreatorAnalytics retorna o registro de analytics do criador, ou nil
// quando o criador ainda não possui registro
func (s *Service) GetCreatorAnalytics(claims *domain.Claims, creatorID string) (*domain.AnalyticsResponse, error) {
	creator, err := s.resolveAndAuthorize(claims, creatorID)
	if err != nil {
		return nil, err
	}

	record, err := s.analyticsRepo.GetAnalyticsByCreatorID(creatorID)
	if err != nil {
		return nil, NewAnalyticsErrorWithCreator(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, creatorID, "Erro ao consultar analytics no banco de dados")
	}

	if record == nil {
		return nil, nil
	}

	return &domain.AnalyticsResponse{
		AnalyticsRecord: record,
		Creator:         creator.Ref(),
	}, nil
}

// resolveAndAuthorize busca o criador e valida que o usuário autenticado é o
// dono do criador ou um administrador
func (s *Service) resolveAndAuthorize(claims *domain.Claims, creatorID string) (*domain.Creator, error) {
	creator, err := s.creatorRepo.GetCreatorByID(creatorID)
	if err != nil {
		return nil, NewAnalyticsErrorWithCreator(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, creatorID, "Erro ao consultar criador no banco de dados")
	}

	if creator == nil {
		return nil, NewAnalyticsErrorWithCreator(ErrCreatorNotFound, apiErrors.ErrCreatorNotFound, creatorID, "Criador não encontrado")
	}

	if !claims.IsAdmin() && creator.UserID != claims.UserID {
		return nil, NewAnalyticsErrorWithCreator(ErrForbidden, apiErrors.ErrInsufficientPrivilege, creatorID, "Usuário não tem acesso a este criador")
	}

	return creator, nil
}
