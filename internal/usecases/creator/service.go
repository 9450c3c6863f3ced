package creator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-analytics-api/infrastructure/repository"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/creator-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/creator-analytics-api/pkg/utils"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200

	// Tamanho da série histórica gerada junto com um novo criador
	seedHistoryDays = 30
)

type CreatorService interface {
	CreateCreator(ctx context.Context, claims *domain.Claims, req *domain.CreateCreatorRequest) (*domain.Creator, error)
	ListCreators(claims *domain.Claims, ownerFilter *int, page, limit int) (*domain.CreatorPage, error)
	GetCreator(claims *domain.Claims, creatorID string) (*domain.Creator, *domain.AnalyticsRecord, error)
	UpdateCreator(claims *domain.Claims, creatorID string, req *domain.UpdateCreatorRequest) (*domain.Creator, error)
	DeleteCreator(claims *domain.Claims, creatorID string) error
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
) CreatorService {
	return &Service{
		creatorRepo:   creatorRepo,
		analyticsRepo: analyticsRepo,
		generator:     generator,
	}
}

// CreateCreator registra um novo criador para o usuário autenticado e já gera
// o registro de analytics inicial com trinta dias de série histórica
func (s *Service) CreateCreator(ctx context.Context, claims *domain.Claims, req *domain.CreateCreatorRequest) (*domain.Creator, error) {
	if req.Name == "" || req.Platform == "" || req.Username == "" {
		return nil, NewCreatorError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, plataforma e username são obrigatórios")
	}

	if !req.Platform.IsValid() {
		return nil, NewCreatorError(ErrInvalidPlatform, apiErrors.ErrInvalidPlatform, "Plataformas aceitas: Instagram, YouTube, X")
	}

	existing, err := s.creatorRepo.GetCreatorByOwnerAndUsername(claims.UserID, req.Username)
	if err != nil {
		return nil, NewCreatorError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar criadores no banco de dados")
	}
	if existing != nil {
		return nil, NewCreatorError(ErrCreatorAlreadyExists, apiErrors.ErrCreatorAlreadyExists, "Username já cadastrado para este usuário")
	}

	creatorID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCreatorError(ErrGenerateID, apiErrors.ErrInternalServer, "Erro ao gerar ID do criador")
	}

	creator := &domain.Creator{
		ID:              creatorID,
		UserID:          claims.UserID,
		Name:            req.Name,
		Platform:        req.Platform,
		Username:        req.Username,
		ProfileImageURL: req.ProfileImageURL,
	}

	creator, err = s.creatorRepo.CreateCreator(creator)
	if err != nil {
		return nil, NewCreatorError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar criador")
	}

	if err := s.seedAnalytics(ctx, creator); err != nil {
		// O criador já foi persistido; o registro de analytics será criado
		// no primeiro refresh caso a semeadura falhe
		logrus.WithError(err).WithField("creator_id", creator.ID).Warn("Erro ao gerar analytics inicial do criador")
	}

	return creator, nil
}

func (s *Service) ListCreators(claims *domain.Claims, ownerFilter *int, page, limit int) (*domain.CreatorPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := domain.ListCreatorsFilter{
		Page:  page,
		Limit: limit,
	}

	// Usuários comuns enxergam apenas os próprios criadores; administradores
	// podem filtrar por um dono específico
	if !claims.IsAdmin() {
		userID := claims.UserID
		filter.UserID = &userID
	} else if ownerFilter != nil {
		filter.UserID = ownerFilter
	}

	creators, total, err := s.creatorRepo.ListCreators(filter)
	if err != nil {
		return nil, NewCreatorError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar criadores")
	}

	if creators == nil {
		creators = []*domain.Creator{}
	}

	return &domain.CreatorPage{
		Creators: creators,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

func (s *Service) GetCreator(claims *domain.Claims, creatorID string) (*domain.Creator, *domain.AnalyticsRecord, error) {
	creator, err := s.resolveAndAuthorize(claims, creatorID)
	if err != nil {
		return nil, nil, err
	}

	record, err := s.analyticsRepo.GetAnalyticsByCreatorID(creatorID)
	if err != nil {
		return nil, nil, NewCreatorErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, creatorID, "Erro ao consultar analytics do criador")
	}

	return creator, record, nil
}

// UpdateCreator altera apenas os campos de identidade do criador
func (s *Service) UpdateCreator(claims *domain.Claims, creatorID string, req *domain.UpdateCreatorRequest) (*domain.Creator, error) {
	creator, err := s.resolveAndAuthorize(claims, creatorID)
	if err != nil {
		return nil, err
	}

	if req.Platform != nil {
		if !req.Platform.IsValid() {
			return nil, NewCreatorErrorWithID(ErrInvalidPlatform, apiErrors.ErrInvalidPlatform, creatorID, "Plataformas aceitas: Instagram, YouTube, X")
		}
		creator.Platform = *req.Platform
	}

	if req.Name != nil {
		creator.Name = *req.Name
	}

	if req.Username != nil {
		creator.Username = *req.Username
	}

	if req.ProfileImageURL != nil {
		creator.ProfileImageURL = req.ProfileImageURL
	}

	if err := s.creatorRepo.UpdateCreator(creator); err != nil {
		return nil, NewCreatorErrorWithID(err, apiErrors.ErrDatabaseOperation, creatorID, "Erro ao atualizar criador")
	}

	return creator, nil
}

// DeleteCreator remove o criador e seu registro de analytics. O registro de
// analytics tem o mesmo ciclo de vida do criador.
func (s *Service) DeleteCreator(claims *domain.Claims, creatorID string) error {
	if _, err := s.resolveAndAuthorize(claims, creatorID); err != nil {
		return err
	}

	if err := s.analyticsRepo.DeleteAnalyticsByCreatorID(creatorID); err != nil {
		return NewCreatorErrorWithID(err, apiErrors.ErrDatabaseOperation, creatorID, "Erro ao remover analytics do criador")
	}

	if err := s.creatorRepo.DeleteCreator(creatorID); err != nil {
		return NewCreatorErrorWithID(err, apiErrors.ErrDatabaseOperation, creatorID, "Erro ao remover criador")
	}

	return nil
}

func (s *Service) resolveAndAuthorize(claims *domain.Claims, creatorID string) (*domain.Creator, error) {
	creator, err := s.creatorRepo.GetCreatorByID(creatorID)
	if err != nil {
		return nil, NewCreatorErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, creatorID, "Erro ao consultar criador no banco de dados")
	}

	if creator == nil {
		return nil, NewCreatorErrorWithID(ErrCreatorNotFound, apiErrors.ErrCreatorNotFound, creatorID, "Criador não encontrado")
	}

	if !claims.IsAdmin() && creator.UserID != claims.UserID {
		return nil, NewCreatorErrorWithID(ErrForbidden, apiErrors.ErrInsufficientPrivilege, creatorID, "Usuário não tem acesso a este criador")
	}

	return creator, nil
}

func (s *Service) seedAnalytics(ctx context.Context, creator *domain.Creator) error {
	snapshot := s.generator.GenerateSnapshot()
	historical, err := s.generator.GenerateHistory(seedHistoryDays)
	if err != nil {
		return err
	}

	record := &domain.AnalyticsRecord{
		CreatorID:      creator.ID,
		Followers:      snapshot.Followers,
		EngagementRate: snapshot.EngagementRate,
		AvgLikes:       snapshot.AvgLikes,
		AvgComments:    snapshot.AvgComments,
		Historical:     historical,
		LastUpdated:    time.Now(),
	}

	_, err = s.analyticsRepo.CreateAnalytics(ctx, record)
	return err
}
