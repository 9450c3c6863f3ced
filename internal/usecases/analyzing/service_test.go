package analyzing

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func userClaims(userID, roleID int) *domain.Claims {
	return &domain.Claims{
		UserID:     userID,
		UserRoleID: roleID,
	}
}

func TestService_RefreshAnalytics(t *testing.T) {
	creatorOwned := &domain.Creator{
		ID:       "abc123",
		UserID:   10,
		Name:     "Criadora A",
		Platform: domain.PlatformInstagram,
		Username: "criadora.a",
	}

	tests := []struct {
		name     string
		claims   *domain.Claims
		setup    func(creatorRepo *mocks.MockCreatorRepository, analyticsRepo *mocks.MockAnalyticsRepository)
		wantErr  error
		validate func(t *testing.T, result *domain.AnalyticsResponse)
	}{
		{
			name:   "Primeiro refresh cria o registro com uma entrada histórica",
			claims: userClaims(10, domain.RoleUser),
			setup: func(creatorRepo *mocks.MockCreatorRepository, analyticsRepo *mocks.MockAnalyticsRepository) {
				creatorRepo.EXPECT().
					GetCreatorByID("abc123").
					Return(creatorOwned, nil)

				analyticsRepo.EXPECT().
					GetAnalyticsByCreatorID("abc123").
					Return(nil, nil)

				analyticsRepo.EXPECT().
					CreateAnalytics(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record *domain.AnalyticsRecord) (*domain.AnalyticsRecord, error) {
						record.ID = 1
						return record, nil
					})
			},
			validate: func(t *testing.T, result *domain.AnalyticsResponse) {
				assert.Equal(t, "abc123", result.CreatorID)
				assert.Len(t, result.Historical, 1)
				assert.Equal(t, result.Followers, result.Historical[0].Followers)
				assert.Equal(t, result.EngagementRate, result.Historical[0].EngagementRate)
				assert.Equal(t, "criadora.a", result.Creator.Username)
			},
		},
		{
			name:   "Refresh de registro existente aplica snapshot e anexa uma entrada",
			claims: userClaims(10, domain.RoleUser),
			setup: func(creatorRepo *mocks.MockCreatorRepository, analyticsRepo *mocks.MockAnalyticsRepository) {
				existing := &domain.AnalyticsRecord{
					ID:        1,
					CreatorID: "abc123",
					Followers: 12000,
					Historical: []domain.HistoricalEntry{
						{Date: time.Now().Add(-24 * time.Hour), Followers: 11800, EngagementRate: 3.2},
					},
				}

				creatorRepo.EXPECT().
					GetCreatorByID("abc123").
					Return(creatorOwned, nil)

				analyticsRepo.EXPECT().
					GetAnalyticsByCreatorID("abc123").
					Return(existing, nil)

				analyticsRepo.EXPECT().
					ApplySnapshotAndAppend(gomock.Any(), existing, gomock.Any()).
					DoAndReturn(func(_ context.Context, record *domain.AnalyticsRecord, snapshot *domain.Snapshot) error {
						record.Followers = snapshot.Followers
						record.EngagementRate = snapshot.EngagementRate
						record.Historical = append(record.Historical, domain.HistoricalEntry{
							Date:           time.Now(),
							Followers:      snapshot.Followers,
							EngagementRate: snapshot.EngagementRate,
						})
						record.LastUpdated = time.Now()
						return nil
					})
			},
			validate: func(t *testing.T, result *domain.AnalyticsResponse) {
				assert.Len(t, result.Historical, 2)
				assert.Equal(t, result.Followers, result.Historical[1].Followers)
			},
		},
		{
			name:   "Criador inexistente retorna erro de não encontrado",
			claims: userClaims(10, domain.RoleUser),
			setup: func(creatorRepo *mocks.MockCreatorRepository, analyticsRepo *mocks.MockAnalyticsRepository) {
				creatorRepo.EXPECT().
					GetCreatorByID("abc123").
					Return(nil, nil)
			},
			wantErr: ErrCreatorNotFound,
		},
		{
			name:   "Usuário comum não acessa criador de outro usuário",
			claims: userClaims(99, domain.RoleUser),
			setup: func(creatorRepo *mocks.MockCreatorRepository, analyticsRepo *mocks.MockAnalyticsRepository) {
				creatorRepo.EXPECT().
					GetCreatorByID("abc123").
					Return(creatorOwned, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:   "Administrador acessa criador de qualquer usuário",
			claims: userClaims(99, domain.RoleAdmin),
			setup: func(creatorRepo *mocks.MockCreatorRepository, analyticsRepo *mocks.MockAnalyticsRepository) {
				creatorRepo.EXPECT().
					GetCreatorByID("abc123").
					Return(creatorOwned, nil)

				analyticsRepo.EXPECT().
					GetAnalyticsByCreatorID("abc123").
					Return(nil, nil)

				analyticsRepo.EXPECT().
					CreateAnalytics(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record *domain.AnalyticsRecord) (*domain.AnalyticsRecord, error) {
						return record, nil
					})
			},
			validate: func(t *testing.T, result *domain.AnalyticsResponse) {
				assert.Equal(t, "abc123", result.CreatorID)
			},
		},
		{
			name:   "Falha de banco ao criar registro é propagada",
			claims: userClaims(10, domain.RoleUser),
			setup: func(creatorRepo *mocks.MockCreatorRepository, analyticsRepo *mocks.MockAnalyticsRepository) {
				creatorRepo.EXPECT().
					GetCreatorByID("abc123").
					Return(creatorOwned, nil)

				analyticsRepo.EXPECT().
					GetAnalyticsByCreatorID("abc123").
					Return(nil, nil)

				analyticsRepo.EXPECT().
					CreateAnalytics(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("insert falhou"))
			},
			wantErr: nil, // erro tipado verificado abaixo
			validate: func(t *testing.T, result *domain.AnalyticsResponse) {
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			creatorRepo := mocks.NewMockCreatorRepository(ctrl)
			analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

			tt.setup(creatorRepo, analyticsRepo)

			service := &Service{
				creatorRepo:   creatorRepo,
				analyticsRepo: analyticsRepo,
				generator:     NewGenerator(rand.New(rand.NewSource(42))),
			}

			result, err := service.RefreshAnalytics(context.Background(), tt.claims, "abc123")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			if tt.validate != nil {
				if result == nil {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
				tt.validate(t, result)
			}
		})
	}
}

func TestService_GetCreatorAnalytics(t *testing.T) {
	creatorOwned := &domain.Creator{
		ID:       "abc123",
		UserID:   10,
		Name:     "Criadora A",
		Platform: domain.PlatformInstagram,
		Username: "criadora.a",
	}

	t.Run("Retorna registro existente com identidade do criador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		creatorRepo := mocks.NewMockCreatorRepository(ctrl)
		analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

		creatorRepo.EXPECT().
			GetCreatorByID("abc123").
			Return(creatorOwned, nil)

		analyticsRepo.EXPECT().
			GetAnalyticsByCreatorID("abc123").
			Return(&domain.AnalyticsRecord{ID: 1, CreatorID: "abc123", Followers: 5000}, nil)

		service := &Service{
			creatorRepo:   creatorRepo,
			analyticsRepo: analyticsRepo,
			generator:     NewGenerator(rand.New(rand.NewSource(1))),
		}

		result, err := service.GetCreatorAnalytics(userClaims(10, domain.RoleUser), "abc123")

		assert.NoError(t, err)
		assert.Equal(t, 5000, result.Followers)
		assert.Equal(t, "Criadora A", result.Creator.Name)
	})

	t.Run("Criador sem registro retorna nil sem erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		creatorRepo := mocks.NewMockCreatorRepository(ctrl)
		analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

		creatorRepo.EXPECT().
			GetCreatorByID("abc123").
			Return(creatorOwned, nil)

		analyticsRepo.EXPECT().
			GetAnalyticsByCreatorID("abc123").
			Return(nil, nil)

		service := &Service{
			creatorRepo:   creatorRepo,
			analyticsRepo: analyticsRepo,
			generator:     NewGenerator(rand.New(rand.NewSource(1))),
		}

		result, err := service.GetCreatorAnalytics(userClaims(10, domain.RoleUser), "abc123")

		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}
