package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-analytics-api/internal/config"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "segredo-de-teste"}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_RegisterUser(t *testing.T) {
	tests := []struct {
		name    string
		request *domain.RegisterUserRequest
		setup   func(userRepo *mocks.MockUserRepository)
		wantErr error
	}{
		{
			name: "Cadastro com sucesso normaliza o email e retorna token",
			request: &domain.RegisterUserRequest{
				Name:     "Usuária",
				Email:    "  Usuaria@Test.com ",
				Password: "senha123",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("usuaria@test.com").
					Return(nil, nil)

				userRepo.EXPECT().
					CreateUser(gomock.Any()).
					DoAndReturn(func(u *domain.User) (*domain.User, error) {
						assert.Equal(t, "usuaria@test.com", u.Email)
						assert.Equal(t, domain.RoleUser, u.RoleID)
						assert.NotEqual(t, "senha123", u.PasswordHash)
						u.ID = 1
						return u, nil
					})
			},
		},
		{
			name: "Role admin é aceita",
			request: &domain.RegisterUserRequest{
				Name:     "Admin",
				Email:    "admin@test.com",
				Password: "senha123",
				Role:     "admin",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("admin@test.com").
					Return(nil, nil)

				userRepo.EXPECT().
					CreateUser(gomock.Any()).
					DoAndReturn(func(u *domain.User) (*domain.User, error) {
						assert.Equal(t, domain.RoleAdmin, u.RoleID)
						u.ID = 2
						return u, nil
					})
			},
		},
		{
			name: "Campos obrigatórios ausentes",
			request: &domain.RegisterUserRequest{
				Email: "faltando@test.com",
			},
			setup:   func(userRepo *mocks.MockUserRepository) {},
			wantErr: ErrMissingRequiredData,
		},
		{
			name: "Email com formato inválido",
			request: &domain.RegisterUserRequest{
				Name:     "Usuária",
				Email:    "sem-arroba",
				Password: "senha123",
			},
			setup:   func(userRepo *mocks.MockUserRepository) {},
			wantErr: ErrInvalidEmailFormat,
		},
		{
			name: "Senha abaixo do mínimo de 6 caracteres",
			request: &domain.RegisterUserRequest{
				Name:     "Usuária",
				Email:    "usuaria@test.com",
				Password: "12345",
			},
			setup:   func(userRepo *mocks.MockUserRepository) {},
			wantErr: ErrWeakPassword,
		},
		{
			name: "Role desconhecida é rejeitada",
			request: &domain.RegisterUserRequest{
				Name:     "Usuária",
				Email:    "usuaria@test.com",
				Password: "senha123",
				Role:     "gerente",
			},
			setup:   func(userRepo *mocks.MockUserRepository) {},
			wantErr: ErrInvalidRole,
		},
		{
			name: "Email já cadastrado",
			request: &domain.RegisterUserRequest{
				Name:     "Usuária",
				Email:    "usuaria@test.com",
				Password: "senha123",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("usuaria@test.com").
					Return(&domain.User{ID: 1, Email: "usuaria@test.com"}, nil)
			},
			wantErr: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, testConfig())

			user, token, err := service.RegisterUser(tt.request)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, user)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	t.Run("Login com sucesso retorna token válido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().
			GetUserByEmail("usuaria@test.com").
			Return(&domain.User{
				ID:           1,
				Name:         "Usuária",
				Email:        "usuaria@test.com",
				PasswordHash: hashPassword(t, "senha123"),
				RoleID:       domain.RoleUser,
			}, nil)

		service := NewService(userRepo, testConfig())

		token, user, err := service.LoginUser("usuaria@test.com", "senha123")

		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)

		// O token emitido carrega as claims do usuário
		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, domain.RoleUser, claims.UserRoleID)
		assert.False(t, claims.IsAdmin())
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().
			GetUserByEmail("usuaria@test.com").
			Return(&domain.User{
				ID:           1,
				Email:        "usuaria@test.com",
				PasswordHash: hashPassword(t, "senha123"),
			}, nil)

		service := NewService(userRepo, testConfig())

		_, _, err := service.LoginUser("usuaria@test.com", "senha-errada")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário inexistente retorna credenciais inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().
			GetUserByEmail("ninguem@test.com").
			Return(nil, nil)

		service := NewService(userRepo, testConfig())

		_, _, err := service.LoginUser("ninguem@test.com", "senha123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário desativado não autentica", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().
			GetUserByEmail("inativa@test.com").
			Return(&domain.User{
				ID:           2,
				Email:        "inativa@test.com",
				PasswordHash: hashPassword(t, "senha123"),
				Disabled:     true,
			}, nil)

		service := NewService(userRepo, testConfig())

		_, _, err := service.LoginUser("inativa@test.com", "senha123")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(nil, testConfig())

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		_, err := service.ValidateToken("cabecalho.corpo.assinatura")
		assert.Error(t, err)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		other := NewService(nil, &config.Config{SecretKey: "outro-segredo"})

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().
			GetUserByEmail("usuaria@test.com").
			Return(&domain.User{
				ID:           1,
				Email:        "usuaria@test.com",
				PasswordHash: hashPassword(t, "senha123"),
			}, nil)

		withRepo := NewService(userRepo, &config.Config{SecretKey: "outro-segredo"})
		token, _, err := withRepo.LoginUser("usuaria@test.com", "senha123")
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)

		claims, err := other.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
	})
}

func TestService_SetUserDisabled(t *testing.T) {
	t.Run("Desativa usuário existente e limpa o hash da resposta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().
			GetUserByID(5).
			Return(&domain.User{ID: 5, Email: "alvo@test.com", PasswordHash: "hash"}, nil)

		userRepo.EXPECT().
			SetUserDisabled(5, true).
			Return(nil)

		service := NewService(userRepo, testConfig())

		user, err := service.SetUserDisabled(5, true)

		assert.NoError(t, err)
		assert.True(t, user.Disabled)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().
			GetUserByID(5).
			Return(nil, nil)

		service := NewService(userRepo, testConfig())

		_, err := service.SetUserDisabled(5, true)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
