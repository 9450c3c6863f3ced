package authenticating

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-analytics-api/infrastructure/repository"
	"github.com/vfg2006/creator-analytics-api/internal/config"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"github.com/vfg2006/creator-analytics-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL          = 7 * 24 * time.Hour
	minPasswordLength = 6
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Authenticator interface {
	RegisterUser(req *domain.RegisterUserRequest) (*domain.User, string, error)
	LoginUser(email, password string) (string, *domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(userID int) (*domain.User, error)
	ListUsers() ([]*domain.UserWithCreatorCount, error)
	SetUserDisabled(userID int, disabled bool) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterUser cria um novo usuário e já retorna um token de sessão
func (s *Service) RegisterUser(req *domain.RegisterUserRequest) (*domain.User, string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios")
	}

	email := handleEmail(req.Email)
	if !emailRegex.MatchString(email) {
		return nil, "", NewAuthError(ErrInvalidEmailFormat, apiErrors.ErrInvalidFormat, "Formato de email inválido")
	}

	if len(req.Password) < minPasswordLength {
		return nil, "", NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "A senha deve conter pelo menos 6 caracteres")
	}

	roleID, err := parseRole(req.Role)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrInvalidFormat, "Role deve ser user ou admin")
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, "", NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		RoleID:       roleID,
	}

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	token, err := generateJWT(user, s.cfg.SecretKey)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return user, token, nil
}

func (s *Service) LoginUser(email, password string) (string, *domain.User, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	// Verificar se o usuário existe
	if user == nil {
		return "", nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	// Verificar se o usuário está ativo
	if user.Disabled {
		return "", nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Email ou senha incorretos")
	}

	// Gerar token JWT
	token, err := generateJWT(user, s.cfg.SecretKey)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, user, nil
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListUsers() ([]*domain.UserWithCreatorCount, error) {
	users, err := s.userRepo.ListUsersWithCreatorCounts()
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	return users, nil
}

// SetUserDisabled habilita ou desabilita o acesso de um usuário à plataforma.
// Usuários desabilitados mantêm seus criadores, mas não conseguem autenticar.
func (s *Service) SetUserDisabled(userID int, disabled bool) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if err := s.userRepo.SetUserDisabled(userID, disabled); err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao atualizar status do usuário")
	}

	user.Disabled = disabled
	user.PasswordHash = ""
	return user, nil
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func parseRole(role string) (int, error) {
	switch role {
	case "", "user":
		return domain.RoleUser, nil
	case "admin":
		return domain.RoleAdmin, nil
	}
	return 0, ErrInvalidRole
}
