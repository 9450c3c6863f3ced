package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles disponíveis para os usuários da plataforma
const (
	RoleAdmin = 1
	RoleUser  = 2
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleID       int       `json:"role_id"`
	Disabled     bool      `json:"disabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserWithCreatorCount é a projeção usada na listagem administrativa de usuários
type UserWithCreatorCount struct {
	User
	CreatorCount int `json:"creator_count"`
}

type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}

// IsAdmin indica se o portador do token possui perfil de administrador
func (c *Claims) IsAdmin() bool {
	return c.UserRoleID == RoleAdmin
}
