package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/creator-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
)

const (
	usersTable = "users"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	ListUsersWithCreatorCounts() ([]*domain.UserWithCreatorCount, error)
	SetUserDisabled(userID int, disabled bool) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("name", "email", "password_hash", "role_id", "disabled").
		Values(user.Name, user.Email, user.PasswordHash, user.RoleID, user.Disabled).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(usersSQL, usersArgs...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.conn.QueryRow("SELECT id, name, email, password_hash, role_id, disabled, created_at, updated_at FROM users WHERE email = $1", email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.RoleID,
		&user.Disabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	var user domain.User
	err := r.conn.QueryRow("SELECT id, name, email, password_hash, role_id, disabled, created_at, updated_at FROM users WHERE id = $1", userID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.RoleID,
		&user.Disabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListUsersWithCreatorCounts retorna todos os usuários com a contagem de
// criadores pertencentes a cada um
func (r *userRepository) ListUsersWithCreatorCounts() ([]*domain.UserWithCreatorCount, error) {
	queryBuilder := squirrel.
		Select(
			"u.id", "u.name", "u.email", "u.role_id", "u.disabled",
			"u.created_at", "u.updated_at",
			"COUNT(c.id) AS creator_count",
		).
		From(usersTable + " u").
		LeftJoin(creatorsTable + " c ON c.user_id = u.id").
		GroupBy("u.id").
		OrderBy("u.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(usersSQL, usersArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar usuários: %w", err)
	}
	defer rows.Close()

	var users []*domain.UserWithCreatorCount
	for rows.Next() {
		var user domain.UserWithCreatorCount
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.RoleID,
			&user.Disabled,
			&user.CreatedAt,
			&user.UpdatedAt,
			&user.CreatorCount,
		); err != nil {
			return nil, err
		}

		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) SetUserDisabled(userID int, disabled bool) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("disabled", disabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usersSQL, usersArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do usuário: %w", err)
	}

	return nil
}
