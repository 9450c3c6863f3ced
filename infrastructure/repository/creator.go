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
	creatorsTable = "creators"
)

type CreatorRepository interface {
	CreateCreator(creator *domain.Creator) (*domain.Creator, error)
	GetCreatorByID(creatorID string) (*domain.Creator, error)
	GetCreatorByOwnerAndUsername(userID int, username string) (*domain.Creator, error)
	ListCreators(filter domain.ListCreatorsFilter) ([]*domain.Creator, int, error)
	ListAllCreators() ([]*domain.Creator, error)
	UpdateCreator(creator *domain.Creator) error
	DeleteCreator(creatorID string) error
}

type creatorRepository struct {
	conn *postgres.Connection
}

func NewCreatorRepository(conn *postgres.Connection) CreatorRepository {
	return &creatorRepository{
		conn: conn,
	}
}

func (r *creatorRepository) CreateCreator(creator *domain.Creator) (*domain.Creator, error) {
	queryBuilder := squirrel.
		Insert(creatorsTable).
		Columns("id", "user_id", "name", "platform", "username", "profile_image_url").
		Values(creator.ID, creator.UserID, creator.Name, creator.Platform, creator.Username, creator.ProfileImageURL).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	creatorSQL, creatorArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(creatorSQL, creatorArgs...).Scan(&creator.CreatedAt)
	if err != nil {
		return nil, err
	}

	return creator, nil
}

func (r *creatorRepository) GetCreatorByID(creatorID string) (*domain.Creator, error) {
	var creator domain.Creator
	err := r.conn.QueryRow("SELECT id, user_id, name, platform, username, profile_image_url, created_at FROM creators WHERE id = $1", creatorID).Scan(
		&creator.ID,
		&creator.UserID,
		&creator.Name,
		&creator.Platform,
		&creator.Username,
		&creator.ProfileImageURL,
		&creator.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &creator, nil
}

func (r *creatorRepository) GetCreatorByOwnerAndUsername(userID int, username string) (*domain.Creator, error) {
	var creator domain.Creator
	err := r.conn.QueryRow("SELECT id, user_id, name, platform, username, profile_image_url, created_at FROM creators WHERE user_id = $1 AND username = $2", userID, username).Scan(
		&creator.ID,
		&creator.UserID,
		&creator.Name,
		&creator.Platform,
		&creator.Username,
		&creator.ProfileImageURL,
		&creator.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &creator, nil
}

// ListCreators retorna uma página de criadores segundo o filtro informado,
// além do total de registros que atendem ao filtro
func (r *creatorRepository) ListCreators(filter domain.ListCreatorsFilter) ([]*domain.Creator, int, error) {
	countBuilder := squirrel.
		Select("COUNT(*)").
		From(creatorsTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder := squirrel.
		Select("id", "user_id", "name", "platform", "username", "profile_image_url", "created_at").
		From(creatorsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.UserID != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
		queryBuilder = queryBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		if offset < 0 {
			offset = 0
		}
		queryBuilder = queryBuilder.Limit(uint64(filter.Limit)).Offset(uint64(offset))
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar criadores: %w", err)
	}

	creatorsSQL, creatorsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(creatorsSQL, creatorsArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao consultar criadores: %w", err)
	}
	defer rows.Close()

	creators, err := scanCreators(rows)
	if err != nil {
		return nil, 0, err
	}

	return creators, total, nil
}

func (r *creatorRepository) ListAllCreators() ([]*domain.Creator, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "name", "platform", "username", "profile_image_url", "created_at").
		From(creatorsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	creatorsSQL, creatorsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(creatorsSQL, creatorsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar criadores: %w", err)
	}
	defer rows.Close()

	return scanCreators(rows)
}

func (r *creatorRepository) UpdateCreator(creator *domain.Creator) error {
	queryBuilder := squirrel.
		Update(creatorsTable).
		Where(squirrel.Eq{"id": creator.ID})

	if creator.Name != "" {
		queryBuilder = queryBuilder.Set("name", creator.Name)
	}

	if creator.Platform != "" {
		queryBuilder = queryBuilder.Set("platform", creator.Platform)
	}

	if creator.Username != "" {
		queryBuilder = queryBuilder.Set("username", creator.Username)
	}

	if creator.ProfileImageURL != nil && *creator.ProfileImageURL != "" {
		queryBuilder = queryBuilder.Set("profile_image_url", creator.ProfileImageURL)
	}

	creatorSQL, creatorArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(creatorSQL, creatorArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar criador: %w", err)
	}

	return nil
}

func (r *creatorRepository) DeleteCreator(creatorID string) error {
	queryBuilder := squirrel.
		Delete(creatorsTable).
		Where(squirrel.Eq{"id": creatorID}).
		PlaceholderFormat(squirrel.Dollar)

	creatorSQL, creatorArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(creatorSQL, creatorArgs...)
	if err != nil {
		return fmt.Errorf("erro ao remover criador: %w", err)
	}

	return nil
}

func scanCreators(rows *sql.Rows) ([]*domain.Creator, error) {
	var creators []*domain.Creator
	for rows.Next() {
		var creator domain.Creator
		if err := rows.Scan(
			&creator.ID,
			&creator.UserID,
			&creator.Name,
			&creator.Platform,
			&creator.Username,
			&creator.ProfileImageURL,
			&creator.CreatedAt,
		); err != nil {
			return nil, err
		}

		creators = append(creators, &creator)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return creators, nil
}
