package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/creator-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
)

const (
	analyticsTable        = "creator_analytics"
	analyticsHistoryTable = "creator_analytics_history"
)

type AnalyticsRepository interface {
	GetAnalyticsByCreatorID(creatorID string) (*domain.AnalyticsRecord, error)
	ListAnalyticsByCreatorIDs(creatorIDs []string) ([]*domain.AnalyticsRecord, error)
	CreateAnalytics(ctx context.Context, record *domain.AnalyticsRecord) (*domain.AnalyticsRecord, error)
	ApplySnapshotAndAppend(ctx context.Context, record *domain.AnalyticsRecord, snapshot *domain.Snapshot) error
	DeleteAnalyticsByCreatorID(creatorID string) error
}

type analyticsRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsRepository(conn *postgres.Connection) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

func (r *analyticsRepository) GetAnalyticsByCreatorID(creatorID string) (*domain.AnalyticsRecord, error) {
	var record domain.AnalyticsRecord
	err := r.conn.QueryRow(
		"SELECT id, creator_id, followers, engagement_rate, avg_likes, avg_comments, last_updated FROM creator_analytics WHERE creator_id = $1",
		creatorID,
	).Scan(
		&record.ID,
		&record.CreatorID,
		&record.Followers,
		&record.EngagementRate,
		&record.AvgLikes,
		&record.AvgComments,
		&record.LastUpdated,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	historical, err := r.getHistorical(record.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar série histórica: %w", err)
	}
	record.Historical = historical

	return &record, nil
}

// ListAnalyticsByCreatorIDs retorna os registros dos criadores informados sem a
// série histórica, usada apenas na visão detalhada
func (r *analyticsRepository) ListAnalyticsByCreatorIDs(creatorIDs []string) ([]*domain.AnalyticsRecord, error) {
	if len(creatorIDs) == 0 {
		return []*domain.AnalyticsRecord{}, nil
	}

	queryBuilder := squirrel.
		Select("id", "creator_id", "followers", "engagement_rate", "avg_likes", "avg_comments", "last_updated").
		From(analyticsTable).
		Where(squirrel.Eq{"creator_id": creatorIDs}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	analyticsSQL, analyticsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(analyticsSQL, analyticsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar analytics: %w", err)
	}
	defer rows.Close()

	var records []*domain.AnalyticsRecord
	for rows.Next() {
		var record domain.AnalyticsRecord
		if err := rows.Scan(
			&record.ID,
			&record.CreatorID,
			&record.Followers,
			&record.EngagementRate,
			&record.AvgLikes,
			&record.AvgComments,
			&record.LastUpdated,
		); err != nil {
			return nil, err
		}

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CreateAnalytics insere o registro e a série histórica inicial em uma única
// transação. A restrição de unicidade em creator_id garante no máximo um
// registro por criador.
func (r *analyticsRepository) CreateAnalytics(ctx context.Context, record *domain.AnalyticsRecord) (*domain.AnalyticsRecord, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		insertBuilder := squirrel.
			Insert(analyticsTable).
			Columns("creator_id", "followers", "engagement_rate", "avg_likes", "avg_comments", "last_updated").
			Values(record.CreatorID, record.Followers, record.EngagementRate, record.AvgLikes, record.AvgComments, record.LastUpdated).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar)

		analyticsSQL, analyticsArgs, err := insertBuilder.ToSql()
		if err != nil {
			return err
		}

		if err := tx.QueryRow(analyticsSQL, analyticsArgs...).Scan(&record.ID); err != nil {
			return err
		}

		if len(record.Historical) == 0 {
			return nil
		}

		historyBuilder := squirrel.
			Insert(analyticsHistoryTable).
			Columns("analytics_id", "recorded_at", "followers", "engagement_rate").
			PlaceholderFormat(squirrel.Dollar)

		for _, entry := range record.Historical {
			historyBuilder = historyBuilder.Values(record.ID, entry.Date, entry.Followers, entry.EngagementRate)
		}

		historySQL, historyArgs, err := historyBuilder.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(historySQL, historyArgs...)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar registro de analytics: %w", err)
	}

	return record, nil
}

// ApplySnapshotAndAppend sobrescreve os campos correntes do registro com o
// snapshot e anexa uma nova entrada à série histórica. É o único caminho de
// mutação após a criação.
func (r *analyticsRepository) ApplySnapshotAndAppend(ctx context.Context, record *domain.AnalyticsRecord, snapshot *domain.Snapshot) error {
	now := time.Now()

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		updateBuilder := squirrel.
			Update(analyticsTable).
			Set("followers", snapshot.Followers).
			Set("engagement_rate", snapshot.EngagementRate).
			Set("avg_likes", snapshot.AvgLikes).
			Set("avg_comments", snapshot.AvgComments).
			Set("last_updated", now).
			Where(squirrel.Eq{"id": record.ID}).
			PlaceholderFormat(squirrel.Dollar)

		updateSQL, updateArgs, err := updateBuilder.ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(updateSQL, updateArgs...); err != nil {
			return err
		}

		insertBuilder := squirrel.
			Insert(analyticsHistoryTable).
			Columns("analytics_id", "recorded_at", "followers", "engagement_rate").
			Values(record.ID, now, snapshot.Followers, snapshot.EngagementRate).
			PlaceholderFormat(squirrel.Dollar)

		insertSQL, insertArgs, err := insertBuilder.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(insertSQL, insertArgs...)
		return err
	})
	if err != nil {
		return fmt.Errorf("erro ao atualizar registro de analytics: %w", err)
	}

	record.Followers = snapshot.Followers
	record.EngagementRate = snapshot.EngagementRate
	record.AvgLikes = snapshot.AvgLikes
	record.AvgComments = snapshot.AvgComments
	record.LastUpdated = now
	record.Historical = append(record.Historical, domain.HistoricalEntry{
		Date:           now,
		Followers:      snapshot.Followers,
		EngagementRate: snapshot.EngagementRate,
	})

	return nil
}

// DeleteAnalyticsByCreatorID remove o registro do criador; a série histórica é
// removida em cascata. Não retorna erro quando o registro não existe.
func (r *analyticsRepository) DeleteAnalyticsByCreatorID(creatorID string) error {
	queryBuilder := squirrel.
		Delete(analyticsTable).
		Where(squirrel.Eq{"creator_id": creatorID}).
		PlaceholderFormat(squirrel.Dollar)

	analyticsSQL, analyticsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(analyticsSQL, analyticsArgs...)
	if err != nil {
		return fmt.Errorf("erro ao remover analytics: %w", err)
	}

	return nil
}

func (r *analyticsRepository) getHistorical(analyticsID int) ([]domain.HistoricalEntry, error) {
	rows, err := r.conn.Query(
		"SELECT recorded_at, followers, engagement_rate FROM creator_analytics_history WHERE analytics_id = $1 ORDER BY recorded_at ASC, id ASC",
		analyticsID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var historical []domain.HistoricalEntry
	for rows.Next() {
		var entry domain.HistoricalEntry
		if err := rows.Scan(&entry.Date, &entry.Followers, &entry.EngagementRate); err != nil {
			return nil, err
		}

		historical = append(historical, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return historical, nil
}
