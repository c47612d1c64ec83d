package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tables/models"
	"github.com/lib/pq"
)

var (
	ErrResultConflict      = errors.New("result already exists for this player at this table")
	ErrResultTableInvalid  = errors.New("result table conflict or invalid")
	ErrResultPlayerInvalid = errors.New("result player conflict or invalid")
)

type ResultRepository interface {
	Create(ctx context.Context, exec SQLExecutor, result *models.MatchResult) error
	ListByTable(ctx context.Context, exec SQLExecutor, tableID int) ([]*models.MatchResult, error)
	DeleteByTable(ctx context.Context, exec SQLExecutor, tableID int) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresResultRepository struct {
	db *sql.DB
}

func NewPostgresResultRepository(db *sql.DB) ResultRepository {
	return &postgresResultRepository{db: db}
}

func (r *postgresResultRepository) Create(ctx context.Context, exec SQLExecutor, result *models.MatchResult) error {
	query := `
		INSERT INTO match_results (table_id, player_id, win, loss, draw, points)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := executor(r.db, exec).QueryRowContext(ctx, query,
		result.TableID, result.PlayerID, result.Win, result.Loss, result.Draw, result.Points,
	).Scan(&result.ID)
	return r.handleResultError(err)
}

func (r *postgresResultRepository) ListByTable(ctx context.Context, exec SQLExecutor, tableID int) ([]*models.MatchResult, error) {
	query := `
		SELECT id, table_id, player_id, win, loss, draw, points
		FROM match_results
		WHERE table_id = $1
		ORDER BY id ASC`
	rows, err := executor(r.db, exec).QueryContext(ctx, query, tableID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results for table %d: %w", tableID, err)
	}
	defer rows.Close()

	results := make([]*models.MatchResult, 0)
	for rows.Next() {
		var mr models.MatchResult
		if scanErr := rows.Scan(&mr.ID, &mr.TableID, &mr.PlayerID, &mr.Win, &mr.Loss, &mr.Draw, &mr.Points); scanErr != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", scanErr)
		}
		results = append(results, &mr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during result rows iteration: %w", err)
	}
	return results, nil
}

func (r *postgresResultRepository) DeleteByTable(ctx context.Context, exec SQLExecutor, tableID int) error {
	_, err := executor(r.db, exec).ExecContext(ctx, `DELETE FROM match_results WHERE table_id = $1`, tableID)
	if err != nil {
		return fmt.Errorf("failed to delete results for table %d: %w", tableID, err)
	}
	return nil
}

func (r *postgresResultRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	_, err := executor(r.db, exec).ExecContext(ctx, `DELETE FROM match_results`)
	return err
}

func (r *postgresResultRepository) handleResultError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// "23505": unique_violation, "23503": foreign_key_violation
		switch pqErr.Constraint {
		case "match_results_table_id_player_id_key":
			return ErrResultConflict
		case "match_results_table_id_fkey":
			return ErrResultTableInvalid
		case "match_results_player_id_fkey":
			return ErrResultPlayerInvalid
		}
	}
	return fmt.Errorf("result query failed: %w", err)
}
