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
	ErrTableNotFound       = errors.New("table not found")
	ErrTableNumberConflict = errors.New("table number already exists in this round")
	ErrTableRoundInvalid   = errors.New("table round conflict or invalid")
)

type TableRepository interface {
	Create(ctx context.Context, exec SQLExecutor, table *models.Table) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Table, error)
	// GetByIDForUpdate row-locks the table until the transaction ends.
	GetByIDForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Table, error)
	ListByRound(ctx context.Context, exec SQLExecutor, roundID int) ([]*models.Table, error)
	// ListHistoryBefore returns the seating of every table in rounds numbered
	// strictly below roundNumber.
	ListHistoryBefore(ctx context.Context, exec SQLExecutor, roundNumber int) ([]models.SeatHistory, error)
	SetResultJSON(ctx context.Context, exec SQLExecutor, id int, resultJSON string) error
	RemovePlayer(ctx context.Context, exec SQLExecutor, playerID int) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresTableRepository struct {
	db *sql.DB
}

func NewPostgresTableRepository(db *sql.DB) TableRepository {
	return &postgresTableRepository{db: db}
}

const tableColumns = `id, round_id, table_number, player_ids, result_json, created_at`

func (r *postgresTableRepository) Create(ctx context.Context, exec SQLExecutor, table *models.Table) error {
	query := `
		INSERT INTO tables (round_id, table_number, player_ids)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := executor(r.db, exec).QueryRowContext(ctx, query,
		table.RoundID,
		table.TableNumber,
		pq.Array(toInt64s(table.PlayerIDs)),
	).Scan(&table.ID, &table.CreatedAt)

	return r.handleTableError(err)
}

func (r *postgresTableRepository) scanTable(rowScanner interface {
	Scan(dest ...interface{}) error
}) (*models.Table, error) {
	var (
		t     models.Table
		seats pq.Int64Array
		res   sql.NullString
	)
	if err := rowScanner.Scan(&t.ID, &t.RoundID, &t.TableNumber, &seats, &res, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.PlayerIDs = toInts(seats)
	if res.Valid {
		t.ResultJSON = &res.String
	}
	return &t, nil
}

func (r *postgresTableRepository) getOne(ctx context.Context, exec SQLExecutor, query string, id int) (*models.Table, error) {
	t, err := r.scanTable(executor(r.db, exec).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to scan table by id %d: %w", id, err)
	}
	return t, nil
}

func (r *postgresTableRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Table, error) {
	return r.getOne(ctx, exec, `SELECT `+tableColumns+` FROM tables WHERE id = $1`, id)
}

func (r *postgresTableRepository) GetByIDForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Table, error) {
	return r.getOne(ctx, exec, `SELECT `+tableColumns+` FROM tables WHERE id = $1 FOR UPDATE`, id)
}

func (r *postgresTableRepository) ListByRound(ctx context.Context, exec SQLExecutor, roundID int) ([]*models.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE round_id = $1 ORDER BY table_number ASC`
	rows, err := executor(r.db, exec).QueryContext(ctx, query, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables for round %d: %w", roundID, err)
	}
	defer rows.Close()

	tables := make([]*models.Table, 0)
	for rows.Next() {
		t, scanErr := r.scanTable(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan table row: %w", scanErr)
		}
		tables = append(tables, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during table rows iteration: %w", err)
	}
	return tables, nil
}

func (r *postgresTableRepository) ListHistoryBefore(ctx context.Context, exec SQLExecutor, roundNumber int) ([]models.SeatHistory, error) {
	query := `
		SELECT rd.round_number, t.player_ids
		FROM tables t
		JOIN rounds rd ON rd.id = t.round_id
		WHERE rd.round_number < $1
		ORDER BY rd.round_number ASC, t.table_number ASC`

	rows, err := executor(r.db, exec).QueryContext(ctx, query, roundNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query seating history before round %d: %w", roundNumber, err)
	}
	defer rows.Close()

	history := make([]models.SeatHistory, 0)
	for rows.Next() {
		var (
			number int
			seats  pq.Int64Array
		)
		if scanErr := rows.Scan(&number, &seats); scanErr != nil {
			return nil, fmt.Errorf("failed to scan seating history row: %w", scanErr)
		}
		history = append(history, models.SeatHistory{RoundNumber: number, PlayerIDs: toInts(seats)})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during seating history iteration: %w", err)
	}
	return history, nil
}

func (r *postgresTableRepository) SetResultJSON(ctx context.Context, exec SQLExecutor, id int, resultJSON string) error {
	result, err := executor(r.db, exec).ExecContext(ctx, `UPDATE tables SET result_json = $1 WHERE id = $2`, resultJSON, id)
	if err != nil {
		return fmt.Errorf("SetResultJSON: failed to execute query for table %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrTableNotFound)
}

func (r *postgresTableRepository) RemovePlayer(ctx context.Context, exec SQLExecutor, playerID int) error {
	query := `UPDATE tables SET player_ids = array_remove(player_ids, $1) WHERE $1 = ANY(player_ids)`
	if _, err := executor(r.db, exec).ExecContext(ctx, query, playerID); err != nil {
		return fmt.Errorf("failed to remove player %d from tables: %w", playerID, err)
	}
	return nil
}

func (r *postgresTableRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	_, err := executor(r.db, exec).ExecContext(ctx, `DELETE FROM tables`)
	return err
}

func (r *postgresTableRepository) handleTableError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Constraint {
		case "tables_round_id_table_number_key":
			return ErrTableNumberConflict
		case "tables_round_id_fkey":
			return ErrTableRoundInvalid
		}
	}
	return fmt.Errorf("table query failed: %w", err)
}
