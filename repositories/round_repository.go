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
	ErrRoundNotFound       = errors.New("round not found")
	ErrRoundNumberConflict = errors.New("round number already exists")
	ErrRoundNumberInvalid  = errors.New("round number must be positive")
)

// roundGenerationLockKey identifies the advisory lock that serializes round
// generation across connections.
const roundGenerationLockKey int64 = 0x5357495353

type RoundRepository interface {
	Create(ctx context.Context, exec SQLExecutor, round *models.Round) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Round, error)
	GetByNumber(ctx context.Context, exec SQLExecutor, number int) (*models.Round, error)
	// GetLatest returns ErrRoundNotFound when no round exists yet.
	GetLatest(ctx context.Context, exec SQLExecutor) (*models.Round, error)
	List(ctx context.Context, exec SQLExecutor) ([]*models.Round, error)
	// LockGeneration blocks until this transaction owns the generation lock.
	// The lock is released on commit or rollback.
	LockGeneration(ctx context.Context, exec SQLExecutor) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresRoundRepository struct {
	db *sql.DB
}

func NewPostgresRoundRepository(db *sql.DB) RoundRepository {
	return &postgresRoundRepository{db: db}
}

func (r *postgresRoundRepository) Create(ctx context.Context, exec SQLExecutor, round *models.Round) error {
	query := `INSERT INTO rounds (round_number) VALUES ($1) RETURNING id, created_at`
	err := executor(r.db, exec).QueryRowContext(ctx, query, round.RoundNumber).Scan(&round.ID, &round.CreatedAt)
	return r.handleRoundError(err)
}

func (r *postgresRoundRepository) findOne(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) (*models.Round, error) {
	round := &models.Round{}
	err := executor(r.db, exec).QueryRowContext(ctx, query, args...).Scan(&round.ID, &round.RoundNumber, &round.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to scan round: %w", err)
	}
	return round, nil
}

func (r *postgresRoundRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Round, error) {
	return r.findOne(ctx, exec, `SELECT id, round_number, created_at FROM rounds WHERE id = $1`, id)
}

func (r *postgresRoundRepository) GetByNumber(ctx context.Context, exec SQLExecutor, number int) (*models.Round, error) {
	return r.findOne(ctx, exec, `SELECT id, round_number, created_at FROM rounds WHERE round_number = $1`, number)
}

func (r *postgresRoundRepository) GetLatest(ctx context.Context, exec SQLExecutor) (*models.Round, error) {
	return r.findOne(ctx, exec, `SELECT id, round_number, created_at FROM rounds ORDER BY round_number DESC LIMIT 1`)
}

func (r *postgresRoundRepository) List(ctx context.Context, exec SQLExecutor) ([]*models.Round, error) {
	rows, err := executor(r.db, exec).QueryContext(ctx, `SELECT id, round_number, created_at FROM rounds ORDER BY round_number DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}
	defer rows.Close()

	rounds := make([]*models.Round, 0)
	for rows.Next() {
		var round models.Round
		if scanErr := rows.Scan(&round.ID, &round.RoundNumber, &round.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan round row: %w", scanErr)
		}
		rounds = append(rounds, &round)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during round rows iteration: %w", err)
	}
	return rounds, nil
}

func (r *postgresRoundRepository) LockGeneration(ctx context.Context, exec SQLExecutor) error {
	if exec == nil {
		return errors.New("LockGeneration requires a transaction")
	}
	if _, err := exec.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, roundGenerationLockKey); err != nil {
		return fmt.Errorf("failed to acquire round generation lock: %w", err)
	}
	return nil
}

func (r *postgresRoundRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	_, err := executor(r.db, exec).ExecContext(ctx, `DELETE FROM rounds`)
	return err
}

func (r *postgresRoundRepository) handleRoundError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Constraint {
		case "rounds_round_number_key":
			return ErrRoundNumberConflict
		case "rounds_round_number_positive":
			return ErrRoundNumberInvalid
		}
	}
	return fmt.Errorf("round query failed: %w", err)
}
