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
	ErrParticipantNotFound     = errors.New("participant not found")
	ErrParticipantNameTooLong  = errors.New("participant name exceeds 100 characters")
	ErrParticipantStatsInvalid = errors.New("participant stats conflict or invalid")
)

type ParticipantRepository interface {
	Create(ctx context.Context, exec SQLExecutor, p *models.Participant) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Participant, error)
	List(ctx context.Context, exec SQLExecutor) ([]*models.Participant, error)
	// ListStandings orders by points desc, win_count desc, id asc.
	ListStandings(ctx context.Context, exec SQLExecutor) ([]*models.Participant, error)
	UpdateStats(ctx context.Context, exec SQLExecutor, p *models.Participant) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresParticipantRepository struct {
	db *sql.DB
}

func NewPostgresParticipantRepository(db *sql.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

const participantColumns = `id, name, win_count, loss_count, draw_count, points, created_at`

func (r *postgresParticipantRepository) Create(ctx context.Context, exec SQLExecutor, p *models.Participant) error {
	query := `
		INSERT INTO participants (name, win_count, loss_count, draw_count, points)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := executor(r.db, exec).QueryRowContext(ctx, query,
		p.Name, p.WinCount, p.LossCount, p.DrawCount, p.Points,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return r.handleParticipantError(err)
	}
	return nil
}

func (r *postgresParticipantRepository) scanParticipant(rowScanner interface {
	Scan(dest ...interface{}) error
}) (*models.Participant, error) {
	p := &models.Participant{}
	err := rowScanner.Scan(&p.ID, &p.Name, &p.WinCount, &p.LossCount, &p.DrawCount, &p.Points, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresParticipantRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`
	p, err := r.scanParticipant(executor(r.db, exec).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, ErrParticipantNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get participant %d: %w", id, err)
	}
	return p, nil
}

func (r *postgresParticipantRepository) List(ctx context.Context, exec SQLExecutor) ([]*models.Participant, error) {
	return r.list(ctx, exec, `SELECT `+participantColumns+` FROM participants ORDER BY id ASC`)
}

func (r *postgresParticipantRepository) ListStandings(ctx context.Context, exec SQLExecutor) ([]*models.Participant, error) {
	return r.list(ctx, exec, `
		SELECT `+participantColumns+`
		FROM participants
		ORDER BY points DESC, win_count DESC, id ASC`)
}

func (r *postgresParticipantRepository) list(ctx context.Context, exec SQLExecutor, query string) ([]*models.Participant, error) {
	rows, err := executor(r.db, exec).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := make([]*models.Participant, 0)
	for rows.Next() {
		p, scanErr := r.scanParticipant(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", scanErr)
		}
		participants = append(participants, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during participant rows iteration: %w", err)
	}
	return participants, nil
}

func (r *postgresParticipantRepository) UpdateStats(ctx context.Context, exec SQLExecutor, p *models.Participant) error {
	query := `
		UPDATE participants
		SET win_count = $1, loss_count = $2, draw_count = $3, points = $4
		WHERE id = $5`
	result, err := executor(r.db, exec).ExecContext(ctx, query, p.WinCount, p.LossCount, p.DrawCount, p.Points, p.ID)
	if err != nil {
		return r.handleParticipantError(err)
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

func (r *postgresParticipantRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	result, err := executor(r.db, exec).ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

func (r *postgresParticipantRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	_, err := executor(r.db, exec).ExecContext(ctx, `DELETE FROM participants`)
	return err
}

func (r *postgresParticipantRepository) handleParticipantError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "22001": // string_data_right_truncation
			return ErrParticipantNameTooLong
		case "23514": // check_violation
			return ErrParticipantStatsInvalid
		}
	}
	return fmt.Errorf("participant query failed: %w", err)
}
