package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/swiss-tables/models"
	"github.com/Dosada05/swiss-tables/realtime"
	"github.com/Dosada05/swiss-tables/repositories"
	"golang.org/x/sync/errgroup"
)

// ResultInput is one player's submitted outcome. The counters are the
// player's new cumulative totals, not a delta for this table.
type ResultInput struct {
	PlayerID int `json:"player_id"`
	Win      int `json:"win"`
	Loss     int `json:"loss"`
	Draw     int `json:"draw"`
	Points   int `json:"points"`
}

// MatchDetail is a table with its seated players and recorded results.
type MatchDetail struct {
	ID          int                   `json:"id"`
	RoundID     int                   `json:"round_id"`
	TableNumber int                   `json:"table_number"`
	Status      models.MatchStatus    `json:"status"`
	Completed   bool                  `json:"completed"`
	Players     []PlayerView          `json:"players"`
	Results     []*models.MatchResult `json:"results"`
}

// ResultsRecordedEvent is the payload of a RESULTS_RECORDED message.
type ResultsRecordedEvent struct {
	TableID int                   `json:"table_id"`
	RoundID int                   `json:"round_id"`
	Results []*models.MatchResult `json:"results"`
}

type ResultService interface {
	// RecordResults refuses tables that already carry results.
	RecordResults(ctx context.Context, tableID int, results []ResultInput) ([]*models.MatchResult, error)
	// EditResults replaces whatever results the table has, if any.
	EditResults(ctx context.Context, tableID int, results []ResultInput) ([]*models.MatchResult, error)
	// SubmitResults edits completed tables and records the rest.
	SubmitResults(ctx context.Context, tableID int, results []ResultInput) ([]*models.MatchResult, error)
	GetMatchWithResults(ctx context.Context, tableID int) (*MatchDetail, error)
}

type submitMode int

const (
	modeRecord submitMode = iota
	modeEdit
	modeAuto
)

type resultService struct {
	tx              repositories.Transactor
	participantRepo repositories.ParticipantRepository
	tableRepo       repositories.TableRepository
	resultRepo      repositories.ResultRepository
	hub             Broadcaster
	logger          *slog.Logger
}

func NewResultService(
	tx repositories.Transactor,
	participantRepo repositories.ParticipantRepository,
	tableRepo repositories.TableRepository,
	resultRepo repositories.ResultRepository,
	hub Broadcaster,
	logger *slog.Logger,
) ResultService {
	if logger == nil {
		logger = slog.Default()
	}
	return &resultService{
		tx:              tx,
		participantRepo: participantRepo,
		tableRepo:       tableRepo,
		resultRepo:      resultRepo,
		hub:             hub,
		logger:          logger,
	}
}

func (s *resultService) RecordResults(ctx context.Context, tableID int, results []ResultInput) ([]*models.MatchResult, error) {
	return s.submit(ctx, tableID, results, modeRecord)
}

func (s *resultService) EditResults(ctx context.Context, tableID int, results []ResultInput) ([]*models.MatchResult, error) {
	return s.submit(ctx, tableID, results, modeEdit)
}

func (s *resultService) SubmitResults(ctx context.Context, tableID int, results []ResultInput) ([]*models.MatchResult, error) {
	return s.submit(ctx, tableID, results, modeAuto)
}

func (s *resultService) submit(ctx context.Context, tableID int, results []ResultInput, mode submitMode) ([]*models.MatchResult, error) {
	if err := validateResults(results); err != nil {
		return nil, err
	}

	marker, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to encode results: %w", err)
	}

	var (
		table   *models.Table
		created []*models.MatchResult
	)
	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		var err error
		table, err = s.tableRepo.GetByIDForUpdate(ctx, exec, tableID)
		if err != nil {
			return err
		}

		edit := mode == modeEdit || (mode == modeAuto && table.Completed())
		if !edit && table.Completed() {
			return ErrResultsAlreadyRecorded
		}
		if edit {
			if err := s.resultRepo.DeleteByTable(ctx, exec, table.ID); err != nil {
				return fmt.Errorf("failed to clear results of table %d: %w", table.ID, err)
			}
		}

		byPlayer := indexResults(results)
		for _, playerID := range table.PlayerIDs {
			input, ok := byPlayer[playerID]
			if !ok {
				continue
			}

			participant, err := s.participantRepo.GetByID(ctx, exec, playerID)
			if errors.Is(err, repositories.ErrParticipantNotFound) {
				s.logger.WarnContext(ctx, "seated participant no longer exists",
					slog.Int("table_id", table.ID), slog.Int("participant_id", playerID))
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to load participant %d: %w", playerID, err)
			}

			applyResult(participant, input)
			if err := s.participantRepo.UpdateStats(ctx, exec, participant); err != nil {
				return fmt.Errorf("failed to update participant %d: %w", playerID, err)
			}

			row := &models.MatchResult{
				TableID:  table.ID,
				PlayerID: playerID,
				Win:      input.Win,
				Loss:     input.Loss,
				Draw:     input.Draw,
				Points:   input.Points,
			}
			if err := s.resultRepo.Create(ctx, exec, row); err != nil {
				return fmt.Errorf("failed to save result of participant %d: %w", playerID, err)
			}
			created = append(created, row)
		}

		return s.tableRepo.SetResultJSON(ctx, exec, table.ID, string(marker))
	})
	if err != nil {
		if !errors.Is(err, ErrResultsAlreadyRecorded) && !errors.Is(err, repositories.ErrTableNotFound) {
			s.logger.ErrorContext(ctx, "result submission failed",
				slog.Int("table_id", tableID), slog.Any("error", err))
		}
		return nil, translateRepoError(err)
	}

	if created == nil {
		created = []*models.MatchResult{}
	}
	s.logger.InfoContext(ctx, "results recorded",
		slog.Int("table_id", table.ID),
		slog.Int("results", len(created)),
	)
	broadcast(s.hub, realtime.MessageResultsRecorded, ResultsRecordedEvent{
		TableID: table.ID,
		RoundID: table.RoundID,
		Results: created,
	})
	return created, nil
}

// applyResult overwrites the participant's cumulative counters with the
// submitted values. Nothing is added to the previous totals.
func applyResult(p *models.Participant, r ResultInput) {
	p.WinCount = r.Win
	p.LossCount = r.Loss
	p.DrawCount = r.Draw
	p.Points = r.Points
}

func validateResults(results []ResultInput) error {
	if len(results) == 0 {
		return ErrResultsRequired
	}
	for i, r := range results {
		if r.PlayerID <= 0 {
			return fmt.Errorf("%w: results[%d].player_id must be positive", ErrValidationFailed, i)
		}
		if r.Win < 0 || r.Loss < 0 || r.Draw < 0 || r.Points < 0 {
			return fmt.Errorf("%w: results[%d] counters must not be negative", ErrValidationFailed, i)
		}
	}
	return nil
}

// indexResults keys entries by player; the first entry for a player wins.
func indexResults(results []ResultInput) map[int]ResultInput {
	byPlayer := make(map[int]ResultInput, len(results))
	for _, r := range results {
		if _, ok := byPlayer[r.PlayerID]; !ok {
			byPlayer[r.PlayerID] = r
		}
	}
	return byPlayer
}

func (s *resultService) GetMatchWithResults(ctx context.Context, tableID int) (*MatchDetail, error) {
	table, err := s.tableRepo.GetByID(ctx, nil, tableID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	var (
		participants []*models.Participant
		results      []*models.MatchResult
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		participants, err = s.participantRepo.List(gCtx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		results, err = s.resultRepo.ListByTable(gCtx, nil, table.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load table %d: %w", table.ID, err)
	}
	if results == nil {
		results = []*models.MatchResult{}
	}

	return &MatchDetail{
		ID:          table.ID,
		RoundID:     table.RoundID,
		TableNumber: table.TableNumber,
		Status:      table.Status(),
		Completed:   table.Completed(),
		Players:     playerViews(table.PlayerIDs, participantsByID(participants)),
		Results:     results,
	}, nil
}
