package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/swiss-tables/brackets"
	"github.com/Dosada05/swiss-tables/models"
	"github.com/Dosada05/swiss-tables/realtime"
	"github.com/Dosada05/swiss-tables/repositories"
	"golang.org/x/sync/errgroup"
)

type GeneratedRound struct {
	Round  *models.Round   `json:"round"`
	Tables []*models.Table `json:"matches"`
}

// RoundService owns the round/table lifecycle.
//
// It never checks that the previous round is fully completed before pairing
// the next one; callers that want that policy enforce it themselves.
type RoundService interface {
	// CreateRound returns the existing round when number is already taken.
	CreateRound(ctx context.Context, number int) (*models.Round, error)
	GenerateNextRound(ctx context.Context) (*GeneratedRound, error)
	ListRounds(ctx context.Context) ([]*models.Round, error)
	GetRoundTables(ctx context.Context, roundID int) (*RoundView, error)
	// GetCurrentRound returns the latest round, or a view with a nil round
	// when the tournament has not started.
	GetCurrentRound(ctx context.Context) (*RoundView, error)
}

type roundService struct {
	tx              repositories.Transactor
	participantRepo repositories.ParticipantRepository
	roundRepo       repositories.RoundRepository
	tableRepo       repositories.TableRepository
	generator       brackets.TableGenerator
	hub             Broadcaster
	logger          *slog.Logger
}

func NewRoundService(
	tx repositories.Transactor,
	participantRepo repositories.ParticipantRepository,
	roundRepo repositories.RoundRepository,
	tableRepo repositories.TableRepository,
	generator brackets.TableGenerator,
	hub Broadcaster,
	logger *slog.Logger,
) RoundService {
	if generator == nil {
		generator = brackets.NewSwissGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &roundService{
		tx:              tx,
		participantRepo: participantRepo,
		roundRepo:       roundRepo,
		tableRepo:       tableRepo,
		generator:       generator,
		hub:             hub,
		logger:          logger,
	}
}

func (s *roundService) CreateRound(ctx context.Context, number int) (*models.Round, error) {
	if number <= 0 {
		return nil, ErrRoundNumberInvalid
	}
	var round *models.Round
	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		var err error
		round, err = s.createRound(ctx, exec, number)
		return err
	})
	if err != nil {
		return nil, translateRepoError(err)
	}
	return round, nil
}

func (s *roundService) createRound(ctx context.Context, exec repositories.SQLExecutor, number int) (*models.Round, error) {
	existing, err := s.roundRepo.GetByNumber(ctx, exec, number)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrRoundNotFound) {
		return nil, fmt.Errorf("failed to look up round %d: %w", number, err)
	}

	round := &models.Round{RoundNumber: number}
	if err := s.roundRepo.Create(ctx, exec, round); err != nil {
		return nil, fmt.Errorf("failed to create round %d: %w", number, err)
	}
	return round, nil
}

func (s *roundService) GenerateNextRound(ctx context.Context) (*GeneratedRound, error) {
	var generated *GeneratedRound

	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.roundRepo.LockGeneration(ctx, exec); err != nil {
			return err
		}

		participants, err := s.participantRepo.ListStandings(ctx, exec)
		if err != nil {
			return fmt.Errorf("failed to load standings: %w", err)
		}
		if len(participants) == 0 {
			return ErrNoParticipants
		}

		next := 1
		latest, err := s.roundRepo.GetLatest(ctx, exec)
		switch {
		case err == nil:
			next = latest.RoundNumber + 1
		case errors.Is(err, repositories.ErrRoundNotFound):
		default:
			return fmt.Errorf("failed to load latest round: %w", err)
		}

		round, err := s.createRound(ctx, exec, next)
		if err != nil {
			return err
		}

		history, err := s.tableRepo.ListHistoryBefore(ctx, exec, next)
		if err != nil {
			return fmt.Errorf("failed to load seating history: %w", err)
		}

		pairings, err := s.generator.Generate(ctx, brackets.GenerateParams{
			RoundNumber: next,
			Standings:   brackets.StandingsFromParticipants(participants),
			History:     brackets.NewOpponentIndex(history),
		})
		if err != nil {
			return fmt.Errorf("%s generator failed for round %d: %w", s.generator.GetName(), next, err)
		}

		tables := make([]*models.Table, 0, len(pairings))
		for _, pairing := range pairings {
			table := &models.Table{
				RoundID:     round.ID,
				TableNumber: pairing.TableNumber,
				PlayerIDs:   pairing.PlayerIDs,
			}
			if err := s.tableRepo.Create(ctx, exec, table); err != nil {
				return fmt.Errorf("failed to save table %d of round %d: %w", pairing.TableNumber, next, err)
			}
			tables = append(tables, table)
		}

		generated = &GeneratedRound{Round: round, Tables: tables}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "round generation failed", slog.Any("error", err))
		return nil, translateRepoError(err)
	}

	s.logger.InfoContext(ctx, "round generated",
		slog.Int("round_number", generated.Round.RoundNumber),
		slog.Int("tables", len(generated.Tables)),
	)
	broadcast(s.hub, realtime.MessageRoundGenerated, generated)
	return generated, nil
}

func (s *roundService) ListRounds(ctx context.Context) ([]*models.Round, error) {
	rounds, err := s.roundRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	return rounds, nil
}

func (s *roundService) GetRoundTables(ctx context.Context, roundID int) (*RoundView, error) {
	round, err := s.roundRepo.GetByID(ctx, nil, roundID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return s.roundView(ctx, round)
}

func (s *roundService) GetCurrentRound(ctx context.Context) (*RoundView, error) {
	round, err := s.roundRepo.GetLatest(ctx, nil)
	if errors.Is(err, repositories.ErrRoundNotFound) {
		return &RoundView{Tables: []TableSummary{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest round: %w", err)
	}
	return s.roundView(ctx, round)
}

func (s *roundService) roundView(ctx context.Context, round *models.Round) (*RoundView, error) {
	var (
		tables       []*models.Table
		participants []*models.Participant
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tables, err = s.tableRepo.ListByRound(gCtx, nil, round.ID)
		return err
	})
	g.Go(func() error {
		var err error
		participants, err = s.participantRepo.List(gCtx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load round %d: %w", round.RoundNumber, err)
	}

	return &RoundView{
		Round:  round,
		Tables: summarizeTables(tables, participantsByID(participants)),
	}, nil
}
