package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Dosada05/swiss-tables/models"
	"github.com/Dosada05/swiss-tables/realtime"
	"github.com/Dosada05/swiss-tables/repositories"
)

const maxParticipantNameLength = 100

// ParticipantService registers and removes players.
type ParticipantService interface {
	Register(ctx context.Context, name string) (*models.Participant, error)
	List(ctx context.Context) ([]*models.Participant, error)
	Delete(ctx context.Context, id int) error
	// ClearAll wipes results, tables, rounds and participants.
	ClearAll(ctx context.Context) error
}

type participantService struct {
	tx         repositories.Transactor
	repo       repositories.ParticipantRepository
	roundRepo  repositories.RoundRepository
	tableRepo  repositories.TableRepository
	resultRepo repositories.ResultRepository
	hub        Broadcaster
	logger     *slog.Logger
}

func NewParticipantService(
	tx repositories.Transactor,
	repo repositories.ParticipantRepository,
	roundRepo repositories.RoundRepository,
	tableRepo repositories.TableRepository,
	resultRepo repositories.ResultRepository,
	hub Broadcaster,
	logger *slog.Logger,
) ParticipantService {
	if logger == nil {
		logger = slog.Default()
	}
	return &participantService{
		tx:         tx,
		repo:       repo,
		roundRepo:  roundRepo,
		tableRepo:  tableRepo,
		resultRepo: resultRepo,
		hub:        hub,
		logger:     logger,
	}
}

// Register adds a player with zeroed counters.
func (s *participantService) Register(ctx context.Context, name string) (*models.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrParticipantNameRequired
	}
	if utf8.RuneCountInString(name) > maxParticipantNameLength {
		return nil, ErrParticipantNameTooLong
	}

	participant := &models.Participant{Name: name}
	if err := s.repo.Create(ctx, nil, participant); err != nil {
		return nil, translateRepoError(err)
	}
	s.logger.InfoContext(ctx, "participant registered",
		slog.Int("participant_id", participant.ID), slog.String("name", participant.Name))
	return participant, nil
}

func (s *participantService) List(ctx context.Context) ([]*models.Participant, error) {
	participants, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

// Delete removes the participant and their seats. Their result rows go with
// them through the foreign key.
func (s *participantService) Delete(ctx context.Context, id int) error {
	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if _, err := s.repo.GetByID(ctx, exec, id); err != nil {
			return err
		}
		if err := s.tableRepo.RemovePlayer(ctx, exec, id); err != nil {
			return fmt.Errorf("failed to unseat participant %d: %w", id, err)
		}
		return s.repo.Delete(ctx, exec, id)
	})
	if err != nil {
		return translateRepoError(err)
	}
	s.logger.InfoContext(ctx, "participant deleted", slog.Int("participant_id", id))
	return nil
}

func (s *participantService) ClearAll(ctx context.Context) error {
	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.resultRepo.DeleteAll(ctx, exec); err != nil {
			return fmt.Errorf("failed to clear results: %w", err)
		}
		if err := s.tableRepo.DeleteAll(ctx, exec); err != nil {
			return fmt.Errorf("failed to clear tables: %w", err)
		}
		if err := s.roundRepo.DeleteAll(ctx, exec); err != nil {
			return fmt.Errorf("failed to clear rounds: %w", err)
		}
		if err := s.repo.DeleteAll(ctx, exec); err != nil {
			return fmt.Errorf("failed to clear participants: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "clearing tournament failed", slog.Any("error", err))
		return err
	}
	s.logger.InfoContext(ctx, "tournament cleared")
	broadcast(s.hub, realtime.MessageStandingsReset, nil)
	return nil
}
