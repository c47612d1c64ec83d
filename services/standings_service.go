package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Dosada05/swiss-tables/models"
	"github.com/Dosada05/swiss-tables/repositories"
	"github.com/Dosada05/swiss-tables/storage"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	standingsSheet   = "Standings"
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	archiveKeyPrefix = "standings"
)

// ArchivedStandings describes an uploaded standings workbook.
type ArchivedStandings struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	RoundNumber int    `json:"round_number"`
}

type StandingsService interface {
	GetStandings(ctx context.Context) ([]models.Standing, error)
	ExportStandingsXLSX(ctx context.Context, w io.Writer) error
	// ArchiveStandings returns ErrArchiveDisabled when no uploader is configured.
	ArchiveStandings(ctx context.Context) (*ArchivedStandings, error)
}

type standingsService struct {
	participantRepo repositories.ParticipantRepository
	roundRepo       repositories.RoundRepository
	uploader        storage.FileUploader
	logger          *slog.Logger
}

// NewStandingsService accepts a nil uploader; archiving is then disabled.
func NewStandingsService(
	participantRepo repositories.ParticipantRepository,
	roundRepo repositories.RoundRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) StandingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &standingsService{
		participantRepo: participantRepo,
		roundRepo:       roundRepo,
		uploader:        uploader,
		logger:          logger,
	}
}

func (s *standingsService) GetStandings(ctx context.Context) ([]models.Standing, error) {
	participants, err := s.participantRepo.ListStandings(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings: %w", err)
	}
	return models.StandingsFromParticipants(participants), nil
}

func (s *standingsService) ExportStandingsXLSX(ctx context.Context, w io.Writer) error {
	standings, err := s.GetStandings(ctx)
	if err != nil {
		return err
	}
	return writeStandingsWorkbook(w, standings)
}

func (s *standingsService) ArchiveStandings(ctx context.Context) (*ArchivedStandings, error) {
	if s.uploader == nil {
		return nil, ErrArchiveDisabled
	}

	standings, err := s.GetStandings(ctx)
	if err != nil {
		return nil, err
	}

	roundNumber := 0
	latest, err := s.roundRepo.GetLatest(ctx, nil)
	switch {
	case err == nil:
		roundNumber = latest.RoundNumber
	case errors.Is(err, repositories.ErrRoundNotFound):
	default:
		return nil, fmt.Errorf("failed to load latest round: %w", err)
	}

	var buf bytes.Buffer
	if err := writeStandingsWorkbook(&buf, standings); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/round-%d-%s.xlsx", archiveKeyPrefix, roundNumber, uuid.NewString())
	uploaded, err := s.uploader.Upload(ctx, key, xlsxContentType, &buf)
	if err != nil {
		s.logger.ErrorContext(ctx, "standings archive upload failed",
			slog.String("key", key), slog.Any("error", err))
		return nil, fmt.Errorf("failed to upload standings archive: %w", err)
	}

	s.logger.InfoContext(ctx, "standings archived",
		slog.String("key", uploaded.Key),
		slog.Int("round_number", roundNumber),
	)
	return &ArchivedStandings{
		Key:         uploaded.Key,
		URL:         s.uploader.GetPublicURL(uploaded.Key),
		RoundNumber: roundNumber,
	}, nil
}

func writeStandingsWorkbook(w io.Writer, standings []models.Standing) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", standingsSheet); err != nil {
		return fmt.Errorf("failed to name standings sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(standingsSheet)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	headers := []interface{}{"Rank", "Player", "Wins", "Losses", "Draws", "Points"}
	if err := sw.SetRow("A1", headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, st := range standings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{st.Rank, sanitizeForExcel(st.Name), st.Wins, st.Losses, st.Draws, st.Points}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write standings row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush standings sheet: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// sanitizeForExcel keeps spreadsheet apps from treating a name as a formula.
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
