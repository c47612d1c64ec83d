package services

import (
	"errors"

	"github.com/Dosada05/swiss-tables/models"
	"github.com/Dosada05/swiss-tables/realtime"
	"github.com/Dosada05/swiss-tables/repositories"
)

// Broadcaster pushes live updates to connected viewers.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

// PlayerView is a seated player as shown to clients. Name is "TBD" when a
// seat has no matching participant in the loaded set, which only happens
// when a delete commits between the table read and the participant read.
type PlayerView struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

type TableSummary struct {
	ID          int          `json:"id"`
	TableNumber int          `json:"table_number"`
	Players     []PlayerView `json:"players"`
	Completed   bool         `json:"completed"`
}

type RoundView struct {
	Round  *models.Round  `json:"round"`
	Tables []TableSummary `json:"matches"`
}

func playerViews(playerIDs []int, byID map[int]*models.Participant) []PlayerView {
	players := make([]PlayerView, 0, len(playerIDs))
	for _, pid := range playerIDs {
		p, ok := byID[pid]
		if !ok {
			players = append(players, PlayerView{Name: "TBD"})
			continue
		}
		id := p.ID
		players = append(players, PlayerView{ID: &id, Name: p.Name})
	}
	return players
}

func participantsByID(participants []*models.Participant) map[int]*models.Participant {
	byID := make(map[int]*models.Participant, len(participants))
	for _, p := range participants {
		if p != nil {
			byID[p.ID] = p
		}
	}
	return byID
}

func summarizeTables(tables []*models.Table, byID map[int]*models.Participant) []TableSummary {
	summaries := make([]TableSummary, 0, len(tables))
	for _, t := range tables {
		summaries = append(summaries, TableSummary{
			ID:          t.ID,
			TableNumber: t.TableNumber,
			Players:     playerViews(t.PlayerIDs, byID),
			Completed:   t.Completed(),
		})
	}
	return summaries
}

// translateRepoError maps repository sentinels onto service errors.
func translateRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrParticipantNotFound):
		return ErrParticipantNotFound
	case errors.Is(err, repositories.ErrRoundNotFound):
		return ErrRoundNotFound
	case errors.Is(err, repositories.ErrTableNotFound):
		return ErrTableNotFound
	case errors.Is(err, repositories.ErrParticipantNameTooLong):
		return ErrParticipantNameTooLong
	case errors.Is(err, repositories.ErrRoundNumberConflict):
		return ErrRoundNumberConflict
	case errors.Is(err, repositories.ErrRoundNumberInvalid):
		return ErrRoundNumberInvalid
	default:
		return err
	}
}

func broadcast(b Broadcaster, msgType string, payload interface{}) {
	if b == nil {
		return
	}
	b.BroadcastToRoom(realtime.TournamentRoom, realtime.Message{
		Type:    msgType,
		Payload: payload,
		RoomID:  realtime.TournamentRoom,
	})
}
