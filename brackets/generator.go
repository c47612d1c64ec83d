package brackets

import (
	"context"

	"github.com/Dosada05/swiss-tables/models"
)

// Standing is the slice of a participant the pairing engine cares about.
type Standing struct {
	ParticipantID int
	Points        int
}

// TablePairing is one generated table: its number within the round and the
// seated players in seat order.
type TablePairing struct {
	TableNumber int   `json:"table_number"`
	PlayerIDs   []int `json:"player_ids"`
}

// OpponentHistory answers which opponents a player met in rounds strictly
// before roundNumber.
type OpponentHistory interface {
	PriorOpponents(playerID, roundNumber int) map[int]struct{}
}

type GenerateParams struct {
	RoundNumber int
	Standings   []Standing
	History     OpponentHistory
}

type TableGenerator interface {
	Generate(ctx context.Context, params GenerateParams) ([]TablePairing, error)

	GetName() string
}

// StandingsFromParticipants keeps the order of the given participants.
func StandingsFromParticipants(participants []*models.Participant) []Standing {
	standings := make([]Standing, 0, len(participants))
	for _, p := range participants {
		if p == nil {
			continue
		}
		standings = append(standings, Standing{ParticipantID: p.ID, Points: p.Points})
	}
	return standings
}
