package models

import "time"

type MatchStatus string

const (
	StatusScheduled      MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
)

// MaxSeats is the nominal table size. A table can still hold one extra seat
// when a lone leftover player is merged into the last table of a round.
const MaxSeats = 4

// Table is one match of a round. ResultJSON is the completion marker: it is
// nil until results are recorded and then holds the submitted result set.
type Table struct {
	ID          int       `json:"id" db:"id"`
	RoundID     int       `json:"round_id" db:"round_id"`
	TableNumber int       `json:"table_number" db:"table_number"`
	PlayerIDs   []int     `json:"player_ids" db:"player_ids"`
	ResultJSON  *string   `json:"-" db:"result_json"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (t Table) Completed() bool {
	return t.ResultJSON != nil
}

func (t Table) Status() MatchStatus {
	if t.Completed() {
		return MatchStatusCompleted
	}
	return StatusScheduled
}

func (t Table) HasPlayer(playerID int) bool {
	for _, id := range t.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// SeatHistory is the seating of one earlier table, used to rebuild who has
// already faced whom.
type SeatHistory struct {
	RoundNumber int   `json:"round_number"`
	PlayerIDs   []int `json:"player_ids"`
}
