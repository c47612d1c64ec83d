package models

import "time"

// Participant is a registered player together with the cached cumulative
// counters that the results processor overwrites on every submission.
type Participant struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	WinCount  int       `json:"win_count" db:"win_count"`
	LossCount int       `json:"loss_count" db:"loss_count"`
	DrawCount int       `json:"draw_count" db:"draw_count"`
	Points    int       `json:"points" db:"points"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
