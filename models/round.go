package models

import "time"

type Round struct {
	ID          int       `json:"id" db:"id"`
	RoundNumber int       `json:"round_number" db:"round_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
